package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"stringart/internal/canvas"
	"stringart/internal/nails"
	"stringart/internal/synth"
)

// maxUploadBytes bounds the request body; base64 of a large phone photo.
const maxUploadBytes = 32 << 20

type generateRequest struct {
	Base64Image string `json:"base64Image"`
	MimeType    string `json:"mimeType"`
}

type generateResponse struct {
	Nails    []nails.Nail       `json:"nails"`
	Paths    []synth.Connection `json:"paths"`
	Message  string             `json:"message"`
	Reason   string             `json:"reason"`
	Restarts int                `json:"restarts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "String art API is running",
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Base64Image == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing base64Image in request"})
		return
	}

	log.Printf("generate request: mime=%s encoded=%dB", req.MimeType, len(req.Base64Image))

	raw, err := base64.StdEncoding.DecodeString(req.Base64Image)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid base64 image data"})
		return
	}

	darkness, err := s.decode(raw)
	if err != nil {
		log.Printf("generate: image decode failed: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid image data"})
		return
	}

	target, err := canvas.NewTarget(darkness, s.params.CanvasSize)
	if err != nil {
		log.Printf("generate: bad target: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	res, err := synth.Synthesize(target, s.params)
	if err != nil {
		log.Printf("generate: synthesis failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	log.Printf("generate: %d nails, %d connections, reason=%s in %.1fs",
		len(res.Nails), len(res.Path), res.Reason, res.Elapsed.Seconds())

	writeJSON(w, http.StatusOK, generateResponse{
		Nails: res.Nails,
		Paths: res.Path,
		Message: fmt.Sprintf("String art pattern generated with %d nails and %d connections in %.1fs",
			len(res.Nails), len(res.Path), res.Elapsed.Seconds()),
		Reason:   res.Reason,
		Restarts: res.Restarts,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}
