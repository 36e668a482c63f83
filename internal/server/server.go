// Package server exposes the synthesizer over HTTP, mirroring the original
// service contract: a JSON generate endpoint taking a base64 image, a health
// check, and permissive CORS for the browser frontend.
package server

import (
	"log"
	"net/http"

	"gonum.org/v1/gonum/mat"

	"stringart/internal/synth"
)

// Decoder turns uploaded image bytes into a darkness matrix. The daemon
// wires preprocess.DecodeDarkness; tests substitute their own.
type Decoder func(data []byte) (*mat.Dense, error)

// Server serves the string art API. Every request runs an independent
// synthesis with its own canvas and line cache; no mutable state is shared
// across requests.
type Server struct {
	addr   string
	params synth.Params
	decode Decoder
	mux    *http.ServeMux
}

// New creates a server that synthesizes with the given base parameters.
func New(addr string, params synth.Params, decode Decoder) *Server {
	s := &Server{
		addr:   addr,
		params: params,
		decode: decode,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/generate-string-art", s.handleGenerate)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return withCORS(s.mux)
}

// ListenAndServe blocks serving the API.
func (s *Server) ListenAndServe() error {
	log.Printf("String art API listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// withCORS allows any origin and answers preflight requests. The frontend
// is served from a different origin than the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
