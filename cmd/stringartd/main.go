// Command stringartd serves the string art generation API over HTTP.
package main

import (
	"flag"
	"log"
	"time"

	"stringart/internal/preprocess"
	"stringart/internal/server"
	"stringart/internal/synth"
	"stringart/internal/version"
)

func main() {
	addr := flag.String("addr", ":5000", "Listen address")
	numNails := flag.Int("nails", 200, "Number of nails on the circle")
	maxLines := flag.Int("lines", 3000, "Maximum number of thread lines")
	canvasSize := flag.Int("canvas", 500, "Canvas size in pixels")
	seed := flag.Int64("seed", 1, "RNG seed for restart jumps")
	budget := flag.Duration("budget", 3*time.Minute, "Wall-clock budget per request (0 = unlimited)")
	workers := flag.Int("workers", 1, "Goroutines scoring candidates per iteration")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting string art API v%s (%s)", version.Version, version.GitCommit)

	params := synth.DefaultParams().
		WithLayout(*numNails, *canvasSize).
		WithSeed(*seed).
		WithBudget(*budget)
	params.MaxLines = *maxLines
	params.Workers = *workers
	if err := params.Validate(); err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	srv := server.New(*addr, params, preprocess.DecodeDarkness)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
