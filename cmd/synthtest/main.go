// Command synthtest runs string art synthesis on an image file and outputs
// the path as JSON plus an optional preview PNG.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"stringart/internal/canvas"
	"stringart/internal/preprocess"
	"stringart/internal/render"
	"stringart/internal/synth"

	_ "golang.org/x/image/tiff"
)

func main() {
	imagePath := flag.String("image", "", "Path to source image (TIFF, PNG, or JPEG)")
	outJSON := flag.String("json", "", "Write result JSON to this file (default stdout)")
	outPNG := flag.String("png", "", "Write a preview PNG to this file")
	numNails := flag.Int("nails", 200, "Number of nails on the circle")
	maxLines := flag.Int("lines", 3000, "Maximum number of thread lines")
	canvasSize := flag.Int("canvas", 500, "Canvas size in pixels")
	seed := flag.Int64("seed", 1, "RNG seed for restart jumps")
	budget := flag.Duration("budget", 3*time.Minute, "Wall-clock budget (0 = unlimited)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: synthtest -image <path> [-nails 200] [-lines 3000] [-png out.png]")
		os.Exit(1)
	}

	f, err := os.Open(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s image %dx%d\n", format, img.Bounds().Dx(), img.Bounds().Dy())

	darkness, err := preprocess.FromImage(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Preprocess failed: %v\n", err)
		os.Exit(1)
	}

	params := synth.DefaultParams().
		WithLayout(*numNails, *canvasSize).
		WithSeed(*seed).
		WithBudget(*budget)
	params.MaxLines = *maxLines

	target, err := canvas.NewTarget(darkness, params.CanvasSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad target: %v\n", err)
		os.Exit(1)
	}

	res, err := synth.Synthesize(target, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Synthesis failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Committed %d lines (reason=%s, restarts=%d) in %.1fs\n",
		len(res.Path), res.Reason, res.Restarts, res.Elapsed.Seconds())

	if err := writeResult(res, *outJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write JSON: %v\n", err)
		os.Exit(1)
	}

	if *outPNG != "" {
		preview := render.Overlay(res.Nails, res.Path, params.CanvasSize, params.Opacity)
		if err := writePNG(preview, *outPNG); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview written to %s\n", *outPNG)
	}
}

func writeResult(res *synth.Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
