// Package main provides the entry point for the string art viewer.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"stringart/internal/version"
	"stringart/ui/mainwindow"
	"stringart/ui/prefs"
)

const appTitle = "String Art"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	a := app.New()
	win := mainwindow.New(a, prefs.Load())
	win.Window().SetTitle(appTitle)

	// Handle command line arguments
	if len(os.Args) > 1 {
		imagePath := os.Args[1]
		if err := win.LoadImageFile(imagePath); err != nil {
			log.Printf("Failed to load image %s: %v", imagePath, err)
		}
	}

	win.ShowAndRun()
}
