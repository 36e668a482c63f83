// Package mainwindow provides the desktop viewer window: load a photograph,
// run the synthesizer, and inspect the resulting thread pattern.
package mainwindow

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	_ "golang.org/x/image/tiff"

	artcanvas "stringart/internal/canvas"
	"stringart/internal/preprocess"
	"stringart/internal/render"
	"stringart/internal/synth"
	"stringart/ui/prefs"
)

const previewSize = 700

// MainWindow is the viewer's single window.
type MainWindow struct {
	win   fyne.Window
	prefs *prefs.Prefs

	source image.Image

	preview  *fynecanvas.Image
	status   *widget.Label
	nailsIn  *widget.Entry
	linesIn  *widget.Entry
	generate *widget.Button
}

// New builds the viewer window.
func New(a fyne.App, p *prefs.Prefs) *MainWindow {
	w := &MainWindow{
		win:   a.NewWindow("String Art"),
		prefs: p,
	}

	w.preview = fynecanvas.NewImageFromImage(blank())
	w.preview.FillMode = fynecanvas.ImageFillContain
	w.preview.SetMinSize(fyne.NewSize(previewSize, previewSize))

	w.status = widget.NewLabel("Open an image to begin")

	w.nailsIn = widget.NewEntry()
	w.nailsIn.SetText(strconv.Itoa(p.IntWithFallback("num_nails", 200)))
	w.linesIn = widget.NewEntry()
	w.linesIn.SetText(strconv.Itoa(p.IntWithFallback("max_lines", 3000)))

	open := widget.NewButton("Open Image...", w.openImage)
	w.generate = widget.NewButton("Generate", w.run)
	w.generate.Disable()

	controls := container.NewVBox(
		open,
		widget.NewForm(
			widget.NewFormItem("Nails", w.nailsIn),
			widget.NewFormItem("Lines", w.linesIn),
		),
		w.generate,
		w.status,
	)

	w.win.SetContent(container.NewBorder(nil, nil, controls, nil, w.preview))
	return w
}

// Window returns the underlying fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.win
}

// ShowAndRun shows the window and runs the event loop.
func (w *MainWindow) ShowAndRun() {
	w.win.ShowAndRun()
}

// LoadImageFile loads a source image from a path (command line argument).
func (w *MainWindow) LoadImageFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}
	w.setSource(img, path)
	return nil
}

func (w *MainWindow) openImage() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		img, _, err := image.Decode(rc)
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		w.setSource(img, rc.URI().Name())
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff"}))
	fd.Show()
}

func (w *MainWindow) setSource(img image.Image, name string) {
	w.source = img
	w.preview.Image = img
	w.preview.Refresh()
	w.status.SetText(fmt.Sprintf("Loaded %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy()))
	w.generate.Enable()
}

// run synthesizes in the background and swaps the preview in when done.
func (w *MainWindow) run() {
	params, err := w.readParams()
	if err != nil {
		dialog.ShowError(err, w.win)
		return
	}

	w.generate.Disable()
	w.status.SetText("Generating...")

	go func() {
		defer w.generate.Enable()

		darkness, err := preprocess.FromImage(w.source)
		if err != nil {
			w.fail(err)
			return
		}
		target, err := artcanvas.NewTarget(darkness, params.CanvasSize)
		if err != nil {
			w.fail(err)
			return
		}
		res, err := synth.Synthesize(target, params)
		if err != nil {
			w.fail(err)
			return
		}

		out := render.Upscale(render.Overlay(res.Nails, res.Path, params.CanvasSize, params.Opacity), previewSize)
		w.preview.Image = out
		w.preview.Refresh()
		w.status.SetText(fmt.Sprintf("%d lines, reason=%s, %.1fs",
			len(res.Path), res.Reason, res.Elapsed.Seconds()))
	}()
}

func (w *MainWindow) fail(err error) {
	log.Printf("generate failed: %v", err)
	w.status.SetText(fmt.Sprintf("Failed: %v", err))
}

// readParams validates the entry fields and persists them as preferences.
func (w *MainWindow) readParams() (synth.Params, error) {
	numNails, err := strconv.Atoi(w.nailsIn.Text)
	if err != nil {
		return synth.Params{}, fmt.Errorf("nails: %w", err)
	}
	maxLines, err := strconv.Atoi(w.linesIn.Text)
	if err != nil {
		return synth.Params{}, fmt.Errorf("lines: %w", err)
	}

	params := synth.DefaultParams()
	params.NumNails = numNails
	params.MaxLines = maxLines
	if err := params.Validate(); err != nil {
		return synth.Params{}, err
	}

	w.prefs.SetInt("num_nails", numNails)
	w.prefs.SetInt("max_lines", maxLines)
	if err := w.prefs.Save(); err != nil {
		log.Printf("prefs save failed: %v", err)
	}
	return params, nil
}

// blank is the placeholder before any image is loaded.
func blank() image.Image {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 240
	}
	return img
}
