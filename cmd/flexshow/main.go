package main

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flexlay/pkg/fixture"
	"flexlay/pkg/layout"
	"flexlay/pkg/render"
)

func main() {
	a := app.New()
	w := a.NewWindow("flexshow")
	w.Resize(fyne.NewSize(1024, 768))

	canvasImg := canvas.NewImageFromImage(nil)
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a fixture path and press Enter")

	outlines := widget.NewCheck("outlines", nil)
	outlines.SetChecked(true)

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("testdata/scene.yaml")
	reload := func(path string) {
		img, info, err := renderFixture(path, outlines.Checked)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}
		canvasImg.Image = img
		canvasImg.Refresh()
		status.SetText(info)
		w.SetTitle("flexshow: " + path)
	}
	pathEntry.OnSubmitted = reload
	outlines.OnChanged = func(bool) {
		if pathEntry.Text != "" {
			reload(pathEntry.Text)
		}
	}

	top := container.NewBorder(nil, nil, nil, outlines, pathEntry)
	w.SetContent(container.NewBorder(top, status, nil, nil,
		container.NewScroll(canvasImg)))

	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		reload(os.Args[1])
	}
	w.ShowAndRun()
}

func renderFixture(path string, outlines bool) (image.Image, string, error) {
	doc, err := fixture.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	tree, root, err := doc.Layout(layout.NewLayoutEngine())
	if err != nil {
		return nil, "", err
	}

	rect := tree.Node(root).Rect
	r := render.NewRenderer(imageSize(rect.Width), imageSize(rect.Height))
	r.DrawOutlines = outlines
	r.Render(tree, root)

	info := fmt.Sprintf("%d nodes, %.0fx%.0f", tree.Len(), rect.Width, rect.Height)
	return r.Image(), info, nil
}

func imageSize(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v + 0.5)
}
