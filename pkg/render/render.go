// Package render paints a laid-out tree into a raster image. It exists for
// debugging and differential testing: two engines that agree on geometry
// produce pixel-identical output here.
package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"flexlay/pkg/css"
	"flexlay/pkg/layout"
)

type Renderer struct {
	context *gg.Context

	// DrawOutlines strokes a thin outline around every laid-out box, so
	// unstyled fixtures still show their geometry.
	DrawOutlines bool
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Render paints the subtree at root onto a white canvas. Node rects are
// local to their parent container and are composed into canvas coordinates
// while walking down.
func (r *Renderer) Render(tree *layout.Tree, root layout.NodeID) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()
	if tree == nil || !tree.Valid(root) {
		return
	}
	r.drawNode(tree, root, 0, 0)
}

func (r *Renderer) drawNode(tree *layout.Tree, id layout.NodeID, offsetX, offsetY float64) {
	n := tree.Node(id)
	if !n.Laid {
		return
	}

	x := offsetX + n.Rect.X
	y := offsetY + n.Rect.Y
	r.drawBackground(n, x, y)
	r.drawBorder(n, x, y)
	if r.DrawOutlines {
		r.context.SetRGBA(0.2, 0.2, 0.2, 0.6)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x+0.5, y+0.5, n.Rect.Width-1, n.Rect.Height-1)
		r.context.Stroke()
	}

	// Children live in this node's content box.
	childX := x
	childY := y
	if n.Style != nil {
		p := n.Style.GetPadding()
		b := n.Style.GetBorderWidth()
		childX += p.Left + b.Left
		childY += p.Top + b.Top
	}
	for _, childID := range n.Children {
		r.drawNode(tree, childID, childX, childY)
	}
}

func (r *Renderer) drawBackground(n *layout.Node, x, y float64) {
	if n.Style == nil {
		return
	}
	bg, ok := n.Style.Get("background-color")
	if !ok {
		return
	}
	color, ok := css.ParseColor(bg)
	if !ok {
		return
	}
	if n.Rect.Width <= 0 || n.Rect.Height <= 0 {
		return
	}
	r.setColor(color)
	r.context.DrawRectangle(x, y, n.Rect.Width, n.Rect.Height)
	r.context.Fill()
}

// drawBorder fills each border side as a trapezoid, the mitered rendering
// CSS prescribes for solid borders.
func (r *Renderer) drawBorder(n *layout.Node, x, y float64) {
	if n.Style == nil {
		return
	}
	b := n.Style.GetBorderWidth()
	if b.Top <= 0 && b.Right <= 0 && b.Bottom <= 0 && b.Left <= 0 {
		return
	}
	color := css.Color{} // black unless border-color says otherwise
	if v, ok := n.Style.Get("border-color"); ok {
		if c, ok := css.ParseColor(v); ok {
			color = c
		}
	}
	r.setColor(color)

	outerLeft, outerTop := x, y
	outerRight := x + n.Rect.Width
	outerBottom := y + n.Rect.Height
	innerLeft := outerLeft + b.Left
	innerTop := outerTop + b.Top
	innerRight := outerRight - b.Right
	innerBottom := outerBottom - b.Bottom

	if b.Top > 0 {
		r.context.MoveTo(outerLeft, outerTop)
		r.context.LineTo(outerRight, outerTop)
		r.context.LineTo(innerRight, innerTop)
		r.context.LineTo(innerLeft, innerTop)
		r.context.ClosePath()
		r.context.Fill()
	}
	if b.Right > 0 {
		r.context.MoveTo(outerRight, outerTop)
		r.context.LineTo(outerRight, outerBottom)
		r.context.LineTo(innerRight, innerBottom)
		r.context.LineTo(innerRight, innerTop)
		r.context.ClosePath()
		r.context.Fill()
	}
	if b.Bottom > 0 {
		r.context.MoveTo(outerRight, outerBottom)
		r.context.LineTo(outerLeft, outerBottom)
		r.context.LineTo(innerLeft, innerBottom)
		r.context.LineTo(innerRight, innerBottom)
		r.context.ClosePath()
		r.context.Fill()
	}
	if b.Left > 0 {
		r.context.MoveTo(outerLeft, outerBottom)
		r.context.LineTo(outerLeft, outerTop)
		r.context.LineTo(innerLeft, innerTop)
		r.context.LineTo(innerLeft, innerBottom)
		r.context.ClosePath()
		r.context.Fill()
	}
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGB(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the canvas to a PNG file, creating parent directories.
func (r *Renderer) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("render: create output directory: %w", err)
	}
	return r.context.SavePNG(path)
}
