package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// DiffResult contains the results of an image comparison.
type DiffResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // max color channel difference found
}

// DiffOptions configures the image comparison.
type DiffOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255).
	// 0 demands an exact match.
	Tolerance int

	// MaxDifferentPercent: if > 0, pass when the percentage of different
	// pixels is <= this value. Useful for anti-aliasing noise.
	MaxDifferentPercent float64

	// DiffImagePath: if set, a diff image highlighting mismatching pixels
	// in red is written there on failure.
	DiffImagePath string
}

// CompareImages compares two rendered images pixel by pixel.
func CompareImages(actual, expected image.Image, opts DiffOptions) (*DiffResult, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &DiffResult{}, fmt.Errorf(
			"render: image dimensions differ: actual=%v, expected=%v",
			bounds, expected.Bounds())
	}

	result := &DiffResult{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}

	var diffImg *image.RGBA
	if opts.DiffImagePath != "" {
		diffImg = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			diff := pixelDiff(actual.At(x, y), expected.At(x, y))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}
			if diff > opts.Tolerance {
				result.Match = false
				result.DifferentPixels++
				if diffImg != nil {
					diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			} else if diffImg != nil {
				gray := color.GrayModel.Convert(actual.At(x, y)).(color.Gray)
				diffImg.Set(x, y, gray)
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if diffImg != nil && !result.Match {
		if err := writePNG(diffImg, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("render: save diff image: %w", err)
		}
	}
	return result, nil
}

// CompareFiles compares two PNG files.
func CompareFiles(actualPath, expectedPath string, opts DiffOptions) (*DiffResult, error) {
	actual, err := loadPNG(actualPath)
	if err != nil {
		return nil, err
	}
	expected, err := loadPNG(expectedPath)
	if err != nil {
		return nil, err
	}
	return CompareImages(actual, expected, opts)
}

// pixelDiff is the maximum channel delta between two pixels, 8-bit scale.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	max := 0
	for _, d := range []int{
		int(ar>>8) - int(br>>8),
		int(ag>>8) - int(bg>>8),
		int(ab>>8) - int(bb>>8),
		int(aa>>8) - int(ba>>8),
	} {
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
