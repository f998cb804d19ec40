// Package raster draws a chart.Chart into a PNG using OpenCV.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"unicode"

	"gocv.io/x/gocv"

	"mood-weather/internal/mood/chart"
)

// Encode renders c at its frame size and writes it to w as PNG.
func Encode(w io.Writer, c chart.Chart) error {
	img, err := Render(c)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render rasterises c into an image.
func Render(c chart.Chart) (image.Image, error) {
	width := int(c.Frame.Width())
	height := int(c.Frame.Height())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid chart size: %dx%d", width, height)
	}

	mat := gocv.NewMatWithSizeFromScalar(scalar(chart.Background), height, width, gocv.MatTypeCV8UC3)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("failed to allocate %dx%d chart", width, height)
	}

	gocv.Rectangle(&mat, rect(c.Frame), rgba(chart.Border), 1)

	if c.Empty() {
		text := hersheyText(c.Placeholder)
		size := gocv.GetTextSize(text, gocv.FontHersheySimplex, 0.5, 1)
		origin := image.Pt((width-size.X)/2, (height+size.Y)/2)
		gocv.PutText(&mat, text, origin, gocv.FontHersheySimplex, 0.5, rgba(chart.TextColor), 1)
	}

	for _, bar := range c.Bars {
		if bar.Rect.Width() <= 0 || bar.Rect.Height() <= 0 {
			continue
		}
		gocv.Rectangle(&mat, rect(bar.Rect), rgba(bar.Color), -1)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert chart: %w", err)
	}
	return img, nil
}

// hersheyText maps to the ASCII subset the Hershey fonts can draw.
func hersheyText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '—' || r == '–':
			return '-'
		case r > unicode.MaxASCII:
			return '?'
		default:
			return r
		}
	}, s)
}

func rect(r chart.Rect) image.Rectangle {
	return image.Rect(int(r.X0), int(r.Y0), int(r.X1), int(r.Y1))
}

// gocv drawing takes RGBA and stores BGR internally.
func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0}
}

// Scalars are in the Mat's BGR channel order.
func scalar(c color.NRGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
}
