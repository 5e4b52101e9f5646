package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const minLogoSize = 8

// rasterizeSVG draws an SVG document into a size×size RGBA image.
func rasterizeSVG(src []byte, size int) (image.Image, error) {
	if size < minLogoSize {
		return nil, fmt.Errorf("logo too small: %dpx", size)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse logo svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}
