package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"io"
)

// scaleNearest resizes img to size×size with nearest neighbour sampling so module
// edges stay sharp.
func scaleNearest(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == size && bounds.Dy() == size {
		return img
	}
	if bounds.Dx() == 0 || bounds.Dy() == 0 || size <= 0 {
		return img
	}

	sx := float64(bounds.Dx()) / float64(size)
	sy := float64(bounds.Dy()) / float64(size)
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		oy := int(float64(y) * sy)
		if oy >= bounds.Dy() {
			oy = bounds.Dy() - 1
		}
		for x := 0; x < size; x++ {
			ox := int(float64(x) * sx)
			if ox >= bounds.Dx() {
				ox = bounds.Dx() - 1
			}
			dst.Set(x, y, img.At(bounds.Min.X+ox, bounds.Min.Y+oy))
		}
	}
	return dst
}

// clearHalo drops the light semi-transparent edge pixels the writer leaves around
// modules when the background is transparent. fg must be opaque; a translucent
// foreground is indistinguishable from its own halo.
func clearHalo(img image.Image, fg color.NRGBA) image.Image {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if isHaloPixel(px, fg) {
				continue
			}
			out.SetNRGBA(x, y, px)
		}
	}
	return out
}

func isHaloPixel(px, fg color.NRGBA) bool {
	if px.A == 0 || sameRGB(px, fg) {
		return false
	}
	if px.A < 255 {
		return true
	}
	return px.R > 200 && px.G > 200 && px.B > 200
}

// sameRGB compares colours with the drift a premultiplied round trip introduces.
func sameRGB(a, b color.NRGBA) bool {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -2 && d <= 2
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B)
}

// encodeJPEG flattens img onto an opaque background; JPEG has no alpha channel.
func encodeJPEG(w io.Writer, img image.Image, bg color.NRGBA) error {
	opaque := color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}
	if bg.A == 0 {
		opaque = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, &image.Uniform{C: opaque}, image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return jpeg.Encode(w, out, &jpeg.Options{Quality: 92})
}
