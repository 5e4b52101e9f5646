package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// modules reads the module matrix back from a one-pixel-per-module render.
func modules(qrc *qrcode.QRCode) ([][]bool, error) {
	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf},
		standard.WithQRWidth(1),
		standard.WithBorderWidth(0),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithBgColor(color.White),
		standard.WithFgColor(color.Black),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("draw matrix: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}

	b := img.Bounds()
	grid := make([][]bool, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		grid[y] = make([]bool, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			grid[y][x] = r < 0x8000
		}
	}
	return grid, nil
}

// encodeSVG emits a vector QR in module units. Shapes other than circle are drawn square.
func (e *Encoder) encodeSVG(qrc *qrcode.QRCode, c Customization, fg, bg color.NRGBA) (Image, error) {
	grid, err := modules(qrc)
	if err != nil {
		return Image{}, err
	}

	dim := len(grid)
	total := dim + 2*c.Margin
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		total, total, c.Size, c.Size)

	if bg.A > 0 {
		fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"%s/>`, total, total, hexColor(bg), opacityAttr(bg))
	}

	fmt.Fprintf(&sb, `<g fill="%s"%s>`, hexColor(fg), opacityAttr(fg))
	for y, row := range grid {
		for x, dark := range row {
			if !dark {
				continue
			}
			mx, my := x+c.Margin, y+c.Margin
			if c.Shape == ShapeCircle {
				fmt.Fprintf(&sb, `<circle cx="%d.5" cy="%d.5" r="0.5"/>`, mx, my)
				continue
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1"/>`, mx, my)
		}
	}
	sb.WriteString(`</g>`)

	if c.Logo && e.logo != nil {
		side := float64(dim) / 5
		at := (float64(total) - side) / 2
		fmt.Fprintf(&sb, `<image x="%s" y="%s" width="%s" height="%s" href="data:image/svg+xml;base64,%s"/>`,
			fnum(at), fnum(at), fnum(side), fnum(side), base64.StdEncoding.EncodeToString(e.logo))
	}
	sb.WriteString(`</svg>`)

	return Image{Data: []byte(sb.String()), ContentType: "image/svg+xml", Ext: "svg"}, nil
}

func opacityAttr(c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%s"`, fnum(float64(c.A)/255))
}

func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
