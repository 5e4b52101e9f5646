package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yeqown/go-qrcode/v2"
	"go.uber.org/zap"
)

const testLogo = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10">` +
	`<rect x="0" y="0" width="10" height="10" fill="#FF0000"/></svg>`

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#000000", want: color.NRGBA{A: 255}},
		{in: "FFFFFF", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#4F46E5", want: color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 255}},
		{in: "#c600d5a4", want: color.NRGBA{R: 0xc6, G: 0x00, B: 0xd5, A: 0xa4}},
		{in: "#f0a", want: color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 255}},
		{in: "Transparent", want: color.NRGBA{}},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "red", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCustomization_Validate(t *testing.T) {
	require.NoError(t, DefaultCustomization().Validate())

	for _, c := range ColorOptions {
		_, err := ParseColor(c)
		require.NoError(t, err, c)
	}
	for _, c := range BgColorOptions {
		_, err := ParseColor(c)
		require.NoError(t, err, c)
	}

	bad := []func(*Customization){
		func(c *Customization) { c.Color = "blue" },
		func(c *Customization) { c.BgColor = "#12" },
		func(c *Customization) { c.Size = 10 },
		func(c *Customization) { c.Size = 5000 },
		func(c *Customization) { c.Margin = -1 },
		func(c *Customization) { c.Margin = 21 },
		func(c *Customization) { c.Shape = "star" },
		func(c *Customization) { c.Format = "gif" },
	}
	for i, mutate := range bad {
		c := DefaultCustomization()
		mutate(&c)
		require.ErrorIs(t, c.Validate(), ErrInvalidCustomization, "case %d", i)
	}

	c := DefaultCustomization()
	c.Format = "jpeg"
	require.NoError(t, c.Validate())
}

func TestEncoder_EncodePNG(t *testing.T) {
	enc := NewEncoder(nil, zap.NewNop())
	c := DefaultCustomization()
	c.Color = "#4F46E5"
	c.BgColor = "#FEF3C7"

	out, err := enc.Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	require.Equal(t, "image/png", out.ContentType)
	require.Equal(t, "png", out.Ext)

	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// "hello" fits version 1 (21 modules); with a 5 module margin the first finder
	// module is centred around pixel 35 of the 200px output.
	require.Equal(t, color.NRGBA{R: 0xfe, G: 0xf3, B: 0xc7, A: 255}, nrgba(img.At(2, 2)))
	require.Equal(t, color.NRGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 255}, nrgba(img.At(35, 35)))
}

func TestEncoder_EncodeSizes(t *testing.T) {
	enc := NewEncoder(nil, nil)
	for _, size := range SizeOptions {
		c := DefaultCustomization()
		c.Size = size
		out, err := enc.Encode(context.Background(), "https://example.com", c)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(bytes.NewReader(out.Data))
		require.NoError(t, err)
		require.Equal(t, size, cfg.Width)
		require.Equal(t, size, cfg.Height)
	}
}

func TestEncoder_EncodeTransparent(t *testing.T) {
	c := DefaultCustomization()
	c.BgColor = "transparent"
	c.Margin = 2

	out, err := NewEncoder(nil, nil).Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	require.Equal(t, uint8(0), nrgba(img.At(0, 0)).A)
}

func TestEncoder_EncodeTranslucentOnTransparent(t *testing.T) {
	c := DefaultCustomization()
	c.Color = "#c600d5a4"
	c.BgColor = "transparent"

	out, err := NewEncoder(nil, nil).Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)

	fg := color.NRGBA{R: 0xc6, G: 0x00, B: 0xd5, A: 0xa4}
	visible := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := nrgba(img.At(x, y))
			if px.A == 0 {
				continue
			}
			visible++
			require.True(t, sameRGB(px, fg), "pixel %d,%d is %v", x, y, px)
		}
	}
	// Version 1 has 21x21 modules, roughly half dark, at 7px per module.
	require.Greater(t, visible, 200*200/10)
	require.Equal(t, uint8(0), nrgba(img.At(0, 0)).A)
}

func TestIsHaloPixel(t *testing.T) {
	fg := color.NRGBA{R: 0xc6, G: 0x00, B: 0xd5, A: 0xff}
	require.False(t, isHaloPixel(color.NRGBA{}, fg))
	require.False(t, isHaloPixel(fg, fg))
	require.False(t, isHaloPixel(color.NRGBA{R: 0xc5, G: 0x01, B: 0xd5, A: 0xa4}, fg))
	require.True(t, isHaloPixel(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x40}, fg))
	require.True(t, isHaloPixel(color.NRGBA{R: 0xfe, G: 0xfe, B: 0xfe, A: 0xff}, fg))
	require.False(t, isHaloPixel(color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}, fg))
}

func TestEncoder_EncodeJPG(t *testing.T) {
	c := DefaultCustomization()
	c.Format = "jpeg"
	c.Size = 150

	out, err := NewEncoder(nil, nil).Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", out.ContentType)
	require.Equal(t, "jpg", out.Ext)

	img, err := jpeg.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	require.Equal(t, 150, img.Bounds().Dx())
}

func TestEncoder_EncodeSVG(t *testing.T) {
	c := DefaultCustomization()
	c.Format = FormatSVG
	c.Color = "#c600d5a4"

	out, err := NewEncoder(nil, nil).Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	require.Equal(t, "image/svg+xml", out.ContentType)

	svg := string(out.Data)
	require.Contains(t, svg, `viewBox="0 0 31 31"`)
	require.Contains(t, svg, `width="200" height="200"`)
	require.Contains(t, svg, `<rect width="31" height="31" fill="#ffffff"/>`)
	require.Contains(t, svg, `fill="#c600d5" fill-opacity=`)
	// Top-left finder corner sits just inside the margin.
	require.Contains(t, svg, `<rect x="5" y="5" width="1" height="1"/>`)
	require.NotContains(t, svg, `<rect x="4" y="4"`)
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestEncoder_EncodeSVGCircles(t *testing.T) {
	c := DefaultCustomization()
	c.Format = FormatSVG
	c.Shape = ShapeCircle
	c.Margin = 0

	out, err := NewEncoder(nil, nil).Encode(context.Background(), "hello", c)
	require.NoError(t, err)
	require.Contains(t, string(out.Data), `<circle cx="0.5" cy="0.5" r="0.5"/>`)
}

func TestEncoder_EncodeShapes(t *testing.T) {
	enc := NewEncoder(nil, nil)
	for _, shape := range Shapes() {
		t.Run(string(shape), func(t *testing.T) {
			c := DefaultCustomization()
			c.Shape = shape
			out, err := enc.Encode(context.Background(), "shape test", c)
			require.NoError(t, err)
			require.NotEmpty(t, out.Data)
		})
	}
}

func TestEncoder_EncodeLogo(t *testing.T) {
	c := DefaultCustomization()
	c.Logo = true
	c.Size = 300

	out, err := NewEncoder([]byte(testLogo), nil).Encode(context.Background(), "https://example.com/with/logo", c)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())

	c.Format = FormatSVG
	out, err = NewEncoder([]byte(testLogo), nil).Encode(context.Background(), "https://example.com/with/logo", c)
	require.NoError(t, err)
	require.Contains(t, string(out.Data), `href="data:image/svg+xml;base64,`)
}

func TestEncoder_EncodeErrors(t *testing.T) {
	enc := NewEncoder(nil, nil)

	_, err := enc.Encode(context.Background(), "", DefaultCustomization())
	require.ErrorIs(t, err, ErrEmptyPayload)

	c := DefaultCustomization()
	c.Size = 1
	_, err = enc.Encode(context.Background(), "hello", c)
	require.ErrorIs(t, err, ErrInvalidCustomization)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = enc.Encode(ctx, "hello", DefaultCustomization())
	require.ErrorIs(t, err, context.Canceled)

	_, err = enc.Encode(context.Background(), strings.Repeat("x", 8000), DefaultCustomization())
	require.ErrorContains(t, err, "encode qr")
}

func TestImage_DataURL(t *testing.T) {
	img := Image{Data: []byte("abc"), ContentType: "image/png"}
	require.Equal(t, "data:image/png;base64,YWJj", img.DataURL())
}

func TestModuleWidth(t *testing.T) {
	require.Equal(t, 7, moduleWidth(21, 5, 200))
	require.Equal(t, 1, moduleWidth(177, 0, 64))
	require.Equal(t, 255, moduleWidth(1, 0, 2048))
}

func TestModulesMatchDimension(t *testing.T) {
	qrc, err := qrcode.New("hello")
	require.NoError(t, err)
	grid, err := modules(qrc)
	require.NoError(t, err)
	require.Len(t, grid, qrc.Dimension())
	require.True(t, grid[0][0])
	require.False(t, grid[7][7])
}

func TestRasterizeSVG(t *testing.T) {
	img, err := rasterizeSVG([]byte(testLogo), 20)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 255, A: 255}, nrgba(img.At(10, 10)))

	_, err = rasterizeSVG([]byte(testLogo), 4)
	require.Error(t, err)
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
