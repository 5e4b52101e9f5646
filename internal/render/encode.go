// Package render turns payload strings into QR images using go-qrcode.
package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
	"go.uber.org/zap"
)

// ErrEmptyPayload is returned when there is nothing to encode.
var ErrEmptyPayload = errors.New("payload is empty")

// Image is an encoded QR code ready to be served or saved.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
}

// DataURL returns the image inlined as a data: URL for previews.
func (i Image) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Encoder renders payloads. It is safe for concurrent use.
type Encoder struct {
	logo []byte
	log  *zap.Logger
}

// NewEncoder returns an Encoder that overlays logoSVG when a customization asks for a logo.
// A nil logo disables the overlay.
func NewEncoder(logoSVG []byte, log *zap.Logger) *Encoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Encoder{logo: logoSVG, log: log}
}

// Encode renders text with the given customization.
func (e *Encoder) Encode(ctx context.Context, text string, c Customization) (Image, error) {
	if text == "" {
		return Image{}, ErrEmptyPayload
	}
	if err := c.Validate(); err != nil {
		return Image{}, err
	}
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	fg, _ := ParseColor(c.Color)
	bg, _ := ParseColor(c.BgColor)

	level := qrcode.ErrorCorrectionMedium
	if c.Logo && e.logo != nil {
		// Keep the symbol readable with the centre covered.
		level = qrcode.ErrorCorrectionQuart
	}
	qrc, err := qrcode.NewWith(text, qrcode.WithErrorCorrectionLevel(level))
	if err != nil {
		return Image{}, fmt.Errorf("encode qr: %w", err)
	}

	e.log.Debug("encoding qr code",
		zap.Int("payload_length", len(text)),
		zap.Int("dimension", qrc.Dimension()),
		zap.String("format", string(c.Format.Normalize())),
		zap.Int("size", c.Size),
		zap.String("shape", string(c.Shape)),
	)

	if c.Format.Normalize() == FormatSVG {
		return e.encodeSVG(qrc, c, fg, bg)
	}

	img, err := e.raster(qrc, c, fg, bg)
	if err != nil {
		return Image{}, err
	}

	var buf bytes.Buffer
	if c.Format.Normalize() == FormatJPG {
		if err := encodeJPEG(&buf, img, bg); err != nil {
			return Image{}, fmt.Errorf("encode jpeg: %w", err)
		}
		return Image{Data: buf.Bytes(), ContentType: "image/jpeg", Ext: "jpg"}, nil
	}
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, fmt.Errorf("encode png: %w", err)
	}
	return Image{Data: buf.Bytes(), ContentType: "image/png", Ext: "png"}, nil
}

// raster draws the symbol with the standard writer into memory and scales it to c.Size.
func (e *Encoder) raster(qrc *qrcode.QRCode, c Customization, fg, bg color.NRGBA) (image.Image, error) {
	dim := qrc.Dimension()
	module := moduleWidth(dim, c.Margin, c.Size)

	opts := []standard.ImageOption{
		standard.WithQRWidth(uint8(module)),
		standard.WithBorderWidth(c.Margin * module),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithFgColor(fg),
	}
	if bg.A == 0 {
		opts = append(opts, standard.WithBgTransparent())
	} else {
		opts = append(opts, standard.WithBgColor(bg))
	}
	if shape := c.Shape.option(); shape != nil {
		opts = append(opts, shape)
	}
	if c.Logo && e.logo != nil {
		logo, err := rasterizeSVG(e.logo, dim*module/6)
		if err != nil {
			e.log.Warn("logo overlay skipped", zap.Error(err))
		} else {
			opts = append(opts, standard.WithLogoImage(logo))
		}
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf}, opts...)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("draw qr: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode qr: %w", err)
	}
	if bg.A == 0 && fg.A == 255 {
		img = clearHalo(img, fg)
	}

	// A symbol that cannot fit the requested edge at one pixel per module is
	// returned at its natural size rather than losing modules.
	natural := (dim + 2*c.Margin) * module
	if natural > c.Size && module == 1 {
		return img, nil
	}
	return scaleNearest(img, c.Size), nil
}

// moduleWidth picks the smallest module width that covers size, within the writer's uint8 range.
func moduleWidth(dim, margin, size int) int {
	total := dim + 2*margin
	m := (size + total - 1) / total
	if m < 1 {
		m = 1
	}
	if m > 255 {
		m = 255
	}
	return m
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
