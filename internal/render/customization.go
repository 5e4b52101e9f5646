package render

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrInvalidCustomization wraps every rejected customization value.
var ErrInvalidCustomization = errors.New("invalid customization")

// Output formats.
type Format string

const (
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatSVG Format = "svg"
)

// Normalize folds the jpeg alias into jpg.
func (f Format) Normalize() Format {
	if f == "jpeg" {
		return FormatJPG
	}
	return f
}

func (f Format) valid() bool {
	switch f.Normalize() {
	case FormatPNG, FormatJPG, FormatSVG:
		return true
	}
	return false
}

// Module shapes.
type Shape string

const (
	ShapeSquare  Shape = "square"
	ShapeCircle  Shape = "circle"
	ShapeLiquid  Shape = "liquid"
	ShapeChain   Shape = "chain"
	ShapeHStripe Shape = "hstripe"
	ShapeVStripe Shape = "vstripe"
)

// Shapes lists every supported module shape.
func Shapes() []Shape {
	return []Shape{ShapeSquare, ShapeCircle, ShapeLiquid, ShapeChain, ShapeHStripe, ShapeVStripe}
}

func (s Shape) valid() bool {
	for _, known := range Shapes() {
		if s == known {
			return true
		}
	}
	return false
}

const (
	MinSize   = 64
	MaxSize   = 2048
	MaxMargin = 20
)

// Palettes offered by the customization panel.
var (
	SizeOptions = []int{150, 200, 250, 300, 350}

	ColorOptions = []string{
		"#4F46E5", "#3730A3", "#1e3a8a", "#ea1010ff", "#EF4444", "#000000", "#7c3aed",
		"#0dda39ff", "#10B981", "#F59E0B", "#c600d5a4", "#8B5CF6", "#EC4899", "#06B6D4",
	}

	BgColorOptions = []string{
		"#FFFFFF", "#F8FAFC", "#FEF3C7", "#E0E7FF", "#DCFCE7", "#FCE7F3", "#FFEDD5", "#E0F2FE",
	}
)

// Customization controls how a payload is drawn. Size is the output edge in pixels,
// Margin is the quiet zone in modules.
type Customization struct {
	Color   string `form:"color,default=#000000" json:"color"`
	BgColor string `form:"bg,default=#FFFFFF" json:"bg"`
	Size    int    `form:"size,default=200" json:"size" binding:"min=64,max=2048"`
	Margin  int    `form:"margin,default=5" json:"margin" binding:"min=0,max=20"`
	Shape   Shape  `form:"shape,default=square" json:"shape" binding:"oneof=square circle liquid chain hstripe vstripe"`
	Format  Format `form:"format,default=png" json:"format" binding:"oneof=png jpg jpeg svg"`
	Logo    bool   `form:"logo" json:"logo"`
}

// DefaultCustomization matches the panel's initial selection.
func DefaultCustomization() Customization {
	return Customization{
		Color:   "#000000",
		BgColor: "#FFFFFF",
		Size:    200,
		Margin:  5,
		Shape:   ShapeSquare,
		Format:  FormatPNG,
	}
}

// Validate reports the first unusable value.
func (c Customization) Validate() error {
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("%w: color: %v", ErrInvalidCustomization, err)
	}
	if _, err := ParseColor(c.BgColor); err != nil {
		return fmt.Errorf("%w: bg: %v", ErrInvalidCustomization, err)
	}
	if c.Size < MinSize || c.Size > MaxSize {
		return fmt.Errorf("%w: size must be between %d and %d", ErrInvalidCustomization, MinSize, MaxSize)
	}
	if c.Margin < 0 || c.Margin > MaxMargin {
		return fmt.Errorf("%w: margin must be between 0 and %d", ErrInvalidCustomization, MaxMargin)
	}
	if !c.Shape.valid() {
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidCustomization, c.Shape)
	}
	if !c.Format.valid() {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidCustomization, c.Format)
	}
	return nil
}

// AddTo writes the customization into v under the same keys the form binding reads.
func (c Customization) AddTo(v url.Values) {
	v.Set("color", c.Color)
	v.Set("bg", c.BgColor)
	v.Set("size", strconv.Itoa(c.Size))
	v.Set("margin", strconv.Itoa(c.Margin))
	v.Set("shape", string(c.Shape))
	v.Set("format", string(c.Format))
	if c.Logo {
		v.Set("logo", "true")
	}
}
