package render

import (
	"github.com/yeqown/go-qrcode/writer/standard"
	"github.com/yeqown/go-qrcode/writer/standard/shapes"
)

// option maps a Shape to the writer option that draws it. Square is the writer default.
func (s Shape) option() standard.ImageOption {
	switch s {
	case ShapeCircle:
		return standard.WithCircleShape()
	case ShapeLiquid:
		return standard.WithCustomShape(&blockShape{draw: shapes.LiquidBlock()})
	case ShapeChain:
		return standard.WithCustomShape(&blockShape{draw: shapes.ChainBlock()})
	case ShapeHStripe:
		return standard.WithCustomShape(&blockShape{draw: shapes.HStripeBlock(0.85)})
	case ShapeVStripe:
		return standard.WithCustomShape(&blockShape{draw: shapes.VStripeBlock(0.85)})
	default:
		return nil
	}
}

// blockShape adapts a shapes block func to standard.IShape, drawing finders the same way.
type blockShape struct {
	draw func(ctx *standard.DrawContext)
}

func (b *blockShape) Draw(ctx *standard.DrawContext) { b.draw(ctx) }

func (b *blockShape) DrawFinder(ctx *standard.DrawContext) { b.draw(ctx) }
