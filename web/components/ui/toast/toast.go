// Package toast renders transient notifications for htmx swaps and page loads.
package toast

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/cristianadrielbraun/qrhub/web/components"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// ParseVariant maps a request value to a variant. "destructive" is an alias for error.
func ParseVariant(s string) Variant {
	switch s {
	case "error", "destructive":
		return VariantError
	case "warning":
		return VariantWarning
	case "info":
		return VariantInfo
	default:
		return VariantSuccess
	}
}

type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

type Props struct {
	ID            string
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	Duration      int // milliseconds, 0 keeps the toast until dismissed
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
	Class         string
}

var variantClass = map[Variant]string{
	VariantDefault: "border-slate-200",
	VariantSuccess: "border-emerald-300",
	VariantError:   "border-red-300",
	VariantWarning: "border-amber-300",
	VariantInfo:    "border-sky-300",
}

var variantIcon = map[Variant]string{
	VariantSuccess: "checkmark-circle",
	VariantError:   "alert-circle",
	VariantWarning: "warning",
	VariantInfo:    "information-circle",
}

var variantIconClass = map[Variant]string{
	VariantSuccess: "text-emerald-500",
	VariantError:   "text-red-500",
	VariantWarning: "text-amber-500",
	VariantInfo:    "text-sky-500",
}

var positionClass = map[Position]string{
	PositionTopRight:     "self-end",
	PositionTopLeft:      "self-start",
	PositionTopCenter:    "self-center",
	PositionBottomRight:  "self-end",
	PositionBottomLeft:   "self-start",
	PositionBottomCenter: "self-center",
}

// withDefaults fills in what a caller left out. Every toast gets an id so the
// dismiss button and the expiry timer can find it.
func (p Props) withDefaults() Props {
	if p.ID == "" {
		p.ID = "toast-" + uuid.NewString()
	}
	if p.Variant == "" {
		p.Variant = VariantDefault
	}
	if p.Position == "" {
		p.Position = PositionBottomRight
	}
	return p
}

func (p Props) class() string {
	return components.Class(
		"pointer-events-auto relative w-full max-w-sm overflow-hidden rounded-xl border bg-white p-4 shadow-lg",
		variantClass[p.Variant],
		positionClass[p.Position],
		p.Class,
	)
}

func (p Props) icon() (string, bool) {
	if !p.Icon {
		return "", false
	}
	name, ok := variantIcon[p.Variant]
	return name, ok
}

// indicatorClass runs the shrink animation over the toast's lifetime.
func indicatorClass(durationMs int) string {
	return components.Class(
		"absolute bottom-0 left-0 h-1 w-full origin-left bg-current opacity-20",
		"animate-[toast-shrink_"+strconv.Itoa(durationMs)+"ms_linear_forwards]",
	)
}
