package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrhub/web/components/ui/toast"
)

// Notices shown by the generator.
var (
	toastIncomplete = toast.Props{Title: "Incomplete Data", Description: "Please fill in all required fields.", Variant: toast.VariantWarning}
	toastGenerate   = toast.Props{Title: "Error", Description: "Failed to generate QR code. Please try again.", Variant: toast.VariantError}
	toastPermission = toast.Props{Title: "Permission required", Description: "Please grant permission to save images.", Variant: toast.VariantWarning}
	toastSaveFailed = toast.Props{Title: "Error", Description: "Failed to save QR code.", Variant: toast.VariantError}
	toastSaved      = toast.Props{Title: "Success", Description: "QR code saved to your gallery!", Variant: toast.VariantSuccess}
)

// notice fills in the presentation every generator toast shares.
func notice(p toast.Props) toast.Props {
	p.Position = toast.PositionBottomRight
	p.Duration = 3000
	p.Dismissible = true
	p.Icon = true
	return p
}

// GenericToast returns a Toast component rendered as HTML for HTMX swaps.
func (h *Handler) GenericToast(c *gin.Context) {
	h.renderFragment(c, http.StatusOK, toast.Toast(toast.Props{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		Variant:       toast.ParseVariant(c.PostForm("variant")),
		Position:      toast.PositionBottomRight,
		Duration:      2000,
		Dismissible:   c.PostForm("dismissible") == "on",
		ShowIndicator: false,
		Icon:          true,
	}))
}

func (h *Handler) renderFragment(c *gin.Context, status int, t templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := t.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
