package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/web/components/ui/toast"
	"github.com/cristianadrielbraun/qrhub/web/pages"
)

// GeneratorPage renders the generator for the state in the query string.
// show=1 opens the customization panel when the active tab is valid.
func (h *Handler) GeneratorPage(c *gin.Context) {
	s, err := bindState(c)
	data := h.generatorData(s)
	if err != nil {
		data.Toasts = append(data.Toasts, notice(toast.Props{Title: "Error", Description: errorMessage(err), Variant: toast.VariantError}))
		h.renderPage(c, http.StatusBadRequest, pages.GeneratorPage(data))
		return
	}

	if c.Query("show") == "1" && s.Valid() {
		h.preview(c, data)
		return
	}
	h.renderPage(c, http.StatusOK, pages.GeneratorPage(data))
}

// Generate validates the submitted form and opens the customization panel.
func (h *Handler) Generate(c *gin.Context) {
	s, err := bindState(c)
	data := h.generatorData(s)
	if err != nil {
		data.Toasts = append(data.Toasts, notice(toastGenerate))
		h.renderPage(c, http.StatusBadRequest, pages.GeneratorPage(data))
		return
	}

	if err := s.Validate(); err != nil {
		var verrs payload.ValidationErrors
		errors.As(err, &verrs)
		data.Errors = verrs
		data.Toasts = append(data.Toasts, notice(toastIncomplete))
		h.renderPage(c, http.StatusUnprocessableEntity, pages.GeneratorPage(data))
		return
	}
	h.preview(c, data)
}

// CheckForm re-renders only the Generate button for the submitted form.
func (h *Handler) CheckForm(c *gin.Context) {
	s, err := bindState(c)
	valid := err == nil && s.Valid()
	h.renderFragment(c, http.StatusOK, pages.GenerateButton(valid))
}

func (h *Handler) preview(c *gin.Context, data pages.GeneratorData) {
	img, err := h.encodeState(c, data.State)
	if err != nil {
		data.Toasts = append(data.Toasts, notice(toastGenerate))
		h.renderPage(c, errorStatus(err), pages.GeneratorPage(data))
		return
	}
	data.Preview = img.DataURL()
	h.renderPage(c, http.StatusOK, pages.GeneratorPage(data))
}

func (h *Handler) generatorData(s payload.State) pages.GeneratorData {
	return pages.GeneratorData{
		State:          s,
		GalleryEnabled: h.library.Enabled(),
	}
}
