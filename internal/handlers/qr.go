package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/internal/render"
)

// QRCodeHandler renders the QR code for the state in the query string.
// With download=1 the image is sent as an attachment.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	s, err := bindState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err)})
		return
	}

	img, err := h.encodeState(c, s)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": errorMessage(err)})
		return
	}

	if gin.IsDebugging() {
		c.Header("X-QR-Debug", fmt.Sprintf("type=%s;format=%s;size=%d;shape=%s", s.Active, img.Ext, s.Custom.Size, s.Custom.Shape))
	}
	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, downloadName(s.Active, img)))
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// encodeState validates the active tab and renders it.
func (h *Handler) encodeState(c *gin.Context, s payload.State) (render.Image, error) {
	if err := s.Validate(); err != nil {
		return render.Image{}, err
	}
	text, err := s.Payload()
	if err != nil {
		return render.Image{}, err
	}

	img, err := h.encoder.Encode(c.Request.Context(), text, s.Custom)
	if err != nil {
		h.log.Warn("qr generation failed",
			zap.String("type", string(s.Active)),
			zap.Int("payload_len", len(text)),
			zap.Error(err),
		)
		return render.Image{}, err
	}
	return img, nil
}

func downloadName(kind payload.Kind, img render.Image) string {
	return fmt.Sprintf("Qr Hub-%s.%s", kind, img.Ext)
}
