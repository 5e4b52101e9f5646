package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/gallery"
	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/web/components/ui/toast"
)

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// SaveToGallery renders the submitted state and saves it into the album.
// htmx callers get a toast, everyone else JSON.
func (h *Handler) SaveToGallery(c *gin.Context) {
	asset, err := h.save(c)
	if err != nil {
		status := errorStatus(err)
		if isHTMX(c) {
			h.renderFragment(c, status, toast.Toast(notice(saveFailureToast(err))))
			return
		}
		c.JSON(status, gin.H{"error": errorMessage(err)})
		return
	}

	if isHTMX(c) {
		h.renderFragment(c, http.StatusCreated, toast.Toast(notice(toastSaved)))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

func (h *Handler) save(c *gin.Context) (gallery.Asset, error) {
	if !h.library.Enabled() {
		return gallery.Asset{}, gallery.ErrPermissionDenied
	}
	s, err := bindState(c)
	if err != nil {
		return gallery.Asset{}, err
	}
	img, err := h.encodeState(c, s)
	if err != nil {
		return gallery.Asset{}, err
	}
	asset, err := h.library.Save(c.Request.Context(), h.album, img)
	if err != nil {
		h.log.Error("save to gallery", zap.String("album", h.album), zap.Error(err))
		return gallery.Asset{}, err
	}
	return asset, nil
}

func saveFailureToast(err error) toast.Props {
	switch {
	case errors.Is(err, gallery.ErrPermissionDenied):
		return toastPermission
	case errors.Is(err, payload.ErrIncomplete):
		return toastIncomplete
	}
	return toastSaveFailed
}

// ListGallery returns the saved images of the album, newest first.
func (h *Handler) ListGallery(c *gin.Context) {
	if !h.library.Enabled() {
		c.JSON(http.StatusForbidden, gin.H{"error": gallery.ErrPermissionDenied.Error()})
		return
	}
	assets, err := h.library.List(h.album)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": h.album, "assets": assets})
}
