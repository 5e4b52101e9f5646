package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/gallery"
	"github.com/cristianadrielbraun/qrhub/internal/links"
	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/internal/render"
	"github.com/cristianadrielbraun/qrhub/web/assets"
	"github.com/cristianadrielbraun/qrhub/web/pages"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	encoder *render.Encoder
	library *gallery.Library
	links   *links.Registry
	album   string
	log     *zap.Logger
}

// New returns a Handler. A nil library disables saving to the gallery.
func New(encoder *render.Encoder, library *gallery.Library, reg *links.Registry, album string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = links.Default()
	}
	return &Handler{
		encoder: encoder,
		library: library,
		links:   reg,
		album:   album,
		log:     log,
	}
}

// Routes registers every page and API route on r.
func (h *Handler) Routes(r gin.IRouter) {
	r.StaticFS("/web/assets", http.FS(assets.FS))

	api := r.Group("/api")
	{
		api.GET("/qr", h.QRCodeHandler)
		api.POST("/gallery", h.SaveToGallery)
		api.GET("/gallery", h.ListGallery)
		api.POST("/htmx/toast", h.GenericToast)
	}

	r.GET("/", h.HomePage)
	r.GET("/generate", h.GeneratorPage)
	r.POST("/generate", h.Generate)
	r.POST("/generate/check", h.CheckForm)
	r.GET("/terms", h.TermsPage)
	r.GET("/go/:name", h.OpenLink)
	r.GET("/sitemap.xml", h.SitemapXML)
}

func (h *Handler) HomePage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, pages.HomePage(pages.NewHomeData(h.links)))
}

func (h *Handler) TermsPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, pages.TermsPage())
}

// OpenLink redirects to a registered outbound link.
func (h *Handler) OpenLink(c *gin.Context) {
	l, ok := h.links.Resolve(c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "unknown link")
		return
	}
	h.log.Debug("opening outbound link", zap.String("name", l.Name))
	c.Redirect(http.StatusFound, l.Href)
}

// SitemapXML serves a minimal sitemap for the site.
func (h *Handler) SitemapXML(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	scheme := "https"
	host := c.Request.Host
	if xf := c.Request.Header.Get("X-Forwarded-Proto"); xf != "" {
		scheme = xf
	} else if c.Request.TLS == nil && isLocalHost(host) {
		scheme = "http"
	}
	base := scheme + "://" + host

	pagesList := []struct {
		path, freq, priority string
	}{
		{"/", "weekly", "1.0"},
		{"/generate", "weekly", "0.9"},
		{"/terms", "yearly", "0.3"},
	}

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, p := range pagesList {
		fmt.Fprintf(&b, "  <url>\n    <loc>%s%s</loc>\n    <changefreq>%s</changefreq>\n    <priority>%s</priority>\n  </url>\n",
			base, p.path, p.freq, p.priority)
	}
	b.WriteString("</urlset>\n")
	c.String(http.StatusOK, b.String())
}

func isLocalHost(host string) bool {
	name := host
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		name = host[:i]
	}
	return name == "localhost" || name == "127.0.0.1"
}

func (h *Handler) renderPage(c *gin.Context, status int, page templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
		h.log.Error("render page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
}

// bindState reads the generator state from the query string or form body.
// bindState reads a generator state from the query, a form or a JSON body.
// JSON bodies skip the form defaults, so binding starts from the initial state.
func bindState(c *gin.Context) (payload.State, error) {
	s := payload.NewState()
	if err := c.ShouldBind(&s); err != nil {
		return payload.NewState(), err
	}
	s.Normalize()
	return s, nil
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, gallery.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, payload.ErrIncomplete),
		errors.Is(err, payload.ErrUnknownKind),
		errors.Is(err, render.ErrInvalidCustomization),
		errors.Is(err, render.ErrInvalidColor),
		errors.Is(err, render.ErrEmptyPayload),
		errors.As(err, &verrs):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorMessage turns binding and validation errors into a message fit for a client.
func errorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", name)
}
