package handlers

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrhub/internal/gallery"
	"github.com/cristianadrielbraun/qrhub/internal/links"
	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/internal/render"
	"github.com/cristianadrielbraun/qrhub/web/assets"
)

func newTestRouter(t *testing.T, lib *gallery.Library) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := New(render.NewEncoder(assets.Logo(), zap.NewNop()), lib, links.Default(), "QR Codes", zap.NewNop())
	r := gin.New()
	h.Routes(r)
	return r
}

func do(r http.Handler, method, target string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQRCodeHandler(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/qr?type=url&url=example.com&size=250", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	require.Empty(t, w.Header().Get("Content-Disposition"))

	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 250, cfg.Width)
}

func TestQRCodeHandler_Download(t *testing.T) {
	r := newTestRouter(t, nil)

	q := url.Values{
		"type":       {"wifi"},
		"ssid":       {"Home"},
		"password":   {"secret"},
		"encryption": {"WPA"},
		"format":     {"svg"},
		"download":   {"1"},
	}
	w := do(r, http.MethodGet, "/api/qr?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="Qr Hub-wifi.svg"`, w.Header().Get("Content-Disposition"))
	require.True(t, strings.HasPrefix(w.Body.String(), "<svg"))
}

func TestQRCodeHandler_Errors(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{name: "incomplete url", query: "type=url&url=localhost", wantErr: "must contain a domain"},
		{name: "missing text", query: "type=text", wantErr: "text: is required"},
		{name: "size below range", query: "type=url&url=example.com&size=10", wantErr: "size must be at least 64"},
		{name: "unknown shape", query: "type=url&url=example.com&shape=star", wantErr: "shape must be one of"},
		{name: "bad color", query: "type=url&url=example.com&color=blue", wantErr: "invalid customization"},
		{name: "not a number", query: "type=url&url=example.com&size=big", wantErr: "big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/api/qr?"+tt.query, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestGeneratorPage(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "QR Code Generator")
	require.NotContains(t, w.Body.String(), "panel-title")

	w = do(r, http.MethodGet, "/generate?type=text&text=hello&show=1&color=%234F46E5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "panel-title")
	require.Contains(t, w.Body.String(), `src="data:image/png;base64,`)

	// An invalid tab never opens the panel.
	w = do(r, http.MethodGet, "/generate?type=text&show=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "panel-title")

	w = do(r, http.MethodGet, "/generate?size=big", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/generate", url.Values{"type": {"contact"}, "name": {"Ana"}})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "Incomplete Data")
	require.Contains(t, w.Body.String(), "Please fill in all required fields.")
	require.Contains(t, w.Body.String(), "Phone Number or email is required")

	w = do(r, http.MethodPost, "/generate", url.Values{"type": {"contact"}, "name": {"Ana"}, "email": {"ana@example.com"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "panel-title")
	require.Contains(t, w.Body.String(), "Download QR Code")

	w = do(r, http.MethodPost, "/generate", url.Values{"type": {"text"}, "text": {strings.Repeat("x", 8000)}})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to generate QR code. Please try again.")
}

func TestCheckForm(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/generate/check", url.Values{"type": {"payment"}, "account": {"shop"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), `<button id="generate-button"`))
	require.Contains(t, w.Body.String(), " disabled>")

	w = do(r, http.MethodPost, "/generate/check", url.Values{"type": {"payment"}, "account": {"shop@example.com"}})
	require.NotContains(t, w.Body.String(), "disabled")
}

func TestSaveToGallery(t *testing.T) {
	root := t.TempDir()
	r := newTestRouter(t, gallery.New(root, zap.NewNop()))
	form := url.Values{"type": {"url"}, "url": {"example.com"}, "format": {"jpg"}}

	w := do(r, http.MethodPost, "/api/gallery", form, "HX-Request", "true")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "QR code saved to your gallery!")

	w = do(r, http.MethodPost, "/api/gallery", form)
	require.Equal(t, http.StatusCreated, w.Code)
	var saved struct {
		Asset gallery.Asset `json:"asset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.Equal(t, "QR Codes", saved.Asset.Album)
	require.True(t, strings.HasSuffix(saved.Asset.Filename, ".jpg"))
	_, err := os.Stat(filepath.Join(root, "QR Codes", saved.Asset.Filename))
	require.NoError(t, err)

	w = do(r, http.MethodGet, "/api/gallery", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Album  string          `json:"album"`
		Assets []gallery.Asset `json:"assets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Equal(t, "QR Codes", listed.Album)
	require.Len(t, listed.Assets, 2)

	w = do(r, http.MethodPost, "/api/gallery", url.Values{"type": {"url"}}, "HX-Request", "true")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Incomplete Data")
}

func TestSaveToGallery_JSON(t *testing.T) {
	root := t.TempDir()
	r := newTestRouter(t, gallery.New(root, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", strings.NewReader(`{"type":"url","form":{"url":{"url":"example.com"}}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var saved struct {
		Asset gallery.Asset `json:"asset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.True(t, strings.HasSuffix(saved.Asset.Filename, ".png"))
	_, err := os.Stat(filepath.Join(root, "QR Codes", saved.Asset.Filename))
	require.NoError(t, err)
}

func TestSaveToGallery_PermissionDenied(t *testing.T) {
	form := url.Values{"type": {"url"}, "url": {"example.com"}}

	for _, lib := range []*gallery.Library{nil, gallery.New("", nil)} {
		r := newTestRouter(t, lib)

		w := do(r, http.MethodPost, "/api/gallery", form, "HX-Request", "true")
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), "Permission required")
		require.Contains(t, w.Body.String(), "Please grant permission to save images.")

		w = do(r, http.MethodPost, "/api/gallery", form)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), `"error"`)

		w = do(r, http.MethodGet, "/api/gallery", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	}
}

func TestSaveToGallery_WriteFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("not a dir"), 0o644))
	r := newTestRouter(t, gallery.New(root, nil))

	w := do(r, http.MethodPost, "/api/gallery", url.Values{"type": {"url"}, "url": {"example.com"}}, "HX-Request", "true")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to save QR code.")
}

func TestGeneratorPage_GalleryAction(t *testing.T) {
	target := "/generate?type=url&url=example.com&show=1"

	w := do(newTestRouter(t, gallery.New("", nil)), http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Download QR Code")
	require.NotContains(t, w.Body.String(), "Save to Gallery")

	w = do(newTestRouter(t, gallery.New(t.TempDir(), nil)), http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Save to Gallery")
}

func testContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestBindState_RoundTrip(t *testing.T) {
	custom := render.Customization{
		Color:   "#EC4899",
		BgColor: "#E0F2FE",
		Size:    300,
		Margin:  2,
		Shape:   render.ShapeCircle,
		Format:  render.FormatSVG,
		Logo:    true,
	}
	tests := []struct {
		kind payload.Kind
		fill func(f *payload.Form)
	}{
		{payload.KindURL, func(f *payload.Form) { f.URL.URL = "https://example.com/a?b=c&d=e" }},
		{payload.KindText, func(f *payload.Form) { f.Text.Text = "line one\nline & two" }},
		{payload.KindWiFi, func(f *payload.Form) {
			f.WiFi = payload.WiFiForm{SSID: "Home", Password: "p@ss word", Encryption: payload.EncryptionWEP}
		}},
		{payload.KindPayment, func(f *payload.Form) {
			f.Payment = payload.PaymentForm{Account: "shop@example.com", Amount: "12.50", Note: "Invoice #7"}
		}},
		{payload.KindContact, func(f *payload.Form) {
			f.Contact = payload.ContactForm{Name: "Zakayo Simon", Phone: "+255 123", Email: "z@example.com", Company: "Arusha prime"}
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := payload.NewState()
			s.SetActive(tt.kind)
			s.Custom = custom
			if tt.kind != payload.KindText {
				s.Form.Text.Text = "kept"
			}
			tt.fill(&s.Form)

			body, err := json.Marshal(s)
			require.NoError(t, err)

			query := httptest.NewRequest(http.MethodGet, "/generate?"+s.Values().Encode(), nil)
			form := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(s.Values().Encode()))
			form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			js := httptest.NewRequest(http.MethodPost, "/api/gallery", bytes.NewReader(body))
			js.Header.Set("Content-Type", "application/json")

			for _, req := range []*http.Request{query, form, js} {
				got, err := bindState(testContext(req))
				require.NoError(t, err)
				require.Equal(t, s, got)
			}
		})
	}
}

func TestBindState_JSONDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/gallery", strings.NewReader(`{"type":"text","form":{"text":{"text":"hi"}}}`))
	req.Header.Set("Content-Type", "application/json")

	s, err := bindState(testContext(req))
	require.NoError(t, err)
	require.Equal(t, payload.KindText, s.Active)
	require.Equal(t, "hi", s.Form.Text.Text)
	require.Equal(t, payload.EncryptionWPA, s.Form.WiFi.Encryption)
	require.Equal(t, render.DefaultCustomization(), s.Custom)
}

func TestGenericToast(t *testing.T) {
	r := newTestRouter(t, nil)
	w := do(r, http.MethodPost, "/api/htmx/toast", url.Values{
		"title":       {"Hi"},
		"description": {"There"},
		"variant":     {"destructive"},
		"dismissible": {"on"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `data-variant="error"`)
	require.Contains(t, w.Body.String(), `aria-label="Close"`)
}

func TestOpenLink(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/go/github", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "https://github.com/pau49", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/go/consultation", nil)
	require.Equal(t, "mailto:nexa.theicon@gmail.com", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/go/nowhere", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Create Qr Code Now !")

	w = do(r, http.MethodGet, "/terms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Privacy &amp; Terms")

	w = do(r, http.MethodGet, "/web/assets/logo.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "<svg")
}

func TestSitemapXML(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "localhost:8080"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Contains(t, body, "<loc>http://localhost:8080/</loc>")
	require.Contains(t, body, "<loc>http://localhost:8080/generate</loc>")
	require.Contains(t, body, "<loc>http://localhost:8080/terms</loc>")

	req = httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "qrhub.example"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Contains(t, w.Body.String(), "<loc>https://qrhub.example/</loc>")
}

func TestIsLocalHost(t *testing.T) {
	require.True(t, isLocalHost("localhost:3000"))
	require.True(t, isLocalHost("127.0.0.1"))
	require.False(t, isLocalHost("example.com:8080"))
}
