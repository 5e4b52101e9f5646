package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrhub/internal/links"
	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/internal/render"
	"github.com/cristianadrielbraun/qrhub/web/components/ui/toast"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHomePage(t *testing.T) {
	html := renderString(t, HomePage(NewHomeData(links.Default())))

	for _, want := range []string{
		"QR Hub",
		"PRO",
		"Generate, scan, and track QR codes in seconds",
		"4.5 (12K reviews)",
		"50K+", "2M+", "99.8%", "4.9★",
		`href="/generate"`,
		"Create Qr Code Now !",
		"URL &amp; Links", "Text &amp; Notes", "WiFi Access", "Payments", "Contact Cards", "Custom Designs",
		"Zakayo Simon", "Marcus Rodriguez",
		`"QR Nexus revolutionized our event marketing!"`,
		"Enterprise Solutions?",
		`href="/go/consultation"`,
		`href="/go/telegram"`,
		`href="/go/whatsapp"`,
		`href="/go/about"`,
		`href="/terms"`,
		"© 2025 QR Hub. All rights reserved.",
	} {
		require.Contains(t, html, want)
	}
}

func TestNewHomeData_SkipsUnknownLinks(t *testing.T) {
	d := NewHomeData(links.NewRegistry(links.Link{Name: "github", Label: "GitHub", Href: "https://github.com/x"}))
	require.Len(t, d.Social, 1)
	require.Equal(t, "/go/github", d.Social[0].Href)
	require.Empty(t, d.Consultation)

	html := renderString(t, HomePage(d))
	require.NotContains(t, html, "Booking")
}

func TestGeneratorPage_Tabs(t *testing.T) {
	s := payload.NewState()
	s.Form.URL.URL = "example.com"
	html := renderString(t, GeneratorPage(GeneratorData{State: s}))

	require.Contains(t, html, "QR Code Generator")
	require.Contains(t, html, "Create custom QR codes for any purpose")
	for _, tab := range payload.Tabs() {
		require.Contains(t, html, ">"+tab.Name+"</a>")
	}
	require.Contains(t, html, `aria-current="page"`)
	require.Contains(t, html, `name="url" type="text" value="example.com"`)
	// Switching tab keeps what was typed.
	require.Contains(t, html, `href="/generate?`)
	require.Contains(t, html, "type=wifi&amp;url=example.com")
	require.NotContains(t, html, `panel-title`)
}

func TestGeneratorPage_GenerateButtonTracksValidity(t *testing.T) {
	html := renderString(t, GeneratorPage(GeneratorData{State: payload.NewState()}))
	require.Regexp(t, `<button id="generate-button"[^>]* disabled>`, html)

	s := payload.NewState()
	s.Form.URL.URL = "example.com"
	html = renderString(t, GenerateButton(s.Valid()))
	require.NotContains(t, html, "disabled")
	require.Contains(t, html, `hx-post="/generate/check"`)
}

func TestGeneratorPage_WiFi(t *testing.T) {
	s := payload.NewState()
	s.SetActive(payload.KindWiFi)
	html := renderString(t, GeneratorPage(GeneratorData{State: s}))
	require.Contains(t, html, "Network Name (SSID) *")
	require.Contains(t, html, `name="password" type="password"`)
	require.Contains(t, html, `<input type="hidden" name="encryption" value="WPA">`)
	require.Equal(t, 1, strings.Count(html, `aria-checked="true"`))

	s.Form.WiFi.SetEncryption(payload.EncryptionNoPass)
	html = renderString(t, GeneratorPage(GeneratorData{State: s}))
	require.NotContains(t, html, `name="password"`)
}

func TestGeneratorPage_CarriesOtherTabs(t *testing.T) {
	s := payload.NewState()
	s.Form.Text.Text = "kept"
	s.SetActive(payload.KindContact)
	html := renderString(t, GeneratorPage(GeneratorData{State: s}))

	require.Contains(t, html, `<input type="hidden" name="text" value="kept">`)
	require.Contains(t, html, `<input type="hidden" name="type" value="contact">`)
	require.Contains(t, html, `<input type="hidden" name="size" value="200">`)
	require.NotContains(t, html, `<input type="hidden" name="name"`)
	require.Contains(t, html, "Full Name *")
}

func TestGeneratorPage_Errors(t *testing.T) {
	s := payload.NewState()
	err := s.Validate()
	verrs, ok := err.(payload.ValidationErrors)
	require.True(t, ok)

	html := renderString(t, GeneratorPage(GeneratorData{
		State:  s,
		Errors: verrs,
		Toasts: []toast.Props{{Title: "Incomplete Data", Description: "Please fill in all required fields.", Variant: toast.VariantError}},
	}))
	require.Contains(t, html, "Website URL is required")
	require.Contains(t, html, "border-red-400")
	require.Contains(t, html, "Incomplete Data")
	require.Contains(t, html, "Please fill in all required fields.")
}

func TestGeneratorPage_Panel(t *testing.T) {
	s := payload.NewState()
	s.Form.URL.URL = "example.com"
	html := renderString(t, GeneratorPage(GeneratorData{
		State:          s,
		Preview:        "data:image/png;base64,AAAA",
		GalleryEnabled: true,
	}))

	require.Contains(t, html, `panel-title`)
	require.Contains(t, html, "Preview and customize before downloading")
	require.Contains(t, html, `src="data:image/png;base64,AAAA"`)
	require.Contains(t, html, "QR Code Color")
	require.Contains(t, html, "Background Color")
	require.Contains(t, html, ">350px</a>")
	require.Contains(t, html, "color=%23EC4899")
	require.Contains(t, html, "show=1")
	require.Contains(t, html, `href="/api/qr?`)
	require.Contains(t, html, "download=1")
	require.Contains(t, html, "Download QR Code")
	require.Contains(t, html, `hx-post="/api/gallery"`)
	require.Contains(t, html, "Save to Gallery")

	html = renderString(t, GeneratorPage(GeneratorData{State: s, Preview: "data:image/png;base64,AAAA"}))
	require.NotContains(t, html, "Save to Gallery")
}

func TestGeneratorPage_EscapesState(t *testing.T) {
	s := payload.NewState()
	s.Form.URL.URL = `"><script>alert(1)</script>`
	s.Form.Text.Text = `</textarea><script>alert(2)</script>`
	s.Custom.Shape = render.Shape(`"><script>alert(3)</script>`)
	html := renderString(t, GeneratorPage(GeneratorData{State: s, Preview: "data:image/png;base64,AAAA"}))

	require.NotContains(t, html, "<script>alert")
	require.NotContains(t, html, "</textarea><script>")
	require.Contains(t, html, `value="&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;"`)

	s.SetActive(payload.KindText)
	html = renderString(t, GeneratorPage(GeneratorData{State: s}))
	require.Contains(t, html, "&lt;/textarea&gt;&lt;script&gt;alert(2)&lt;/script&gt;</textarea>")
}

func TestPanelOptions(t *testing.T) {
	s := payload.NewState()
	s.Custom.Logo = true
	groups := panelOptions(s)
	require.Len(t, groups, 5)

	logo := groups[4]
	require.Equal(t, "Logo", logo.title)
	require.Equal(t, "Plain", logo.choices[0].label)
	require.False(t, logo.choices[0].active)
	require.True(t, logo.choices[1].active)
	require.NotContains(t, logo.choices[0].href, "logo=")
	require.Contains(t, logo.choices[1].href, "logo=true")
}

func TestURLs(t *testing.T) {
	s := payload.NewState()
	s.Form.URL.URL = "example.com"
	require.Equal(t, "/generate?bg=%23FFFFFF&color=%23000000&encryption=WPA&format=png&margin=5&shape=square&show=1&size=200&type=url&url=example.com", GeneratorURL(s, true))
	require.True(t, strings.HasPrefix(ImageURL(s, true), "/api/qr?"))
	require.Contains(t, ImageURL(s, true), "download=1")
	require.NotContains(t, ImageURL(s, false), "download")
}

func TestTermsPage(t *testing.T) {
	html := renderString(t, TermsPage())
	require.Contains(t, html, "Privacy &amp; Terms &amp; Conditions")
	require.Contains(t, html, "PayPal.Me")
}
