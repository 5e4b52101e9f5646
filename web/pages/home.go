package pages

import (
	"github.com/cristianadrielbraun/qrhub/internal/links"
	"github.com/cristianadrielbraun/qrhub/web/components"
)

// HomeData carries the outbound links rendered on the landing page.
type HomeData struct {
	Social       []components.LinkData
	Consultation string
	Website      string
	About        string
	Contact      string
}

var socialIcons = []components.LinkData{
	{Name: "telegram", Icon: "paper-plane", Color: "#0088cc"},
	{Name: "linkedin", Icon: "logo-linkedin", Color: "#0088cc"},
	{Name: "github", Icon: "logo-github", Color: "#0f172a"},
	{Name: "whatsapp", Icon: "logo-whatsapp", Color: "#25D366"},
	{Name: "location", Icon: "location", Color: "#EF4444"},
	{Name: "phone", Icon: "call", Color: "#6366F1"},
}

// NewHomeData points every landing page link at its redirect in reg.
// Links reg does not know are left out.
func NewHomeData(reg *links.Registry) HomeData {
	var d HomeData
	for _, s := range socialIcons {
		if l, ok := reg.Resolve(s.Name); ok {
			s.Label = l.Label
			s.Href = links.Path(l.Name)
			d.Social = append(d.Social, s)
		}
	}
	href := func(name string) string {
		if _, ok := reg.Resolve(name); ok {
			return links.Path(name)
		}
		return ""
	}
	d.Consultation = href("consultation")
	d.Website = href("website")
	d.About = href("about")
	d.Contact = href("contact")
	return d
}

var features = []components.Feature{
	{Icon: "link-outline", Name: "URL & Links", Color: "#6366F1", Description: "Generate QR codes for websites and social media"},
	{Icon: "document-text-outline", Name: "Text & Notes", Color: "#10B981", Description: "Encode plain text or important information"},
	{Icon: "wifi-outline", Name: "WiFi Access", Color: "#F59E0B", Description: "Share WiFi credentials with a simple scan"},
	{Icon: "card-outline", Name: "Payments", Color: "#EF4444", Description: "Create QR codes for payments"},
	{Icon: "person-circle-outline", Name: "Contact Cards", Color: "#8B5CF6", Description: "Share contact information instantly"},
	{Icon: "color-palette-outline", Name: "Custom Designs", Color: "#EC4899", Description: "Brand your QR codes with colors"},
}

var stats = []components.Stat{
	{Number: "50K+", Label: "Users"},
	{Number: "2M+", Label: "Codes"},
	{Number: "99.8%", Label: "Success"},
	{Number: "4.9★", Label: "Rating"},
}

var testimonials = []components.Testimonial{
	{Name: "Zakayo Simon", Role: "Director At Arusha prime Design", Text: "QR Nexus revolutionized our event marketing!", Rating: 3},
	{Name: "Marcus Rodriguez", Role: "Cafe Owner", Text: "WiFi QR codes saved us so much time.", Rating: 4},
}

// featureTint gives the icon tile a faint wash of the feature's accent.
// 15 is the hex alpha suffix.
func featureTint(color string) string {
	return components.Class(
		"flex h-12 w-12 items-center justify-center rounded-xl",
		components.Arbitrary("bg", color+"15"),
		components.Arbitrary("text", color),
	)
}

func socialClass(color string) string {
	return components.Class(
		"flex h-9 w-9 items-center justify-center rounded-full bg-slate-100",
		components.Arbitrary("text", color),
	)
}
