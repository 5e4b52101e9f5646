// Package links holds the outbound destinations the landing page launches.
package links

import (
	"net/url"
	"sort"
	"strings"
)

// Link is a named outbound destination: a web page, a mail or phone handler, or a chat app.
type Link struct {
	Name  string
	Label string
	Href  string
}

// Registry resolves links by name.
type Registry struct {
	byName map[string]Link
	order  []string
}

// NewRegistry builds a registry from ls. Later entries replace earlier ones with the same name.
func NewRegistry(ls ...Link) *Registry {
	r := &Registry{byName: make(map[string]Link, len(ls))}
	for _, l := range ls {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" || l.Href == "" {
			continue
		}
		l.Name = name
		if _, ok := r.byName[name]; !ok {
			r.order = append(r.order, name)
		}
		r.byName[name] = l
	}
	return r
}

// Default returns the registry used by the site.
func Default() *Registry {
	return NewRegistry(
		Link{Name: "website", Label: "Website", Href: "https://nkote.netlify.app"},
		Link{Name: "consultation", Label: "Booking & Feedback", Href: "mailto:nexa.theicon@gmail.com"},
		Link{Name: "phone", Label: "Call", Href: "tel:+255622255496"},
		Link{Name: "linkedin", Label: "LinkedIn", Href: "https://linkedin.com/in/paulpaul"},
		Link{Name: "github", Label: "GitHub", Href: "https://github.com/pau49"},
		Link{Name: "telegram", Label: "Telegram", Href: "https://t.me/makimonsa"},
		Link{Name: "whatsapp", Label: "WhatsApp", Href: "https://wa.me/qr/FANA6JCLXH3YL1"},
		Link{Name: "location", Label: "Location", Href: Directions("Arusha, Tanzania")},
		Link{Name: "contact", Label: "Contact", Href: "https://nkote.netlify.app/contactme"},
		Link{Name: "about", Label: "About", Href: "https://nkote.netlify.app/about"},
	)
}

// Directions returns a Google Maps directions URL ending at destination.
func Directions(destination string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", destination)
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

// Resolve looks a link up by name, ignoring case.
func (r *Registry) Resolve(name string) (Link, bool) {
	l, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// All returns the links in registration order.
func (r *Registry) All() []Link {
	out := make([]Link, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

// Path is the local redirect path for a link name.
func Path(name string) string {
	return "/go/" + url.PathEscape(name)
}
