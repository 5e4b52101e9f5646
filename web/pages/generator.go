package pages

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrhub/internal/payload"
	"github.com/cristianadrielbraun/qrhub/internal/render"
	"github.com/cristianadrielbraun/qrhub/web/components"
	"github.com/cristianadrielbraun/qrhub/web/components/ui/toast"
)

// GeneratorData is everything the generator screen shows for one request.
type GeneratorData struct {
	State  payload.State
	Errors payload.ValidationErrors
	// Preview is the data URL of the rendered code. When set the
	// customization panel is open.
	Preview string
	// GalleryEnabled shows the Save to Gallery action.
	GalleryEnabled bool
	Toasts         []toast.Props
}

func (d GeneratorData) fieldError(name string) string {
	for _, e := range d.Errors {
		if e.Field == name {
			return e.Message
		}
	}
	return ""
}

var (
	marginOptions = []int{0, 2, 5, 10}
	formatOptions = []render.Format{render.FormatPNG, render.FormatJPG, render.FormatSVG}
)

// GeneratorURL is the generator page for s. With show set the preview panel is opened.
func GeneratorURL(s payload.State, show bool) string {
	v := s.Values()
	if show {
		v.Set("show", "1")
	}
	return "/generate?" + v.Encode()
}

// ImageURL is the image endpoint for s.
func ImageURL(s payload.State, download bool) string {
	v := s.Values()
	if download {
		v.Set("download", "1")
	}
	return "/api/qr?" + v.Encode()
}

func toastComponents(props []toast.Props) []templ.Component {
	out := make([]templ.Component, 0, len(props))
	for _, p := range props {
		out = append(out, toast.Toast(p))
	}
	return out
}

func tabURL(s payload.State, k payload.Kind) string {
	return GeneratorURL(s.With(func(st *payload.State) { st.SetActive(k) }), false)
}

func tabClass(tab payload.Tab, active bool) string {
	base := "flex shrink-0 items-center gap-2 rounded-xl border-2 border-transparent bg-white px-4 py-2 text-sm font-medium text-slate-600 shadow-sm"
	if !active {
		return base
	}
	return components.Class(base, "bg-indigo-600 text-white", components.Arbitrary("border", tab.Color))
}

func tabIconClass(tab payload.Tab, active bool) string {
	if active {
		return ""
	}
	return components.Arbitrary("text", tab.Color)
}

func generateClass(valid bool) string {
	return components.Class(
		"mt-6 flex w-full items-center justify-center gap-2 rounded-xl bg-indigo-600 px-4 py-3 font-semibold text-white",
		components.When(!valid, "cursor-not-allowed bg-slate-300"),
	)
}

type field struct {
	name        string
	label       string
	value       string
	placeholder string
	inputType   string
	inputMode   string
	multiline   bool
}

func (f field) id() string { return "f-" + f.name }

func (f field) typ() string {
	if f.inputType == "" {
		return "text"
	}
	return f.inputType
}

func (f field) mode() string {
	if f.inputMode == "" {
		return "text"
	}
	return f.inputMode
}

func fieldClass(msg string) string {
	return components.Class(
		"mt-1 w-full rounded-xl border border-slate-200 bg-slate-50 px-4 py-3 text-slate-900 placeholder:text-slate-400 focus:border-indigo-500 focus:outline-none",
		components.When(msg != "", "border-red-400"),
	)
}

// fieldLabel drops the required marker and parenthesised hints from a label.
func fieldLabel(label string) string {
	label = strings.TrimSuffix(label, " *")
	if i := strings.Index(label, " ("); i > 0 {
		label = label[:i]
	}
	return label
}

// encryptionURL reloads the form with enc selected, since encryption decides
// whether the password field exists.
func encryptionURL(s payload.State, enc string) string {
	return GeneratorURL(s.With(func(st *payload.State) { st.Form.WiFi.SetEncryption(enc) }), false)
}

func radioClass(checked bool) string {
	return components.Class(
		"flex h-5 w-5 items-center justify-center rounded-full border-2 border-slate-300",
		components.When(checked, "border-indigo-500"),
	)
}

var visibleFields = map[payload.Kind][]string{
	payload.KindURL:     {"url"},
	payload.KindText:    {"text"},
	payload.KindWiFi:    {"ssid", "password", "encryption"},
	payload.KindPayment: {"account", "amount", "note"},
	payload.KindContact: {"name", "phone", "email", "company"},
}

// carriedValues is the part of s the visible inputs do not submit themselves:
// the active type, the other tabs and the customization.
func carriedValues(s payload.State) url.Values {
	v := s.Values()
	for _, key := range visibleFields[s.Active] {
		v.Del(key)
	}
	return v
}

type hiddenField struct {
	name  string
	value string
}

func hiddenFields(v url.Values) []hiddenField {
	var out []hiddenField
	for _, key := range slices.Sorted(maps.Keys(v)) {
		for _, value := range v[key] {
			out = append(out, hiddenField{name: key, value: value})
		}
	}
	return out
}

// choice is one selectable value of the customization panel. href reopens
// the panel with the value applied.
type choice struct {
	label  string
	value  string
	href   string
	active bool
}

type optionGroup struct {
	title   string
	choices []choice
}

func choicesOf[T comparable](s payload.State, values []T, selected T, label func(T) string, set func(*payload.State, T)) []choice {
	out := make([]choice, 0, len(values))
	for _, v := range values {
		next := s.With(func(st *payload.State) { set(st, v) })
		out = append(out, choice{label: label(v), href: GeneratorURL(next, true), active: v == selected})
	}
	return out
}

func colorChoices(s payload.State, colors []string, selected string, set func(*payload.State, string)) []choice {
	out := make([]choice, 0, len(colors))
	for _, col := range colors {
		next := s.With(func(st *payload.State) { set(st, col) })
		out = append(out, choice{label: col, value: col, href: GeneratorURL(next, true), active: strings.EqualFold(col, selected)})
	}
	return out
}

func panelOptions(s payload.State) []optionGroup {
	c := s.Custom
	return []optionGroup{
		{"QR Code Size", choicesOf(s, render.SizeOptions, c.Size,
			func(n int) string { return strconv.Itoa(n) + "px" },
			func(st *payload.State, n int) { st.Custom.Size = n })},
		{"Margin", choicesOf(s, marginOptions, c.Margin, strconv.Itoa,
			func(st *payload.State, n int) { st.Custom.Margin = n })},
		{"Shape", choicesOf(s, render.Shapes(), c.Shape,
			func(sh render.Shape) string { return string(sh) },
			func(st *payload.State, sh render.Shape) { st.Custom.Shape = sh })},
		{"Format", choicesOf(s, formatOptions, c.Format,
			func(f render.Format) string { return strings.ToUpper(string(f)) },
			func(st *payload.State, f render.Format) { st.Custom.Format = f })},
		{"Logo", choicesOf(s, []bool{false, true}, c.Logo,
			func(on bool) string {
				if on {
					return "With logo"
				}
				return "Plain"
			},
			func(st *payload.State, on bool) { st.Custom.Logo = on })},
	}
}

func swatchClass(c choice) string {
	return components.Class(
		"flex h-9 w-9 items-center justify-center rounded-full border-2 border-slate-200",
		components.Arbitrary("bg", c.value),
		components.When(c.active, "border-indigo-600 ring-2 ring-indigo-200"),
	)
}

func optionClass(c choice) string {
	return components.Class(
		"rounded-lg border border-slate-200 bg-slate-50 px-3 py-1.5 text-sm text-slate-600",
		components.When(c.active, "border-indigo-600 bg-indigo-600 text-white"),
	)
}

func previewFrameClass(bg string) string {
	return components.Class("rounded-2xl p-3", components.Arbitrary("bg", bg))
}
