package payload

import (
	"net/url"

	"github.com/cristianadrielbraun/qrhub/internal/render"
)

// State is one generator session: the active tab, every tab's form and the
// customization applied to the preview. Only one tab is active at a time.
type State struct {
	Active Kind                 `form:"type,default=url" json:"type"`
	Form   Form                 `json:"form"`
	Custom render.Customization `json:"custom"`
}

// NewState returns the generator's initial state.
func NewState() State {
	return State{
		Active: KindURL,
		Form:   NewForm(),
		Custom: render.DefaultCustomization(),
	}
}

// SetActive switches tabs. Unknown kinds select the URL tab.
func (s *State) SetActive(k Kind) {
	s.Active = ParseKind(string(k))
}

// Normalize folds bound request values into their canonical form.
func (s *State) Normalize() {
	s.SetActive(s.Active)
	if s.Form.WiFi.Encryption == "" {
		s.Form.WiFi.Encryption = EncryptionWPA
	}
	s.Form.WiFi.SetEncryption(s.Form.WiFi.Encryption)
	s.Custom.Format = s.Custom.Format.Normalize()
}

// Payload formats the active tab.
func (s State) Payload() (string, error) {
	return s.Form.Payload(s.Active)
}

// Validate checks the active tab.
func (s State) Validate() error {
	return s.Form.Validate(s.Active)
}

// Valid reports whether the active tab can be generated.
func (s State) Valid() bool {
	return s.Form.Valid(s.Active)
}

// With returns a copy of s changed by fn, leaving s untouched.
func (s State) With(fn func(*State)) State {
	fn(&s)
	return s
}

// Values encodes the state with the keys the form binding reads back.
// Empty fields are omitted.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set("type", string(s.Active))
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	set("url", s.Form.URL.URL)
	set("text", s.Form.Text.Text)
	set("ssid", s.Form.WiFi.SSID)
	set("password", s.Form.WiFi.Password)
	set("encryption", s.Form.WiFi.Encryption)
	set("account", s.Form.Payment.Account)
	set("amount", s.Form.Payment.Amount)
	set("note", s.Form.Payment.Note)
	set("name", s.Form.Contact.Name)
	set("phone", s.Form.Contact.Phone)
	set("email", s.Form.Contact.Email)
	set("company", s.Form.Contact.Company)

	s.Custom.AddTo(v)
	return v
}
