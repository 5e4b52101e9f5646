package payload

import (
	"fmt"
	"net/url"
	"strings"
)

// WiFi encryption values understood by scanners.
const (
	EncryptionWPA    = "WPA"
	EncryptionWEP    = "WEP"
	EncryptionNoPass = "nopass"
)

// Encryptions lists the selectable WiFi encryption values in display order.
func Encryptions() []string {
	return []string{EncryptionWPA, EncryptionWEP, EncryptionNoPass}
}

type URLForm struct {
	URL string `form:"url" json:"url"`
}

type TextForm struct {
	Text string `form:"text" json:"text"`
}

type WiFiForm struct {
	SSID       string `form:"ssid" json:"ssid"`
	Password   string `form:"password" json:"password"`
	Encryption string `form:"encryption,default=WPA" json:"encryption"`
}

// SetEncryption switches the encryption mode. Open networks carry no password.
func (w *WiFiForm) SetEncryption(enc string) {
	w.Encryption = enc
	if enc == EncryptionNoPass {
		w.Password = ""
	}
}

// PaymentForm builds a PayPal.Me link. Account is the PayPal email or handle.
type PaymentForm struct {
	Account string `form:"account" json:"account"`
	Amount  string `form:"amount" json:"amount"`
	Note    string `form:"note" json:"note"`
}

type ContactForm struct {
	Name    string `form:"name" json:"name"`
	Phone   string `form:"phone" json:"phone"`
	Email   string `form:"email" json:"email"`
	Company string `form:"company" json:"company"`
}

// Form keeps one record per kind so switching tabs does not lose input.
type Form struct {
	URL     URLForm     `json:"url"`
	Text    TextForm    `json:"text"`
	WiFi    WiFiForm    `json:"wifi"`
	Payment PaymentForm `json:"payment"`
	Contact ContactForm `json:"contact"`
}

// NewForm returns an empty form with the default WiFi encryption selected.
func NewForm() Form {
	return Form{WiFi: WiFiForm{Encryption: EncryptionWPA}}
}

// wifiEscaper drops the characters that would break the WIFI: field syntax.
var wifiEscaper = strings.NewReplacer(";", "", ":", "", `"`, "", `\`, "")

const paypalBase = "https://www.paypal.com/paypalme/"

// Payload returns the string to encode for kind.
func (f Form) Payload(kind Kind) (string, error) {
	switch kind {
	case KindURL:
		return f.URL.URL, nil
	case KindText:
		return f.Text.Text, nil
	case KindWiFi:
		return f.WiFi.payload(), nil
	case KindPayment:
		return f.Payment.payload(), nil
	case KindContact:
		return f.Contact.payload(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (w WiFiForm) payload() string {
	ssid := wifiEscaper.Replace(w.SSID)
	if w.Encryption == EncryptionNoPass {
		return "WIFI:S:" + ssid + ";T:nopass;;"
	}
	enc := EncryptionWPA
	if w.Encryption == EncryptionWEP {
		enc = EncryptionWEP
	}
	return "WIFI:S:" + ssid + ";T:" + enc + ";P:" + wifiEscaper.Replace(w.Password) + ";;"
}

func (p PaymentForm) payload() string {
	return paypalBase + p.Account + "?amount=" + p.Amount + "&note=" + encodeURIComponent(p.Note)
}

func (c ContactForm) payload() string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	b.WriteString("FN:" + c.Name + "\n")
	b.WriteString("TEL:" + c.Phone + "\n")
	b.WriteString("EMAIL:" + c.Email + "\n")
	b.WriteString("ORG:" + c.Company + "\n")
	b.WriteString("END:VCARD")
	return b.String()
}

// componentUnescaper reverts the bytes QueryEscape encodes but browsers'
// encodeURIComponent leaves alone, so links match what the web app produced.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
