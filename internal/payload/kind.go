// Package payload holds the generator form state and turns it into the
// string that ends up encoded in a QR code.
package payload

import (
	"errors"
	"strings"
)

// Kind identifies one of the generator tabs.
type Kind string

const (
	KindURL     Kind = "url"
	KindText    Kind = "text"
	KindWiFi    Kind = "wifi"
	KindPayment Kind = "payment"
	KindContact Kind = "contact"
)

// ErrUnknownKind is returned when a form is asked about a kind it has no record for.
var ErrUnknownKind = errors.New("unknown qr type")

// Kinds returns every kind in tab order.
func Kinds() []Kind {
	return []Kind{KindURL, KindText, KindWiFi, KindPayment, KindContact}
}

// ParseKind maps a request value to a Kind. Anything unrecognised falls back to the URL tab.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k
		}
	}
	return KindURL
}

// Tab describes how a kind is presented in the tab strip.
type Tab struct {
	Kind  Kind
	Icon  string
	Name  string
	Color string
}

// Tabs returns the tab strip in display order.
func Tabs() []Tab {
	return []Tab{
		{Kind: KindURL, Icon: "link", Name: "URL", Color: "#6366F1"},
		{Kind: KindText, Icon: "document-text", Name: "Text", Color: "#10B981"},
		{Kind: KindWiFi, Icon: "wifi", Name: "WiFi", Color: "#F59E0B"},
		{Kind: KindPayment, Icon: "card", Name: "Payment", Color: "#EF4444"},
		{Kind: KindContact, Icon: "person-circle", Name: "Contact", Color: "#8B5CF6"},
	}
}
