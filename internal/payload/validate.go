package payload

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is wrapped by every validation failure.
var ErrIncomplete = errors.New("please fill in all required fields")

// ValidationError reports one field that blocks generation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the set of problems found on one tab.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() error { return ErrIncomplete }

// Fields returns the names of the offending fields in report order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Field
	}
	return out
}

type checker struct {
	errs ValidationErrors
}

func (c *checker) require(field, value string) *checker {
	return c.check(strings.TrimSpace(value) != "", field, "is required")
}

func (c *checker) check(ok bool, field, message string) *checker {
	if !ok {
		c.errs = append(c.errs, ValidationError{Field: field, Message: message})
	}
	return c
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

// Validate checks the required fields of kind.
func (f Form) Validate(kind Kind) error {
	c := &checker{}
	switch kind {
	case KindURL:
		c.check(f.URL.URL != "", "url", "is required").
			check(f.URL.URL == "" || strings.Contains(f.URL.URL, "."), "url", "must contain a domain")
	case KindText:
		c.require("text", f.Text.Text)
	case KindWiFi:
		c.require("ssid", f.WiFi.SSID)
		if f.WiFi.Encryption != EncryptionNoPass {
			c.require("password", f.WiFi.Password)
		}
	case KindPayment:
		c.check(strings.Contains(f.Payment.Account, "@"), "account", "must be a PayPal email address")
	case KindContact:
		c.require("name", f.Contact.Name).
			check(f.Contact.Phone != "" || f.Contact.Email != "", "phone", "or email is required")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c.err()
}

// Valid reports whether kind can be generated as filled in.
func (f Form) Valid(kind Kind) bool {
	return f.Validate(kind) == nil
}
