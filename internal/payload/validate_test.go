package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		form       Form
		wantFields []string
	}{
		{name: "url empty", kind: KindURL, wantFields: []string{"url"}},
		{name: "url without dot", kind: KindURL, form: Form{URL: URLForm{URL: "localhost"}}, wantFields: []string{"url"}},
		{name: "url with dot", kind: KindURL, form: Form{URL: URLForm{URL: "example.com"}}},
		{name: "text blank", kind: KindText, form: Form{Text: TextForm{Text: "   \n"}}, wantFields: []string{"text"}},
		{name: "text", kind: KindText, form: Form{Text: TextForm{Text: "hi"}}},
		{
			name:       "wifi missing ssid and password",
			kind:       KindWiFi,
			form:       Form{WiFi: WiFiForm{Encryption: EncryptionWPA}},
			wantFields: []string{"ssid", "password"},
		},
		{
			name:       "wifi blank password",
			kind:       KindWiFi,
			form:       Form{WiFi: WiFiForm{SSID: "Home", Password: "  ", Encryption: EncryptionWEP}},
			wantFields: []string{"password"},
		},
		{
			name: "wifi open network needs no password",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Cafe", Encryption: EncryptionNoPass}},
		},
		{
			name: "wifi wpa",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Home", Password: "secret", Encryption: EncryptionWPA}},
		},
		{
			name:       "payment without at sign",
			kind:       KindPayment,
			form:       Form{Payment: PaymentForm{Account: "shop", Amount: "10"}},
			wantFields: []string{"account"},
		},
		{
			name: "payment amount is optional",
			kind: KindPayment,
			form: Form{Payment: PaymentForm{Account: "shop@example.com"}},
		},
		{
			name:       "contact without name or reach",
			kind:       KindContact,
			form:       Form{Contact: ContactForm{Company: "Acme"}},
			wantFields: []string{"name", "phone"},
		},
		{
			name:       "contact without phone or email",
			kind:       KindContact,
			form:       Form{Contact: ContactForm{Name: "Ana"}},
			wantFields: []string{"phone"},
		},
		{name: "contact with phone", kind: KindContact, form: Form{Contact: ContactForm{Name: "Ana", Phone: "123"}}},
		{name: "contact with email", kind: KindContact, form: Form{Contact: ContactForm{Name: "Ana", Email: "a@b.c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate(tt.kind)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				require.True(t, tt.form.Valid(tt.kind))
				return
			}
			require.ErrorIs(t, err, ErrIncomplete)
			require.False(t, tt.form.Valid(tt.kind))
			verrs, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Equal(t, tt.wantFields, verrs.Fields())
		})
	}
}

func TestForm_ValidateOnlyChecksActiveKind(t *testing.T) {
	f := Form{Text: TextForm{Text: "hello"}}
	require.NoError(t, f.Validate(KindText))
	require.Error(t, f.Validate(KindURL))
}

func TestForm_ValidateUnknownKind(t *testing.T) {
	err := NewForm().Validate(Kind("sms"))
	require.ErrorIs(t, err, ErrUnknownKind)
	require.NotErrorIs(t, err, ErrIncomplete)
}
