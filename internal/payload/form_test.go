package payload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForm_Payload(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		form Form
		want string
	}{
		{
			name: "url is passed through",
			kind: KindURL,
			form: Form{URL: URLForm{URL: "https://example.com/a?b=c"}},
			want: "https://example.com/a?b=c",
		},
		{
			name: "text is passed through",
			kind: KindText,
			form: Form{Text: TextForm{Text: "  hello\nworld "}},
			want: "  hello\nworld ",
		},
		{
			name: "wifi open network",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Cafe", Encryption: EncryptionNoPass}},
			want: "WIFI:S:Cafe;T:nopass;;",
		},
		{
			name: "wifi open network ignores a stale password",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Cafe", Password: "secret", Encryption: EncryptionNoPass}},
			want: "WIFI:S:Cafe;T:nopass;;",
		},
		{
			name: "wifi wpa",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Home", Password: "pa55", Encryption: EncryptionWPA}},
			want: "WIFI:S:Home;T:WPA;P:pa55;;",
		},
		{
			name: "wifi wep",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Old", Password: "abc", Encryption: EncryptionWEP}},
			want: "WIFI:S:Old;T:WEP;P:abc;;",
		},
		{
			name: "wifi unknown encryption falls back to wpa",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: "Net", Password: "x", Encryption: "SAE"}},
			want: "WIFI:S:Net;T:WPA;P:x;;",
		},
		{
			name: "wifi strips reserved characters",
			kind: KindWiFi,
			form: Form{WiFi: WiFiForm{SSID: `My;Net:"1"\`, Password: `p;a:s"s\`, Encryption: EncryptionWPA}},
			want: "WIFI:S:MyNet1;T:WPA;P:pass;;",
		},
		{
			name: "payment with amount and note",
			kind: KindPayment,
			form: Form{Payment: PaymentForm{Account: "shop@example.com", Amount: "12.50", Note: "Coffee & cake (2)!"}},
			want: "https://www.paypal.com/paypalme/shop@example.com?amount=12.50&note=Coffee%20%26%20cake%20(2)!",
		},
		{
			name: "payment with empty amount and note",
			kind: KindPayment,
			form: Form{Payment: PaymentForm{Account: "a@b"}},
			want: "https://www.paypal.com/paypalme/a@b?amount=&note=",
		},
		{
			name: "contact card",
			kind: KindContact,
			form: Form{Contact: ContactForm{Name: "Ana Lima", Phone: "+255 123", Email: "ana@example.com", Company: "Acme"}},
			want: "BEGIN:VCARD\nVERSION:3.0\nFN:Ana Lima\nTEL:+255 123\nEMAIL:ana@example.com\nORG:Acme\nEND:VCARD",
		},
		{
			name: "contact card with empty fields",
			kind: KindContact,
			form: Form{Contact: ContactForm{Name: "Ana", Email: "ana@example.com"}},
			want: "BEGIN:VCARD\nVERSION:3.0\nFN:Ana\nTEL:\nEMAIL:ana@example.com\nORG:\nEND:VCARD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.Payload(tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestForm_PayloadUnknownKind(t *testing.T) {
	_, err := NewForm().Payload(Kind("sms"))
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestWiFiForm_SetEncryption(t *testing.T) {
	w := WiFiForm{SSID: "Home", Password: "secret", Encryption: EncryptionWPA}

	w.SetEncryption(EncryptionWEP)
	require.Equal(t, "secret", w.Password)

	w.SetEncryption(EncryptionNoPass)
	require.Equal(t, EncryptionNoPass, w.Encryption)
	require.Empty(t, w.Password)
}

func TestEncodeURIComponent(t *testing.T) {
	require.Equal(t, "a%20b", encodeURIComponent("a b"))
	require.Equal(t, "!'()*~-_.", encodeURIComponent("!'()*~-_."))
	require.Equal(t, "%2F%3F%3D%26%2B%40", encodeURIComponent("/?=&+@"))
	require.Equal(t, "%C3%A9", encodeURIComponent("é"))
}

func TestParseKind(t *testing.T) {
	require.Equal(t, KindWiFi, ParseKind("WiFi"))
	require.Equal(t, KindContact, ParseKind(" contact "))
	require.Equal(t, KindURL, ParseKind(""))
	require.Equal(t, KindURL, ParseKind("sms"))
	require.Len(t, Tabs(), len(Kinds()))
	for i, tab := range Tabs() {
		require.Equal(t, Kinds()[i], tab.Kind)
	}
}

func TestValidationErrors_Unwrap(t *testing.T) {
	err := Form{}.Validate(KindText)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Equal(t, []string{"text"}, verrs.Fields())
	require.ErrorIs(t, err, ErrIncomplete)
	require.Equal(t, "text: is required", err.Error())
}
