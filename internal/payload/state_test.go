package payload

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrhub/internal/render"
)

func TestNewState(t *testing.T) {
	s := NewState()
	require.Equal(t, KindURL, s.Active)
	require.Equal(t, EncryptionWPA, s.Form.WiFi.Encryption)
	require.Equal(t, render.DefaultCustomization(), s.Custom)
	require.False(t, s.Valid())
}

func TestState_SetActive(t *testing.T) {
	s := NewState()
	s.SetActive(KindWiFi)
	require.Equal(t, KindWiFi, s.Active)
	s.SetActive(Kind("nope"))
	require.Equal(t, KindURL, s.Active)
}

func TestState_Normalize(t *testing.T) {
	s := State{
		Active: "WIFI",
		Form:   Form{WiFi: WiFiForm{SSID: "Cafe", Password: "left over", Encryption: EncryptionNoPass}},
		Custom: render.Customization{Format: "jpeg"},
	}
	s.Normalize()

	require.Equal(t, KindWiFi, s.Active)
	require.Empty(t, s.Form.WiFi.Password)
	require.Equal(t, render.FormatJPG, s.Custom.Format)

	payload, err := s.Payload()
	require.NoError(t, err)
	require.Equal(t, "WIFI:S:Cafe;T:nopass;;", payload)
}

func TestState_Values(t *testing.T) {
	s := NewState()
	s.SetActive(KindContact)
	s.Form.Contact = ContactForm{Name: "Ana", Email: "ana@example.com"}
	s.Custom.Color = "#4F46E5"

	v := s.Values()
	require.Equal(t, "contact", v.Get("type"))
	require.Equal(t, "Ana", v.Get("name"))
	require.Equal(t, "ana@example.com", v.Get("email"))
	require.Equal(t, "WPA", v.Get("encryption"))
	require.Equal(t, "#4F46E5", v.Get("color"))
	require.Equal(t, "200", v.Get("size"))
	require.False(t, v.Has("phone"))
	require.False(t, v.Has("logo"))
	require.Contains(t, v.Encode(), "color=%234F46E5")
}

func TestState_With(t *testing.T) {
	s := NewState()
	changed := s.With(func(st *State) { st.Custom.Size = 300 })
	require.Equal(t, 200, s.Custom.Size)
	require.Equal(t, 300, changed.Custom.Size)
}
