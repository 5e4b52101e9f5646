// Package assets embeds the static files served under /web/assets.
package assets

import "embed"

//go:embed logo.svg
var FS embed.FS

// Logo returns the brand mark used on the pages and as the optional QR centre logo.
func Logo() []byte {
	b, err := FS.ReadFile("logo.svg")
	if err != nil {
		return nil
	}
	return b
}
