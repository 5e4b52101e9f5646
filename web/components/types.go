package components

// LinkData is an outbound link shown on the landing page. Href points at the
// local redirect so launches are logged and can be retargeted server side.
type LinkData struct {
	Name  string
	Label string
	Icon  string
	Color string
	Href  string
}

// Feature is one card of the landing page feature grid.
type Feature struct {
	Icon        string
	Name        string
	Color       string
	Description string
}

type Stat struct {
	Number string
	Label  string
}

type Testimonial struct {
	Name   string
	Role   string
	Text   string
	Rating int
}
