package pages

type termsSection struct {
	title string
	body  []string
}

var termsSections = []termsSection{
	{
		title: "What we process",
		body: []string{
			"The text you enter is turned into a QR code on our server and is not stored. Codes are rendered on request and discarded once the response is sent.",
			"WiFi passwords and contact details are part of the generator links, so keep those links private if they hold sensitive data.",
		},
	},
	{
		title: "Gallery",
		body: []string{
			"Save to Gallery writes the rendered image into the album configured for this installation. Nothing else is kept about you or the code.",
		},
	},
	{
		title: "Payments",
		body: []string{
			"Payment codes link to PayPal.Me. QR Hub never handles money and is not a party to any payment made through a generated code.",
		},
	},
	{
		title: "Acceptable use",
		body: []string{
			"Do not generate codes that point to malware, phishing or content you have no right to share. Codes are provided as is, without warranty.",
		},
	},
}
