package export

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup drops tags and decodes entities, keeping only literal
// characters. The PDF path is style-blind: it renders the HTML projection,
// then strips it down to text.
func StripMarkup(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
