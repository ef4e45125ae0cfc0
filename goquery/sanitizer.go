// Package goquery provides DOM-level pipeline stages built on
// github.com/PuerkitoBio/goquery: a sanitizer that strips active content
// and a text-density reducer that locates primary article content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tabread/tabread"
	"golang.org/x/net/html"
)

// Ensure Sanitizer implements tabread.Sanitizer at compile time.
var _ tabread.Sanitizer = (*Sanitizer)(nil)

// unsafeElements are removed outright, together with their children.
// Each can execute script, load a sub-resource, or redirect the page.
const unsafeElements = "script, noscript, style, iframe, frame, frameset, object, embed, applet, base, link, meta[http-equiv]"

// urlAttributes can carry a scheme capable of executing script.
var urlAttributes = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
	"poster":     true,
	"background": true,
}

// Sanitizer removes active and unsafe content from HTML documents while
// preserving element structure, text nodes, and safe attributes.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize returns the document with unsafe constructs removed.
// Sanitizing already-sanitized HTML yields an identical document.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", tabread.Errorf(tabread.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", tabread.Errorf(tabread.EINVALID, "unparsable HTML input: %s", err)
	}

	doc.Find(unsafeElements).Remove()

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			n.Attr = filterAttributes(n.Attr)
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}

// filterAttributes drops inline event handlers and script-bearing URLs.
func filterAttributes(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") || key == "srcdoc" {
			continue
		}
		if urlAttributes[key] && hasUnsafeScheme(a.Val) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// hasUnsafeScheme reports whether a URL value resolves to a scheme that
// can execute script or embed arbitrary content.
func hasUnsafeScheme(val string) bool {
	// Strip whitespace and control characters browsers ignore inside
	// scheme names so "java\tscript:" is still caught.
	cleaned := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, val)
	cleaned = strings.ToLower(cleaned)

	return strings.HasPrefix(cleaned, "javascript:") ||
		strings.HasPrefix(cleaned, "vbscript:") ||
		strings.HasPrefix(cleaned, "data:")
}
