// Package trafilatura implements boilerplate reduction using
// go-trafilatura's web scraping heuristics.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/tabread/tabread"
	"golang.org/x/net/html"
)

// Ensure Reducer implements tabread.Reducer at compile time.
var _ tabread.Reducer = (*Reducer)(nil)

// Reducer wraps go-trafilatura to reduce a document to its primary article.
type Reducer struct{}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce returns the primary article content of the document.
// Returns ENOPRIMARY when trafilatura yields no content node so callers
// can fall back to the full body.
func (r *Reducer) Reduce(rawHTML string) (*tabread.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tabread.Errorf(tabread.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "trafilatura extract failed: %s", err)
	}

	if result.ContentNode == nil {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "trafilatura found no content node")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentText) == "" && strings.TrimSpace(contentHTML) == "" {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "trafilatura found no article text")
	}

	return &tabread.Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
