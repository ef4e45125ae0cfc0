// Package readability implements boilerplate reduction using the
// go-shiori port of Mozilla's Readability algorithm.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/tabread/tabread"
)

// Ensure Reducer implements tabread.Reducer at compile time.
var _ tabread.Reducer = (*Reducer)(nil)

// Reducer wraps go-readability to reduce a document to its primary article.
type Reducer struct{}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce returns the primary article content of the document.
// Returns ENOPRIMARY when readability finds no article text so callers
// can fall back to the full body.
func (r *Reducer) Reduce(rawHTML string) (*tabread.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tabread.Errorf(tabread.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "readability parse failed: %s", err)
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "readability found no article text")
	}

	return &tabread.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
