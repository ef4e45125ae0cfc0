package readability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabread/tabread"
	"github.com/tabread/tabread/readability"
)

func TestReducer_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	r := readability.NewReducer()
	_, err := r.Reduce("")

	require.Error(t, err)
	assert.Equal(t, tabread.EINVALID, tabread.ErrorCode(err))
}

func TestReducer_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Enough article content for the algorithm to keep this page.</p></article></body>
</html>`

	r := readability.NewReducer()
	article, err := r.Reduce(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", article.Title)
}

func TestReducer_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	r := readability.NewReducer()
	article, err := r.Reduce(html)

	require.NoError(t, err)
	assert.NotContains(t, article.ContentHTML, "Home Nav Link")
	assert.NotContains(t, article.ContentHTML, "About Nav Link")
	assert.Contains(t, article.ContentHTML, "main article content")
}

func TestReducer_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	r := readability.NewReducer()
	article, err := r.Reduce(html)

	require.NoError(t, err)
	assert.NotContains(t, article.ContentHTML, "Footer copyright text")
}

func TestReducer_EmptyBodySignalsNoPrimaryContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Empty</title></head>
<body></body>
</html>`

	r := readability.NewReducer()
	_, err := r.Reduce(html)

	require.Error(t, err)
	assert.Equal(t, tabread.ENOPRIMARY, tabread.ErrorCode(err))
}
