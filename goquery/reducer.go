package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tabread/tabread"
)

// Ensure DensityReducer implements tabread.Reducer at compile time.
var _ tabread.Reducer = (*DensityReducer)(nil)

// boilerplateTags never contain primary content.
var boilerplateTags = map[string]bool{
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
}

// boilerplateTokens flag class/id values of navigation chrome, ads, and
// other page furniture. Matching is on whole tokens, so "page-header"
// matches "header" but "read" does not match "ad".
var boilerplateTokens = map[string]bool{
	"nav":        true,
	"navbar":     true,
	"menu":       true,
	"sidebar":    true,
	"footer":     true,
	"header":     true,
	"banner":     true,
	"breadcrumb": true,
	"ad":         true,
	"ads":        true,
	"advert":     true,
	"promo":      true,
	"sponsor":    true,
	"comment":    true,
	"comments":   true,
	"share":      true,
	"social":     true,
	"cookie":     true,
	"consent":    true,
	"related":    true,
	"widget":     true,
}

// DensityReducer locates primary article content by scoring block-level
// candidates on text density: the amount of visible text relative to the
// number of descendant elements. Pages with heavy markup and little text
// (navigation, ad slots) score low; article bodies score high.
type DensityReducer struct{}

// NewDensityReducer creates a new DensityReducer.
func NewDensityReducer() *DensityReducer {
	return &DensityReducer{}
}

// Reduce returns the highest-scoring content block with remaining
// boilerplate descendants stripped. Returns ENOPRIMARY if the document
// has no block with visible text.
func (r *DensityReducer) Reduce(rawHTML string) (*tabread.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, tabread.Errorf(tabread.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, tabread.Errorf(tabread.EINVALID, "unparsable HTML input: %s", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())

	body := doc.Find("body").First()
	if strings.TrimSpace(body.Text()) == "" {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "document has no visible text")
	}

	best := r.selectArticleRoot(body)
	if best == nil {
		return nil, tabread.Errorf(tabread.ENOPRIMARY, "no primary content block found")
	}

	stripBoilerplate(best)

	contentHTML, err := goquery.OuterHtml(best)
	if err != nil {
		return nil, err
	}

	return &tabread.Article{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

// selectArticleRoot scores candidate blocks and returns the winner.
// The body itself is the candidate of last resort so thin but non-empty
// pages still reduce to something.
func (r *DensityReducer) selectArticleRoot(body *goquery.Selection) *goquery.Selection {
	var best *goquery.Selection
	var bestScore float64

	consider := func(sel *goquery.Selection) {
		if isBoilerplate(sel) {
			return
		}
		score := densityScore(sel)
		if score > bestScore {
			best = sel
			bestScore = score
		}
	}

	body.Find("article, main, section, div, td").Each(func(_ int, sel *goquery.Selection) {
		consider(sel)
	})
	consider(body)

	return best
}

// densityScore is visible text length over descendant element count.
// Semantic article containers get a boost so a marked-up <article> wins
// over an unlabeled wrapper div of similar density.
func densityScore(sel *goquery.Selection) float64 {
	text := strings.Join(strings.Fields(sel.Text()), " ")
	if text == "" {
		return 0
	}

	tags := sel.Find("*").Length()
	score := float64(len(text)) / float64(1+tags)

	if sel.Is("article, main") {
		score *= 2
	}
	return score
}

// stripBoilerplate removes residual navigation chrome from the selected root.
func stripBoilerplate(root *goquery.Selection) {
	root.Find("nav, header, footer, aside, form").Remove()
	root.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if hasBoilerplateToken(sel) {
			sel.Remove()
		}
	})
}

// isBoilerplate reports whether the element itself is page furniture.
func isBoilerplate(sel *goquery.Selection) bool {
	for _, n := range sel.Nodes {
		if boilerplateTags[strings.ToLower(n.Data)] {
			return true
		}
	}
	return hasBoilerplateToken(sel)
}

// hasBoilerplateToken checks class and id values against the denylist.
func hasBoilerplateToken(sel *goquery.Selection) bool {
	for _, attr := range []string{"class", "id"} {
		val, ok := sel.Attr(attr)
		if !ok {
			continue
		}
		for _, token := range splitTokens(val) {
			if boilerplateTokens[token] {
				return true
			}
		}
	}
	return false
}

// splitTokens splits an attribute value into lowercase word tokens.
func splitTokens(val string) []string {
	return strings.FieldsFunc(strings.ToLower(val), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
