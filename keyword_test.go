package tabread_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabread/tabread"
)

const resumeText = "Intro section with contact links. " +
	"Skills: Go, SQL, distributed systems. " +
	"Contact: mail@example.com"

func TestSliceRange_NoKeywordsReturnsInputUnchanged(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, resumeText, got)
}

func TestSliceRange_StartOnlyRunsToEnd(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "Skills", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "Skills: Go, SQL, distributed systems. Contact: mail@example.com", got)
}

func TestSliceRange_EndOnlyRunsFromStart(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "", "Skills", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Contains(t, got, "Intro section")
	assert.Contains(t, got, "Skills")
	assert.NotContains(t, got, "distributed systems")
}

func TestSliceRange_BothKeywordsBoundTheRange(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "Skills", "Contact", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Contains(t, got, "Skills")
	assert.Contains(t, got, "distributed systems")
	assert.NotContains(t, got, "Intro section")
	assert.NotContains(t, got, "mail@example.com")
}

func TestSliceRange_CaseInsensitiveMatching(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange("Before. INTRODUCTION here. After.", "introduction", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "INTRODUCTION here. After.", got)
}

func TestSliceRange_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange("a marker b marker c", "marker", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "marker b marker c", got)
}

func TestSliceRange_EndExclusiveDropsKeyword(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "Skills", "Contact", tabread.EndExclusive)

	require.NoError(t, err)
	assert.Contains(t, got, "distributed systems")
	assert.NotContains(t, got, "Contact")
}

func TestSliceRange_EndInclusiveRetainsKeyword(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange(resumeText, "Skills", "Contact", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Contains(t, got, "Contact")
}

func TestSliceRange_EndMissingAfterStartRunsToEnd(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange("Intro. Skills here.", "Skills", "Conclusion", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "Skills here.", got)
}

func TestSliceRange_EndOnlyBeforeStartOfText(t *testing.T) {
	t.Parallel()

	// The end keyword is searched from the start match onward; an earlier
	// occurrence of the end keyword does not terminate the slice.
	got, err := tabread.SliceRange("Contact top. Skills middle. Contact bottom.", "Skills", "Contact", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Contains(t, got, "Skills middle")
	assert.NotContains(t, got, "Contact top")
}

func TestSliceRange_LengthChangingCaseFolds(t *testing.T) {
	t.Parallel()

	// U+0130 lowercases to two runes, so byte offsets computed on a
	// lowered copy of the text would drift past the real match.
	got, err := tabread.SliceRange(strings.Repeat("İ", 10)+"Skills: Go", "skills", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "Skills: Go", got)
}

func TestSliceRange_FoldGrowsEncodedLength(t *testing.T) {
	t.Parallel()

	// U+023A is 2 bytes but its lowercase U+2C65 is 3, so a lowered-copy
	// index can exceed the original text's length entirely.
	got, err := tabread.SliceRange(strings.Repeat("Ⱥ", 40)+"Skills", "skills", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "Skills", got)
}

func TestSliceRange_FoldedEndKeywordBounds(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("Ⱥ", 5) + "Start body END tail"
	got, err := tabread.SliceRange(text, "start", "end", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "Start body END", got)

	got, err = tabread.SliceRange(text, "start", "end", tabread.EndExclusive)

	require.NoError(t, err)
	assert.Equal(t, "Start body ", got)
}

func TestSliceRange_NonASCIIKeyword(t *testing.T) {
	t.Parallel()

	got, err := tabread.SliceRange("intro ÉQUIPE et contact", "équipe", "", tabread.EndInclusive)

	require.NoError(t, err)
	assert.Equal(t, "ÉQUIPE et contact", got)
}

func TestSliceRange_MissingStartKeyword(t *testing.T) {
	t.Parallel()

	_, err := tabread.SliceRange(resumeText, "Nonexistent", "", tabread.EndInclusive)

	require.Error(t, err)
	assert.Equal(t, tabread.ENOTFOUND, tabread.ErrorCode(err))
}
