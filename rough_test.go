package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordanet/tokenize/tok"
)

func collectRough(text string, o Options) []tok.Tok {
	var out []tok.Tok
	for t := range genFromString(text, o) {
		out = append(out, t)
	}
	return out
}

func TestRoughSplitSimple(t *testing.T) {
	tokens := collectRough("  foo bar", defaultOptions())
	require.Len(t, tokens, 2)
	assert.Equal(t, "foo", tokens[0].Txt)
	assert.Equal(t, "  foo", tokens[0].Original())
	assert.Equal(t, []int{2, 3, 4}, tokens[0].OriginSpans())
	assert.Equal(t, "bar", tokens[1].Txt)
	assert.Equal(t, " bar", tokens[1].Original())
	assert.Equal(t, []int{1, 2, 3}, tokens[1].OriginSpans())
}

func TestRoughSplitBlankLines(t *testing.T) {
	tokens := collectRough("foo\n\nbar", defaultOptions())
	require.Len(t, tokens, 3)
	assert.Equal(t, "foo", tokens[0].Txt)
	assert.Equal(t, tok.SplitSentenceToken, tokens[1].Kind)
	assert.Equal(t, "bar", tokens[2].Txt)

	// Any amount of blank space between two newlines is a single
	// boundary.
	tokens = collectRough("foo\n \t\n\nbar", defaultOptions())
	require.Len(t, tokens, 3)
	assert.Equal(t, tok.SplitSentenceToken, tokens[1].Kind)
}

func TestRoughHTMLEscapes(t *testing.T) {
	o := defaultOptions()
	o.ReplaceHTMLEscapes = true
	src := "xy&#x61;z&aacute;w&#97;b"
	tokens := collectRough(src, o)
	require.Len(t, tokens, 1)
	got := tokens[0]
	assert.Equal(t, "xyazáwab", got.Txt)
	assert.Equal(t, src, got.Original())
	assert.Equal(t, []int{0, 1, 2, 8, 9, 10, 17, 18, 23}, got.OriginSpans())
}

func TestRoughCompositeGlyphs(t *testing.T) {
	acc := "\u0301"
	uml := "\u0308"
	src := "xya" + acc + "zu" + acc + "wo" + uml + "b"
	tokens := collectRough(src, defaultOptions())
	require.Len(t, tokens, 1)
	got := tokens[0]
	assert.Equal(t, "xyázúwöb", got.Txt)
	assert.Equal(t, src, got.Original())
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 9, 10, 11, 13}, got.OriginSpans())
}

func TestRoughGlyphRemoval(t *testing.T) {
	src := "a\u00adb\u00adc"
	tokens := collectRough(src, defaultOptions())
	require.Len(t, tokens, 1)
	got := tokens[0]
	assert.Equal(t, "abc", got.Txt)
	assert.Equal(t, src, got.Original())
	assert.Equal(t, []int{0, 3, 6}, got.OriginSpans())
}

func TestRoughGlyphAndHTMLMix(t *testing.T) {
	o := defaultOptions()
	o.ReplaceHTMLEscapes = true
	acc := "\u0301"
	src := "xya" + acc + "zu" + acc + "w&aacute;b"
	tokens := collectRough(src, o)
	require.Len(t, tokens, 1)
	assert.Equal(t, "xyázúwáb", tokens[0].Txt)
	assert.Equal(t, src, tokens[0].Original())
}

func chunkSeq(chunks ...string) func(func(string) bool) {
	return func(yield func(string) bool) {
		for _, c := range chunks {
			if !yield(c) {
				return
			}
		}
	}
}

func TestRoughChunksCarryTrailingWhitespace(t *testing.T) {
	// A chunk ending in whitespace must not produce an empty token;
	// the whitespace is spliced onto the front of the next chunk.
	var out []tok.Tok
	for tk := range genRough(chunkSeq("foo ", "bar"), defaultOptions()) {
		out = append(out, tk)
	}
	require.Len(t, out, 2)
	assert.Equal(t, "foo", out[0].Txt)
	assert.Equal(t, "bar", out[1].Txt)
	assert.Equal(t, " bar", out[1].Original())
}

func TestRoughChunksEmptyLineSplitsSentences(t *testing.T) {
	var kinds []tok.Kind
	for tk := range genRough(chunkSeq("foo", "", "bar"), defaultOptions()) {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []tok.Kind{tok.RawToken, tok.SplitSentenceToken, tok.RawToken}, kinds)
}

func TestRoughOriginalReconstruction(t *testing.T) {
	src := "  Hann \t var   þar.  "
	var rebuilt string
	for tk := range genFromString(src, defaultOptions()) {
		rebuilt += tk.Original()
	}
	// Trailing pure-whitespace content is carried in an empty token.
	assert.Equal(t, src, rebuilt)
}
