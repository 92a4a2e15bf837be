package tok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identitySpans(n int) []int {
	spans := make([]int, n)
	for i := range spans {
		spans[i] = i
	}
	return spans
}

func TestSplitSimple(t *testing.T) {
	tk := New(RawToken, "boat", nil)
	l, r := tk.Split(2)
	assert.Equal(t, "bo", l.Txt)
	assert.Equal(t, "at", r.Txt)
	assert.False(t, l.Tracking())
	assert.False(t, r.Tracking())
}

func TestSplitSimpleOriginal(t *testing.T) {
	tk := FromSource(RawToken, "boat")
	l, r := tk.Split(2)
	assert.Equal(t, "bo", l.Txt)
	assert.Equal(t, "bo", l.Original())
	assert.Equal(t, []int{0, 1}, l.OriginSpans())
	assert.Equal(t, "at", r.Txt)
	assert.Equal(t, "at", r.Original())
	assert.Equal(t, []int{0, 1}, r.OriginSpans())
}

func TestSplitWithSubstitutions(t *testing.T) {
	// original "a&123b": replace "&123" with "x", ending up with "axb"
	tk := NewTracked(RawToken, "axb", nil, "a&123b", []int{0, 1, 5})

	l1, r1 := tk.Split(1)
	assert.Equal(t, "a", l1.Txt)
	assert.Equal(t, "a", l1.Original())
	assert.Equal(t, []int{0}, l1.OriginSpans())
	assert.Equal(t, "xb", r1.Txt)
	assert.Equal(t, "&123b", r1.Original())
	assert.Equal(t, []int{0, 4}, r1.OriginSpans())

	l2, r2 := tk.Split(2)
	assert.Equal(t, "ax", l2.Txt)
	assert.Equal(t, "a&123", l2.Original())
	assert.Equal(t, []int{0, 1}, l2.OriginSpans())
	assert.Equal(t, "b", r2.Txt)
	assert.Equal(t, "b", r2.Original())
	assert.Equal(t, []int{0}, r2.OriginSpans())
}

func TestSplitWithSubstitutionsAndWhitespacePrefix(t *testing.T) {
	// original "  a&123b": strip whitespace and replace "&123" with "x"
	tk := NewTracked(RawToken, "axb", nil, "  a&123b", []int{2, 3, 7})

	l1, r1 := tk.Split(1)
	assert.Equal(t, "  a", l1.Original())
	assert.Equal(t, []int{2}, l1.OriginSpans())
	assert.Equal(t, "&123b", r1.Original())
	assert.Equal(t, []int{0, 4}, r1.OriginSpans())

	l2, r2 := tk.Split(2)
	assert.Equal(t, "  a&123", l2.Original())
	assert.Equal(t, []int{2, 3}, l2.OriginSpans())
	assert.Equal(t, "b", r2.Original())
	assert.Equal(t, []int{0}, r2.OriginSpans())
}

func TestSplitWithWhitespacePrefix(t *testing.T) {
	tk := NewTracked(RawToken, "boat", nil, "   boat", []int{3, 4, 5, 6})
	l, r := tk.Split(2)
	assert.Equal(t, "bo", l.Txt)
	assert.Equal(t, "   bo", l.Original())
	assert.Equal(t, []int{3, 4}, l.OriginSpans())
	assert.Equal(t, "at", r.Txt)
	assert.Equal(t, "at", r.Original())
	assert.Equal(t, []int{0, 1}, r.OriginSpans())
}

func TestSplitAtEnds(t *testing.T) {
	tk := FromSource(RawToken, "ab")
	l, r := tk.Split(0)
	assert.Equal(t, "", l.Txt)
	assert.Equal(t, "", l.Original())
	assert.Equal(t, "ab", r.Txt)
	assert.Equal(t, "ab", r.Original())

	tk = FromSource(RawToken, "ab")
	l, r = tk.Split(2)
	assert.Equal(t, "ab", l.Txt)
	assert.Equal(t, "ab", l.Original())
	assert.Equal(t, "", r.Txt)
	assert.Equal(t, "", r.Original())

	tk = New(RawToken, "ab", nil)
	l, r = tk.Split(0)
	assert.Equal(t, "", l.Txt)
	assert.Equal(t, "ab", r.Txt)
	l, r = tk.Split(2)
	assert.Equal(t, "ab", l.Txt)
	assert.Equal(t, "", r.Txt)
}

func TestSplitWithNegativeIndex(t *testing.T) {
	tk := FromSource(RawToken, "abcde")
	l, r := tk.Split(-2)
	assert.Equal(t, "abc", l.Txt)
	assert.Equal(t, "abc", l.Original())
	assert.Equal(t, []int{0, 1, 2}, l.OriginSpans())
	assert.Equal(t, "de", r.Txt)
	assert.Equal(t, "de", r.Original())
	assert.Equal(t, []int{0, 1}, r.OriginSpans())
}

func TestSubstitute(t *testing.T) {
	tk := FromSource(RawToken, "a&123b")
	tk.Substitute(1, 5, "x")
	assert.Equal(t, "axb", tk.Txt)
	assert.Equal(t, "a&123b", tk.Original())
	assert.Equal(t, []int{0, 1, 5}, tk.OriginSpans())

	tk = FromSource(RawToken, "ab&123")
	tk.Substitute(2, 6, "x")
	assert.Equal(t, "abx", tk.Txt)
	assert.Equal(t, []int{0, 1, 2}, tk.OriginSpans())

	tk = FromSource(RawToken, "&123ab")
	tk.Substitute(0, 4, "x")
	assert.Equal(t, "xab", tk.Txt)
	assert.Equal(t, []int{0, 4, 5}, tk.OriginSpans())
}

func TestMultipleSubstitutions(t *testing.T) {
	tk := FromSource(RawToken, "a&123b&456&789c")
	tk.Substitute(1, 5, "x")
	assert.Equal(t, "axb&456&789c", tk.Txt)
	assert.Equal(t, []int{0, 1, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, tk.OriginSpans())
	tk.Substitute(3, 7, "y")
	assert.Equal(t, "axby&789c", tk.Txt)
	assert.Equal(t, []int{0, 1, 5, 6, 10, 11, 12, 13, 14}, tk.OriginSpans())
	tk.Substitute(4, 8, "z")
	assert.Equal(t, "axbyzc", tk.Txt)
	assert.Equal(t, []int{0, 1, 5, 6, 10, 14}, tk.OriginSpans())
	assert.Equal(t, "a&123b&456&789c", tk.Original())
}

func TestSubstituteWithoutTracking(t *testing.T) {
	tk := New(RawToken, "a&123b", nil)
	tk.Substitute(1, 5, "x")
	assert.Equal(t, "axb", tk.Txt)
	assert.False(t, tk.Tracking())
}

func TestSubstituteThatRemoves(t *testing.T) {
	tk := FromSource(RawToken, "a&123b")
	tk.Substitute(1, 5, "")
	assert.Equal(t, "ab", tk.Txt)
	assert.Equal(t, []int{0, 5}, tk.OriginSpans())

	tk = FromSource(RawToken, "&123ab")
	tk.Substitute(0, 4, "")
	assert.Equal(t, "ab", tk.Txt)
	assert.Equal(t, []int{4, 5}, tk.OriginSpans())

	tk = FromSource(RawToken, "ab&123")
	tk.Substitute(2, 6, "")
	assert.Equal(t, "ab", tk.Txt)
	assert.Equal(t, []int{0, 1}, tk.OriginSpans())
}

func TestSubstituteAll(t *testing.T) {
	tk := FromSource(RawToken, "asdf")
	tk.SubstituteAll("d", "x")
	assert.Equal(t, "asxf", tk.Txt)
	assert.Equal(t, identitySpans(4), tk.OriginSpans())

	tk = FromSource(RawToken, "asdf")
	tk.SubstituteAll("d", "")
	assert.Equal(t, "asf", tk.Txt)
	assert.Equal(t, []int{0, 1, 3}, tk.OriginSpans())

	tk = FromSource(RawToken, "rerun-rr")
	tk.SubstituteAll("r", "")
	assert.Equal(t, "eun-", tk.Txt)
	assert.Equal(t, []int{1, 3, 4, 5}, tk.OriginSpans())
}

func TestConcatenate(t *testing.T) {
	tok1 := FromSource(RawToken, "asdf")
	tok2 := FromSource(RawToken, "jklm")
	joined := tok1.Concatenate(tok2, "")
	assert.Equal(t, "asdfjklm", joined.Txt)
	assert.Equal(t, "asdfjklm", joined.Original())
	assert.Equal(t, identitySpans(8), joined.OriginSpans())

	tok1 = NewTracked(RawToken, "abc", nil, "&123&456&789", []int{0, 4, 8})
	tok2 = NewTracked(RawToken, "xyz", nil, "&xx&yy&zz", []int{0, 3, 6})
	joined = tok1.Concatenate(tok2, "")
	assert.Equal(t, "abcxyz", joined.Txt)
	assert.Equal(t, "&123&456&789&xx&yy&zz", joined.Original())
	assert.Equal(t, []int{0, 4, 8, 12, 15, 18}, joined.OriginSpans())
}

func TestConcatenateWithSeparator(t *testing.T) {
	tok1 := FromSource(RawToken, "asdf")
	tok2 := FromSource(RawToken, "jklm")
	joined := tok1.Concatenate(tok2, "--")
	assert.Equal(t, "asdf--jklm", joined.Txt)
	assert.Equal(t, "asdfjklm", joined.Original())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 4, 4, 5, 6, 7}, joined.OriginSpans())
}

func TestSplitConcatenateRoundTrip(t *testing.T) {
	tk := NewTracked(RawToken, "axb", nil, "  a&123b", []int{2, 3, 7})
	for pos := 0; pos <= len(tk.Txt); pos++ {
		l, r := tk.Split(pos)
		require.Equal(t, tk.Original(), l.Original()+r.Original(), "split at %d", pos)
		require.Equal(t, tk.Txt, l.Txt+r.Txt, "split at %d", pos)
		joined := l.Concatenate(r, "")
		require.Equal(t, tk.Txt, joined.Txt, "round trip at %d", pos)
		require.Equal(t, tk.Original(), joined.Original(), "round trip at %d", pos)
		require.Equal(t, tk.OriginSpans(), joined.OriginSpans(), "round trip at %d", pos)
	}
}

func TestSubstituteKeepsTableLength(t *testing.T) {
	tk := FromSource(RawToken, "a&123b&456c")
	tk.Substitute(1, 5, "x")
	require.Len(t, tk.OriginSpans(), len(tk.Txt))
	tk.Substitute(3, 7, "y")
	require.Len(t, tk.OriginSpans(), len(tk.Txt))
	assert.Equal(t, "axbyc", tk.Txt)
	assert.Equal(t, "a&123b&456c", tk.Original())
}
