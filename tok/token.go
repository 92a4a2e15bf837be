package tok

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tok is a single token. Txt is the working text, which may have been
// normalized (HTML entities decoded, composite glyphs collapsed). The
// original input substring is retained alongside a span table so that
// splits and substitutions never lose the mapping back to the source.
//
// The span table has one entry per byte of Txt; entry i is the byte
// offset into the original where the content of Txt byte i begins.
// The table is non-decreasing. Original bytes between span i and
// span i+1 (or the end of the original) belong to Txt byte i; any
// prefix of the original before span 0 (stripped whitespace) is
// absorbed by the first byte.
type Tok struct {
	Kind Kind
	Txt  string
	// Val is the kind-specific payload; see the *Val types.
	Val any

	original    string
	originSpans []int
}

// New creates a token without origin tracking.
func New(kind Kind, txt string, val any) Tok {
	return Tok{Kind: kind, Txt: txt, Val: val}
}

// NewTracked creates a token with an explicit original string and
// span table. The table must have one entry per byte of txt.
func NewTracked(kind Kind, txt string, val any, original string, spans []int) Tok {
	return Tok{Kind: kind, Txt: txt, Val: val, original: original, originSpans: spans}
}

// FromSource creates a tracked token whose working text is identical
// to its original, with an identity span table.
func FromSource(kind Kind, source string) Tok {
	spans := make([]int, len(source))
	for i := range spans {
		spans[i] = i
	}
	return Tok{Kind: kind, Txt: source, original: source, originSpans: spans}
}

// Original returns the exact input substring this token was produced
// from, or the empty string if origin tracking is off.
func (t Tok) Original() string {
	return t.original
}

// OriginSpans returns the span table; nil if tracking is off.
func (t Tok) OriginSpans() []int {
	return t.originSpans
}

// Tracking reports whether this token carries origin information.
func (t Tok) Tracking() bool {
	return t.originSpans != nil
}

// ClearOrigin drops origin tracking from the token. Used by the few
// transformations that lengthen the working text and therefore cannot
// maintain a consistent span table.
func (t Tok) ClearOrigin() Tok {
	t.original = ""
	t.originSpans = nil
	return t
}

// Split splits the token into two at the byte position pos of the
// working text. A negative pos counts from the end. The left token
// keeps the first pos bytes and the full value; positions at or
// beyond the ends yield an empty counterpart.
func (t Tok) Split(pos int) (Tok, Tok) {
	if pos < 0 {
		pos += len(t.Txt)
		if pos < 0 {
			pos = 0
		}
	}
	if !t.Tracking() {
		if pos > len(t.Txt) {
			pos = len(t.Txt)
		}
		l := Tok{Kind: t.Kind, Txt: t.Txt[:pos], Val: t.Val}
		r := Tok{Kind: t.Kind, Txt: t.Txt[pos:], Val: t.Val}
		return l, r
	}
	if pos >= len(t.originSpans) {
		l := Tok{Kind: t.Kind, Txt: t.Txt, Val: t.Val, original: t.original, originSpans: t.originSpans}
		r := Tok{Kind: t.Kind, Txt: "", Val: nil, original: "", originSpans: []int{}}
		return l, r
	}
	cut := t.originSpans[pos]
	lspans := make([]int, pos)
	copy(lspans, t.originSpans[:pos])
	l := Tok{
		Kind: t.Kind, Txt: t.Txt[:pos], Val: t.Val,
		original:    t.original[:cut],
		originSpans: lspans,
	}
	rspans := make([]int, len(t.originSpans)-pos)
	for i, x := range t.originSpans[pos:] {
		rspans[i] = x - cut
	}
	r := Tok{
		Kind: t.Kind, Txt: t.Txt[pos:], Val: t.Val,
		original:    t.original[cut:],
		originSpans: rspans,
	}
	return l, r
}

// Substitute replaces Txt[a:b] with the replacement string, which must
// be empty or a single rune no longer than the replaced span. The
// original text is never modified; the span table contracts so that
// the replacement maps onto the byte range the replaced text covered.
func (t *Tok) Substitute(a, b int, repl string) {
	if t.Tracking() {
		if utf8.RuneCountInString(repl) > 1 {
			panic(fmt.Sprintf("tok: substitute replacement %q is longer than one rune", repl))
		}
		if len(repl) > b-a {
			panic(fmt.Sprintf("tok: substitute replacement %q does not fit span [%d,%d)", repl, a, b))
		}
		t.originSpans = append(t.originSpans[:a+len(repl):a+len(repl)], t.originSpans[b:]...)
	}
	t.Txt = t.Txt[:a] + repl + t.Txt[b:]
}

// SubstituteAll replaces every occurrence of the single-rune old with
// repl (empty or a single rune).
func (t *Tok) SubstituteAll(old, repl string) {
	if utf8.RuneCountInString(old) != 1 {
		panic(fmt.Sprintf("tok: substitute-all pattern %q is not a single rune", old))
	}
	i := 0
	for {
		j := strings.Index(t.Txt[i:], old)
		if j < 0 {
			return
		}
		at := i + j
		t.Substitute(at, at+len(old), repl)
		i = at + len(repl)
	}
}

// Concatenate returns a new token whose working text is the two texts
// joined by separator and whose original is the two originals joined
// directly. The separator bytes contribute no original content: they
// all map to the boundary offset. Kind and value are inherited from
// the receiver; callers typically overwrite them.
func (t Tok) Concatenate(other Tok, separator string) Tok {
	out := Tok{
		Kind: t.Kind,
		Txt:  t.Txt + separator + other.Txt,
		Val:  t.Val,
	}
	if !t.Tracking() && !other.Tracking() {
		return out
	}
	boundary := len(t.original)
	spans := make([]int, 0, len(t.originSpans)+len(separator)+len(other.originSpans))
	spans = append(spans, t.originSpans...)
	for i := 0; i < len(separator); i++ {
		spans = append(spans, boundary)
	}
	for _, x := range other.originSpans {
		spans = append(spans, x+boundary)
	}
	out.original = t.original + other.original
	out.originSpans = spans
	return out
}

// String renders the token for debugging.
func (t Tok) String() string {
	if t.Val != nil {
		return fmt.Sprintf("%s(%q, %v)", t.Kind, t.Txt, t.Val)
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Txt)
}
