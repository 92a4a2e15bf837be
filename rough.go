package tokenize

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/ordanet/tokenize/tok"
)

// Two newlines separated only by whitespace are a hard sentence
// boundary.
var blankLineRE = regexp.MustCompile(`\n\s*\n`)

// glyphRemovals are invisible characters deleted outright during
// glyph normalization.
var glyphRemovals = map[rune]bool{
	'\u00ad': true, // soft hyphen
	'\u200b': true, // zero-width space
	'\u200c': true, // zero-width non-joiner
	'\u200d': true, // zero-width joiner
	'\ufeff': true, // byte order mark
}

// unicodeReplacement composes decomposed glyph sequences to single
// code points and removes invisible formatting characters, keeping
// the origin spans aligned.
func unicodeReplacement(t *tok.Tok) {
	src := t.Txt
	reduction := 0
	for _, loc := range compositeGlyphRE.FindAllStringIndex(src, -1) {
		a, b := loc[0], loc[1]
		seg := src[a:b]
		var repl string
		if r, size := utf8.DecodeRuneInString(seg); size == len(seg) && glyphRemovals[r] {
			repl = ""
		} else {
			repl = norm.NFC.String(seg)
			if repl == seg || utf8.RuneCountInString(repl) != 1 || len(repl) > b-a {
				// Not composable to a single code point; leave as is.
				continue
			}
		}
		t.Substitute(a-reduction, b-reduction, repl)
		reduction += (b - a) - len(repl)
	}
}

// htmlReplacement decodes HTML escape sequences ('&aacute;' -> 'á'),
// keeping the origin spans aligned.
func htmlReplacement(t *tok.Tok) {
	src := t.Txt
	reduction := 0
	for _, loc := range htmlEscapeRE.FindAllStringIndex(src, -1) {
		a, b := loc[0], loc[1]
		seg := src[a:b]
		repl := html.UnescapeString(seg)
		if repl == seg || utf8.RuneCountInString(repl) != 1 || len(repl) > b-a {
			continue
		}
		t.Substitute(a-reduction, b-reduction, repl)
		reduction += (b - a) - len(repl)
	}
}

// genFromString yields rough tokens from a contiguous text string.
// Blank lines become sentence-split markers; each remaining token is
// a whitespace-delimited substring with its leading whitespace
// stripped from the working text but retained in the original.
func genFromString(txt string, o Options) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		for i, span := range blankLineRE.Split(txt, -1) {
			if i > 0 {
				// In lieu of the newline pair separating the spans.
				if !yield(tok.Tok{Kind: tok.SplitSentenceToken}) {
					return
				}
			}
			big := tok.FromSource(tok.RawToken, span)
			if o.ReplaceCompositeGlyphs {
				unicodeReplacement(&big)
			}
			if o.ReplaceHTMLEscapes {
				htmlReplacement(&big)
			}
			for big.Txt != "" {
				ws := leadingWhitespace(big.Txt)
				word := leadingNonWhitespace(big.Txt[ws:])
				head, rest := big.Split(ws + word)
				head.Substitute(0, ws, "")
				if !yield(head) {
					return
				}
				big = rest
			}
		}
	}
}

func leadingWhitespace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

func leadingNonWhitespace(s string) int {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return len(s)
	}
	return i
}

// genRough yields rough tokens from a sequence of text chunks. An
// empty chunk signals a sentence split. A chunk ending in whitespace
// only would produce an empty token; its original content is carried
// over and spliced onto the front of the next chunk instead.
func genRough(chunks iter.Seq[string], o Options) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		saved := ""
		for txt := range chunks {
			if txt == "" {
				if !yield(tok.Tok{Kind: tok.SplitSentenceToken}) {
					return
				}
				continue
			}
			if saved != "" {
				txt = saved + txt
				saved = ""
			}
			for t := range genFromString(txt, o) {
				if t.Txt == "" && t.Original() != "" {
					saved = t.Original()
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
