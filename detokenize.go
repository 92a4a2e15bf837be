package tokenize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ordanet/tokenize/tok"
)

// tpSpace says whether a space belongs between two adjacent tokens,
// indexed by the position class of the left and right token.
var tpSpace = [5][5]bool{
	// this:            LEFT   CENTER RIGHT  NONE   WORD
	/* last LEFT   */ {false, true, false, false, false},
	/* last CENTER */ {true, true, false, false, true},
	/* last RIGHT  */ {true, true, false, false, true},
	/* last NONE   */ {false, false, false, false, false},
	/* last WORD   */ {true, true, false, false, true},
}

func needSpace(last, this tok.PunctPos) bool {
	return tpSpace[last-1][this-1]
}

// classify returns the spacing class of a token text.
func classify(w string) tok.PunctPos {
	if utf8.RuneCountInString(w) > 1 {
		return tok.PunctWord
	}
	if pos := tok.PosClassOf(w); pos != tok.PunctCenter || isPunct(firstRune(w)) {
		return pos
	}
	return tok.PunctWord
}

// reSplitTokens isolates numbers (so their separators are not read as
// punctuation) and single punctuation or whitespace characters.
var reSplitTokens = regexp.MustCompile(
	`[+\-$€]?\d{1,3}(\.\d\d\d)+,\d+` + // +123.456,789
		`|[+\-$€]?\d{1,3}(,\d\d\d)+\.\d+` + // +123,456.789
		`|[+\-$€]?\d+,\d+` + // -1234,56
		`|[+\-$€]?\d+\.\d+` + // -1234.56
		`|[~\s.,:;!?%‰&=±×·|+<>*()\[\]{}„“”‟‚‘’‛«»‹›"'´` + "`" + `^\-–—−/\\#@$€£¥₽…°§©®™_]`)

// splitForSpacing breaks a string into number tokens, punctuation
// characters and everything in between.
func splitForSpacing(s string) []string {
	var out []string
	last := 0
	for _, loc := range reSplitTokens.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			out = append(out, s[last:loc[0]])
		}
		out = append(out, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		out = append(out, s[last:])
	}
	return out
}

// CorrectSpaces splits a string and reassembles it with correct
// spacing between tokens. This takes a quick-and-dirty approach that
// may not handle all edge cases.
func CorrectSpaces(s string) string {
	var r []string
	last := tok.PunctNone
	doubleQuoteCount := 0
	for _, w := range splitForSpacing(s) {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		var this tok.PunctPos
		if w == `"` {
			// English-type double quotes glue alternately to the
			// right and to the left.
			if doubleQuoteCount%2 == 0 {
				this = tok.PunctLeft
			} else {
				this = tok.PunctRight
			}
			doubleQuoteCount++
		} else {
			this = classify(w)
		}
		switch {
		case (w == "og" || w == "eða") && len(r) >= 2 && r[len(r)-1] == "-" &&
			isAlphaString(strings.TrimLeft(r[len(r)-2], " ")):
			// Compounds such as "fjármála- og efnahagsráðuneytið":
			// detach the hyphen from "og"/"eða".
			r = append(r, " "+w)
		case this == tok.PunctWord && len(r) >= 2 && r[len(r)-1] == "-" && isAlphaString(w) &&
			(r[len(r)-2] == "," || strings.TrimLeft(r[len(r)-2], " ") == "og" ||
				strings.TrimLeft(r[len(r)-2], " ") == "eða"):
			// Compounds such as "bensínstöðvar, -dælur og -tankar".
			r[len(r)-1] = " -"
			r = append(r, w)
		case len(r) > 0 && needSpace(last, this):
			r = append(r, " "+w)
		default:
			r = append(r, w)
		}
		last = this
	}
	return strings.Join(r, "")
}

// Detokenize converts a token slice back to a correctly spaced
// string. If normalize is true, punctuation is normalized first.
func Detokenize(tokens []tok.Tok, normalize bool) string {
	var r []string
	last := tok.PunctNone
	doubleQuoteCount := 0
	for _, t := range tokens {
		w := t.Txt
		if normalize {
			w = NormalizedText(t)
		}
		if w == "" {
			continue
		}
		this := tok.PunctWord
		if t.Kind == tok.PunctuationToken && utf8.RuneCountInString(w) == 1 {
			if w == `"` {
				if doubleQuoteCount%2 == 0 {
					this = tok.PunctLeft
				} else {
					this = tok.PunctRight
				}
				doubleQuoteCount++
			} else {
				this = tok.PosClassOf(w)
			}
		}
		if len(r) > 0 && needSpace(last, this) {
			r = append(r, " "+w)
		} else {
			r = append(r, w)
		}
		last = this
	}
	return strings.Join(r, "")
}
