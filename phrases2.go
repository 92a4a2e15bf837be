package tokenize

import (
	"iter"
	"strings"

	"github.com/ordanet/tokenize/tok"
)

// multiplierHomographs lists lowercase word forms that are never read
// as spelled-out numbers even though their stem is a multiplier.
var multiplierHomographs = map[string]bool{
	"áttu": true,
}

// wordNumber returns the numeric value of a spelled-out number word.
// Words in multiplierHomographs, such as "áttu", are rejected.
func wordNumber(t tok.Tok) (float64, bool) {
	if multiplierHomographs[strings.ToLower(t.Txt)] {
		return 0, false
	}
	return matchStemList(t, multipliers)
}

// joinComposite builds a single word token from the queued compound
// prefixes plus the coordinator and final word, preserving origin
// tracking by concatenating the constituent tokens. Hyphens and
// commas glue to the preceding prefix; everything else is joined with
// a space.
func joinComposite(parts []tok.Tok) tok.Tok {
	out := parts[0]
	for _, p := range parts[1:] {
		sep := " "
		if p.Txt == "," || isHyphen(firstRune(p.Txt)) {
			sep = ""
		}
		out = out.Concatenate(p, sep)
	}
	return out
}

// parsePhrases2 coalesces spelled-out numbers with their multipliers,
// amounts and percentages, and compound-hyphen constructions such as
// "fjármála- og efnahagsráðuneyti".
func parsePhrases2(src iter.Seq[tok.Tok], coalescePercent bool) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		token, ok := next()
		if !ok {
			return
		}
	loop:
		for {
			nextTok, ok := next()
			if !ok {
				break
			}

			// Numbers and fractions partially or entirely written out
			// in words: "tvö hundruð þúsund", "17 prósent",
			// "45 þús. kr.".
			var multiplier float64
			hasMultiplier := false
			if token.Kind == tok.WordToken {
				multiplier, hasMultiplier = wordNumber(token)
			}
			for (token.Kind == tok.NumberToken || hasMultiplier) && nextTok.Kind == tok.WordToken {
				convert := func(t tok.Tok) tok.Tok {
					if hasMultiplier {
						return tok.Number(t, multiplier)
					}
					return t
				}
				if multNext, okNext := wordNumber(nextTok); okNext {
					// Multiply left-to-right: "tvö hundruð" -> 200.
					token = convert(token)
					token = tok.Number(token.Concatenate(nextTok, " "),
						numberVal(token)*multNext)
					if nextTok, ok = next(); !ok {
						break loop
					}
				} else if factor, okAmt := amountAbbrev[nextTok.Txt]; okAmt {
					// An abbreviation for an ISK amount.
					token = convert(token)
					token = tok.Amount(token.Concatenate(nextTok, " "), "ISK",
						numberVal(token)*factor)
					if nextTok, ok = next(); !ok {
						break loop
					}
				} else if currencyAbbrev[nextTok.Txt] {
					// A number followed by an ISO currency code.
					token = convert(token)
					token = tok.Amount(token.Concatenate(nextTok, " "), nextTok.Txt,
						numberVal(token))
					if nextTok, ok = next(); !ok {
						break loop
					}
				} else {
					// "17 prósent" if percent coalescing is enabled.
					coalesced := false
					if coalescePercent {
						if _, okPct := matchStemList(nextTok, percentages); okPct {
							token = convert(token)
							token = tok.Percent(token.Concatenate(nextTok, " "),
								numberVal(token))
							if nextTok, ok = next(); !ok {
								break loop
							}
							coalesced = true
						}
					}
					if !coalesced {
						break
					}
				}
				hasMultiplier = false
			}

			// [currency] [number]: "kr. 9.900", "USD 50".
			if nextTok.Kind == tok.NumberToken &&
				(iskAmountPreceding[token.Txt] || currencyAbbrev[token.Txt]) {
				curr := token.Txt
				if iskAmountPreceding[token.Txt] {
					curr = "ISK"
				}
				token = tok.Amount(token.Concatenate(nextTok, " "), curr, numberVal(nextTok))
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// Compound-hyphen composites:
			// "stjórnskipunar- og eftirlitsnefnd",
			// "dómsmála-, viðskipta- og iðnaðarráðherra".
			var tq []tok.Tok
			for token.Kind == tok.WordToken && nextTok.Kind == tok.PunctuationToken &&
				punctNormalized(nextTok) == compositeHyphen {
				tq = append(tq, token, tok.Punctuation(nextTok, hyphen))
				commaTok, ok2 := next()
				if !ok2 {
					break loop
				}
				if commaTok.Kind == tok.PunctuationToken && punctNormalized(commaTok) == "," {
					tq = append(tq, commaTok)
					if commaTok, ok2 = next(); !ok2 {
						break loop
					}
				}
				token = commaTok
				if nextTok, ok = next(); !ok {
					break loop
				}
			}
			if len(tq) > 0 {
				if token.Kind == tok.WordToken && (token.Txt == "og" || token.Txt == "eða") &&
					nextTok.Kind == tok.WordToken {
					// "viðskipta- og iðnaðarráðherra": emit one word
					// with the amalgamated text. The meanings carry
					// over from the final word; the first parts may be
					// unknown compounds.
					parts := append(tq, token, nextTok)
					token = tok.Word(joinComposite(parts), meaningsOf(nextTok))
					if nextTok, ok = next(); !ok {
						break
					}
				} else {
					// Wrong prediction: flush the queue unchanged.
					for _, t := range tq {
						if !yield(t) {
							return
						}
					}
				}
			}

			if !yield(token) {
				return
			}
			token = nextTok
		}
		yield(token)
	}
}
