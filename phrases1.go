package tokenize

import (
	"iter"

	"github.com/ordanet/tokenize/tok"
)

func yearOrNumberVal(t tok.Tok) int {
	if t.Kind == tok.YearToken {
		return t.Val.(int)
	}
	return int(numberVal(t))
}

// parsePhrases1 coalesces BCE/CE year markers, day-month pairs into
// dates, dates with years and times, and country codes onto
// telephone numbers.
func parsePhrases1(src iter.Seq[tok.Tok], abbr *abbrevSet) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		token, ok := next()
		if !ok {
			return
		}
		for {
			nextTok, ok := next()
			if !ok {
				break
			}

			// Finisher abbreviations may still be separated from
			// their trailing period; absorb it.
			if token.Kind == tok.WordToken && nextTok.Txt == "." {
				abbrev := token.Txt + "."
				if abbr.finishers[abbrev] {
					token = tok.Word(token.Concatenate(nextTok, ""), meaningsOf(token))
					if nextTok, ok = next(); !ok {
						break
					}
				}
			}

			// A year or number followed by "f.Kr." or "e.Kr.". Years
			// BCE are represented as negative numbers.
			if token.Kind == tok.YearToken || token.Kind == tok.NumberToken {
				val := yearOrNumberVal(token)
				matched := false
				switch {
				case bce[nextTok.Txt]:
					val = -val
					matched = true
				case ce[nextTok.Txt]:
					matched = true
				}
				if matched {
					token = tok.Year(token.Concatenate(nextTok, " "), val)
					if nextTok, ok = next(); !ok {
						break
					}
					if nextTok.Txt == "." {
						token = tok.Year(token.Concatenate(nextTok, ""), val)
						if nextTok, ok = next(); !ok {
							break
						}
					}
				}
			}

			// [number | ordinal] [month name] becomes a date.
			if (token.Kind == tok.OrdinalToken || token.Kind == tok.NumberToken) &&
				nextTok.Kind == tok.WordToken {
				if nextTok.Txt == "gr." {
					// After an ordinal, the abbreviation "gr." can only
					// mean "grein".
					nextTok = tok.Word(nextTok, []tok.Meaning{
						{Stem: "grein", Cat: "kvk", Fl: "skst", Abbrev: "gr."},
					})
				}
				if month, isMonth := monthForToken(nextTok, true); isMonth {
					day := 0
					if token.Kind == tok.OrdinalToken {
						day = token.Val.(int)
					} else {
						day = int(numberVal(token))
					}
					token = tok.Date(token.Concatenate(nextTok, " "), 0, month, day)
					if nextTok, ok = next(); !ok {
						break
					}
				}
			}

			// [date] [year]: fill in a missing year.
			if token.Kind == tok.DateToken && nextTok.Kind == tok.YearToken {
				v := token.Val.(tok.DateVal)
				if v.Y == 0 {
					token = tok.Date(token.Concatenate(nextTok, " "),
						nextTok.Val.(int), v.M, v.D)
					if nextTok, ok = next(); !ok {
						break
					}
				}
			}

			// [date] [time] becomes a timestamp.
			if token.Kind == tok.DateToken && nextTok.Kind == tok.TimeToken {
				d := token.Val.(tok.DateVal)
				t := nextTok.Val.(tok.TimeVal)
				token = tok.Timestamp(token.Concatenate(nextTok, " "),
					d.Y, d.M, d.D, t.H, t.M, t.S)
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// A country code in front of a telephone number.
			if token.Kind == tok.NumberToken && nextTok.Kind == tok.TelnoToken &&
				countryCodes[token.Txt] {
				v := nextTok.Val.(tok.TelnoVal)
				token = tok.Telno(token.Concatenate(nextTok, " "), v.Number, token.Txt)
				if nextTok, ok = next(); !ok {
					break
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

// meaningsOf returns the meaning list of a word token, if any.
func meaningsOf(t tok.Tok) []tok.Meaning {
	if m, ok := t.Val.([]tok.Meaning); ok {
		return m
	}
	return nil
}
