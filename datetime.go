package tokenize

import (
	"iter"

	"github.com/ordanet/tokenize/tok"
)

// parseDateAndTime resolves dates and timestamps into absolute and
// relative variants and handles month-year combinations that the
// earlier passes left open.
func parseDateAndTime(src iter.Seq[tok.Tok]) iter.Seq[tok.Tok] {
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

			// [number | ordinal] [month name], retained here for
			// streams that skipped the abbreviation pass.
			if (token.Kind == tok.OrdinalToken || token.Kind == tok.NumberToken) &&
				nextTok.Kind == tok.WordToken {
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

			// [date] [year | number in the year range].
			if token.Kind == tok.DateToken &&
				(nextTok.Kind == tok.NumberToken || nextTok.Kind == tok.YearToken) {
				v := token.Val.(tok.DateVal)
				if v.Y == 0 {
					year := yearOrNumberVal(nextTok)
					if nextTok.Kind == tok.NumberToken && (year < 1776 || year > 2100) {
						year = 0
					}
					if year != 0 {
						token = tok.Date(token.Concatenate(nextTok, " "), year, v.M, v.D)
						if nextTok, ok = next(); !ok {
							break
						}
					}
				}
			}

			// [month name] [year].
			if token.Kind == tok.WordToken &&
				(nextTok.Kind == tok.NumberToken || nextTok.Kind == tok.YearToken) {
				if month, isMonth := monthForToken(token, false); isMonth {
					year := yearOrNumberVal(nextTok)
					if nextTok.Kind == tok.NumberToken && (year < 1776 || year > 2100) {
						year = 0
					}
					if year != 0 {
						token = tok.Date(token.Concatenate(nextTok, " "), year, month, 0)
						if nextTok, ok = next(); !ok {
							break
						}
					}
				}
			}

			// A single unambiguous month name becomes a relative date.
			// Dotless forms such as "mar" stay words.
			if token.Kind == tok.WordToken && !ambiguousMonthNames[token.Txt] {
				if month, isMonth := monthForToken(token, false); isMonth {
					token = tok.DateRel(token, 0, month, 0)
				}
			}

			// Split DATE into absolute and relative.
			if token.Kind == tok.DateToken {
				v := token.Val.(tok.DateVal)
				if v.Y != 0 && v.M != 0 && v.D != 0 {
					token = tok.DateAbs(token, v.Y, v.M, v.D)
				} else {
					token = tok.DateRel(token, v.Y, v.M, v.D)
				}
			}

			// Split TIMESTAMP into absolute and relative. Hours,
			// minutes and seconds may be zero in either.
			if token.Kind == tok.TimestampToken {
				v := token.Val.(tok.TimestampVal)
				if v.Y != 0 && v.Mo != 0 && v.D != 0 {
					token = tok.TimestampAbs(token, v.Y, v.Mo, v.D, v.H, v.M, v.S)
				} else {
					token = tok.TimestampRel(token, v.Y, v.Mo, v.D, v.H, v.M, v.S)
				}
			}

			// Swallow "e.Kr." and "f.Kr." postfixes on absolute dates.
			if token.Kind == tok.DateAbsToken && nextTok.Kind == tok.WordToken &&
				isCEOrBCE(nextTok.Txt) {
				v := token.Val.(tok.DateVal)
				y := v.Y
				if bce[nextTok.Txt] {
					y = -y
				}
				token = tok.DateAbs(token.Concatenate(nextTok, " "), y, v.M, v.D)
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// [date] [time] in either variant becomes a timestamp of
			// the same variant.
			if token.Kind == tok.DateAbsToken && nextTok.Kind == tok.TimeToken {
				d := token.Val.(tok.DateVal)
				t := nextTok.Val.(tok.TimeVal)
				token = tok.TimestampAbs(token.Concatenate(nextTok, " "),
					d.Y, d.M, d.D, t.H, t.M, t.S)
				if nextTok, ok = next(); !ok {
					break
				}
			}
			if token.Kind == tok.DateRelToken && nextTok.Kind == tok.TimeToken {
				d := token.Val.(tok.DateVal)
				t := nextTok.Val.(tok.TimeVal)
				token = tok.TimestampRel(token.Concatenate(nextTok, " "),
					d.Y, d.M, d.D, t.H, t.M, t.S)
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
