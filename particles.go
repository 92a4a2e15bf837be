package tokenize

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/ordanet/tokenize/tok"
)

// punctNormalized returns the normalized form of a punctuation token,
// or the empty string for anything else.
func punctNormalized(t tok.Tok) string {
	if t.Kind != tok.PunctuationToken {
		return ""
	}
	if v, ok := t.Val.(tok.PunctVal); ok {
		return v.Normalized
	}
	return ""
}

func isPeriod(t tok.Tok) bool {
	return punctNormalized(t) == "."
}

func numberVal(t tok.Tok) float64 {
	if v, ok := t.Val.(tok.NumberVal); ok {
		return v.N
	}
	return 0
}

// isMultiplierAbbrev reports whether txt is a numeric multiplier or
// an amount abbreviation ("þ." for thousands).
func isMultiplierAbbrev(txt string) bool {
	if _, ok := multipliers[txt]; ok {
		return true
	}
	_, ok := amountAbbrev[txt]
	return ok
}

// couldBeEndOfSentence reports whether next could be ending the
// current sentence or starting the following one: it is an end
// marker, or an uppercase content word that is not a month name
// (frequently misspelled in uppercase), not a Roman numeral, and not
// a currency abbreviation preceded by a multiplier ("þ. USD").
func couldBeEndOfSentence(next tok.Tok, exclPerson bool, multiplier bool) bool {
	if next.Kind.IsEnd() {
		return true
	}
	inSet := next.Kind.IsText()
	if exclPerson {
		inSet = next.Kind.IsTextExclPerson()
	}
	return inSet &&
		next.Txt != "" &&
		unicode.IsUpper(firstRune(next.Txt)) &&
		months[strings.ToLower(next.Txt)] == 0 &&
		!isRomanNumeral(next.Txt) &&
		!(currencyAbbrev[next.Txt] && multiplier)
}

// matchStemList finds a word token's lowercase text in a stem table.
func matchStemList(t tok.Tok, stems map[string]float64) (float64, bool) {
	if t.Kind != tok.WordToken {
		return 0, false
	}
	v, ok := stems[strings.ToLower(t.Txt)]
	return v, ok
}

// monthForToken returns the month number, 1..12, for a month-name
// word. "Ágúst" is a person name and only counts as a month when it
// follows an ordinal.
func monthForToken(t tok.Tok, afterOrdinal bool) (int, bool) {
	if !afterOrdinal && monthBlacklist[t.Txt] {
		return 0, false
	}
	if t.Kind != tok.WordToken {
		return 0, false
	}
	m, ok := months[strings.ToLower(t.Txt)]
	return m, ok
}

// parseParticles coalesces simple token pairs with a single token of
// lookahead: abbreviations with their trailing periods, clock times,
// years, telephone numbers, percentages, ordinals, measurements and
// amounts.
func parseParticles(src iter.Seq[tok.Tok], o Options, abbr *abbrevSet) iter.Seq[tok.Tok] {
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

			// Currency symbol followed by a number, e.g. "$10".
			if token.Kind == tok.PunctuationToken && currencySymbols[token.Txt] != "" &&
				nextTok.Kind == tok.NumberToken {
				iso := currencySymbols[token.Txt]
				token = tok.Amount(token.Concatenate(nextTok, ""), iso, numberVal(nextTok))
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// A relative date with a trailing period, "25.10.", can
			// end a sentence: decide by what follows the period.
			if token.Kind == tok.DateRelToken && strings.Contains(token.Txt, ".") &&
				nextTok.Txt == "." {
				nextNext, ok2 := next()
				if !ok2 {
					break
				}
				if couldBeEndOfSentence(nextNext, false, false) {
					// "Ég fæddist 25.9. Það var gaman."
					if !yield(token) {
						return
					}
					token = nextTok
				} else {
					// "Ég fæddist 25.9. í Svarfaðardal."
					v := token.Val.(tok.DateVal)
					token = tok.DateRel(token.Concatenate(nextTok, ""), v.Y, v.M, v.D)
				}
				nextTok = nextNext
			}

			// An abbreviation ending with a period becomes a single
			// token, unless we seem to be at the end of a sentence and
			// the abbreviation is not read that way there.
			if isPeriod(nextTok) && token.Kind == tok.WordToken &&
				!strings.HasSuffix(token.Txt, ".") && abbr.isAbbrevWithPeriod(token.Txt) {
				follow, ok2 := next()
				if !ok2 {
					break
				}
				abbrev := token.Txt + "."
				// For name finishers such as "próf." a following
				// person name does not indicate an end of sentence.
				// Person names have not been recognized at this stage
				// of the pipeline, so this under-approximates.
				exclPerson := abbr.nameFinishers[abbrev]
				finish := couldBeEndOfSentence(follow, exclPerson, isMultiplierAbbrev(abbrev))
				if finish {
					switch {
					case abbr.finishers[abbrev]:
						// An abbreviation even at the end of a
						// sentence: yield it without the dot, then the
						// dot separately to finish the sentence.
						token = tok.Word(token, abbr.lookup(abbrev))
						if !yield(token) {
							return
						}
						token = nextTok
					case abbr.notFinishers[abbrev] || abbr.notFinishers[strings.ToLower(abbrev)]:
						// Not an abbreviation at the end of a sentence
						// ("dags.", "próf.", "mín.").
						if !yield(token) {
							return
						}
						token = nextTok
					default:
						token = tok.Word(token.Concatenate(nextTok, ""), abbr.lookup(abbrev))
					}
				} else {
					// A regular abbreviation in the middle of a
					// sentence: eat the period.
					token = tok.Word(token.Concatenate(nextTok, ""), abbr.lookup(abbrev))
				}
				nextTok = follow
			}

			// Clock words followed by a time, number or clock numeral.
			if nextTok.Kind == tok.TimeToken || nextTok.Kind == tok.NumberToken {
				if token.Kind == tok.WordToken && clockAbbrevs[strings.ToLower(token.Txt)] {
					if nextTok.Kind == tok.NumberToken {
						// The number may be a real such as 13,40 that
						// was parsed from 13.40: read it as hh.mm.
						parts := strings.Split(fmt.Sprintf("%.2f", numberVal(nextTok)), ".")
						h, m := atoi(parts[0]), atoi(parts[1])
						token = tok.Time(token.Concatenate(nextTok, " "), h, m, 0)
					} else {
						v := nextTok.Val.(tok.TimeVal)
						token = tok.Time(token.Concatenate(nextTok, " "), v.H, v.M, v.S)
					}
					if nextTok, ok = next(); !ok {
						break
					}
				}
			} else if v, isClock := clockNumbers[strings.ToLower(nextTok.Txt)]; nextTok.Kind == tok.WordToken && isClock {
				if token.Kind == tok.WordToken && clockAbbrevs[strings.ToLower(token.Txt)] {
					// "klukkan átta" / "kl. hálfátta".
					token = tok.Time(token.Concatenate(nextTok, " "), v[0], v[1], v[2])
					if nextTok, ok = next(); !ok {
						break
					}
				}
			} else if nextTok.Kind == tok.WordToken && strings.ToLower(nextTok.Txt) == "hálf" {
				if token.Kind == tok.WordToken && clockAbbrevs[strings.ToLower(token.Txt)] {
					// "klukkan hálf átta".
					timeTok, ok2 := next()
					if !ok2 {
						break loop
					}
					timeTxt := strings.ToLower(timeTok.Txt)
					if _, isClock := clockNumbers[timeTxt]; isClock && !strings.HasPrefix(timeTxt, "hálf") {
						v := clockNumbers["hálf"+timeTxt]
						temp := token.Concatenate(nextTok, " ").Concatenate(timeTok, " ")
						token = tok.Time(temp, v[0], v[1], v[2])
						if nextTok, ok = next(); !ok {
							break
						}
					} else {
						// Not a match: retreat.
						if !yield(token) {
							return
						}
						token = nextTok
						nextTok = timeTok
					}
				}
			}

			// Words like "hálftólf" only occur in temporal
			// expressions, so they can stand alone.
			if clockHalf[token.Txt] {
				v := clockNumbers[token.Txt]
				token = tok.Time(token, v[0], v[1], v[2])
			}

			// "árið" followed by a year or number.
			if token.Kind == tok.WordToken && yearWord[strings.ToLower(token.Txt)] &&
				(nextTok.Kind == tok.YearToken || nextTok.Kind == tok.NumberToken) {
				year := 0
				if nextTok.Kind == tok.YearToken {
					year = nextTok.Val.(int)
				} else {
					year = int(numberVal(nextTok))
				}
				token = tok.Year(token.Concatenate(nextTok, " "), year)
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// A 3-digit number followed by a 4-digit number can be a
			// telephone number written with a space.
			if token.Kind == tok.NumberToken &&
				(nextTok.Kind == tok.NumberToken || nextTok.Kind == tok.YearToken) &&
				len(token.Txt) == 3 && isAllDigits(token.Txt) &&
				strings.ContainsRune(telnoPrefixes, rune(token.Txt[0])) &&
				len(nextTok.Txt) == 4 && isAllDigits(nextTok.Txt) {
				telno := token.Txt + "-" + nextTok.Txt
				token = tok.Telno(token.Concatenate(nextTok, " "), telno, "")
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// A number followed by a percent or promille sign.
			if n := punctNormalized(nextTok); (n == "%" || n == "‰") && token.Kind == tok.NumberToken {
				factor := 1.0
				if n == "‰" {
					factor = 0.1
				}
				token = tok.Percent(token.Concatenate(nextTok, ""), numberVal(token)*factor)
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// An ordinal: a whole number or Roman numeral followed by
			// a period, unless the period seems to end the sentence.
			if isPeriod(nextTok) &&
				((token.Kind == tok.NumberToken && !strings.ContainsAny(token.Txt, ".,")) ||
					(token.Kind == tok.WordToken && isRomanNumeral(token.Txt) &&
						!abbr.isKnown(token.Txt))) {
				follow, ok2 := next()
				if !ok2 {
					break
				}
				fn := punctNormalized(follow)
				_, isMonth := monthForToken(follow, true)
				if follow.Kind.IsEnd() ||
					(follow.Kind == tok.PunctuationToken && (fn == "„" || fn == "\"")) ||
					(follow.Kind == tok.WordToken && follow.Txt != "" &&
						unicode.IsUpper(firstRune(follow.Txt)) && !isMonth) {
					// A sentence or paragraph end, opening quotes or an
					// uppercase word: fall back from the ordinal
					// reading.
					if !yield(token) {
						return
					}
					token = nextTok
					nextTok = follow
				} else {
					num := 0
					if token.Kind == tok.NumberToken {
						num = int(numberVal(token))
					} else {
						num = romanToInt(token.Txt)
					}
					token = tok.Ordinal(token.Concatenate(nextTok, ""), num)
					nextTok = follow
				}
			}

			// "1920 mm" or "30 °C": a number or year followed by an
			// SI unit.
			if u, isUnit := siUnits[nextTok.Txt]; isUnit &&
				(token.Kind == tok.NumberToken || token.Kind == tok.YearToken) {
				value := numberVal(token)
				if token.Kind == tok.YearToken {
					value = float64(token.Val.(int))
				}
				origUnit := nextTok.Txt
				value = u.apply(value)
				if isPercentUnit(u.Canon) {
					token = tok.Percent(token.Concatenate(nextTok, ""), value)
				} else {
					token = tok.Measurement(token.Concatenate(nextTok, " "), u.Canon, value)
				}
				if nextTok, ok = next(); !ok {
					break
				}

				// Special case for "km/klst".
				if token.Kind == tok.MeasurementToken && origUnit == "km" && nextTok.Txt == "/" {
					slashTok := nextTok
					if nextTok, ok = next(); !ok {
						break
					}
					if nextTok.Txt == "klst" {
						temp := token.Concatenate(slashTok, "").Concatenate(nextTok, "")
						token = tok.Measurement(temp, "km/klst", value)
						if nextTok, ok = next(); !ok {
							break
						}
					} else {
						if !yield(token) {
							return
						}
						token = slashTok
					}
				}
			}

			// "200° C": degree measurement followed by a temperature
			// scale letter.
			if token.Kind == tok.MeasurementToken {
				if mv, okv := token.Val.(tok.MeasurementVal); okv && mv.Unit == "°" &&
					nextTok.Kind == tok.WordToken &&
					(nextTok.Txt == "C" || nextTok.Txt == "F" || nextTok.Txt == "K") {
					newUnit := "°" + nextTok.Txt
					u := siUnits[newUnit]
					val := u.apply(mv.N)
					if o.ConvertMeasurements {
						// The canonical rewrite lengthens the text, so
						// origin tracking cannot be maintained.
						canonical := strings.TrimSpace(strings.TrimSuffix(token.Txt, "°")) + " " + newUnit
						token = tok.Measurement(tok.New(tok.RawToken, canonical, nil), u.Canon, val)
					} else {
						token = tok.Measurement(token.Concatenate(nextTok, " "), u.Canon, val)
					}
					if nextTok, ok = next(); !ok {
						break
					}
				}
			}

			// A measurement abbreviation erroneously ending with a
			// period, e.g. "5 kg." - only for units ending with an
			// alphabetic character, and rolled back at sentence end.
			if token.Kind == tok.MeasurementToken && nextTok.Kind == tok.PunctuationToken &&
				nextTok.Txt == "." && token.Txt != "" && unicode.IsLetter(lastRune(token.Txt)) {
				punctTok := nextTok
				if nextTok, ok = next(); !ok {
					break
				}
				if couldBeEndOfSentence(nextTok, false, false) {
					if !yield(token) {
						return
					}
					token = punctTok
				} else {
					mv := token.Val.(tok.MeasurementVal)
					token = tok.Measurement(token.Concatenate(punctTok, ""), mv.Unit, mv.N)
				}
			}

			// "USD. 44": currency abbreviation with a stray period.
			if currencyAbbrev[token.Txt] && nextTok.Kind == tok.PunctuationToken &&
				nextTok.Txt == "." {
				punctTok := nextTok
				if nextTok, ok = next(); !ok {
					break
				}
				if couldBeEndOfSentence(nextTok, false, false) {
					if !yield(token) {
						return
					}
					token = punctTok
				} else {
					token = tok.Currency(token.Concatenate(punctTok, ""), token.Txt)
				}
			}

			// "19 $", "199.99 $": a number followed by a currency sign.
			if token.Kind == tok.NumberToken && nextTok.Kind == tok.PunctuationToken &&
				currencySymbols[nextTok.Txt] != "" {
				token = tok.Amount(token.Concatenate(nextTok, " "),
					currencySymbols[nextTok.Txt], numberVal(token))
				if nextTok, ok = next(); !ok {
					break
				}
			}

			// Attach meanings to straight abbreviations (those not
			// ending with a period).
			if token.Kind == tok.WordToken && token.Val == nil && abbr.hasMeaning(token.Txt) {
				token = tok.Word(token, abbr.lookup(token.Txt))
			}

			if !yield(token) {
				return
			}
			token = nextTok
		}
		// Final token from the lookahead.
		yield(token)
	}
}
