package tokenize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ordanet/tokenize/tok"
)

// Patterns tried by the digit parser, in order of decreasing
// specificity. RE2 has no lookahead, so the "no further digits"
// conditions from the pattern descriptions are checked explicitly
// after each match.
var (
	reTimeMS    = regexp.MustCompile(`^\d{1,2}:\d\d:\d\d,\d\d`)
	reTimeHMS   = regexp.MustCompile(`^\d{1,2}:\d\d:\d\d`)
	reTimeHM    = regexp.MustCompile(`^\d{1,2}:\d\d`)
	reISODate   = regexp.MustCompile(`^(\d{4}-\d\d-\d\d|\d{4}/\d\d/\d\d)`)
	reDMYDot    = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}`)
	reDMYSl     = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}`)
	reDMYHy     = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}`)
	reDDMM      = regexp.MustCompile(`^(\d{2})\.(\d{2})`)
	reMMYYYY    = regexp.MustCompile(`^(\d{2})[-.](\d{4})`)
	reNumLet    = regexp.MustCompile(`^(\d+)([a-zA-Z])`)
	reVulgar    = regexp.MustCompile(`^(\d+)([\x{00BC}-\x{00BE}\x{2150}-\x{215E}])`)
	reIsReal    = regexp.MustCompile(`^[+-]?\d+(\.\d\d\d)*,\d+`)
	reIsRealBad = regexp.MustCompile(`^\.\d`)
	reIntDots   = regexp.MustCompile(`^[+-]?\d+(\.\d\d\d)+`)
	reDM        = regexp.MustCompile(`^\d{1,2}/\d{1,2}`)
	reYear4     = regexp.MustCompile(`^\d\d\d\d`)
	reSSNPat    = regexp.MustCompile(`^\d{6}-\d{4}`)
	reTelHy     = regexp.MustCompile(`^\d\d\d-\d\d\d\d`)
	reSerial    = regexp.MustCompile(`^\d+-\d+(-\d+)+`)
	reTel7      = regexp.MustCompile(`^\d{7}`)
	reChapter   = regexp.MustCompile(`^\d+\.\d+(\.\d+)+`)
	reEnReal    = regexp.MustCompile(`^[+-]?\d+(,\d\d\d)*\.\d+`)
	reEnInt     = regexp.MustCompile(`^[+-]?\d+(,\d\d\d)*`)
)

// noDigitAt reports that no digit follows at byte position end,
// standing in for the (?!\d) lookahead.
func noDigitAt(w string, end int) bool {
	return end >= len(w) || !isDigit(rune(w[end]))
}

// noWordCharAt stands in for the (?!\w) lookahead.
func noWordCharAt(w string, end int) bool {
	if end >= len(w) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(w[end:])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// icelandicToFloat parses a number in Icelandic format: dot thousands
// separators, decimal comma.
func icelandicToFloat(s string) float64 {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return atof(s)
}

// englishToFloat parses a number in English format: comma thousands
// separators, decimal point.
func englishToFloat(s string) float64 {
	return atof(strings.ReplaceAll(s, ",", ""))
}

// convertNumberText rewrites the working text of a number token from
// English to Icelandic format. The swap goes through a placeholder
// character so the two separators do not alias.
func convertNumberText(t *tok.Tok) {
	t.SubstituteAll(",", "x")
	t.SubstituteAll(".", ",")
	t.SubstituteAll("x", ".")
}

// unitToken dispatches a number-with-unit match to an amount, percent
// or measurement token, depending on the unit class.
func unitToken(t tok.Tok, unitKey string, val float64) tok.Tok {
	if iso, ok := currencySymbols[unitKey]; ok {
		return tok.Amount(t, iso, val)
	}
	u := siUnits[unitKey]
	v := u.apply(val)
	if isPercentUnit(u.Canon) {
		return tok.Percent(t, v)
	}
	return tok.Measurement(t, u.Canon, v)
}

// parseDigits consumes the longest prefix of a raw token that matches
// one of the numeric-like patterns, returning the typed token and the
// unconsumed remainder. If nothing matches, a single character is
// consumed as an unknown token so that the caller always makes
// progress.
func parseDigits(tk tok.Tok, convertNumbers bool) (tok.Tok, tok.Tok) {
	w := tk.Txt

	// 24-hour clock with milliseconds, H:M:S,ms (milliseconds are
	// discarded), and plain H:M:S and H:M forms.
	if loc := reTimeMS.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		g := w[:loc[1]]
		p := strings.Split(g, ":")
		h, m := atoi(p[0]), atoi(p[1])
		sec := atoi(strings.Split(p[2], ",")[0])
		if h < 24 && m < 60 && sec < 60 {
			t, rest := tk.Split(loc[1])
			return tok.Time(t, h, m, sec), rest
		}
	}
	if loc := reTimeHMS.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		p := strings.Split(w[:loc[1]], ":")
		h, m, sec := atoi(p[0]), atoi(p[1]), atoi(p[2])
		if h < 24 && m < 60 && sec < 60 {
			t, rest := tk.Split(loc[1])
			return tok.Time(t, h, m, sec), rest
		}
	}
	if loc := reTimeHM.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		p := strings.Split(w[:loc[1]], ":")
		h, m := atoi(p[0]), atoi(p[1])
		if h < 24 && m < 60 {
			t, rest := tk.Split(loc[1])
			return tok.Time(t, h, m, 0), rest
		}
	}

	// ISO date, YYYY-MM-DD or YYYY/MM/DD.
	if loc := reISODate.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		g := w[:loc[1]]
		sep := "-"
		if strings.Contains(g, "/") {
			sep = "/"
		}
		p := strings.Split(g, sep)
		y, m, d := atoi(p[0]), atoi(p[1]), atoi(p[2])
		if isValidDate(y, m, d) {
			t, rest := tk.Split(loc[1])
			return tok.Date(t, y, m, d), rest
		}
	}

	// Day, month and year, European order. A two-digit year above 50
	// is read as 19xx, otherwise 20xx; if the month field exceeds 12
	// but the day field fits, the two are assumed swapped (US order).
	for _, re := range []*regexp.Regexp{reDMYDot, reDMYSl, reDMYHy} {
		loc := re.FindStringIndex(w)
		if loc == nil || !noDigitAt(w, loc[1]) {
			continue
		}
		g := w[:loc[1]]
		sep := "."
		if strings.Contains(g, "/") {
			sep = "/"
		} else if strings.Contains(g, "-") {
			sep = "-"
		}
		p := strings.Split(g, sep)
		y := atoi(p[2])
		if y <= 99 {
			if y > 50 {
				y += 1900
			} else {
				y += 2000
			}
		}
		m, d := atoi(p[1]), atoi(p[0])
		if m > 12 && d <= 12 {
			m, d = d, m
		}
		if isValidDate(y, m, d) {
			t, rest := tk.Split(loc[1])
			return tok.Date(t, y, m, d), rest
		}
		break
	}

	// dd.mm without a year. (Allowing hyphens here would interfere
	// with sports scores and ranges such as "10-12 manns".)
	if m := reDDMM.FindStringSubmatch(w); m != nil && noDigitAt(w, len(m[0])) {
		d, mo := atoi(m[1]), atoi(m[2])
		if mo >= 1 && mo <= 12 && d >= 1 && d <= daysInMonth[mo] {
			t, rest := tk.Split(len(m[0]))
			return tok.DateRel(t, 0, mo, d), rest
		}
	}

	// mm.yyyy or mm-yyyy.
	if m := reMMYYYY.FindStringSubmatch(w); m != nil && noDigitAt(w, len(m[0])) {
		mo, y := atoi(m[1]), atoi(m[2])
		if y >= 1776 && y <= 2100 && mo >= 1 && mo <= 12 {
			t, rest := tk.Split(len(m[0]))
			return tok.DateRel(t, y, mo, 0), rest
		}
	}

	// Number with a single trailing letter, e.g. "14b", "33C" - but
	// not if the letter is a unit of measurement such as 'A' or 'l'.
	if m := reNumLet.FindStringSubmatch(w); m != nil && noWordCharAt(w, len(m[0])) {
		if !singleLetterUnits[m[2]] {
			t, rest := tk.Split(len(m[0]))
			return tok.NumberWithLetter(t, atoi(m[1]), m[2]), rest
		}
	}

	// Icelandic-style number directly followed by a unit, degree/
	// percentage sign or currency symbol.
	if m := numWithUnitRE1.FindStringSubmatch(w); m != nil {
		val := icelandicToFloat(m[1])
		t, rest := tk.Split(len(m[0]))
		return unitToken(t, m[4], val), rest
	}

	// The same with an English-style number.
	if m := numWithUnitRE2.FindStringSubmatch(w); m != nil {
		val := englishToFloat(m[1])
		t, rest := tk.Split(len(m[0]))
		if convertNumbers {
			convertNumberText(&t)
		}
		return unitToken(t, m[4], val), rest
	}

	// Digits, a vulgar-fraction character and a unit ("2½l").
	if m := numWithUnitRE3.FindStringSubmatch(w); m != nil {
		frac, _ := utf8.DecodeRuneInString(m[2])
		val := atof(m[1]) + singleCharFractions[frac]
		t, rest := tk.Split(len(m[0]))
		return unitToken(t, m[3], val), rest
	}

	// Digits followed by a vulgar-fraction character ("2½").
	if m := reVulgar.FindStringSubmatch(w); m != nil {
		frac, _ := utf8.DecodeRuneInString(m[2])
		t, rest := tk.Split(len(m[0]))
		return tok.Number(t, atof(m[1])+singleCharFractions[frac]), rest
	}

	// Icelandic-style real number with a decimal comma and possibly
	// dot thousands separators. Must not be followed by digits-dot-
	// digits or a second comma group (then it is something else).
	if loc := reIsReal.FindStringIndex(w); loc != nil {
		rest := w[loc[1]:]
		if !reIsRealBad.MatchString(rest) && !(len(rest) >= 2 && rest[0] == ',' && isDigit(rune(rest[1]))) {
			t, r := tk.Split(loc[1])
			return tok.Number(t, icelandicToFloat(w[:loc[1]])), r
		}
	}

	// Integer with dot thousands separators (the dd.mm check above
	// does not claim these, since a further digit follows its match).
	if loc := reIntDots.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		t, rest := tk.Split(loc[1])
		return tok.Number(t, float64(atoi(strings.ReplaceAll(w[:loc[1]], ".", "")))), rest
	}

	// d/m: a small-numerator fraction such as 1/2 or 2/3, otherwise a
	// relative date.
	if loc := reDM.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		p := strings.Split(w[:loc[1]], "/")
		d, m := atoi(p[0]), atoi(p[1])
		if p[0][0] != '0' && p[1][0] != '0' &&
			((d <= 5 && m <= 6) || (d == 1 && m <= 10)) {
			t, rest := tk.Split(loc[1])
			return tok.Number(t, float64(d)/float64(m)), rest
		}
		if m > 12 && d <= 12 {
			m, d = d, m
		}
		if m >= 1 && m <= 12 && d >= 1 && d <= daysInMonth[m] {
			t, rest := tk.Split(loc[1])
			return tok.DateRel(t, 0, m, d), rest
		}
	}

	// Four digits in the plausible year range.
	if loc := reYear4.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		n := atoi(w[:4])
		if n >= 1776 && n <= 2100 {
			t, rest := tk.Split(4)
			return tok.Year(t, n), rest
		}
	}

	// Social security number (kennitala).
	if loc := reSSNPat.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		if validSSN(w[:11]) {
			t, rest := tk.Split(11)
			return tok.SSN(t), rest
		}
	}

	// DDD-DDDD: a telephone number if the first digit is a valid
	// telephone prefix, otherwise some sort of serial number.
	if loc := reTelHy.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		if strings.ContainsRune(telnoPrefixes, rune(w[0])) {
			t, rest := tk.Split(8)
			return tok.Telno(t, w[:8], ""), rest
		}
		t, rest := tk.Split(loc[1])
		return tok.SerialNumber(t), rest
	}

	// Multi-component serial number.
	if loc := reSerial.FindStringIndex(w); loc != nil {
		t, rest := tk.Split(loc[1])
		return tok.SerialNumber(t), rest
	}

	// Seven digits with a telephone prefix, normalized to DDD-DDDD.
	if loc := reTel7.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		if strings.ContainsRune(telnoPrefixes, rune(w[0])) {
			t, rest := tk.Split(7)
			return tok.Telno(t, w[:3]+"-"+w[3:7], ""), rest
		}
	}

	// Chapter-style ordinal such as 2.5.1 (checked before numbers
	// with decimal points).
	if loc := reChapter.FindStringIndex(w); loc != nil {
		n := atoi(strings.ReplaceAll(w[:loc[1]], ".", ""))
		t, rest := tk.Split(loc[1])
		return tok.Ordinal(t, n), rest
	}

	// English-style real number.
	if loc := reEnReal.FindStringIndex(w); loc != nil {
		val := englishToFloat(w[:loc[1]])
		t, rest := tk.Split(loc[1])
		if convertNumbers {
			convertNumberText(&t)
		}
		return tok.Number(t, val), rest
	}

	// Integer, possibly with comma thousands separators.
	if loc := reEnInt.FindStringIndex(w); loc != nil && noDigitAt(w, loc[1]) {
		val := englishToFloat(w[:loc[1]])
		t, rest := tk.Split(loc[1])
		if convertNumbers {
			t.SubstituteAll(",", ".")
		}
		return tok.Number(t, val), rest
	}

	// Nothing matched: consume one character as unknown.
	_, size := utf8.DecodeRuneInString(w)
	t, rest := tk.Split(size)
	return tok.Unknown(t), rest
}
