package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordanet/tokenize/tok"
)

func parseDigitsText(t *testing.T, text string) (tok.Tok, tok.Tok) {
	t.Helper()
	head, rest := parseDigits(tok.FromSource(tok.RawToken, text), false)
	return head, rest
}

func TestParseDigitsTimes(t *testing.T) {
	tests := []struct {
		input string
		h, m, s int
		rest  string
	}{
		{"14:30", 14, 30, 0, ""},
		{"14:30:15", 14, 30, 15, ""},
		{"14:30:15,12", 14, 30, 15, ""},
		{"1:05", 1, 5, 0, ""},
		{"23:59:59.", 23, 59, 59, "."},
	}
	for _, tc := range tests {
		head, rest := parseDigitsText(t, tc.input)
		require.Equal(t, tok.TimeToken, head.Kind, "input %q", tc.input)
		assert.Equal(t, tok.TimeVal{H: tc.h, M: tc.m, S: tc.s}, head.Val, "input %q", tc.input)
		assert.Equal(t, tc.rest, rest.Txt, "input %q", tc.input)
	}

	// An out-of-range hour is not a time.
	head, _ := parseDigitsText(t, "25:30")
	assert.NotEqual(t, tok.TimeToken, head.Kind)
}

func TestParseDigitsDates(t *testing.T) {
	head, _ := parseDigitsText(t, "2019-07-01")
	require.Equal(t, tok.DateToken, head.Kind)
	assert.Equal(t, tok.DateVal{Y: 2019, M: 7, D: 1}, head.Val)

	head, _ = parseDigitsText(t, "25.9.1982")
	require.Equal(t, tok.DateToken, head.Kind)
	assert.Equal(t, tok.DateVal{Y: 1982, M: 9, D: 25}, head.Val)

	// Both orderings of day and month are accepted.
	for _, input := range []string{"13/7/1990", "7/13/1990"} {
		head, _ = parseDigitsText(t, input)
		require.Equal(t, tok.DateToken, head.Kind, "input %q", input)
		assert.Equal(t, tok.DateVal{Y: 1990, M: 7, D: 13}, head.Val, "input %q", input)
	}

	// Two-digit years: over 50 is the twentieth century.
	head, _ = parseDigitsText(t, "1.1.51")
	assert.Equal(t, tok.DateVal{Y: 1951, M: 1, D: 1}, head.Val)
	head, _ = parseDigitsText(t, "1.1.50")
	assert.Equal(t, tok.DateVal{Y: 2050, M: 1, D: 1}, head.Val)

	// dd.mm without a year is a relative date.
	head, _ = parseDigitsText(t, "25.09")
	require.Equal(t, tok.DateRelToken, head.Kind)
	assert.Equal(t, tok.DateVal{Y: 0, M: 9, D: 25}, head.Val)

	// mm.yyyy is a relative date without a day.
	head, _ = parseDigitsText(t, "10.2007")
	require.Equal(t, tok.DateRelToken, head.Kind)
	assert.Equal(t, tok.DateVal{Y: 2007, M: 10, D: 0}, head.Val)

	// An invalid calendar date falls through to other readings.
	head, _ = parseDigitsText(t, "30.02.2019")
	assert.NotEqual(t, tok.DateToken, head.Kind)
}

func TestParseDigitsFractionsVsDates(t *testing.T) {
	// Small-numerator d/m patterns are fractions, not dates.
	head, _ := parseDigitsText(t, "1/2")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 0.5, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "2/3")
	require.Equal(t, tok.NumberToken, head.Kind)

	head, _ = parseDigitsText(t, "24/12")
	require.Equal(t, tok.DateRelToken, head.Kind)
	assert.Equal(t, tok.DateVal{Y: 0, M: 12, D: 24}, head.Val)
}

func TestParseDigitsNumbers(t *testing.T) {
	head, _ := parseDigitsText(t, "1.500")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 1500, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "1.500,5")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 1500.5, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "-24,7")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, -24.7, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "1,234.5")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 1234.5, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "42")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 42, head.Val.(tok.NumberVal).N, 1e-9)

	// Vulgar fraction appended to digits.
	head, _ = parseDigitsText(t, "2½")
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.InDelta(t, 2.5, head.Val.(tok.NumberVal).N, 1e-9)
}

func TestParseDigitsConvertNumbers(t *testing.T) {
	head, _ := parseDigits(tok.FromSource(tok.RawToken, "1,234.5"), true)
	require.Equal(t, tok.NumberToken, head.Kind)
	assert.Equal(t, "1.234,5", head.Txt)
	assert.Equal(t, "1,234.5", head.Original())
}

func TestParseDigitsYear(t *testing.T) {
	head, _ := parseDigitsText(t, "1982")
	require.Equal(t, tok.YearToken, head.Kind)
	assert.Equal(t, 1982, head.Val)

	// Outside the year range, four digits are just a number.
	head, _ = parseDigitsText(t, "1255")
	assert.Equal(t, tok.NumberToken, head.Kind)
	head, _ = parseDigitsText(t, "3000")
	assert.Equal(t, tok.NumberToken, head.Kind)
}

func TestParseDigitsSSN(t *testing.T) {
	// 120174 with correct check digit.
	head, _ := parseDigitsText(t, "120174-3399")
	require.Equal(t, tok.SSNToken, head.Kind)
	assert.Equal(t, "120174-3399", head.Txt)

	// An invalid checksum is not an SSN.
	head, _ = parseDigitsText(t, "120174-3388")
	assert.NotEqual(t, tok.SSNToken, head.Kind)
}

func TestParseDigitsTelno(t *testing.T) {
	head, _ := parseDigitsText(t, "581-2345")
	require.Equal(t, tok.TelnoToken, head.Kind)
	assert.Equal(t, tok.TelnoVal{Number: "581-2345", CC: "354"}, head.Val)

	head, _ = parseDigitsText(t, "5812345")
	require.Equal(t, tok.TelnoToken, head.Kind)
	assert.Equal(t, tok.TelnoVal{Number: "581-2345", CC: "354"}, head.Val)

	// A leading digit outside the telephone prefixes is a serial
	// number instead.
	head, _ = parseDigitsText(t, "123-4567")
	assert.Equal(t, tok.SerialNumberToken, head.Kind)
}

func TestParseDigitsSerialNumber(t *testing.T) {
	head, _ := parseDigitsText(t, "394-8362-21")
	assert.Equal(t, tok.SerialNumberToken, head.Kind)
}

func TestParseDigitsOrdinalChapter(t *testing.T) {
	head, _ := parseDigitsText(t, "2.5.1")
	require.Equal(t, tok.OrdinalToken, head.Kind)
	assert.Equal(t, 251, head.Val)
}

func TestParseDigitsNumberWithLetter(t *testing.T) {
	head, _ := parseDigitsText(t, "4B")
	require.Equal(t, tok.NumWithLetterToken, head.Kind)
	assert.Equal(t, tok.NumLetterVal{N: 4, Letter: "B"}, head.Val)

	// A single-letter SI unit is a measurement, not a letter address.
	head, _ = parseDigitsText(t, "5l")
	assert.Equal(t, tok.MeasurementToken, head.Kind)
}

func TestParseDigitsUnits(t *testing.T) {
	head, _ := parseDigitsText(t, "5kg")
	require.Equal(t, tok.MeasurementToken, head.Kind)
	assert.Equal(t, tok.MeasurementVal{Unit: "kg", N: 5}, head.Val)

	head, _ = parseDigitsText(t, "45%")
	require.Equal(t, tok.PercentToken, head.Kind)
	assert.InDelta(t, 45, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "10‰")
	require.Equal(t, tok.PercentToken, head.Kind)
	assert.InDelta(t, 1, head.Val.(tok.NumberVal).N, 1e-9)

	head, _ = parseDigitsText(t, "220V")
	require.Equal(t, tok.MeasurementToken, head.Kind)
	assert.Equal(t, tok.MeasurementVal{Unit: "V", N: 220}, head.Val)

	head, _ = parseDigitsText(t, "100$")
	require.Equal(t, tok.AmountToken, head.Kind)
	assert.Equal(t, "USD", head.Val.(tok.AmountVal).ISO)
}

func TestParseDigitsUnknown(t *testing.T) {
	// The parser always consumes at least one character.
	head, rest := parseDigitsText(t, "1:2:3:4")
	assert.NotEqual(t, "", head.Txt)
	assert.Less(t, len(rest.Txt), len("1:2:3:4"))
}
