package tok

// The constructors below retag a carrier token with a kind and a
// typed payload, keeping its text and origin information intact.

// Punctuation tags t as punctuation. The normalized form defaults to
// the token text; its position class is derived from the normalized
// form.
func Punctuation(t Tok, normalized string) Tok {
	if normalized == "" {
		normalized = t.Txt
	}
	t.Kind = PunctuationToken
	t.Val = PunctVal{Pos: PosClassOf(normalized), Normalized: normalized}
	return t
}

// Time tags t as a time of day.
func Time(t Tok, h, m, s int) Tok {
	t.Kind = TimeToken
	t.Val = TimeVal{H: h, M: m, S: s}
	return t
}

// Date tags t as a date that has not yet been classified as absolute
// or relative.
func Date(t Tok, y, m, d int) Tok {
	t.Kind = DateToken
	t.Val = DateVal{Y: y, M: m, D: d}
	return t
}

// DateAbs tags t as an absolute date (year, month and day all known).
func DateAbs(t Tok, y, m, d int) Tok {
	t.Kind = DateAbsToken
	t.Val = DateVal{Y: y, M: m, D: d}
	return t
}

// DateRel tags t as a relative date; zero components are unspecified.
func DateRel(t Tok, y, m, d int) Tok {
	t.Kind = DateRelToken
	t.Val = DateVal{Y: y, M: m, D: d}
	return t
}

// Timestamp tags t as an unclassified timestamp.
func Timestamp(t Tok, y, mo, d, h, m, s int) Tok {
	t.Kind = TimestampToken
	t.Val = TimestampVal{Y: y, Mo: mo, D: d, H: h, M: m, S: s}
	return t
}

// TimestampAbs tags t as an absolute timestamp.
func TimestampAbs(t Tok, y, mo, d, h, m, s int) Tok {
	t.Kind = TimestampAbsToken
	t.Val = TimestampVal{Y: y, Mo: mo, D: d, H: h, M: m, S: s}
	return t
}

// TimestampRel tags t as a relative timestamp.
func TimestampRel(t Tok, y, mo, d, h, m, s int) Tok {
	t.Kind = TimestampRelToken
	t.Val = TimestampVal{Y: y, Mo: mo, D: d, H: h, M: m, S: s}
	return t
}

// Year tags t as a year; negative years are BCE.
func Year(t Tok, n int) Tok {
	t.Kind = YearToken
	t.Val = n
	return t
}

// Telno tags t as a telephone number in the normalized DDD-DDDD form.
func Telno(t Tok, telno, cc string) Tok {
	if cc == "" {
		cc = "354"
	}
	t.Kind = TelnoToken
	t.Val = TelnoVal{Number: telno, CC: cc}
	return t
}

// Email tags t as an e-mail address.
func Email(t Tok) Tok {
	t.Kind = EmailToken
	return t
}

// Number tags t as a number.
func Number(t Tok, n float64) Tok {
	t.Kind = NumberToken
	t.Val = NumberVal{N: n}
	return t
}

// NumberWithCases tags t as a number stated in words, carrying its
// possible cases and genders.
func NumberWithCases(t Tok, n float64, cases, genders []string) Tok {
	t.Kind = NumberToken
	t.Val = NumberVal{N: n, Cases: cases, Genders: genders}
	return t
}

// NumberWithLetter tags t as a number with a single trailing letter,
// as in street addresses ("4B").
func NumberWithLetter(t Tok, n int, letter string) Tok {
	t.Kind = NumWithLetterToken
	t.Val = NumLetterVal{N: n, Letter: letter}
	return t
}

// Currency tags t as a currency code or sign.
func Currency(t Tok, iso string) Tok {
	t.Kind = CurrencyToken
	t.Val = CurrencyVal{ISO: iso}
	return t
}

// Amount tags t as a quantity with a currency code.
func Amount(t Tok, iso string, n float64) Tok {
	t.Kind = AmountToken
	t.Val = AmountVal{N: n, ISO: iso}
	return t
}

// Percent tags t as a percentage.
func Percent(t Tok, n float64) Tok {
	t.Kind = PercentToken
	t.Val = NumberVal{N: n}
	return t
}

// Ordinal tags t as an ordinal number.
func Ordinal(t Tok, n int) Tok {
	t.Kind = OrdinalToken
	t.Val = n
	return t
}

// URL tags t as a uniform resource locator.
func URL(t Tok) Tok {
	t.Kind = URLToken
	return t
}

// Domain tags t as an internet domain name.
func Domain(t Tok) Tok {
	t.Kind = DomainToken
	return t
}

// Hashtag tags t as a hash tag.
func Hashtag(t Tok) Tok {
	t.Kind = HashtagToken
	return t
}

// SSN tags t as a social security number (kennitala).
func SSN(t Tok) Tok {
	t.Kind = SSNToken
	return t
}

// Molecule tags t as a molecular formula.
func Molecule(t Tok) Tok {
	t.Kind = MoleculeToken
	return t
}

// Username tags t as a social-media user name; username is the bare
// name without the leading '@'.
func Username(t Tok, username string) Tok {
	t.Kind = UsernameToken
	t.Val = username
	return t
}

// SerialNumber tags t as a serial number.
func SerialNumber(t Tok) Tok {
	t.Kind = SerialNumberToken
	return t
}

// Measurement tags t as a measured quantity; n is the value scaled to
// the base form of unit.
func Measurement(t Tok, unit string, n float64) Tok {
	t.Kind = MeasurementToken
	t.Val = MeasurementVal{Unit: unit, N: n}
	return t
}

// Word tags t as a word, optionally carrying a meaning list.
func Word(t Tok, meanings []Meaning) Tok {
	t.Kind = WordToken
	if meanings != nil {
		t.Val = meanings
	} else {
		t.Val = nil
	}
	return t
}

// Unknown tags t as an unrecognized token.
func Unknown(t Tok) Tok {
	t.Kind = UnknownToken
	return t
}

// BeginParagraph tags t as a paragraph-begin marker.
func BeginParagraph(t Tok) Tok {
	t.Kind = BeginParagraphToken
	return t
}

// EndParagraph tags t as a paragraph-end marker.
func EndParagraph(t Tok) Tok {
	t.Kind = EndParagraphToken
	return t
}

// BeginSentence creates a sentence-begin marker.
func BeginSentence() Tok {
	return Tok{Kind: BeginSentenceToken, Val: SentenceVal{ErrIndex: -1}}
}

// EndSentence creates a sentence-end marker.
func EndSentence() Tok {
	return Tok{Kind: EndSentenceToken}
}

// EndSentinel creates the stream-terminating sentinel.
func EndSentinel() Tok {
	return Tok{Kind: EndSentinelToken}
}

// SplitSentence tags t as a sentence-split marker.
func SplitSentence(t Tok) Tok {
	t.Kind = SplitSentenceToken
	t.Txt = ""
	t.Val = nil
	return t.ClearOrigin()
}
