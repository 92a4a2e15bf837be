package tok

// PunctPos classifies how a punctuation token attaches to its
// neighbours when text is reassembled.
type PunctPos int

const (
	// PunctLeft glues to the token on its right ("opening" punctuation).
	PunctLeft PunctPos = iota + 1
	// PunctCenter takes a space on both sides.
	PunctCenter
	// PunctRight glues to the token on its left ("closing" punctuation).
	PunctRight
	// PunctNone glues on both sides.
	PunctNone
	// PunctWord is the spacing class of ordinary words.
	PunctWord
)

// PunctVal is the payload of a PunctuationToken.
type PunctVal struct {
	Pos        PunctPos
	Normalized string
}

// TimeVal is the payload of a TimeToken.
type TimeVal struct {
	H, M, S int
}

// DateVal is the payload of DateToken, DateAbsToken and DateRelToken.
// A zero component means "unspecified" in relative dates.
type DateVal struct {
	Y, M, D int
}

// TimestampVal is the payload of the timestamp kinds.
type TimestampVal struct {
	Y, Mo, D, H, M, S int
}

// NumberVal is the payload of NumberToken and PercentToken. Cases and
// genders are only present when the number was originally stated in
// words.
type NumberVal struct {
	N       float64
	Cases   []string
	Genders []string
}

// TelnoVal is the payload of a TelnoToken. Number has the normalized
// form DDD-DDDD; CC is the country code, "354" by default.
type TelnoVal struct {
	Number string
	CC     string
}

// CurrencyVal is the payload of a CurrencyToken.
type CurrencyVal struct {
	ISO     string
	Cases   []string
	Genders []string
}

// AmountVal is the payload of an AmountToken: a quantity with an ISO
// currency code.
type AmountVal struct {
	N       float64
	ISO     string
	Cases   []string
	Genders []string
}

// MeasurementVal is the payload of a MeasurementToken: a value in the
// base form of Unit (e.g. metres for "0,5 km").
type MeasurementVal struct {
	Unit string
	N    float64
}

// NumLetterVal is the payload of a NumWithLetterToken such as "4B".
type NumLetterVal struct {
	N      int
	Letter string
}

// SentenceVal is the payload of a BeginSentenceToken. ErrIndex is -1
// when no error position is recorded.
type SentenceVal struct {
	NumParses int
	ErrIndex  int
}

// Meaning is one entry of the meaning list attached to a WordToken
// when the word is a known abbreviation.
type Meaning struct {
	// Stem is the expansion of the abbreviation ("til dæmis").
	Stem string
	// Cat is the word category ("ao", "kvk", ...).
	Cat string
	// Fl is the word class flag, "skst" for abbreviations.
	Fl string
	// Abbrev is the abbreviated form, including its periods.
	Abbrev string
}
