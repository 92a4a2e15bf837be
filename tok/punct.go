package tok

import "strings"

// Punctuation position classes. A single-rune normalized form is
// looked up in these sets to decide how it attaches to neighbouring
// tokens; anything not listed is treated as center punctuation.
const (
	// LeftPunctuation glues to the following token.
	LeftPunctuation = "([{„‚«‹#@$€£¥₽"
	// RightPunctuation glues to the preceding token.
	RightPunctuation = ")]}.,:;!?%‰“”»›’‘…°"
	// NonePunctuation glues on both sides.
	NonePunctuation = "-–—−/\\'´`^~²³_"
	// CenterPunctuation is spaced on both sides.
	CenterPunctuation = "&=±×·|+<>*"
)

// PosClassOf returns the position class for a normalized punctuation
// form. Multi-rune forms default to center.
func PosClassOf(normalized string) PunctPos {
	if len(normalized) == 0 {
		return PunctCenter
	}
	r := []rune(normalized)
	if len(r) != 1 {
		return PunctCenter
	}
	switch {
	case strings.ContainsRune(LeftPunctuation, r[0]):
		return PunctLeft
	case strings.ContainsRune(RightPunctuation, r[0]):
		return PunctRight
	case strings.ContainsRune(NonePunctuation, r[0]):
		return PunctNone
	}
	return PunctCenter
}
