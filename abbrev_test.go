package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviationRegistry(t *testing.T) {
	a := initAbbreviations()

	// Full forms with periods are in the dictionary.
	require.True(t, a.isKnown("t.d."))
	m := a.lookup("t.d.")
	require.NotEmpty(t, m)
	assert.Equal(t, "til dæmis", m[0].Stem)

	// Single-period abbreviations are tracked without their period.
	assert.True(t, a.isAbbrevWithPeriod("kl"))
	assert.True(t, a.isAbbrevWithPeriod("t.d"))

	// Case fallback: an uppercase form is allowed as an abbreviation
	// unless the exact form is separately defined. "DR" is Danmarks
	// Radio, not "doktor".
	assert.True(t, a.isAbbrevWithPeriod("Dr"))
	assert.False(t, a.isAbbrevWithPeriod("DR"))

	// Lookup falls back to lowercase.
	assert.NotNil(t, a.lookup("Kl."))
	assert.Nil(t, a.lookup("zzz."))

	// Finisher classes.
	assert.True(t, a.finishers["o.s.frv."])
	assert.True(t, a.notFinishers["kl."])
	assert.True(t, a.nameFinishers["dr."])
}

func TestParseAbbreviationsRejectsBadEntries(t *testing.T) {
	_, err := parseAbbreviations([]byte("abbreviations:\n  - {meaning: x}\n"))
	require.Error(t, err)

	_, err = parseAbbreviations([]byte("not yaml: ["))
	require.Error(t, err)
}
