package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordanet/tokenize"
)

func TestGatherOptions(t *testing.T) {
	kludgyOrdinals = "translate"
	convertNumbers = true
	defer func() {
		kludgyOrdinals = "pass"
		convertNumbers = false
	}()

	opts, err := gatherOptions()
	require.NoError(t, err)

	o := applyAll(opts)
	assert.True(t, o.ConvertNumbers)
	assert.Equal(t, tokenize.KludgyOrdinalsTranslate, o.HandleKludgyOrdinals)
}

func TestGatherOptionsRejectsUnknownMode(t *testing.T) {
	kludgyOrdinals = "bogus"
	defer func() { kludgyOrdinals = "pass" }()
	_, err := gatherOptions()
	require.Error(t, err)
}

func applyAll(opts []tokenize.Option) tokenize.Options {
	var o tokenize.Options
	for _, f := range opts {
		f(&o)
	}
	return o
}
