package tokenize

// KludgyOrdinalMode selects how abbreviated spelled-out ordinals such
// as "1sti" and "3ja" are handled.
type KludgyOrdinalMode int

const (
	// KludgyOrdinalsPassThrough leaves them unchanged as word tokens.
	KludgyOrdinalsPassThrough KludgyOrdinalMode = iota
	// KludgyOrdinalsTranslate converts those with a defined ordinal
	// value into ordinal tokens ("1sti" -> 1); the rest stay words.
	KludgyOrdinalsTranslate
	// KludgyOrdinalsModify rewrites them to the corresponding word
	// ("1sti" -> "fyrsti"). The rewrite lengthens the text, so the
	// affected tokens lose origin tracking.
	KludgyOrdinalsModify
)

// Options control the tokenizer pipeline.
type Options struct {
	// ConvertNumbers rewrites English-formatted numeric literals to
	// Icelandic style (decimal comma, dot thousands) in the working
	// text.
	ConvertNumbers bool
	// ConvertMeasurements rewrites the text of a coalesced degree
	// measurement to the canonical "<number> °C" form. The value is
	// converted to Kelvin whether or not this is set. The rewritten
	// tokens lose origin tracking.
	ConvertMeasurements bool
	// ReplaceCompositeGlyphs composes decomposed glyphs to single code
	// points during rough splitting. On by default.
	ReplaceCompositeGlyphs bool
	// ReplaceHTMLEscapes decodes HTML named and numeric entities.
	ReplaceHTMLEscapes bool
	// HandleKludgyOrdinals selects the treatment of forms like "1sti".
	HandleKludgyOrdinals KludgyOrdinalMode
	// WithAnnotation enables the final phrase pass (spelled-out number
	// multipliers, composite hyphen constructions, amounts). On by
	// default.
	WithAnnotation bool
	// CoalescePercent merges a number with a following spelled-out
	// percentage word into a single percent token.
	CoalescePercent bool
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		ReplaceCompositeGlyphs: true,
		WithAnnotation:         true,
	}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	return o
}

// ConvertNumbers sets Options.ConvertNumbers.
func ConvertNumbers(on bool) Option {
	return func(o *Options) { o.ConvertNumbers = on }
}

// ConvertMeasurements sets Options.ConvertMeasurements.
func ConvertMeasurements(on bool) Option {
	return func(o *Options) { o.ConvertMeasurements = on }
}

// ReplaceCompositeGlyphs sets Options.ReplaceCompositeGlyphs.
func ReplaceCompositeGlyphs(on bool) Option {
	return func(o *Options) { o.ReplaceCompositeGlyphs = on }
}

// ReplaceHTMLEscapes sets Options.ReplaceHTMLEscapes.
func ReplaceHTMLEscapes(on bool) Option {
	return func(o *Options) { o.ReplaceHTMLEscapes = on }
}

// HandleKludgyOrdinals sets the kludgy-ordinal mode.
func HandleKludgyOrdinals(mode KludgyOrdinalMode) Option {
	return func(o *Options) { o.HandleKludgyOrdinals = mode }
}

// WithAnnotation sets Options.WithAnnotation.
func WithAnnotation(on bool) Option {
	return func(o *Options) { o.WithAnnotation = on }
}

// CoalescePercent sets Options.CoalescePercent.
func CoalescePercent(on bool) Option {
	return func(o *Options) { o.CoalescePercent = on }
}
