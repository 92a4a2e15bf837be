// Package tokenize splits natural-language text, with Icelandic as
// the target language, into a typed stream of tokens: words,
// punctuation, numbers, amounts, dates, times, and the many surface
// variants in between. Every emitted token retains a lossless mapping
// back to its exact position in the original input.
package tokenize

import (
	"iter"
	"strings"

	"github.com/ordanet/tokenize/tok"
)

// Tokenize tokenizes a text string. The returned sequence is lazy:
// tokens are produced on demand, and abandoning the iteration stops
// the pipeline.
func Tokenize(text string, opts ...Option) iter.Seq[tok.Tok] {
	return TokenizeChunks(singleChunk(text), opts...)
}

// TokenizeChunks tokenizes a sequence of text chunks, such as lines
// read from a file. An empty chunk splits sentences.
func TokenizeChunks(chunks iter.Seq[string], opts ...Option) iter.Seq[tok.Tok] {
	o := applyOptions(opts)
	abbr := initAbbreviations()

	stream := parseTokens(genRough(chunks, o), o, abbr)
	stream = parseParticles(stream, o, abbr)
	stream = parseSentences(stream)
	stream = parsePhrases1(stream, abbr)
	stream = parseDateAndTime(stream)
	if o.WithAnnotation {
		stream = parsePhrases2(stream, o.CoalescePercent)
	}
	return dropSentinel(stream)
}

func singleChunk(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(text)
	}
}

// dropSentinel filters out the end sentinel, which must never leak
// from the top-level iterator.
func dropSentinel(src iter.Seq[tok.Tok]) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		for t := range src {
			if t.Kind == tok.EndSentinelToken {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// NormalizedText returns a token's text with punctuation normalized.
func NormalizedText(t tok.Tok) string {
	if t.Kind == tok.PunctuationToken {
		return punctNormalized(t)
	}
	return t.Txt
}

// TextFromTokens joins the texts of the given tokens with spaces,
// without normalization.
func TextFromTokens(tokens []tok.Tok) string {
	var parts []string
	for _, t := range tokens {
		if t.Txt != "" {
			parts = append(parts, t.Txt)
		}
	}
	return strings.Join(parts, " ")
}

// NormalizedTextFromTokens joins the normalized texts of the given
// tokens with spaces.
func NormalizedTextFromTokens(tokens []tok.Tok) string {
	var parts []string
	for _, t := range tokens {
		if s := NormalizedText(t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// SplitIntoSentences performs a shallow tokenization of the input and
// returns one string per sentence, with token texts separated by
// spaces. If normalize is true, punctuation contributes its normalized
// form.
func SplitIntoSentences(text string, normalize bool, opts ...Option) iter.Seq[string] {
	opts = append(opts, WithAnnotation(false))
	return func(yield func(string) bool) {
		var curr []string
		for t := range Tokenize(text, opts...) {
			if t.Kind.IsEnd() {
				if len(curr) > 0 {
					if !yield(strings.Join(curr, " ")) {
						return
					}
					curr = curr[:0]
				}
				continue
			}
			txt := t.Txt
			if normalize {
				txt = NormalizedText(t)
			}
			if txt != "" {
				curr = append(curr, txt)
			}
		}
		if len(curr) > 0 {
			yield(strings.Join(curr, " "))
		}
	}
}

// MarkParagraphs inserts paragraph markers into plain text, one
// paragraph per newline-separated segment.
func MarkParagraphs(text string) string {
	if text == "" {
		return "[[ ]]"
	}
	return "[[ " + strings.Join(strings.Split(text, "\n"), " ]] [[ ") + " ]]"
}

// Sentence is one sentence of a paragraph: the index of its
// sentence-begin token in the underlying token slice, and the content
// tokens between the begin and end markers.
type Sentence struct {
	Begin  int
	Tokens []tok.Tok
}

// Paragraphs groups a token slice into paragraphs of sentences.
// Sentences containing only punctuation are dropped.
func Paragraphs(tokens []tok.Tok) [][]Sentence {
	if len(tokens) == 0 {
		return nil
	}
	validSent := func(sent []tok.Tok) bool {
		for _, t := range sent {
			if t.Kind != tok.PunctuationToken {
				return true
			}
		}
		return false
	}

	var result [][]Sentence
	var current []Sentence
	var sent []tok.Tok
	sentBegin := 0

	for ix, t := range tokens {
		switch t.Kind {
		case tok.BeginSentenceToken:
			sent = nil
			sentBegin = ix
		case tok.EndSentenceToken:
			if validSent(sent) {
				current = append(current, Sentence{Begin: sentBegin, Tokens: sent})
			}
			sent = nil
		case tok.BeginParagraphToken, tok.EndParagraphToken:
			if validSent(sent) {
				current = append(current, Sentence{Begin: sentBegin, Tokens: sent})
			}
			sent = nil
			if len(current) > 0 {
				result = append(result, current)
				current = nil
			}
		default:
			sent = append(sent, t)
		}
	}
	if validSent(sent) {
		current = append(current, Sentence{Begin: sentBegin, Tokens: sent})
	}
	if len(current) > 0 {
		result = append(result, current)
	}
	return result
}
