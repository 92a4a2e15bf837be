package tokenize

import (
	"iter"

	"github.com/ordanet/tokenize/tok"
)

// parseSentences frames runs of content tokens with sentence-begin
// and sentence-end markers, using end-of-sentence punctuation,
// paragraph markers and sentence-split markers as boundaries.
func parseSentences(src iter.Seq[tok.Tok]) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		next, stop := iter.Pull(src)
		defer stop()

		inSentence := false
		token, hasToken := next()
		if !hasToken {
			return
		}

	loop:
		for {
			nextTok, ok := next()
			if !ok {
				break
			}
			switch {
			case token.Kind == tok.BeginParagraphToken || token.Kind == tok.EndParagraphToken:
				// A block boundary finishes the current sentence.
				if inSentence {
					if !yield(tok.EndSentence()) {
						return
					}
					inSentence = false
				}
				if token.Kind == tok.BeginParagraphToken && nextTok.Kind == tok.EndParagraphToken {
					// An empty paragraph: skip both markers. The origin
					// bytes of the two markers are dropped here.
					token, hasToken = next()
					if !hasToken {
						break loop
					}
					continue
				}
			case token.Kind == tok.EndSentinelToken:
				// Nothing to do; the sentinel is passed through and
				// filtered by the last stage.
			case token.Kind == tok.SplitSentenceToken:
				// An empty line finishes the current sentence even
				// without ending punctuation; the marker itself is
				// swallowed.
				if inSentence {
					if !yield(tok.EndSentence()) {
						return
					}
					inSentence = false
				}
				token = nextTok
				continue
			default:
				if !inSentence {
					if !yield(tok.BeginSentence()) {
						return
					}
					inSentence = true
				}
				n := punctNormalized(token)
				if token.Kind == tok.PunctuationToken && endOfSentence[n] &&
					!(n == "…" && !couldBeEndOfSentence(nextTok, false, false)) {
					// Combining punctuation ("??!!").
					for punctCombinations[punctNormalized(token)] && punctCombinations[nextTok.Txt] {
						// The normalized form comes from the first
						// token, except that "…?" reads as a question.
						v := punctNormalized(token)
						if v == "…" && punctNormalized(nextTok) == "?" {
							v = "?"
						}
						token = tok.Punctuation(token.Concatenate(nextTok, ""), v)
						if nextTok, ok = next(); !ok {
							break loop
						}
					}
					// The sentence may close with right parens and
					// quotation marks after the final period.
					for nextTok.Kind == tok.PunctuationToken && sentenceFinishers[punctNormalized(nextTok)] {
						if !yield(token) {
							return
						}
						token = nextTok
						if nextTok, ok = next(); !ok {
							break loop
						}
					}
					if !yield(token) {
						return
					}
					token = tok.EndSentence()
					inSentence = false
				}
			}

			if !yield(token) {
				return
			}
			token = nextTok
		}

		// Final token from the lookahead.
		if hasToken && token.Kind != tok.SplitSentenceToken {
			if !inSentence && !token.Kind.IsEnd() {
				if !yield(tok.BeginSentence()) {
					return
				}
				inSentence = true
			}
			if !yield(token) {
				return
			}
			if inSentence && (token.Kind == tok.EndSentenceToken || token.Kind == tok.EndParagraphToken) {
				inSentence = false
			}
		}
		if inSentence {
			yield(tok.EndSentence())
		}
	}
}
