package tokenize

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/ordanet/tokenize/tok"
)

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// isAlphaString reports whether s is non-empty and purely alphabetic.
func isAlphaString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isLowerString(s string) bool {
	return s != "" && s == strings.ToLower(s)
}

func isUpperString(s string) bool {
	return s != "" && s == strings.ToUpper(s)
}

// emitter wraps a yield function so that a refused token poisons all
// further emission, letting deeply nested scanning code unwind
// without yielding again.
type emitter struct {
	yield func(tok.Tok) bool
	done  bool
}

func (e *emitter) put(t tok.Tok) bool {
	if e.done {
		return false
	}
	if !e.yield(t) {
		e.done = true
	}
	return !e.done
}

// parseTokens is the primary tokenizer. It consumes rough tokens and
// emits typed tokens: words, punctuation, e-mail addresses, URLs,
// domains, hashtags, usernames, molecules, amounts and everything the
// digit parser recognizes. Any byte that matches nothing is emitted
// as a single-character unknown token, so the stage always makes
// progress.
func parseTokens(src iter.Seq[tok.Tok], o Options, abbr *abbrevSet) iter.Seq[tok.Tok] {
	return func(yield func(tok.Tok) bool) {
		e := &emitter{yield: yield}
		for rt := range src {
			if !scanRough(e, rt, o, abbr) {
				return
			}
		}
		// A sentinel that the final stage filters out.
		e.put(tok.EndSentinel())
	}
}

// scanRough processes one rough token; it returns false if the
// consumer stopped pulling.
func scanRough(e *emitter, rt tok.Tok, o Options, abbr *abbrevSet) bool {
	if rt.Txt == "" {
		// An empty rough token signals an empty line, splitting
		// sentences.
		return e.put(tok.SplitSentence(rt))
	}

	// Shortcut for the most common case: a pure word.
	if _, isUnit := siUnits[rt.Txt]; isAlphaString(rt.Txt) || isUnit {
		return e.put(tok.Word(rt, nil))
	}

	if utf8.RuneCountInString(rt.Txt) > 1 {
		r0 := firstRune(rt.Txt)
		size0 := utf8.RuneLen(r0)
		r1 := firstRune(rt.Txt[size0:])
		if strings.ContainsRune(signPrefix, r0) && isDigit(r1) {
			// Digit preceded by a sign: parse as a number. Unsigned
			// numbers wait until the kludgy-ordinal and domain checks
			// below have had their chance.
			var t tok.Tok
			t, rt = parseDigits(rt, o.ConvertNumbers)
			if !e.put(t) {
				return false
			}
			if rt.Txt == "" {
				return true
			}
		} else if isCompositeHyphen(r0) && unicode.IsLetter(r1) {
			// Something like "-menn" in "þingkonur og -menn". We
			// accept -menn and -MENN but not -Menn, and no
			// single-letter uppercase combinations.
			i := size0
			for i < len(rt.Txt) {
				r, sz := utf8.DecodeRuneInString(rt.Txt[i:])
				if !unicode.IsLetter(r) {
					break
				}
				i += sz
			}
			letters := rt.Txt[size0:i]
			if isLowerString(letters) ||
				(utf8.RuneCountInString(letters) > 1 && isUpperString(letters)) {
				var head tok.Tok
				head, rt = rt.Split(i)
				if !e.put(tok.Word(head, nil)) {
					return false
				}
			}
		}
	}

	// Shortcut for quotes around a single word, normalized to
	// matching Icelandic quotes.
	if utf8.RuneCountInString(rt.Txt) >= 3 {
		r0, rn := firstRune(rt.Txt), lastRune(rt.Txt)
		inner := rt.Txt[utf8.RuneLen(r0) : len(rt.Txt)-utf8.RuneLen(rn)]
		if isDoubleQuote(r0) && isDoubleQuote(rn) && isAlphaString(inner) {
			return yieldQuotedWord(e, rt, "„", "“")
		}
		if isSingleQuote(r0) && isSingleQuote(rn) && isAlphaString(inner) {
			return yieldQuotedWord(e, rt, "‚", "‘")
		}
	}

	// A leading quote on a longer token is an opening quote.
	if utf8.RuneCountInString(rt.Txt) > 1 {
		r0 := firstRune(rt.Txt)
		if isDoubleQuote(r0) {
			var punct tok.Tok
			punct, rt = rt.Split(utf8.RuneLen(r0))
			if !e.put(tok.Punctuation(punct, "„")) {
				return false
			}
		} else if isSingleQuote(r0) {
			var punct tok.Tok
			punct, rt = rt.Split(utf8.RuneLen(r0))
			if !e.put(tok.Punctuation(punct, "‚")) {
				return false
			}
		}
	}

	// The general case: mixed punctuation, letters and numbers.
	for rt.Txt != "" {
		ate := false
		if !scanPunctuation(e, &rt, &ate) {
			return false
		}

		// E-mail address anywhere in the remainder.
		if strings.Contains(rt.Txt, "@") {
			if loc := emailRE.FindStringIndex(rt.Txt); loc != nil {
				ate = true
				var email tok.Tok
				email, rt = rt.Split(loc[1])
				if !e.put(tok.Email(email)) {
					return false
				}
			}
		}

		// A single-character vulgar fraction.
		if rt.Txt != "" && isVulgarFraction(firstRune(rt.Txt)) {
			ate = true
			r := firstRune(rt.Txt)
			var num tok.Tok
			num, rt = rt.Split(utf8.RuneLen(r))
			if !e.put(tok.Number(num, singleCharFractions[r])) {
				return false
			}
		}

		// URL; trailing right punctuation is cut off even though much
		// of it is technically allowed by the RFCs.
		if rt.Txt != "" && hasURLPrefix(rt.Txt) {
			w := rt.Txt
			for w != "" && strings.ContainsRune(tok.RightPunctuation, lastRune(w)) {
				w = w[:len(w)-utf8.RuneLen(lastRune(w))]
			}
			var url tok.Tok
			url, rt = rt.Split(len(w))
			if !e.put(tok.URL(url)) {
				return false
			}
			ate = true
		}

		// Hashtag: eat all text up to the next punctuation character
		// so that "#MeToo-hreyfingin" yields a tag and a word.
		if len(rt.Txt) >= 2 && rt.Txt[0] == '#' && xid.Continue(firstRune(rt.Txt[1:])) {
			i := 1
			for i < len(rt.Txt) {
				r, sz := utf8.DecodeRuneInString(rt.Txt[i:])
				if isPunct(r) {
					break
				}
				i += sz
			}
			tag := rt.Txt[:i]
			var tagTok tok.Tok
			tagTok, rt = rt.Split(i)
			if isAllDigits(tag[1:]) {
				// The hash is a number sign, e.g. "#12".
				if !e.put(tok.Ordinal(tagTok, atoi(tag[1:]))) {
					return false
				}
			} else if !e.put(tok.Hashtag(tagTok)) {
				return false
			}
			ate = true
		}

		// Domain name such as "greynir.is".
		if rt.Txt != "" && len(rt.Txt) >= minDomainLength && isAlnum(firstRune(rt.Txt)) &&
			strings.Contains(rt.Txt, ".") {
			w := rt.Txt
			for w != "" && isPunct(lastRune(w)) {
				w = w[:len(w)-utf8.RuneLen(lastRune(w))]
			}
			if len(w) >= minDomainLength && domainRE.MatchString(w) {
				var domain tok.Tok
				domain, rt = rt.Split(len(w))
				if !e.put(tok.Domain(domain)) {
					return false
				}
				ate = true
			}
		}

		// Numbers and everything else starting with a digit,
		// optionally signed.
		if startsSignedDigit(rt.Txt) {
			if key, word, found := matchKludgyOrdinal(rt.Txt); found {
				var keyTok tok.Tok
				keyTok, rt = rt.Split(len(key))
				switch o.HandleKludgyOrdinals {
				case KludgyOrdinalsModify:
					// Rewriting "1sti" to "fyrsti" lengthens the text,
					// so the token cannot keep its origin mapping.
					if !e.put(tok.New(tok.WordToken, word, nil)) {
						return false
					}
				case KludgyOrdinalsTranslate:
					if n, ok := ordinalNumbers[key]; ok {
						if !e.put(tok.Ordinal(keyTok, n)) {
							return false
						}
						break
					}
					fallthrough
				default:
					if !e.put(tok.Word(keyTok, nil)) {
						return false
					}
				}
			} else {
				var t tok.Tok
				t, rt = parseDigits(rt, o.ConvertNumbers)
				if !e.put(t) {
					return false
				}
			}
			ate = true

			// A measurement unit immediately following the number,
			// without an intervening space.
			if rt.Txt != "" {
				if loc := siUnitsRE.FindStringIndex(rt.Txt); loc != nil {
					var unit tok.Tok
					unit, rt = rt.Split(loc[1])
					if !e.put(tok.Word(unit, nil)) {
						return false
					}
				}
			}
		}

		// Molecular formula ("H2SO4"): correct format, containing at
		// least one digit, and not separately defined as an
		// abbreviation.
		if rt.Txt != "" {
			if loc := moleculeRE.FindStringIndex(rt.Txt); loc != nil {
				g := rt.Txt[:loc[1]]
				if !abbr.isKnown(g) && moleculeFilter.MatchString(g) {
					var molecule tok.Tok
					molecule, rt = rt.Split(loc[1])
					if !e.put(tok.Molecule(molecule)) {
						return false
					}
					ate = true
				}
			}
		}

		// Currency abbreviation immediately followed by a number
		// ("USD100").
		if len(rt.Txt) > 3 && currencyAbbrev[rt.Txt[:3]] && isDigit(rune(rt.Txt[3])) {
			probe := tok.New(tok.RawToken, rt.Txt[3:], nil)
			digitTok, _ := parseDigits(probe, o.ConvertNumbers)
			if digitTok.Kind == tok.NumberToken {
				var amount tok.Tok
				amount, rt = rt.Split(3 + len(digitTok.Txt))
				n := digitTok.Val.(tok.NumberVal).N
				if !e.put(tok.Amount(amount, amount.Txt[:3], n)) {
					return false
				}
				ate = true
			}
		}

		// An alphabetic run, possibly with embedded apostrophes,
		// periods and hyphens (Dunkin' Donuts, Mary's, f.Kr,
		// marg-ítrekaðri).
		if rt.Txt != "" && unicode.IsLetter(firstRune(rt.Txt)) {
			ate = true
			if !scanWord(e, &rt, abbr) {
				return false
			}
		}

		// Quotes attached on the right-hand side of other content are
		// closing quotes.
		if rt.Txt != "" {
			r0 := firstRune(rt.Txt)
			if isSingleQuote(r0) {
				var punct tok.Tok
				punct, rt = rt.Split(utf8.RuneLen(r0))
				if !e.put(tok.Punctuation(punct, "‘")) {
					return false
				}
				ate = true
			} else if isDoubleQuote(r0) {
				var punct tok.Tok
				punct, rt = rt.Split(utf8.RuneLen(r0))
				if !e.put(tok.Punctuation(punct, "“")) {
					return false
				}
				ate = true
			}
		}

		if !ate {
			// Eat everything, even unknown stuff.
			_, sz := utf8.DecodeRuneInString(rt.Txt)
			var unk tok.Tok
			unk, rt = rt.Split(sz)
			if !e.put(tok.Unknown(unk)) {
				return false
			}
		}
	}
	return true
}

func yieldQuotedWord(e *emitter, rt tok.Tok, opening, closing string) bool {
	first, rest := rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
	word, last := rest.Split(len(rest.Txt) - utf8.RuneLen(lastRune(rest.Txt)))
	return e.put(tok.Punctuation(first, opening)) &&
		e.put(tok.Word(word, nil)) &&
		e.put(tok.Punctuation(last, closing))
}

// scanPunctuation strips recognized punctuation off the front of rt,
// emitting the pieces. Hashtags are left for the caller.
func scanPunctuation(e *emitter, rt *tok.Tok, ate *bool) bool {
	for rt.Txt != "" && isPunct(firstRune(rt.Txt)) {
		*ate = true
		var punct tok.Tok
		switch {
		case strings.HasPrefix(rt.Txt, "[...]"):
			punct, *rt = rt.Split(5)
			if !e.put(tok.Punctuation(punct, "[…]")) {
				return false
			}
		case strings.HasPrefix(rt.Txt, "[…]"):
			punct, *rt = rt.Split(len("[…]"))
			if !e.put(tok.Punctuation(punct, "")) {
				return false
			}
		case strings.HasPrefix(rt.Txt, "..."):
			// An ellipsis is one piece of punctuation.
			n := 0
			for n < len(rt.Txt) && rt.Txt[n] == '.' {
				n++
			}
			punct, *rt = rt.Split(n)
			if !e.put(tok.Punctuation(punct, "…")) {
				return false
			}
		case strings.HasPrefix(rt.Txt, "…"):
			n := 0
			for strings.HasPrefix(rt.Txt[n:], "…") {
				n += len("…")
			}
			punct, *rt = rt.Split(n)
			if !e.put(tok.Punctuation(punct, "…")) {
				return false
			}
		case rt.Txt == ",,":
			// A double comma at the end of a word stands for a comma.
			punct, *rt = rt.Split(2)
			if !e.put(tok.Punctuation(punct, ",")) {
				return false
			}
		case strings.HasPrefix(rt.Txt, ",,"):
			// Commas typed in place of opening double quotes.
			punct, *rt = rt.Split(2)
			if !e.put(tok.Punctuation(punct, "„")) {
				return false
			}
		case rt.Txt == "[[" || rt.Txt == "]]":
			var marker tok.Tok
			marker, *rt = rt.Split(2)
			if marker.Txt == "[[" {
				if !e.put(tok.BeginParagraph(marker)) {
					return false
				}
			} else if !e.put(tok.EndParagraph(marker)) {
				return false
			}
		case isHyphen(firstRune(rt.Txt)):
			// All hyphens are normalized the same way.
			punct, *rt = rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
			if !e.put(tok.Punctuation(punct, hyphen)) {
				return false
			}
		case isDoubleQuote(firstRune(rt.Txt)):
			punct, *rt = rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
			if !e.put(tok.Punctuation(punct, "“")) {
				return false
			}
		case isSingleQuote(firstRune(rt.Txt)):
			punct, *rt = rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
			if !e.put(tok.Punctuation(punct, "‘")) {
				return false
			}
		case len(rt.Txt) > 1 && rt.Txt[0] == '#':
			// Might be a hashtag, processed by the caller.
			*ate = false
			return true
		case len(rt.Txt) > 1 && rt.Txt[0] == '@':
			// A username on a social media platform.
			if loc := usernameRE.FindStringIndex(rt.Txt); loc != nil {
				g := rt.Txt[:loc[1]]
				var username tok.Tok
				username, *rt = rt.Split(loc[1])
				if !e.put(tok.Username(username, g[1:])) {
					return false
				}
			} else {
				punct, *rt = rt.Split(1)
				if !e.put(tok.Punctuation(punct, "")) {
					return false
				}
			}
		default:
			punct, *rt = rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
			if !e.put(tok.Punctuation(punct, "")) {
				return false
			}
		}
	}
	return true
}

// scanWord consumes an alphabetic run off the front of rt, handling
// run-together sentences ("sjávarútvegi.Það"), missing spaces before
// "og"/"eða" in compounds, and trailing composite hyphens.
func scanWord(e *emitter, rt *tok.Tok, abbr *abbrevSet) bool {
	txt := rt.Txt
	i := 0
	for i < len(txt) {
		r, sz := utf8.DecodeRuneInString(txt[i:])
		if unicode.IsLetter(r) {
			i += sz
			continue
		}
		if strings.ContainsRune(punctInsideWord, r) && i+sz < len(txt) &&
			unicode.IsLetter(firstRune(txt[i+sz:])) {
			i += sz
			continue
		}
		break
	}
	if i < len(txt) {
		r, sz := utf8.DecodeRuneInString(txt[i:])
		if strings.ContainsRune(punctEndingWord, r) {
			i += sz
		}
	}

	ww := txt[:i]
	parts := strings.Split(ww, ".")
	_, szFirst := utf8.DecodeRuneInString(ww)
	var candidate string
	if i < len(txt) {
		_, szNext := utf8.DecodeRuneInString(txt[i:])
		candidate = txt[:i+szNext]
	} else {
		candidate = ww
	}
	switch {
	case len(parts) == 2 &&
		utf8.RuneCountInString(parts[0]) > 1 &&
		isLowerString(parts[0][szFirst:]) &&
		parts[1] != "" &&
		unicode.IsUpper(firstRune(parts[1])) &&
		!abbr.isKnown(candidate):
		// A lowercase word run together with a following uppercase
		// word over a period ("sjávarútvegi.Það"): split it apart.
		var word1, punct, word2 tok.Tok
		word1, *rt = rt.Split(len(parts[0]))
		punct, *rt = rt.Split(1)
		word2, *rt = rt.Split(len(parts[1]))
		if !e.put(tok.Word(word1, nil)) || !e.put(tok.Punctuation(punct, "")) ||
			!e.put(tok.Word(word2, nil)) {
			return false
		}
	case strings.HasSuffix(ww, "-og") || strings.HasSuffix(ww, "-eða"):
		// Missing space before "og"/"eða", as in
		// "fjármála-og efnahagsráðuneyti".
		hp := strings.Split(ww, "-")
		var word1, punct, word2 tok.Tok
		word1, *rt = rt.Split(len(hp[0]))
		punct, *rt = rt.Split(1)
		word2, *rt = rt.Split(len(hp[1]))
		if !e.put(tok.Word(word1, nil)) ||
			!e.put(tok.Punctuation(punct, compositeHyphen)) ||
			!e.put(tok.Word(word2, nil)) {
			return false
		}
	default:
		var word tok.Tok
		word, *rt = rt.Split(i)
		if !e.put(tok.Word(word, nil)) {
			return false
		}
	}

	if rt.Txt != "" && isCompositeHyphen(firstRune(rt.Txt)) {
		// A hyphen or en dash directly appended to the word: might be
		// a continuation ("fjármála- og efnahagsráðuneyti"). Yield a
		// marker hyphen.
		var punct tok.Tok
		punct, *rt = rt.Split(utf8.RuneLen(firstRune(rt.Txt)))
		if !e.put(tok.Punctuation(punct, compositeHyphen)) {
			return false
		}
	}
	return true
}

func hasURLPrefix(s string) bool {
	for _, p := range urlPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func startsSignedDigit(s string) bool {
	if s == "" {
		return false
	}
	r0 := firstRune(s)
	if isDigit(r0) {
		return true
	}
	if strings.ContainsRune(signPrefix, r0) && len(s) >= 2 {
		return isDigit(firstRune(s[utf8.RuneLen(r0):]))
	}
	return false
}

// matchKludgyOrdinal finds a kludgy-ordinal prefix such as "1sti".
func matchKludgyOrdinal(s string) (key, word string, found bool) {
	for _, oe := range ordinalErrors {
		if strings.HasPrefix(s, oe.Key) {
			return oe.Key, oe.Word, true
		}
	}
	return "", "", false
}
