package codec

import (
	"strings"
	"unicode/utf8"
)

// sentinel marks a sentence end until the delimiter is substituted. It
// cannot survive from the input because reduce keeps only letters, digits
// and spaces.
const sentinel = '\x00'

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// reduce collapses each run of sentence terminators into one sentinel and
// drops everything that is not a letter, digit or space.
func reduce(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inRun := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isTerminator(c) {
			if !inRun {
				b.WriteByte(sentinel)
				inRun = true
			}
			continue
		}
		inRun = false
		if isAlnum(c) || c == ' ' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Encode turns normalized text into space separated code tokens. Characters
// with no code are dropped without a trace.
func Encode(text string, cfg Config) string {
	s := collapseSpaces(reduce(text))
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, string(sentinel), cfg.SentenceDelimiter)

	specials := cfg.specialTokens()
	tokens := make([]string, 0, len(s))
	for i := 0; i < len(s); {
		if tok, ok := specials.prefix(s[i:]); ok {
			tokens = append(tokens, tok)
			i += len(tok)
			continue
		}

		c := s[i]
		if c == ' ' {
			if cfg.WordBoundary != "" {
				tokens = append(tokens, cfg.WordBoundary)
			}
			i++
			continue
		}
		if code, ok := codeOf(c); ok {
			tokens = append(tokens, code)
			i++
			continue
		}

		// leftovers come from the substituted delimiter, skip a whole rune
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	// delimiters may carry spaces of their own, the output still has
	// single separators only
	return strings.Trim(collapseSpaces(strings.Join(tokens, " ")), " ")
}
