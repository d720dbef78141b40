package codec

import "strings"

const (
	DefaultSentenceDelimiter = "/"
	DefaultWordBoundary      = `\`
	DefaultUnknown           = "?"
)

// Config holds the configurable tokens of a translation. No value is
// validated: delimiters may collide with each other or with codes, see
// the matcher order below.
type Config struct {
	SentenceDelimiter string
	WordBoundary      string
	Unknown           string
}

func DefaultConfig() Config {
	return Config{
		SentenceDelimiter: DefaultSentenceDelimiter,
		WordBoundary:      DefaultWordBoundary,
		Unknown:           DefaultUnknown,
	}
}

// specialTokens lists the delimiters in match priority: the sentence
// delimiter is always tried before the word boundary. Empty tokens are
// left out since they would match everywhere.
type specialTokens []string

func (c Config) specialTokens() specialTokens {
	tokens := make(specialTokens, 0, 2)
	for _, tok := range []string{c.SentenceDelimiter, c.WordBoundary} {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// prefix returns the first token that s starts with.
func (st specialTokens) prefix(s string) (string, bool) {
	for _, tok := range st {
		if strings.HasPrefix(s, tok) {
			return tok, true
		}
	}
	return "", false
}

// whole reports whether tok is exactly one of the special tokens.
func (st specialTokens) whole(tok string) bool {
	for _, special := range st {
		if tok == special {
			return true
		}
	}
	return false
}
