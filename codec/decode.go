package codec

import "strings"

// Decode turns space separated code tokens back into text. Both delimiters
// become a single space and any token that is not a known code becomes
// cfg.Unknown. Delimiters are compared before codes, so a delimiter that
// looks like a code is still a delimiter.
func Decode(text string, cfg Config) string {
	specials := cfg.specialTokens()

	var b strings.Builder
	for _, tok := range strings.Split(text, " ") {
		if tok == "" {
			continue
		}
		if specials.whole(tok) {
			b.WriteByte(' ')
			continue
		}
		if !isCodeToken(tok) {
			b.WriteString(cfg.Unknown)
			continue
		}
		if symbol, ok := symbolOf(tok); ok {
			b.WriteByte(symbol)
		} else {
			b.WriteString(cfg.Unknown)
		}
	}
	return b.String()
}
