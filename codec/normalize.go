package codec

import "strings"

// Normalize removes newlines, turns tabs, carriage returns, form feeds and
// vertical tabs into spaces and collapses every run of spaces into one.
// Leading and trailing spaces survive as a single space.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	lastSpace := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '\n':
			continue
		case '\t', '\r', '\f', '\v':
			c = ' '
		}
		if c == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i > 0 && s[i-1] == ' ' {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
