package codec

import (
	"fmt"
	"strings"
)

type Direction int

const (
	DirectionEncode Direction = iota
	DirectionDecode
)

func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "encode"
	case DirectionDecode:
		return "decode"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "encode" and "decode". "auto" and "" return
// auto=true, meaning the direction should come from Detect.
func ParseDirection(s string) (d Direction, auto bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DirectionEncode, true, nil
	case "encode", "enc", "e":
		return DirectionEncode, false, nil
	case "decode", "dec", "d":
		return DirectionDecode, false, nil
	default:
		return DirectionEncode, false, fmt.Errorf("unknown direction: %s", s)
	}
}

// Detect picks Encode when text holds at least one ASCII letter or digit
// and Decode otherwise.
func Detect(text string) Direction {
	for i := 0; i < len(text); i++ {
		if isAlnum(text[i]) {
			return DirectionEncode
		}
	}
	return DirectionDecode
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
