package codec

const (
	dot  = '.'
	dash = '-'
)

// Entry is a single symbol of the code table.
type Entry struct {
	Symbol byte
	Code   string
}

// table is the only place codes are written down; both lookup
// directions are derived from it.
var table = [...]Entry{
	{'A', ".-"},
	{'B', "-..."},
	{'C', "-.-."},
	{'D', "-.."},
	{'E', "."},
	{'F', "..-."},
	{'G', "--."},
	{'H', "...."},
	{'I', ".."},
	{'J', ".---"},
	{'K', "-.-"},
	{'L', ".-.."},
	{'M', "--"},
	{'N', "-."},
	{'O', "---"},
	{'P', ".--."},
	{'Q', "--.-"},
	{'R', ".-."},
	{'S', "..."},
	{'T', "-"},
	{'U', "..-"},
	{'V', "...-"},
	{'W', ".--"},
	{'X', "-..-"},
	{'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"},
	{'1', ".----"},
	{'2', "..---"},
	{'3', "...--"},
	{'4', "....-"},
	// Differs from International Morse on purpose: "....." is 5 there,
	// here it stays unassigned and always decodes as unknown.
	{'5', "......"},
	{'6', "-...."},
	{'7', "--..."},
	{'8', "---.."},
	{'9', "----."},
}

var (
	toCode   [256]string
	toSymbol = make(map[string]byte, len(table))
)

func init() {
	for _, e := range table {
		if toCode[e.Symbol] != "" {
			panic("codec: duplicate symbol " + string(e.Symbol))
		}
		if _, ok := toSymbol[e.Code]; ok {
			panic("codec: duplicate code " + e.Code)
		}
		toCode[e.Symbol] = e.Code
		toSymbol[e.Code] = e.Symbol
	}
}

// Table returns a copy of the code table in symbol order.
func Table() []Entry {
	entries := make([]Entry, len(table))
	copy(entries, table[:])
	return entries
}

// codeOf looks up the code of an uppercase letter or digit.
func codeOf(symbol byte) (string, bool) {
	code := toCode[symbol]
	return code, code != ""
}

// symbolOf looks up the symbol of a dot/dash token.
func symbolOf(code string) (byte, bool) {
	symbol, ok := toSymbol[code]
	return symbol, ok
}

func isCodeToken(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != dot && tok[i] != dash {
			return false
		}
	}
	return true
}
