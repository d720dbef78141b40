// Package codec translates between plain text and International Morse code.
//
// Input is normalized first, then the direction is picked from its shape:
// anything holding an ASCII letter or digit is encoded, everything else is
// decoded. Neither direction ever fails. Characters without a code are
// dropped when encoding and tokens without a symbol are replaced by a
// placeholder when decoding.
package codec

type Encoder interface {
	Encode(text string) string
}

type Decoder interface {
	Decode(text string) string
}

type EncoderAndDecoder interface {
	Encoder
	Decoder
}

var _ EncoderAndDecoder = (*Translator)(nil)

// Translator binds a Config to the codec. It holds no mutable state and
// may be shared between goroutines.
type Translator struct {
	cfg Config
}

func New(cfg Config) *Translator {
	return &Translator{cfg: cfg}
}

func (t *Translator) Config() Config {
	return t.cfg
}

// Encode normalizes text and encodes it.
func (t *Translator) Encode(text string) string {
	return Encode(Normalize(text), t.cfg)
}

// Decode normalizes text and decodes it.
func (t *Translator) Decode(text string) string {
	return Decode(Normalize(text), t.cfg)
}

// Translate normalizes raw, detects the direction and applies it.
func (t *Translator) Translate(raw string) (string, Direction) {
	text := Normalize(raw)
	d := Detect(text)
	return t.translate(text, d), d
}

// TranslateAs skips detection and applies d.
func (t *Translator) TranslateAs(raw string, d Direction) string {
	return t.translate(Normalize(raw), d)
}

func (t *Translator) translate(text string, d Direction) string {
	if d == DirectionDecode {
		return Decode(text, t.cfg)
	}
	return Encode(text, t.cfg)
}
