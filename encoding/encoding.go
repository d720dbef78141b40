// Package encoding compresses and decompresses HTTP bodies by their
// content-coding name.
package encoding

import (
	"fmt"
	"strings"
)

type Encoder interface {
	Encode([]byte) ([]byte, error)
}

type Decoder interface {
	Decode([]byte) ([]byte, error)
}

type EncoderAndDecoder interface {
	Encoder
	Decoder
}

const (
	Identity = "identity"
	Gzip     = "gzip"
	Brotli   = "br"
	Deflate  = "deflate"
	Zstd     = "zstd"
)

// lookup resolves a content-coding name. ok is false for unsupported
// codings; identity has no codec.
func lookup(name string) (ed EncoderAndDecoder, identity bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Gzip, "x-gzip":
		return GzipEncoderDecoder{}, false, true
	case Brotli, "brotli":
		return BrotliEncoderDecoder{}, false, true
	case Deflate:
		return DeflateEncoderDecoder{}, false, true
	case Zstd:
		return ZstdEncoderDecoder{}, false, true
	case Identity, "plain", "":
		return nil, true, true
	default:
		return nil, false, false
	}
}

// Supported reports whether name is a content-coding this package handles.
func Supported(name string) bool {
	_, _, ok := lookup(name)
	return ok
}

func Encode(data []byte, encoding string) ([]byte, error) {
	encoder, identity, ok := lookup(encoding)
	if !ok {
		return nil, fmt.Errorf("unknown encoding: %s", encoding)
	}
	if identity {
		return data, nil
	}
	return encoder.Encode(data)
}

func Decode(data []byte, encoding string) ([]byte, error) {
	decoder, identity, ok := lookup(encoding)
	if !ok {
		return nil, fmt.Errorf("unknown encoding: %s", encoding)
	}
	if identity {
		return data, nil
	}
	return decoder.Decode(data)
}
