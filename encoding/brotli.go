package encoding

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// Code text is a tiny alphabet, so a mid quality level already gets most
// of the gain.
const brotliQuality = 6

type BrotliEncoderDecoder struct{}

func (b BrotliEncoderDecoder) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, brotliQuality)
	if _, err := bw.Write(data); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b BrotliEncoderDecoder) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
}
