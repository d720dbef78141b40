package encoding

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// EncodeAll and DecodeAll are safe for concurrent use, so one encoder and
// one decoder serve every request.
var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdErr     error
)

func zstdCodecs() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

type ZstdEncoderDecoder struct{}

func (z ZstdEncoderDecoder) Encode(data []byte) ([]byte, error) {
	encoder, _, err := zstdCodecs()
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}

func (z ZstdEncoderDecoder) Decode(data []byte) ([]byte, error) {
	_, decoder, err := zstdCodecs()
	if err != nil {
		return nil, err
	}
	return decoder.DecodeAll(data, nil)
}
