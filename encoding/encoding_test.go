package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []byte(strings.Repeat(".... . .-.. .-.. --- \\ .-- --- .-. .-.. -.. / ", 40))

func TestEncodeDecode(t *testing.T) {
	for _, coding := range []string{Gzip, Brotli, Deflate, Zstd} {
		t.Run(coding, func(t *testing.T) {
			encoded, err := Encode(sample, coding)
			require.NoError(t, err)
			assert.Less(t, len(encoded), len(sample))

			decoded, err := Decode(encoded, coding)
			require.NoError(t, err)
			assert.Equal(t, sample, decoded)
		})
	}
}

func TestIdentityAndUnknown(t *testing.T) {
	for _, coding := range []string{"", "plain", Identity} {
		out, err := Encode(sample, coding)
		require.NoError(t, err)
		assert.Equal(t, sample, out)
	}

	_, err := Encode(sample, "lzma")
	require.Error(t, err)
	_, err = Decode(sample, "lzma")
	require.Error(t, err)
	assert.False(t, Supported("lzma"))
	assert.True(t, Supported("BR"))
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := Decode([]byte("not gzip"), Gzip)
	require.Error(t, err)
}

func TestParseAcceptEncoding(t *testing.T) {
	testCases := []struct {
		header string
		expect []string
	}{
		{"", []string{}},
		{"gzip", []string{"gzip"}},
		{"gzip, deflate, br", []string{"gzip", "deflate", "br"}},
		{"gzip;q=0.5, br", []string{"br", "gzip"}},
		{"zstd;q=0, gzip", []string{"gzip"}},
		{"*, gzip;q=0.1", []string{"gzip"}},
		{" BR ;q=0.9 , ,deflate;q=0.9", []string{"br", "deflate"}},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, parseAcceptEncoding(tc.header), tc.header)
	}
}

func TestEncodeAccepted(t *testing.T) {
	body, coding, err := EncodeAccepted(sample, "lzma, br;q=0.8, gzip")
	require.NoError(t, err)
	assert.Equal(t, Gzip, coding)
	decoded, err := Decode(body, coding)
	require.NoError(t, err)
	assert.Equal(t, sample, decoded)

	body, coding, err = EncodeAccepted(sample, "")
	require.NoError(t, err)
	assert.Empty(t, coding)
	assert.Equal(t, sample, body)

	// too small to shrink
	small := []byte("...")
	body, coding, err = EncodeAccepted(small, "gzip, zstd")
	require.NoError(t, err)
	assert.Empty(t, coding)
	assert.Equal(t, small, body)
}
