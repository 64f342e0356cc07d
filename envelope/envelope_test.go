package envelope

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/require"
)

func TestGzipHeaderLen_Minimal(t *testing.T) {
	data := append([]byte{0x1f, 0x8b, 0x08, 0x00}, make([]byte, 6)...)
	n, err := gzipHeaderLen(data)
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

func TestGzipHeaderLen_MissingMagic(t *testing.T) {
	data := append([]byte{0x00, 0x00, 0x08, 0x00}, make([]byte, 6)...)
	_, err := gzipHeaderLen(data)
	require.ErrorIs(t, err, errMissingGzipMagic)
}

func TestGzipHeaderLen_TooShort(t *testing.T) {
	_, err := gzipHeaderLen([]byte{0x1f, 0x8b, 0x08})
	require.Error(t, err)
}

func TestGzipHeaderLen_FName(t *testing.T) {
	data := append([]byte{0x1f, 0x8b, 0x08, 0x08}, make([]byte, 6)...)
	data = append(data, 'r', 'e', 'p', 0x00)
	n, err := gzipHeaderLen(data)
	require.NoError(t, err)
	require.Equal(t, 14, n)
}

func deflateRaw(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParse_RoundTrip(t *testing.T) {
	payload := []byte("hello replay body")
	compressed := deflateRaw(t, payload)

	gzipHeader := append([]byte{0x1f, 0x8b, 0x08, 0x00}, make([]byte, 6)...)
	trailer := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	footer := []byte("footer-bytes")

	data := append(append(append(gzipHeader, compressed...), trailer...), footer...)

	res, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 10, res.GzipHeaderLen)
	require.Equal(t, payload, res.Body)
	require.NotNil(t, res.Trailer)
	require.Equal(t, uint32(0x04030201), res.Trailer.CRC32)
	require.Equal(t, uint32(0x08070605), res.Trailer.ISize)
	require.Equal(t, footer, res.FooterRegion)
}

func TestParse_MalformedHeaderFallsBack(t *testing.T) {
	payload := []byte("no gzip magic here")
	compressed := deflateRaw(t, payload)

	data := append(make([]byte, 10), compressed...)

	res, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, 10, res.GzipHeaderLen)
	require.Equal(t, payload, res.Body)
}

func TestParse_DecompressionFailure(t *testing.T) {
	gzipHeader := append([]byte{0x1f, 0x8b, 0x08, 0x00}, make([]byte, 6)...)
	garbage := append(gzipHeader, 0xff, 0xff, 0xff, 0xff)

	_, err := Parse(garbage)
	require.ErrorIs(t, err, ErrDecompressionFailure)
}
