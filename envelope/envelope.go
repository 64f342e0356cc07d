// Package envelope decodes the RFC 1952 gzip envelope wrapping a replay's
// compressed payload: it locates the raw deflate stream, decompresses it,
// and exposes the gzip trailer and any bytes appended after it (the footer
// region).
//
// The package is safe for concurrent use.
package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

var (
	// ErrMalformedHeader indicates the file's fixed-size header could not
	// be read (shorter than 20 bytes, or a fixed-size field unpack failed).
	ErrMalformedHeader = errors.New("malformed header")

	// ErrDecompressionFailure indicates the deflate stream rejected the
	// compressed payload.
	ErrDecompressionFailure = errors.New("decompression failure")

	errMissingGzipMagic = errors.New("missing gzip magic")
)

// Trailer is the 8-byte RFC 1952 gzip trailer.
type Trailer struct {
	CRC32 uint32
	ISize uint32
}

// Result is the outcome of decoding the compressed payload.
type Result struct {
	// GzipHeaderLen is the number of bytes consumed by the gzip header
	// (10 if the header could not be parsed and the conservative fallback
	// was used).
	GzipHeaderLen int

	// CompressedUnusedLen is the number of bytes the deflate decompressor
	// did not consume: the trailer plus any footer region.
	CompressedUnusedLen int

	// Trailer is the 8-byte gzip trailer, if at least 8 unused bytes
	// remained after decompression.
	Trailer *Trailer

	// FooterRegion is whatever bytes remain after the trailer.
	FooterRegion []byte

	// Body is the decompressed record stream.
	Body []byte
}

// Parse decompresses data, which is expected to begin with a gzip header
// (flowed directly by a raw deflate stream) as documented in the input file
// layout. It does not itself validate the 20-byte file header; callers pass
// the bytes that follow it.
func Parse(data []byte) (*Result, error) {
	headerLen, err := gzipHeaderLen(data)
	if err != nil {
		// Recoverable: GzipHeaderMalformed. Fall back to a conservative
		// 10-byte skip and keep going; nothing is logged.
		headerLen = 10
	}
	if headerLen > len(data) {
		headerLen = len(data)
	}

	br := bytes.NewReader(data[headerLen:])
	zr := flate.NewReader(br)
	body, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailure, err)
	}
	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailure, err)
	}

	unconsumed := br.Len()
	res := &Result{
		GzipHeaderLen:       headerLen,
		CompressedUnusedLen: unconsumed,
		Body:                body,
	}

	tail := data[len(data)-unconsumed:]
	if len(tail) >= 8 {
		res.Trailer = &Trailer{
			CRC32: binary.LittleEndian.Uint32(tail[0:4]),
			ISize: binary.LittleEndian.Uint32(tail[4:8]),
		}
		res.FooterRegion = tail[8:]
	} else {
		res.FooterRegion = tail
	}

	return res, nil
}

// gzipHeaderLen returns the length of the RFC 1952 gzip header at the start
// of data: ID1 ID2 CM FLG MTIME(4) XFL OS, plus any optional FEXTRA, FNAME,
// FCOMMENT and FHCRC sections the FLG byte announces.
func gzipHeaderLen(data []byte) (int, error) {
	if len(data) < 10 {
		return 0, fmt.Errorf("gzip header: %w", io.ErrUnexpectedEOF)
	}
	if data[0] != 0x1f || data[1] != 0x8b {
		return 0, errMissingGzipMagic
	}
	if data[2] != 8 {
		return 0, fmt.Errorf("gzip header: unsupported compression method %d", data[2])
	}

	flg := data[3]
	pos := 10

	if flg&0x04 != 0 { // FEXTRA
		if pos+2 > len(data) {
			return 0, io.ErrUnexpectedEOF
		}
		xlen := int(binary.LittleEndian.Uint16(data[pos : pos+2]))
		pos += 2
		if pos+xlen > len(data) {
			return 0, io.ErrUnexpectedEOF
		}
		pos += xlen
	}

	if flg&0x08 != 0 { // FNAME, zero-terminated
		for pos < len(data) && data[pos] != 0 {
			pos++
		}
		pos++
	}

	if flg&0x10 != 0 { // FCOMMENT, zero-terminated
		for pos < len(data) && data[pos] != 0 {
			pos++
		}
		pos++
	}

	if flg&0x02 != 0 { // FHCRC
		pos += 2
	}

	if pos > len(data) {
		return 0, io.ErrUnexpectedEOF
	}
	return pos, nil
}
