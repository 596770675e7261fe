// Package varint implements unsigned LEB128 encoding, the variable-length
// integer format used throughout the graph binary format for degrees, gaps,
// deltas, and the version-2 header fields.
package varint

import (
	"fmt"
	"io"

	"github.com/TFMV/graphcodec/internal/codecerr"
)

// MaxLen is the longest a LEB128 encoding of a 64-bit value can legally be:
// ceil(64/7) = 10 groups of 7 bits.
const MaxLen = 10

// Append encodes x as unsigned LEB128 and appends it to dst, returning the
// extended slice. Groups of 7 low bits are emitted LSB-first, with the
// continuation (high) bit set on every group but the last.
func Append(dst []byte, x uint64) []byte {
	for x >= 0x80 {
		dst = append(dst, byte(x)|0x80)
		x >>= 7
	}
	return append(dst, byte(x))
}

// Encode returns the LEB128 encoding of x as a freshly allocated slice.
func Encode(x uint64) []byte {
	return Append(make([]byte, 0, MaxLen), x)
}

// Decode reads one LEB128 value from the front of src, returning the value,
// the number of bytes consumed, and an error. It fails with
// codecerr.ErrMalformedVarint if more than MaxLen groups are seen before the
// continuation bit clears, and with codecerr.ErrUnexpectedEOF if src runs out
// mid-value.
func Decode(src []byte) (uint64, int, error) {
	var x uint64
	var shift uint
	for i := 0; i < len(src); i++ {
		b := src[i]
		if shift >= 64 {
			return 0, 0, fmt.Errorf("decoding varint: %w", codecerr.ErrMalformedVarint)
		}
		x |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return x, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("decoding varint: %w", codecerr.ErrUnexpectedEOF)
}

// Read decodes one LEB128 value from r, a byte at a time. It is the
// streaming counterpart to Decode, used when the caller holds an io.Reader
// rather than a fully buffered slice.
func Read(r io.ByteReader) (uint64, error) {
	var x uint64
	var shift uint
	for {
		if shift >= 64 {
			return 0, fmt.Errorf("reading varint: %w", codecerr.ErrMalformedVarint)
		}
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, fmt.Errorf("reading varint: %w", codecerr.ErrUnexpectedEOF)
			}
			return 0, fmt.Errorf("reading varint: %w", err)
		}
		x |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
}

// Len returns the number of bytes Append would produce for x.
func Len(x uint64) int {
	n := 1
	for x >= 0x80 {
		x >>= 7
		n++
	}
	return n
}
