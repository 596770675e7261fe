package graphio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/TFMV/graphcodec/internal/varint"
)

// MinBufferSize is the buffer size the writers in this package use;
// callers cannot choose a different size.
const MinBufferSize = 64 * 1024

// BinaryWriter is a buffered little-endian binary emitter: raw bytes, fixed
// width integers, and varints. Callers must call Close to flush the final
// buffer to the underlying writer.
type BinaryWriter struct {
	w *bufio.Writer
}

// NewBinaryWriter wraps w with a buffer of at least MinBufferSize bytes.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: bufio.NewWriterSize(w, MinBufferSize)}
}

// Bytes writes p verbatim.
func (bw *BinaryWriter) Bytes(p []byte) error {
	if _, err := bw.w.Write(p); err != nil {
		return fmt.Errorf("writing %d raw bytes: %w", len(p), joinIO(err))
	}
	return nil
}

// Uint8 writes a single byte.
func (bw *BinaryWriter) Uint8(x uint8) error {
	if err := bw.w.WriteByte(x); err != nil {
		return fmt.Errorf("writing u8: %w", joinIO(err))
	}
	return nil
}

// Uint32LE writes x as 4 little-endian bytes.
func (bw *BinaryWriter) Uint32LE(x uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], x)
	return bw.Bytes(buf[:])
}

// Uint64LE writes x as 8 little-endian bytes.
func (bw *BinaryWriter) Uint64LE(x uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	return bw.Bytes(buf[:])
}

// Varint writes x as unsigned LEB128.
func (bw *BinaryWriter) Varint(x uint64) error {
	var buf [varint.MaxLen]byte
	enc := varint.Append(buf[:0], x)
	return bw.Bytes(enc)
}

// Close flushes any buffered bytes to the underlying writer.
func (bw *BinaryWriter) Close() error {
	if err := bw.w.Flush(); err != nil {
		return fmt.Errorf("flushing binary writer: %w", joinIO(err))
	}
	return nil
}

// BinaryReader reads little-endian fixed-width integers and varints from an
// in-memory byte slice. The full binary input must already be resident in
// memory, matching the codec's decode-requires-full-input non-goal.
type BinaryReader struct {
	data []byte
	pos  int
}

// NewBinaryReader wraps data for sequential reading from offset 0.
func NewBinaryReader(data []byte) *BinaryReader {
	return &BinaryReader{data: data}
}

// Remaining reports how many bytes are left unread.
func (br *BinaryReader) Remaining() int {
	return len(br.data) - br.pos
}

// Pos returns the current read offset.
func (br *BinaryReader) Pos() int {
	return br.pos
}

func (br *BinaryReader) need(n int) error {
	if br.Remaining() < n {
		return fmt.Errorf("need %d bytes, have %d: %w", n, br.Remaining(), codecerr.ErrUnexpectedEOF)
	}
	return nil
}

// Uint8 reads one byte.
func (br *BinaryReader) Uint8() (uint8, error) {
	if err := br.need(1); err != nil {
		return 0, err
	}
	x := br.data[br.pos]
	br.pos++
	return x, nil
}

// Bytes reads n raw bytes.
func (br *BinaryReader) Bytes(n int) ([]byte, error) {
	if err := br.need(n); err != nil {
		return nil, err
	}
	p := br.data[br.pos : br.pos+n]
	br.pos += n
	return p, nil
}

// Uint32LE reads 4 little-endian bytes.
func (br *BinaryReader) Uint32LE() (uint32, error) {
	p, err := br.Bytes(4)
	if err != nil {
		return 0, fmt.Errorf("reading u32: %w", err)
	}
	return binary.LittleEndian.Uint32(p), nil
}

// Uint64LE reads 8 little-endian bytes.
func (br *BinaryReader) Uint64LE() (uint64, error) {
	p, err := br.Bytes(8)
	if err != nil {
		return 0, fmt.Errorf("reading u64: %w", err)
	}
	return binary.LittleEndian.Uint64(p), nil
}

// Varint reads one unsigned LEB128 value.
func (br *BinaryReader) Varint() (uint64, error) {
	x, n, err := varint.Decode(br.data[br.pos:])
	if err != nil {
		return 0, err
	}
	br.pos += n
	return x, nil
}

func joinIO(err error) error {
	return fmt.Errorf("%w: %v", codecerr.ErrIO, err)
}
