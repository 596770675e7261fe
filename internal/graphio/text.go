package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/TFMV/graphcodec/internal/codecerr"
)

// TextWriter is a buffered ASCII emitter for the output TSV: decimal
// integers, literal tabs, and literal newlines, with no locale awareness.
type TextWriter struct {
	w   *bufio.Writer
	buf [20]byte // enough for a 64-bit decimal
}

// NewTextWriter wraps w with a buffer of at least MinBufferSize bytes.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriterSize(w, MinBufferSize)}
}

// Uint32 writes x in decimal, no leading zeros (a bare "0" for zero).
func (tw *TextWriter) Uint32(x uint32) error {
	return tw.writeUint(uint64(x))
}

// Uint8 writes x in decimal.
func (tw *TextWriter) Uint8(x uint8) error {
	return tw.writeUint(uint64(x))
}

func (tw *TextWriter) writeUint(x uint64) error {
	b := strconv.AppendUint(tw.buf[:0], x, 10)
	if _, err := tw.w.Write(b); err != nil {
		return fmt.Errorf("writing decimal: %w: %v", codecerr.ErrIO, err)
	}
	return nil
}

// Tab writes a single tab byte.
func (tw *TextWriter) Tab() error {
	return tw.byteOut('\t')
}

// Newline writes a single newline byte.
func (tw *TextWriter) Newline() error {
	return tw.byteOut('\n')
}

func (tw *TextWriter) byteOut(b byte) error {
	if err := tw.w.WriteByte(b); err != nil {
		return fmt.Errorf("writing byte: %w: %v", codecerr.ErrIO, err)
	}
	return nil
}

// Line writes one output TSV line: "a\tb\tw\n".
func (tw *TextWriter) Line(a, b uint32, w uint8) error {
	if err := tw.Uint32(a); err != nil {
		return err
	}
	if err := tw.Tab(); err != nil {
		return err
	}
	if err := tw.Uint32(b); err != nil {
		return err
	}
	if err := tw.Tab(); err != nil {
		return err
	}
	if err := tw.Uint8(w); err != nil {
		return err
	}
	return tw.Newline()
}

// Close flushes any buffered bytes to the underlying writer.
func (tw *TextWriter) Close() error {
	if err := tw.w.Flush(); err != nil {
		return fmt.Errorf("flushing text writer: %w: %v", codecerr.ErrIO, err)
	}
	return nil
}
