// Package packstore wraps a GRPH binary in zstd compression for archival
// storage, the same compressor the teacher's data store uses for snapshot
// payloads.
package packstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/TFMV/graphcodec/internal/codecerr"
)

// Magic identifies a GPAK archive file.
const Magic = "GPAK"

// Version is the only defined GPAK format version.
const Version = 1

// headerLen is len(Magic) + 1 version byte + 8 byte uncompressed length.
const headerLen = len(Magic) + 1 + 8

// Pack compresses a GRPH binary (or any byte payload) into a GPAK archive.
func Pack(raw []byte, level zstd.EncoderLevel) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer encoder.Close()

	compressed := encoder.EncodeAll(raw, nil)

	var buf bytes.Buffer
	buf.Grow(headerLen + len(compressed))
	buf.WriteString(Magic)
	buf.WriteByte(Version)
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(raw)))
	buf.Write(lenBuf[:])
	buf.Write(compressed)
	return buf.Bytes(), nil
}

// Unpack reverses Pack, verifying the archive header and the decompressed
// length against what was recorded when it was packed.
func Unpack(data []byte) ([]byte, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("archive shorter than header (%d bytes): %w", len(data), codecerr.ErrUnexpectedEOF)
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("expected magic %q, got %q: %w", Magic, data[:len(Magic)], codecerr.ErrBadHeader)
	}
	pos := len(Magic)
	version := data[pos]
	pos++
	if version != Version {
		return nil, fmt.Errorf("unsupported archive version %d: %w", version, codecerr.ErrBadHeader)
	}
	uncompressedLen := binary.LittleEndian.Uint64(data[pos : pos+8])
	pos += 8

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(data[pos:], make([]byte, 0, uncompressedLen))
	if err != nil {
		return nil, fmt.Errorf("decompressing archive payload: %w", err)
	}
	if uint64(len(out)) != uncompressedLen {
		return nil, fmt.Errorf("decompressed %d bytes, header recorded %d: %w", len(out), uncompressedLen, codecerr.ErrBadHeader)
	}
	return out, nil
}

// CopyPack streams src through Pack and writes the archive to dst. Small
// inputs are expected (graph binaries, not multi-gigabyte blobs), so the
// whole payload is buffered rather than chunked.
func CopyPack(dst io.Writer, src io.Reader, level zstd.EncoderLevel) error {
	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading pack input: %w", err)
	}
	packed, err := Pack(raw, level)
	if err != nil {
		return err
	}
	_, err = dst.Write(packed)
	return err
}

// CopyUnpack streams an archive from src and writes the decompressed payload
// to dst.
func CopyUnpack(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading unpack input: %w", err)
	}
	raw, err := Unpack(data)
	if err != nil {
		return err
	}
	_, err = dst.Write(raw)
	return err
}
