package codec

import (
	"fmt"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/TFMV/graphcodec/internal/graphio"
)

// Magic is the 4-byte ASCII identifier at the start of every GRPH binary.
const Magic = "GRPH"

const (
	// Version1 is the fixed-width header, retained for reading only.
	Version1 = 1
	// Version2 is the varint header; writers always emit this version.
	Version2 = 2
	// endianMarker is the single byte confirming little-endian encoding.
	endianMarker = 1
)

// MinHeaderLen is the length of the fixed prefix every GRPH file starts
// with: magic + version + endian. It does not include the N/M fields; a
// file too short to hold them fails later, when those fields are read.
const MinHeaderLen = len(Magic) + 2

func writeHeader(bw *graphio.BinaryWriter) error {
	if err := bw.Bytes([]byte(Magic)); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	if err := bw.Uint8(Version2); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	if err := bw.Uint8(endianMarker); err != nil {
		return fmt.Errorf("writing endian marker: %w", err)
	}
	return nil
}

// readHeader validates the magic, version, and endian marker, returning the
// version found.
func readHeader(br *graphio.BinaryReader) (int, error) {
	if br.Remaining() < MinHeaderLen {
		return 0, fmt.Errorf("file shorter than minimal header: %w", codecerr.ErrBadHeader)
	}
	magic, err := br.Bytes(len(Magic))
	if err != nil {
		return 0, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != Magic {
		return 0, fmt.Errorf("expected magic %q, got %q: %w", Magic, magic, codecerr.ErrBadHeader)
	}
	version, err := br.Uint8()
	if err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	if version != Version1 && version != Version2 {
		return 0, fmt.Errorf("unsupported version %d: %w", version, codecerr.ErrBadHeader)
	}
	endian, err := br.Uint8()
	if err != nil {
		return 0, fmt.Errorf("reading endian marker: %w", err)
	}
	if endian != endianMarker {
		return 0, fmt.Errorf("unsupported endian marker %d: %w", endian, codecerr.ErrBadHeader)
	}
	return int(version), nil
}
