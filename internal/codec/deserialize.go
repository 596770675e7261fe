package codec

import (
	"fmt"
	"io"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/TFMV/graphcodec/internal/graphio"
)

// maxU32 is the largest representable vertex identifier.
const maxU32 = 1<<32 - 1

// Options controls optional deserialize behavior beyond the reference's
// default, permissive decode path.
type Options struct {
	// Strict rejects trailing bytes left after the loop section, and cross
	// checks the decoded edge count against the header's M_total field. Off
	// by default, matching the reference decoder (see design notes on
	// M_total being informational).
	Strict bool
}

// Deserialize reads a GRPH binary from input and writes the reconstructed
// edge-list TSV to w: one line per upper-adjacency entry (ascending i, then
// ascending j), followed by one line per self-loop in stored order.
func Deserialize(input []byte, w io.Writer, opts Options) error {
	if err := graphio.CheckHostEndianness(); err != nil {
		return err
	}

	br := graphio.NewBinaryReader(input)
	version, err := readHeader(br)
	if err != nil {
		return err
	}

	n, mTotal, err := readCounts(br, version)
	if err != nil {
		return err
	}

	orig, err := readMapping(br, version, n)
	if err != nil {
		return err
	}

	tw := graphio.NewTextWriter(w)
	var decoded uint64

	for i := uint32(0); i < n; i++ {
		deg, err := br.Varint()
		if err != nil {
			return fmt.Errorf("reading degree for vertex %d: %w", i, err)
		}
		prev := i
		for k := uint64(0); k < deg; k++ {
			gap, err := br.Varint()
			if err != nil {
				return fmt.Errorf("reading gap for vertex %d entry %d: %w", i, k, err)
			}
			j64 := uint64(prev) + gap
			if j64 > maxU32 || uint32(j64) >= n {
				return fmt.Errorf("neighbor index %d out of range (N=%d): %w", j64, n, codecerr.ErrCorruptAdjacency)
			}
			j := uint32(j64)
			weight, err := br.Uint8()
			if err != nil {
				return fmt.Errorf("reading weight for vertex %d entry %d: %w", i, k, err)
			}
			if err := tw.Line(orig[i], orig[j], weight); err != nil {
				return err
			}
			prev = j
			decoded++
		}
	}

	// writeEmpty stops right after N=0/M=0 with no mapping, adjacency, or
	// loop section at all (see serialize.go). Every non-empty graph always
	// has a loop-count varint, even when it encodes zero loops, so only the
	// N==0 case short-circuits here; any other truncation still surfaces as
	// ErrUnexpectedEOF below.
	var loopCount uint64
	if n > 0 {
		loopCount, err = br.Varint()
		if err != nil {
			return fmt.Errorf("reading loop count: %w", err)
		}
	}
	acc := uint32(0)
	for t := uint64(0); t < loopCount; t++ {
		delta, err := br.Varint()
		if err != nil {
			return fmt.Errorf("reading loop delta %d: %w", t, err)
		}
		v64 := uint64(acc) + delta
		if v64 > maxU32 || uint32(v64) >= n {
			return fmt.Errorf("loop vertex %d out of range (N=%d): %w", v64, n, codecerr.ErrCorruptLoops)
		}
		v := uint32(v64)
		weight, err := br.Uint8()
		if err != nil {
			return fmt.Errorf("reading loop weight %d: %w", t, err)
		}
		if err := tw.Line(orig[v], orig[v], weight); err != nil {
			return err
		}
		acc = v
		decoded++
	}

	if opts.Strict {
		if br.Remaining() != 0 {
			return fmt.Errorf("%d trailing bytes after loop section: %w", br.Remaining(), codecerr.ErrBadHeader)
		}
		if decoded != mTotal {
			return fmt.Errorf("decoded %d edges, header M_total=%d: %w", decoded, mTotal, codecerr.ErrBadHeader)
		}
	}

	return tw.Close()
}

func readCounts(br *graphio.BinaryReader, version int) (n uint32, m uint64, err error) {
	if version == Version1 {
		n, err = br.Uint32LE()
		if err != nil {
			return 0, 0, fmt.Errorf("reading N: %w", err)
		}
		m, err = br.Uint64LE()
		if err != nil {
			return 0, 0, fmt.Errorf("reading M: %w", err)
		}
		return n, m, nil
	}
	nv, err := br.Varint()
	if err != nil {
		return 0, 0, fmt.Errorf("reading N: %w", err)
	}
	mv, err := br.Varint()
	if err != nil {
		return 0, 0, fmt.Errorf("reading M: %w", err)
	}
	return uint32(nv), mv, nil
}

func readMapping(br *graphio.BinaryReader, version int, n uint32) ([]uint32, error) {
	orig := make([]uint32, n)
	if version == Version1 {
		for i := uint32(0); i < n; i++ {
			v, err := br.Uint32LE()
			if err != nil {
				return nil, fmt.Errorf("reading mapping entry %d: %w", i, err)
			}
			orig[i] = v
		}
		return orig, nil
	}
	if n == 0 {
		return orig, nil
	}
	first, err := br.Uint32LE()
	if err != nil {
		return nil, fmt.Errorf("reading first mapping entry: %w", err)
	}
	orig[0] = first
	for i := uint32(1); i < n; i++ {
		d, err := br.Varint()
		if err != nil {
			return nil, fmt.Errorf("reading mapping delta %d: %w", i, err)
		}
		sum := uint64(orig[i-1]) + d
		if sum > maxU32 {
			return nil, fmt.Errorf("mapping entry %d overflows u32: %w", i, codecerr.ErrBadHeader)
		}
		orig[i] = uint32(sum)
	}
	return orig, nil
}
