// Package tsvscan parses the edge-list TSV format: one "u\tv\tw\n" triple
// per line, with tolerant newline handling and no in-memory materialization
// beyond the caller-supplied byte slice.
package tsvscan

import (
	"fmt"

	"github.com/TFMV/graphcodec/internal/codecerr"
)

// MaxU32 is the largest value a and b may take (uint32 range).
const MaxU32 = 1<<32 - 1

// MaxWeight is the largest value w may take.
const MaxWeight = 255

// Scanner parses TSV edge lines out of a byte slice. It holds no mutable
// state beyond the slice itself, so the same Scanner value can be iterated
// any number of times — the serializer relies on this to make three
// independent passes over one input without re-reading or re-allocating.
type Scanner struct {
	data []byte
}

// New wraps data for scanning. data is never modified or retained beyond the
// lifetime of calls to ForEach.
func New(data []byte) Scanner {
	return Scanner{data: data}
}

// Visit is called once per parsed edge line.
type Visit func(a, b uint32, w uint8) error

// ForEach parses every edge line in the scanner's byte range and calls visit
// for each. Leading runs of blank lines (bare \r and \n bytes) are skipped.
// The final line need not be newline-terminated. Any malformed byte fails
// with codecerr.ErrParse; an out-of-range integer fails with
// codecerr.ErrOverflow.
func (s Scanner) ForEach(visit Visit) error {
	data := s.data
	i, n := 0, len(data)

	for i < n {
		// Skip any run of blank-line terminators.
		for i < n && (data[i] == '\n' || data[i] == '\r') {
			i++
		}
		if i >= n {
			break
		}

		a, next, err := scanUint(data, i, '\t', MaxU32)
		if err != nil {
			return err
		}
		i = next

		b, next, err := scanUint(data, i, '\t', MaxU32)
		if err != nil {
			return err
		}
		i = next

		w, next, err := scanUint(data, i, 0, MaxWeight)
		if err != nil {
			return err
		}
		i = next

		if err := visit(uint32(a), uint32(b), uint8(w)); err != nil {
			return err
		}
	}
	return nil
}

// scanUint reads ASCII digits starting at i until it hits delim (or, when
// delim is 0, a newline terminator), accumulating the value as a uint64 and
// failing with codecerr.ErrOverflow if it exceeds max. It returns the parsed
// value and the index just past the consumed delimiter.
func scanUint(data []byte, i int, delim byte, max uint64) (uint64, int, error) {
	n := len(data)
	var x uint64
	any := false

	for i < n {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			any = true
			x = x*10 + uint64(c-'0')
			if x > max {
				return 0, 0, fmt.Errorf("field exceeds range at byte %d: %w", i, codecerr.ErrOverflow)
			}
			i++
		case delim != 0 && c == delim:
			if !any {
				return 0, 0, fmt.Errorf("empty field at byte %d: %w", i, codecerr.ErrParse)
			}
			return x, i + 1, nil
		case delim == 0 && (c == '\n' || c == '\r'):
			if !any {
				return 0, 0, fmt.Errorf("empty field at byte %d: %w", i, codecerr.ErrParse)
			}
			if c == '\r' {
				i++
				if i < n && data[i] == '\n' {
					i++
				}
			} else {
				i++
			}
			return x, i, nil
		default:
			return 0, 0, fmt.Errorf("unexpected byte %q at offset %d: %w", c, i, codecerr.ErrParse)
		}
	}

	// Ran out of input. A final, unterminated weight field is tolerated; a
	// final field expecting an explicit delimiter is not.
	if delim == 0 && any {
		return x, i, nil
	}
	return 0, 0, fmt.Errorf("unexpected end of input at byte %d: %w", i, codecerr.ErrParse)
}
