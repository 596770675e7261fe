// Package codecerr holds the error taxonomy shared by the graph codec, its
// CLI, and its domain-stack extensions (fingerprinting, indexing, batching,
// packing). It has no dependencies of its own so both the low-level varint
// codec and the higher-level graphio emitters can import it without a
// cycle.
package codecerr

import "errors"

// Sentinel errors for the codec's error taxonomy. Call sites wrap these with
// fmt.Errorf("context: %w", ErrX) so callers can still recover the category
// with errors.Is while getting a useful message.
var (
	// ErrIO covers open/read/write/stat failures.
	ErrIO = errors.New("io error")
	// ErrParse covers a malformed TSV line.
	ErrParse = errors.New("parse error")
	// ErrOverflow covers an integer exceeding its declared range (u32 or u8).
	ErrOverflow = errors.New("integer overflow")
	// ErrBadHeader covers wrong magic, unsupported version, non-little-endian
	// marker, or a file shorter than the minimal header.
	ErrBadHeader = errors.New("bad header")
	// ErrUnexpectedEOF covers a binary input truncated mid-field.
	ErrUnexpectedEOF = errors.New("unexpected eof")
	// ErrMalformedVarint covers a varint exceeding 10 bytes / 64-bit shift.
	ErrMalformedVarint = errors.New("malformed varint")
	// ErrCorruptAdjacency covers a reconstructed neighbor index >= N or a
	// prev+gap arithmetic overflow in the adjacency section.
	ErrCorruptAdjacency = errors.New("corrupt adjacency section")
	// ErrCorruptLoops covers a reconstructed loop vertex >= N or an acc+delta
	// arithmetic overflow in the loop section.
	ErrCorruptLoops = errors.New("corrupt loop section")
	// ErrHostEndianness covers running on a non-little-endian host.
	ErrHostEndianness = errors.New("host is not little-endian")
	// ErrInternal covers an invariant violation reachable only by a bug.
	ErrInternal = errors.New("internal error")
)
