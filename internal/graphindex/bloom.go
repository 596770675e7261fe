// Package graphindex builds a sidecar bloom-filter membership index over a
// graph's original vertex identifiers, so a caller can cheaply test "is
// vertex X present" without decoding the full GRPH adjacency. It never
// touches the core binary format; the index is its own small file.
package graphindex

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/TFMV/graphcodec/internal/graphio"
)

// Magic identifies a GIDX sidecar file.
const Magic = "GIDX"

// Version is the only defined GIDX format version.
const Version = 1

// BitsPerVertex and NumHashFuncs pick a false-positive rate under 1% for the
// default configuration, the same double-hashing scheme (xxhash + murmur3)
// the teacher uses for quick existence checks.
const (
	BitsPerVertex = 10
	NumHashFuncs  = 7
)

// BloomFilter is a fixed-size bit array tested with k independent hash
// functions derived from two real hash functions via double hashing
// (Kirsch-Mitzenmacher), avoiding k separate hash computations per item.
type BloomFilter struct {
	bits    []byte
	numHash uint
	n       uint64 // number of items the filter was sized/built for
}

// New allocates a filter sized for n items at the given bits-per-item and
// hash-function count.
func New(n int, bitsPerItem, numHash int) *BloomFilter {
	count := n
	if count < 1 {
		count = 1
	}
	size := uint(count * bitsPerItem)
	if size == 0 {
		size = 1
	}
	return &BloomFilter{
		bits:    make([]byte, (size+7)/8),
		numHash: uint(numHash),
		n:       uint64(n),
	}
}

func (b *BloomFilter) indexesFor(data []byte) (h1, h2 uint64) {
	return xxhash.Sum64(data), murmur3.Sum64(data)
}

// Add inserts data into the filter.
func (b *BloomFilter) Add(data []byte) {
	h1, h2 := b.indexesFor(data)
	total := uint64(len(b.bits)) * 8
	for i := uint(0); i < b.numHash; i++ {
		idx := (h1 + uint64(i)*h2) % total
		b.bits[idx/8] |= 1 << (idx % 8)
	}
}

// Contains reports whether data might be in the filter. False positives are
// possible; false negatives are not.
func (b *BloomFilter) Contains(data []byte) bool {
	h1, h2 := b.indexesFor(data)
	total := uint64(len(b.bits)) * 8
	for i := uint(0); i < b.numHash; i++ {
		idx := (h1 + uint64(i)*h2) % total
		if b.bits[idx/8]&(1<<(idx%8)) == 0 {
			return false
		}
	}
	return true
}

// BuildFromVertices constructs a filter over a strictly ascending vertex-id
// slice, matching the `orig` array the serializer produces.
func BuildFromVertices(orig []uint32) *BloomFilter {
	bf := New(len(orig), BitsPerVertex, NumHashFuncs)
	var key [4]byte
	for _, v := range orig {
		putU32LE(key[:], v)
		bf.Add(key[:])
	}
	return bf
}

func putU32LE(dst []byte, x uint32) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

// Write serializes the filter as a GIDX file.
func (b *BloomFilter) Write(bw *graphio.BinaryWriter) error {
	if err := bw.Bytes([]byte(Magic)); err != nil {
		return err
	}
	if err := bw.Uint8(Version); err != nil {
		return err
	}
	if err := bw.Varint(b.n); err != nil {
		return err
	}
	if err := bw.Varint(uint64(b.numHash)); err != nil {
		return err
	}
	if err := bw.Varint(uint64(len(b.bits) * 8)); err != nil {
		return err
	}
	return bw.Bytes(b.bits)
}

// Read parses a GIDX file.
func Read(data []byte) (*BloomFilter, error) {
	br := graphio.NewBinaryReader(data)
	magic, err := br.Bytes(len(Magic))
	if err != nil {
		return nil, fmt.Errorf("reading index magic: %w", err)
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("expected magic %q, got %q: %w", Magic, magic, codecerr.ErrBadHeader)
	}
	version, err := br.Uint8()
	if err != nil {
		return nil, fmt.Errorf("reading index version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("unsupported index version %d: %w", version, codecerr.ErrBadHeader)
	}
	n, err := br.Varint()
	if err != nil {
		return nil, fmt.Errorf("reading item count: %w", err)
	}
	numHash, err := br.Varint()
	if err != nil {
		return nil, fmt.Errorf("reading hash count: %w", err)
	}
	bitCount, err := br.Varint()
	if err != nil {
		return nil, fmt.Errorf("reading bit count: %w", err)
	}
	bits, err := br.Bytes(int((bitCount + 7) / 8))
	if err != nil {
		return nil, fmt.Errorf("reading bit array: %w", err)
	}
	return &BloomFilter{bits: append([]byte(nil), bits...), numHash: uint(numHash), n: n}, nil
}

// ContainsVertex reports whether the original vertex id v might be a member.
func (b *BloomFilter) ContainsVertex(v uint32) bool {
	var key [4]byte
	putU32LE(key[:], v)
	return b.Contains(key[:])
}
