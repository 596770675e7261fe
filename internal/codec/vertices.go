package codec

import (
	"sort"

	"github.com/TFMV/graphcodec/internal/tsvscan"
)

// UniqueVertices scans a TSV edge list and returns its distinct endpoint
// identifiers in ascending order, the same `orig` mapping Serialize derives
// internally. It exists for callers that need the vertex set without paying
// for a full binary encode, such as the bloom index builder.
func UniqueVertices(input []byte) ([]uint32, error) {
	scanner := tsvscan.New(input)

	var ids []uint32
	if err := scanner.ForEach(func(a, b uint32, _ uint8) error {
		ids = append(ids, a, b)
		return nil
	}); err != nil {
		return nil, err
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return dedupe(ids), nil
}
