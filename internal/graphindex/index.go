package graphindex

import (
	"bytes"

	"github.com/TFMV/graphcodec/internal/graphio"
)

// Save encodes the filter to its GIDX binary representation.
func Save(bf *BloomFilter) ([]byte, error) {
	var buf bytes.Buffer
	bw := graphio.NewBinaryWriter(&buf)
	if err := bf.Write(bw); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load parses a GIDX file previously written by Save.
func Load(data []byte) (*BloomFilter, error) {
	return Read(data)
}
