package codec

import (
	"fmt"
	"io"
	"sort"

	"github.com/TFMV/graphcodec/internal/codecerr"
	"github.com/TFMV/graphcodec/internal/graphio"
	"github.com/TFMV/graphcodec/internal/tsvscan"
)

// loopEntry is one self-loop, carrying its compact vertex index and weight.
type loopEntry struct {
	v uint32
	w uint8
}

// Serialize reads a TSV edge list from input and writes its compact GRPH
// binary encoding to w in three passes over input: collect endpoints, sort-unique them into the
// newId->originalId mapping while counting per-vertex upper degree, then
// fill and sort the CSR adjacency and loop arrays before emitting.
func Serialize(input []byte, w io.Writer) error {
	if err := graphio.CheckHostEndianness(); err != nil {
		return err
	}

	scanner := tsvscan.New(input)
	bw := graphio.NewBinaryWriter(w)

	var ids []uint32
	lineCount := 0
	if err := scanner.ForEach(func(a, b uint32, _ uint8) error {
		ids = append(ids, a, b)
		lineCount++
		return nil
	}); err != nil {
		return err
	}

	if lineCount == 0 {
		return writeEmpty(bw)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	orig := dedupe(ids)
	ids = nil // release pass-1 buffer before allocating the CSR
	n := len(orig)

	lookup := func(x uint32) (uint32, error) {
		i := sort.Search(n, func(i int) bool { return orig[i] >= x })
		if i >= n || orig[i] != x {
			return 0, fmt.Errorf("vertex %d missing from sorted mapping: %w", x, codecerr.ErrInternal)
		}
		return uint32(i), nil
	}

	degPlus := make([]uint32, n)
	var loopCount, nonLoopCount uint64
	if err := scanner.ForEach(func(a, b uint32, _ uint8) error {
		ia, err := lookup(a)
		if err != nil {
			return err
		}
		ib, err := lookup(b)
		if err != nil {
			return err
		}
		if ia == ib {
			loopCount++
		} else {
			u := ia
			if ib < u {
				u = ib
			}
			degPlus[u]++
			nonLoopCount++
		}
		return nil
	}); err != nil {
		return err
	}

	off := make([]uint64, n+1)
	for i := 0; i < n; i++ {
		off[i+1] = off[i] + uint64(degPlus[i])
	}
	nei := make([]uint32, off[n])
	wts := make([]uint8, off[n])
	cursor := append([]uint64(nil), off[:n]...)
	loops := make([]loopEntry, 0, loopCount)

	if err := scanner.ForEach(func(a, b uint32, w uint8) error {
		ia, err := lookup(a)
		if err != nil {
			return err
		}
		ib, err := lookup(b)
		if err != nil {
			return err
		}
		if ia == ib {
			loops = append(loops, loopEntry{v: ia, w: w})
			return nil
		}
		u, v := ia, ib
		if u > v {
			u, v = v, u
		}
		pos := cursor[u]
		nei[pos] = v
		wts[pos] = w
		cursor[u]++
		return nil
	}); err != nil {
		return err
	}

	sortAdjacency(off, nei, wts)
	sort.Slice(loops, func(i, j int) bool { return loops[i].v < loops[j].v })

	mTotal := nonLoopCount + uint64(len(loops))

	if err := writeHeader(bw); err != nil {
		return err
	}
	if err := bw.Varint(uint64(n)); err != nil {
		return err
	}
	if err := bw.Varint(mTotal); err != nil {
		return err
	}
	if err := writeMapping(bw, orig); err != nil {
		return err
	}
	if err := writeAdjacency(bw, off, nei, wts); err != nil {
		return err
	}
	if err := writeLoops(bw, loops); err != nil {
		return err
	}
	return bw.Close()
}

func writeEmpty(bw *graphio.BinaryWriter) error {
	if err := writeHeader(bw); err != nil {
		return err
	}
	if err := bw.Varint(0); err != nil {
		return err
	}
	if err := bw.Varint(0); err != nil {
		return err
	}
	return bw.Close()
}

// dedupe sorts-unique is already sorted on entry; it removes consecutive
// duplicates in place and returns the shortened slice.
func dedupe(sorted []uint32) []uint32 {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, x := range sorted[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

func writeMapping(bw *graphio.BinaryWriter, orig []uint32) error {
	if len(orig) == 0 {
		return nil
	}
	if err := bw.Uint32LE(orig[0]); err != nil {
		return err
	}
	for i := 1; i < len(orig); i++ {
		if err := bw.Varint(uint64(orig[i] - orig[i-1])); err != nil {
			return err
		}
	}
	return nil
}

// sortAdjacency sorts each vertex's neighbor slice ascending, permuting the
// parallel weight slice in lockstep. Stability among equal neighbor indices
// (multi-edges) is not required.
func sortAdjacency(off []uint64, nei []uint32, wts []uint8) {
	n := len(off) - 1
	for i := 0; i < n; i++ {
		lo, hi := off[i], off[i+1]
		if hi-lo <= 1 {
			continue
		}
		seg := nei[lo:hi]
		wseg := wts[lo:hi]
		sort.Sort(&adjacencySlice{nei: seg, w: wseg})
	}
}

// adjacencySlice adapts a (neighbor, weight) pair of parallel slices to
// sort.Interface, keeping the weight in step with its neighbor during the
// sort.
type adjacencySlice struct {
	nei []uint32
	w   []uint8
}

func (s *adjacencySlice) Len() int           { return len(s.nei) }
func (s *adjacencySlice) Less(i, j int) bool { return s.nei[i] < s.nei[j] }
func (s *adjacencySlice) Swap(i, j int) {
	s.nei[i], s.nei[j] = s.nei[j], s.nei[i]
	s.w[i], s.w[j] = s.w[j], s.w[i]
}

func writeAdjacency(bw *graphio.BinaryWriter, off []uint64, nei []uint32, wts []uint8) error {
	n := len(off) - 1
	for i := 0; i < n; i++ {
		lo, hi := off[i], off[i+1]
		if err := bw.Varint(hi - lo); err != nil {
			return err
		}
		prev := uint32(i)
		for k := lo; k < hi; k++ {
			j := nei[k]
			if err := bw.Varint(uint64(j - prev)); err != nil {
				return err
			}
			if err := bw.Uint8(wts[k]); err != nil {
				return err
			}
			prev = j
		}
	}
	return nil
}

func writeLoops(bw *graphio.BinaryWriter, loops []loopEntry) error {
	if err := bw.Varint(uint64(len(loops))); err != nil {
		return err
	}
	prev := uint32(0)
	for _, le := range loops {
		if err := bw.Varint(uint64(le.v - prev)); err != nil {
			return err
		}
		if err := bw.Uint8(le.w); err != nil {
			return err
		}
		prev = le.v
	}
	return nil
}
