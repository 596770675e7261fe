package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// edgeSig mirrors the external correctness checker's approach (see
// original_source/check_edges.py): it hashes a canonicalized (min, max,
// weight) triple rather than comparing raw lines, so the round-trip tests
// can assert multiset equality without caring about line or endpoint order.
func edgeSig(u, v uint32, w uint8) [32]byte {
	if u > v {
		u, v = v, u
	}
	var buf [9]byte
	binary.LittleEndian.PutUint32(buf[0:4], u)
	binary.LittleEndian.PutUint32(buf[4:8], v)
	buf[8] = w
	return sha256.Sum256(buf[:])
}

func parseTSV(t *testing.T, data []byte) map[[32]byte]int {
	t.Helper()
	counts := make(map[[32]byte]int)
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		fields := bytes.Split(line, []byte("\t"))
		require.Len(t, fields, 3)
		var u, v uint32
		var w uint8
		_, err := fmtSscan(fields[0], &u)
		require.NoError(t, err)
		_, err = fmtSscan(fields[1], &v)
		require.NoError(t, err)
		var w64 uint32
		_, err = fmtSscan(fields[2], &w64)
		require.NoError(t, err)
		w = uint8(w64)
		counts[edgeSig(u, v, w)]++
	}
	return counts
}

// fmtSscan avoids pulling in fmt.Sscan's reflection-heavy path for a single
// uint32 field; it is a hand-written digit loop kept local to the test and
// assumes the field holds only ASCII digits.
func fmtSscan(field []byte, out *uint32) (int, error) {
	var x uint64
	for _, c := range field {
		x = x*10 + uint64(c-'0')
	}
	*out = uint32(x)
	return 1, nil
}

func roundTrip(t *testing.T, input string) (binOut []byte, tsvOut []byte) {
	t.Helper()
	var bin bytes.Buffer
	require.NoError(t, Serialize([]byte(input), &bin))
	var tsv bytes.Buffer
	require.NoError(t, Deserialize(bin.Bytes(), &tsv, Options{}))
	return bin.Bytes(), tsv.Bytes()
}

func TestSerializeEmpty(t *testing.T) {
	t.Parallel()

	bin, tsv := roundTrip(t, "")
	require.Equal(t, []byte{'G', 'R', 'P', 'H', 0x02, 0x01, 0x00, 0x00}, bin)
	require.Empty(t, tsv)
}

func TestDeserializeEmptyBinaryHasNoLoopSection(t *testing.T) {
	t.Parallel()

	// Exactly the 8 bytes writeEmpty produces: magic, version, endian,
	// varu N=0, varu M=0 — no loop-count byte follows.
	empty := []byte{'G', 'R', 'P', 'H', 0x02, 0x01, 0x00, 0x00}
	var out bytes.Buffer
	require.NoError(t, Deserialize(empty, &out, Options{}))
	require.Empty(t, out.Bytes())
}

func TestSerializeSingleEdge(t *testing.T) {
	t.Parallel()

	bin, tsv := roundTrip(t, "10\t20\t5\n")
	want := []byte{
		'G', 'R', 'P', 'H', 0x02, 0x01,
		0x02,                   // varu N=2
		0x01,                   // varu M=1
		0x0A, 0x00, 0x00, 0x00, // u32 first original = 10
		0x0A, // varu delta = 10 (20-10)
		0x01, // vertex 0: deg=1
		0x01, // gap=1
		0x05, // weight=5
		0x00, // vertex 1: deg=0
		0x00, // loops L=0
	}
	require.Equal(t, want, bin)
	require.Equal(t, "10\t20\t5\n", string(tsv))
}

func TestSerializeSelfLoop(t *testing.T) {
	t.Parallel()

	_, tsv := roundTrip(t, "7\t7\t255\n")
	require.Equal(t, "7\t7\t255\n", string(tsv))
}

func TestSerializeMultiEdge(t *testing.T) {
	t.Parallel()

	input := "1\t2\t10\n2\t1\t20\n"
	_, tsv := roundTrip(t, input)
	require.Equal(t, parseTSV(t, []byte(input)), parseTSV(t, tsv))
}

func TestSerializeEndpointSwap(t *testing.T) {
	t.Parallel()

	_, tsv := roundTrip(t, "5\t3\t9\n")
	require.Equal(t, "3\t5\t9\n", string(tsv))
}

func TestSerializeLargeSparsity(t *testing.T) {
	t.Parallel()

	_, tsv := roundTrip(t, "0\t4294967295\t1\n")
	require.Equal(t, parseTSV(t, []byte("0\t4294967295\t1\n")), parseTSV(t, tsv))
}

func TestRoundTripMultisetIdentity(t *testing.T) {
	t.Parallel()

	input := "5\t3\t9\n1\t2\t10\n2\t1\t20\n7\t7\t255\n100\t1\t0\n100\t3\t1\n"
	_, tsv := roundTrip(t, input)
	require.Equal(t, parseTSV(t, []byte(input)), parseTSV(t, tsv))
}

func TestSerializeDeterministic(t *testing.T) {
	t.Parallel()

	input := "5\t3\t9\n1\t2\t10\n2\t1\t20\n7\t7\t255\n"
	bin1, _ := roundTrip(t, input)
	bin2, _ := roundTrip(t, input)
	require.Equal(t, bin1, bin2)
}

func TestSerializeHeaderBytes(t *testing.T) {
	t.Parallel()

	bin, _ := roundTrip(t, "1\t2\t3\n")
	require.Equal(t, []byte("GRPH"), bin[:4])
	require.Equal(t, byte(0x02), bin[4])
	require.Equal(t, byte(0x01), bin[5])
}

func TestDeserializeBadMagic(t *testing.T) {
	t.Parallel()

	bad := []byte{'X', 'X', 'X', 'X', 0x02, 0x01, 0x00, 0x00}
	var out bytes.Buffer
	err := Deserialize(bad, &out, Options{})
	require.Error(t, err)
}

func TestDeserializeUnsupportedVersion(t *testing.T) {
	t.Parallel()

	bad := []byte{'G', 'R', 'P', 'H', 0x09, 0x01}
	var out bytes.Buffer
	err := Deserialize(bad, &out, Options{})
	require.Error(t, err)
}

func TestDeserializeTruncated(t *testing.T) {
	t.Parallel()

	bin, _ := roundTrip(t, "1\t2\t3\n")
	var out bytes.Buffer
	err := Deserialize(bin[:len(bin)-1], &out, Options{})
	require.Error(t, err)
}

func TestCrossVersionRead(t *testing.T) {
	t.Parallel()

	// Hand-craft a v1 binary for {(10,20,5), (11,11,9)}: orig=[10,11,20].
	var v1 bytes.Buffer
	v1.Write([]byte("GRPH"))
	v1.WriteByte(0x01) // version 1
	v1.WriteByte(0x01) // endian
	writeU32LE(&v1, 3) // N
	writeU64LE(&v1, 2) // M
	writeU32LE(&v1, 10)
	writeU32LE(&v1, 11)
	writeU32LE(&v1, 20)
	// adjacency: vertex 0 (orig 10): deg=1, gap=2 (->idx2=20), weight=5
	v1.WriteByte(0x01)
	v1.WriteByte(0x02)
	v1.WriteByte(0x05)
	// vertex 1 (orig 11): deg=0
	v1.WriteByte(0x00)
	// vertex 2 (orig 20): deg=0
	v1.WriteByte(0x00)
	// loops: L=1, delta=1 (vertex 1, orig 11), weight=9
	v1.WriteByte(0x01)
	v1.WriteByte(0x01)
	v1.WriteByte(0x09)

	var tsvFromV1 bytes.Buffer
	require.NoError(t, Deserialize(v1.Bytes(), &tsvFromV1, Options{}))

	var binV2 bytes.Buffer
	require.NoError(t, Serialize(tsvFromV1.Bytes(), &binV2))
	var tsvFromV2 bytes.Buffer
	require.NoError(t, Deserialize(binV2.Bytes(), &tsvFromV2, Options{}))

	require.Equal(t, parseTSV(t, tsvFromV1.Bytes()), parseTSV(t, tsvFromV2.Bytes()))
}

func TestSortAdjacencyKeepsWeightsInStep(t *testing.T) {
	t.Parallel()

	off := []uint64{0, 3}
	nei := []uint32{5, 2, 9}
	wts := []uint8{50, 20, 90}
	sortAdjacency(off, nei, wts)
	require.Equal(t, []uint32{2, 5, 9}, nei)
	require.Equal(t, []uint8{20, 50, 90}, wts)
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	got := dedupe([]uint32{1, 1, 2, 2, 2, 3})
	require.Equal(t, []uint32{1, 2, 3}, got)
	require.Empty(t, dedupe(nil))
}

func writeU32LE(buf *bytes.Buffer, x uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], x)
	buf.Write(b[:])
}

func writeU64LE(buf *bytes.Buffer, x uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	buf.Write(b[:])
}

func TestNeighborOrderingIsSorted(t *testing.T) {
	t.Parallel()

	input := "0\t1\t1\n0\t5\t2\n0\t3\t3\n"
	_, tsv := roundTrip(t, input)
	lines := bytes.Split(bytes.TrimRight(tsv, "\n"), []byte("\n"))
	var seen []int
	for _, line := range lines {
		fields := bytes.Split(line, []byte("\t"))
		var v uint32
		fmtSscan(fields[1], &v)
		seen = append(seen, int(v))
	}
	require.True(t, sort.IntsAreSorted(seen))
}
