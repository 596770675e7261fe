/*
Package codec implements the GRPH binary format: a compact, CSR-like
encoding for undirected weighted graphs whose vertex identifiers are a
sparse subset of uint32 and whose edge weights are single bytes.

# Binary layout

	[4B magic "GRPH"][1B version][1B endian=1]
	v1: [u32 N][u64 M] [N * u32 mapping] [adjacency] [loops]
	v2: [varu N][varu M] [u32 first, (N-1) * varu deltas] [adjacency] [loops]

Adjacency, for i = 0..N-1:

	varu deg+(i)
	deg+(i) * (varu gap, u8 weight)

Loops:

	varu L
	L * (varu delta, u8 weight)

Writers always emit version 2; readers accept version 1 or 2.

# Usage

	data, _ := os.ReadFile("edges.tsv")
	var buf bytes.Buffer
	err := codec.Serialize(data, &buf)

	bin, _ := os.ReadFile("graph.bin")
	var out bytes.Buffer
	err = codec.Deserialize(bin, &out, codec.Options{})
*/
package codec
