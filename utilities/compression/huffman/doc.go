// Package huffman implements a self-describing Huffman codec over raw bytes.
//
// A compressed container looks like this:
//
//	[N (4 bytes, big endian)] [frequency table (N bytes)] [packed codes...]
//
// The frequency table is a list of 5-byte entries, one per distinct input byte:
// the byte itself followed by its occurrence count as a big-endian uint32.
// Entries appear in the order each byte first occurred in the input. Codes are
// packed most significant bit first and the last byte is padded with zeros.
// There's no padding-length field; the decoder stops once it has produced as
// many bytes as the counts add up to.
//
// Tree construction is deterministic so a decoder can rebuild the encoder's
// tree from the table alone. Nodes are merged lowest frequency first. Ties go
// to the node that was created first: leaves are numbered by their position in
// the table, and each internal node is numbered after every node before it.
// Of the two nodes merged, the first one popped becomes the left (0) child.
//
// An input with only one distinct byte produces a one-leaf tree; that byte is
// given the code "0" so every symbol still costs one bit.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
