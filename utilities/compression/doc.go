// Package compression provides the codecs squish exposes and the plumbing for
// picking one by name and measuring it.
//
// Two codecs make up the core: run-length encoding (in this package) and
// Huffman coding (in the huffman subpackage). Both operate on raw bytes, never
// on decoded text, so arbitrary binary files round-trip.
//
// The RLE format is the simplest one that can't be misparsed: every run is
// written as a pair of bytes, the symbol followed by an unsigned run length
// from 1 to 255. For example:
//
//	aaabbbccd
//	a 3 b 3 c 2 d 1
//
// Runs longer than 255 bytes are split, so a run of 300 "X" is written as
// `X 255 X 45`. A pair with length 0 never appears in valid output and is
// rejected on decode, as is an odd-length container.
//
// Text-digit counts (`a3b3c2d1`) look nicer but can't be decoded once a count
// reaches 10 or the data itself contains digits, which is why the count is a
// binary byte here.
//
// For comparison the registry also carries LZ4 and Zstandard. They're only
// there as baselines for `squish bench` and aren't part of the wire contract.

package compression
