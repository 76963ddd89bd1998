package huffman_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/dargueta/squish"
	"github.com/dargueta/squish/utilities/compression/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress__KnownContainer(t *testing.T) {
	compressed, err := huffman.Compress([]byte("aaabbbccd"))
	require.NoError(t, err)

	expected := []byte{
		0, 0, 0, 20,
		'a', 0, 0, 0, 3,
		'b', 0, 0, 0, 3,
		'c', 0, 0, 0, 2,
		'd', 0, 0, 0, 1,
		// 10 10 10 11 11 11 01 01 00 + 6 bits of padding
		0xab, 0xf5, 0x00,
	}
	assert.Equal(t, expected, compressed)
}

func TestCompress__Empty(t *testing.T) {
	compressed, err := huffman.Compress([]byte{})
	assert.ErrorIs(t, err, squish.ErrEmptyInput)
	assert.Nil(t, compressed)
}

func TestCompress__Deterministic(t *testing.T) {
	input := make([]byte, 4096)
	_, err := rand.Read(input)
	require.NoError(t, err)

	first, err := huffman.Compress(input)
	require.NoError(t, err)
	second, err := huffman.Compress(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundTrip(t *testing.T) {
	randomData := make([]byte, 1852)
	_, err := rand.Read(randomData)
	require.NoError(t, err)

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tests := []struct {
		Name string
		Data []byte
	}{
		{"single byte", []byte{0x42}},
		{"single symbol", []byte("aaaaaaaa")},
		{"two symbols", []byte("abababababbbbbbb")},
		{"text", []byte("the quick brown fox jumps over the lazy dog")},
		{"all byte values", allBytes},
		{"nulls", make([]byte, 571)},
		{"skewed", append(bytes.Repeat([]byte{1}, 5000), 2, 3, 4, 5, 6, 7)},
		{"random", randomData},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			compressed, err := huffman.Compress(test.Data)
			require.NoError(t, err, "unexpected error while compressing")
			t.Logf("compressed %d -> %d", len(test.Data), len(compressed))

			decompressed, err := huffman.Decompress(compressed)
			require.NoError(t, err, "unexpected error while decompressing")
			assert.Equal(t, test.Data, decompressed, "decompressed data is wrong")
		})
	}
}

func TestDecompress__SingleSymbolPayload(t *testing.T) {
	compressed, err := huffman.Compress([]byte("aaaaaaaa"))
	require.NoError(t, err)

	// 4-byte prefix, one 5-byte entry, then eight "0" codes in one byte.
	require.Len(t, compressed, 10)
	assert.Equal(t, byte(0), compressed[9])
}

func TestDecompress__Truncated(t *testing.T) {
	inputs := [][]byte{
		[]byte("aaabbbccd"),
		[]byte("aaaaaaaa"),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, input := range inputs {
		compressed, err := huffman.Compress(input)
		require.NoError(t, err)

		for cut := 1; cut <= len(compressed); cut++ {
			_, err := huffman.Decompress(compressed[:len(compressed)-cut])
			assert.ErrorIsf(
				t, err, squish.ErrMalformedInput, "%q with %d bytes cut off", input, cut)
		}
	}
}

func TestDecompress__Malformed(t *testing.T) {
	tests := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"short prefix", []byte{0, 0}},
		{"metadata past end", []byte{0, 0, 0, 10, 'a', 0, 0, 0, 1}},
		{"zero-length metadata", []byte{0, 0, 0, 0, 0xff}},
		{"ragged metadata", []byte{0, 0, 0, 4, 'a', 0, 0, 1, 0x00}},
		{"huge count", []byte{0, 0, 0, 5, 'a', 0xff, 0xff, 0xff, 0xff, 0x00}},
		// A one-leaf tree has no right branch.
		{"missing child", []byte{0, 0, 0, 5, 'a', 0, 0, 0, 2, 0x40}},
		{"trailing data", []byte{0, 0, 0, 5, 'a', 0, 0, 0, 2, 0x00, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			decompressed, err := huffman.Decompress(test.Data)
			assert.ErrorIs(t, err, squish.ErrMalformedInput)
			assert.Nil(t, decompressed)
		})
	}
}

func TestDecompress__IgnoresPaddingBits(t *testing.T) {
	// Two "0" codes, then six padding bits that happen to be set.
	decompressed, err := huffman.Decompress([]byte{0, 0, 0, 5, 'q', 0, 0, 0, 2, 0x3f})
	require.NoError(t, err)
	assert.Equal(t, []byte("qq"), decompressed)
}

func TestCodec(t *testing.T) {
	codec := huffman.Codec{}
	assert.Equal(t, squish.AlgorithmHuffman, codec.Name())

	compressed, err := codec.Compress([]byte("hello, world"))
	require.NoError(t, err)
	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello, world"), decompressed)
}
