package huffman_test

import (
	"strings"
	"testing"

	"github.com/dargueta/squish/utilities/compression/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "", huffman.Code{}.String())
	assert.Equal(t, "0", huffman.Code{Size: 1, Bits: 0}.String())
	assert.Equal(t, "0101", huffman.Code{Size: 4, Bits: 5}.String())
	assert.Equal(t, "111", huffman.Code{Size: 3, Bits: 7}.String())
}

func TestDeriveCodeTable(t *testing.T) {
	_, codes, err := huffman.Analyze([]byte("aaabbbccd"))
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tLookup(0x64) = \"00\"\n",
		"\tLookup(0x63) = \"01\"\n",
		"\tLookup(0x61) = \"10\"\n",
		"\tLookup(0x62) = \"11\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, err = codes.Dump(&buf)
	require.NoError(t, err)
	assert.Equal(t, expectDump, buf.String())
	assert.Equal(t, 4, codes.Len())
	assert.Equal(t, []byte("dcab"), codes.Symbols())
	assert.EqualValues(t, 18, codes.EncodedBits([]byte("aaabbbccd")))

	_, ok := codes.Lookup('z')
	assert.False(t, ok)
}

func TestDeriveCodeTable__SingleLeaf(t *testing.T) {
	_, codes, err := huffman.Analyze([]byte("zzzz"))
	require.NoError(t, err)

	code, ok := codes.Lookup('z')
	require.True(t, ok)
	assert.Equal(t, "0", code.String())
	assert.Equal(t, 1, codes.Len())
}

func TestDeriveCodeTable__PrefixProperty(t *testing.T) {
	input := []byte("it was the best of times, it was the worst of times")
	_, codes, err := huffman.Analyze(input)
	require.NoError(t, err)

	symbols := codes.Symbols()
	for _, a := range symbols {
		for _, b := range symbols {
			if a == b {
				continue
			}
			codeA, _ := codes.Lookup(a)
			codeB, _ := codes.Lookup(b)
			assert.Falsef(
				t,
				strings.HasPrefix(codeB.String(), codeA.String()),
				"code for %q (%s) is a prefix of the code for %q (%s)",
				a, codeA, b, codeB,
			)
		}
	}
}
