package compression_test

import (
	"bytes"
	"testing"

	"github.com/dargueta/squish"
	c "github.com/dargueta/squish/utilities/compression"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmark(t *testing.T) {
	codecs := []squish.Codec{c.RLECodec{}, c.LZ4Codec{}}
	results := c.Benchmark("runs.bin", bytes.Repeat([]byte{1, 1, 1, 2}, 50), codecs)

	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, "runs.bin", result.Input)
		assert.Equal(t, codecs[i].Name(), result.Algorithm)
		assert.Equal(t, 200, result.OriginalSize)
		assert.True(t, result.RoundTrip)
		assert.Empty(t, result.Error)
	}
	assert.Equal(t, 200, results[0].CompressedSize)
}

func TestBenchmark__RecordsErrors(t *testing.T) {
	results := c.Benchmark("empty", []byte{}, []squish.Codec{c.RLECodec{}, mustLookup(t, "huffman")})

	require.Len(t, results, 2)
	assert.True(t, results[0].RoundTrip)
	assert.False(t, results[1].RoundTrip)
	assert.Contains(t, results[1].Error, "Empty input")
}

func TestWriteBenchReport(t *testing.T) {
	results := []c.BenchResult{
		{Input: "a.txt", Algorithm: "rle", OriginalSize: 10, CompressedSize: 4, Ratio: 40, RoundTrip: true},
		{Input: "b.txt", Algorithm: "huffman", Error: "Empty input"},
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteBenchReport(&buf, results))

	var parsed []c.BenchResult
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &parsed))
	assert.Equal(t, results, parsed)
	assert.Contains(t, buf.String(), "input,algorithm,original_size,compressed_size,ratio")
}

func mustLookup(t *testing.T, name string) squish.Codec {
	codec, err := c.Lookup(name)
	require.NoError(t, err)
	return codec
}
