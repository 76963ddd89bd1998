package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dargueta/squish"
	"github.com/gocarina/gocsv"
)

// BenchResult is one row of a benchmark report: one codec run over one input.
type BenchResult struct {
	Input          string  `csv:"input"`
	Algorithm      string  `csv:"algorithm"`
	OriginalSize   int     `csv:"original_size"`
	CompressedSize int     `csv:"compressed_size"`
	Ratio          float64 `csv:"ratio"`
	CompressMs     float64 `csv:"compress_ms"`
	DecompressMs   float64 `csv:"decompress_ms"`
	RoundTrip      bool    `csv:"round_trip"`
	Error          string  `csv:"error"`
}

// Benchmark compresses `input` with every codec, decompresses the result, and
// checks that it matches. A codec failing doesn't stop the others; its error is
// recorded in the row instead.
func Benchmark(inputName string, input []byte, codecs []squish.Codec) []BenchResult {
	results := make([]BenchResult, 0, len(codecs))
	for _, codec := range codecs {
		results = append(results, benchmarkOne(inputName, input, codec))
	}
	return results
}

func benchmarkOne(inputName string, input []byte, codec squish.Codec) BenchResult {
	result := BenchResult{
		Input:        inputName,
		Algorithm:    codec.Name(),
		OriginalSize: len(input),
	}

	compressed, compressStats, err := CompressWithStats(codec, input)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.CompressedSize = compressStats.OutputSize
	result.Ratio = compressStats.Ratio
	result.CompressMs = compressStats.ElapsedMs

	decompressed, decompressStats, err := DecompressWithStats(codec, compressed)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.DecompressMs = decompressStats.ElapsedMs
	result.RoundTrip = bytes.Equal(input, decompressed)
	if !result.RoundTrip {
		result.Error = fmt.Sprintf(
			"decompressed %d bytes don't match the original %d",
			len(decompressed),
			len(input),
		)
	}
	return result
}

// WriteBenchReport writes the results as CSV with a header row.
func WriteBenchReport(w io.Writer, results []BenchResult) error {
	return gocsv.Marshal(&results, w)
}
