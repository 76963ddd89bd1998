package compression

import (
	"fmt"
	"io"
	"time"

	"github.com/dargueta/squish"
)

// Operation names used in [Stats].
const (
	OperationCompress   = "compress"
	OperationDecompress = "decompress"
)

// Stats describes a single codec call.
type Stats struct {
	Algorithm    string `json:"algorithm" csv:"algorithm"`
	Operation    string `json:"operation" csv:"operation"`
	OriginalSize int    `json:"originalSize" csv:"original_size"`
	OutputSize   int    `json:"outputSize" csv:"output_size"`
	// Ratio is the output size as a percentage of the original size. It's 0 if
	// the original was empty.
	Ratio     float64 `json:"ratio" csv:"ratio"`
	ElapsedMs float64 `json:"elapsedMs" csv:"elapsed_ms"`
}

func newStats(codec squish.Codec, operation string, input, output []byte, elapsed time.Duration) Stats {
	stats := Stats{
		Algorithm:    codec.Name(),
		Operation:    operation,
		OriginalSize: len(input),
		OutputSize:   len(output),
		ElapsedMs:    float64(elapsed.Microseconds()) / 1000.0,
	}
	if len(input) > 0 {
		stats.Ratio = float64(len(output)) / float64(len(input)) * 100.0
	}
	return stats
}

// CompressWithStats compresses `input` with `codec` and reports how long it
// took and how big the result is.
func CompressWithStats(codec squish.Codec, input []byte) ([]byte, Stats, error) {
	start := time.Now()
	output, err := codec.Compress(input)
	elapsed := time.Since(start)
	if err != nil {
		return nil, Stats{}, err
	}
	return output, newStats(codec, OperationCompress, input, output, elapsed), nil
}

// DecompressWithStats is the inverse of [CompressWithStats].
func DecompressWithStats(codec squish.Codec, input []byte) ([]byte, Stats, error) {
	start := time.Now()
	output, err := codec.Decompress(input)
	elapsed := time.Since(start)
	if err != nil {
		return nil, Stats{}, err
	}
	return output, newStats(codec, OperationDecompress, input, output, elapsed), nil
}

// CompressStream reads the entire input, compresses it with `codec`, and writes
// the result to the output.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressStream(codec squish.Codec, input io.Reader, output io.Writer) (int64, error) {
	return transformStream(codec.Compress, input, output)
}

// DecompressStream takes data compressed with `codec` and writes the original
// bytes to the output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func DecompressStream(codec squish.Codec, input io.Reader, output io.Writer) (int64, error) {
	return transformStream(codec.Decompress, input, output)
}

func transformStream(
	transform func([]byte) ([]byte, error),
	input io.Reader,
	output io.Writer,
) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	result, err := transform(data)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(result)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}
