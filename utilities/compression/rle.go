package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/dargueta/squish"
	"github.com/noxer/bytewriter"
)

// rlePairSize is the width of one encoded run: the symbol, then its length.
const rlePairSize = 2

// CompressRLEStream reads bytes from the input and writes compressed data to
// the output until the input is exhausted. The return value is the number of
// bytes written, only valid if no error occurred.
func CompressRLEStream(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRLEGrouper(input)

	totalBytesWritten := int64(0)
	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, err
		}

		for _, chunk := range run.Chunks() {
			n, err := output.Write([]byte{chunk.Byte, byte(chunk.RunLength)})
			totalBytesWritten += int64(n)
			if err != nil {
				return totalBytesWritten, err
			}
		}
	}
}

// CompressRLE run-length encodes `input` into (symbol, length) pairs. Empty
// input gives empty output.
func CompressRLE(input []byte) []byte {
	output := bytes.NewBuffer(make([]byte, 0, len(input)))
	_, err := CompressRLEStream(bytes.NewReader(input), output)
	assert.Assertf(err == nil, "in-memory RLE compression failed: %v", err)
	return output.Bytes()
}

// DecompressRLEStream expands (symbol, length) pairs read from the input until
// the input is exhausted. The returned int64 gives the number of bytes written
// to the output; if an error occurred it is undefined and should not be used.
func DecompressRLEStream(input io.Reader, output io.Writer) (int64, error) {
	var pair [rlePairSize]byte
	totalBytesWritten := int64(0)

	for pairIndex := 0; ; pairIndex++ {
		_, err := io.ReadFull(input, pair[:])
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return totalBytesWritten, squish.ErrMalformedInput.WithMessage(
					fmt.Sprintf("missing run length after symbol %02x", pair[0]))
			}
			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		if pair[1] == 0 {
			return totalBytesWritten, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("run %d of symbol %02x has length 0", pairIndex, pair[0]))
		}

		n, err := output.Write(bytes.Repeat(pair[:1], int(pair[1])))
		totalBytesWritten += int64(n)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
	}
}

// DecompressRLE expands an RLE container back into the original bytes. The
// container is validated in full before anything is allocated, so corrupt input
// fails with [squish.ErrMalformedInput] without producing partial output.
func DecompressRLE(input []byte) ([]byte, error) {
	expandedSize, err := rleExpandedSize(input)
	if err != nil {
		return nil, err
	}

	output := make([]byte, expandedSize)
	n, err := DecompressRLEStream(bytes.NewReader(input), bytewriter.New(output))
	if err != nil {
		return nil, err
	}
	assert.Assertf(
		n == int64(expandedSize),
		"RLE expanded to %d bytes, expected %d",
		n,
		expandedSize,
	)
	return output, nil
}

// rleExpandedSize validates the framing of an RLE container and returns the
// number of bytes it expands to.
func rleExpandedSize(input []byte) (int, error) {
	if len(input)%rlePairSize != 0 {
		return 0, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"RLE data is %d bytes, not a multiple of the %d-byte pair size",
				len(input),
				rlePairSize,
			),
		)
	}

	total := 0
	for i := 0; i < len(input); i += rlePairSize {
		runLength := int(input[i+1])
		if runLength == 0 {
			return 0, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("run %d of symbol %02x has length 0", i/rlePairSize, input[i]))
		}
		total += runLength
	}
	return total, nil
}

// RLECodec exposes the RLE functions as a [squish.Codec].
type RLECodec struct{}

func (RLECodec) Name() string { return squish.AlgorithmRLE }

func (RLECodec) Compress(input []byte) ([]byte, error) {
	return CompressRLE(input), nil
}

func (RLECodec) Decompress(input []byte) ([]byte, error) {
	return DecompressRLE(input)
}

var _ squish.Codec = RLECodec{}
