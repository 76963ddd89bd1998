package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/dargueta/squish"
)

// lengthPrefixSize is the width of the big-endian metadata length that starts
// every container.
const lengthPrefixSize = 4

// Analyze builds the frequency table, tree, and code table Compress would use
// for `input` without encoding anything.
func Analyze(input []byte) (*FrequencyTable, *CodeTable, error) {
	table, err := BuildFrequencyTable(input)
	if err != nil {
		return nil, nil, err
	}
	root, err := BuildTree(table)
	if err != nil {
		return nil, nil, err
	}
	return table, DeriveCodeTable(root), nil
}

// Compress Huffman-codes `input` into a self-describing container. It fails
// with [squish.ErrEmptyInput] if `input` is empty.
func Compress(input []byte) ([]byte, error) {
	table, codes, err := Analyze(input)
	if err != nil {
		return nil, err
	}

	metadata, err := table.MarshalBinary()
	if err != nil {
		return nil, err
	}

	payloadSize := (codes.EncodedBits(input) + 7) / 8
	output := bytes.NewBuffer(
		make([]byte, 0, lengthPrefixSize+len(metadata)+int(payloadSize)))

	var prefix [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(metadata)))
	output.Write(prefix[:])
	output.Write(metadata)

	if err := packSymbols(output, input, codes); err != nil {
		return nil, fmt.Errorf("failed to pack codes: %w", err)
	}
	return output.Bytes(), nil
}

// Decompress rebuilds the tree from the container's frequency table and decodes
// exactly as many symbols as the table's counts add up to. Anything that
// doesn't parse fails with [squish.ErrMalformedInput].
func Decompress(input []byte) ([]byte, error) {
	if len(input) < lengthPrefixSize {
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf("container is %d bytes, too short for the length prefix", len(input)))
	}

	metadataSize := uint64(binary.BigEndian.Uint32(input[:lengthPrefixSize]))
	if metadataSize > uint64(len(input)-lengthPrefixSize) {
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"frequency table is %d bytes but only %d remain",
				metadataSize,
				len(input)-lengthPrefixSize,
			),
		)
	}

	metadataEnd := lengthPrefixSize + int(metadataSize)
	table := &FrequencyTable{}
	if err := table.UnmarshalBinary(input[lengthPrefixSize:metadataEnd]); err != nil {
		return nil, err
	}

	root, err := BuildTree(table)
	if err != nil {
		return nil, squish.ErrMalformedInput.Wrap(err)
	}

	// Every symbol costs at least one bit, so this bounds the allocation below
	// by the size of the input.
	payload := input[metadataEnd:]
	expectedSymbols := table.Total()
	if expectedSymbols > uint64(len(payload))*8 {
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"%d payload bytes can't hold %d symbols",
				len(payload),
				expectedSymbols,
			),
		)
	}

	output := make([]byte, expectedSymbols)
	bitsRead, err := unpackSymbols(payload, root, output)
	if err != nil {
		return nil, err
	}

	if usedBytes := (bitsRead + 7) / 8; uint64(len(payload)) > usedBytes {
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"%d bytes of trailing data after the last symbol",
				uint64(len(payload))-usedBytes,
			),
		)
	}
	return output, nil
}

// Codec exposes Compress and Decompress as a [squish.Codec].
type Codec struct{}

func (Codec) Name() string { return squish.AlgorithmHuffman }

func (Codec) Compress(input []byte) ([]byte, error) {
	return Compress(input)
}

func (Codec) Decompress(input []byte) ([]byte, error) {
	return Decompress(input)
}

var _ squish.Codec = Codec{}
