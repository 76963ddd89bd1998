package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/squish"
	"github.com/icza/bitio"
)

// packSymbols writes the code for every byte of `input` to `output`, most
// significant bit first, zero-padding the final byte.
func packSymbols(output io.Writer, input []byte, codes *CodeTable) error {
	writer := bitio.NewWriter(output)
	for _, symbol := range input {
		code, ok := codes.Lookup(symbol)
		if !ok {
			return fmt.Errorf("symbol 0x%02x has no code", symbol)
		}
		if err := writer.WriteBits(code.Bits, code.Size); err != nil {
			return err
		}
	}
	return writer.Close()
}

// unpackSymbols fills `output` with symbols decoded from `payload` by walking
// the tree from the root one bit at a time. It returns the number of bits it
// consumed. Running out of bits or following a branch that doesn't exist fails
// with [squish.ErrMalformedInput].
func unpackSymbols(payload []byte, root *Node, output []byte) (uint64, error) {
	walker := treeWalker{
		reader: bitio.NewReader(bytes.NewReader(payload)),
		root:   root,
	}

	for i := range output {
		symbol, err := walker.next()
		if err != nil {
			return walker.bitsRead, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol %d of %d: %s", i+1, len(output), err.Error()))
		}
		output[i] = symbol
	}
	return walker.bitsRead, nil
}

var errMissingChild = errors.New("code leads to a branch that doesn't exist")

type treeWalker struct {
	reader   *bitio.Reader
	root     *Node
	bitsRead uint64
}

func (walker *treeWalker) readBit() (bool, error) {
	bit, err := walker.reader.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, fmt.Errorf("bit stream ended after %d bits", walker.bitsRead)
		}
		return false, err
	}
	walker.bitsRead++
	return bit, nil
}

// next decodes a single symbol.
func (walker *treeWalker) next() (byte, error) {
	node := walker.root

	// A one-leaf tree only has the code "0".
	if node.IsLeaf() {
		bit, err := walker.readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			return 0, errMissingChild
		}
		return node.Symbol, nil
	}

	for !node.IsLeaf() {
		bit, err := walker.readBit()
		if err != nil {
			return 0, err
		}
		if bit {
			node = node.Right
		} else {
			node = node.Left
		}
		if node == nil {
			return 0, errMissingChild
		}
	}
	return node.Symbol, nil
}
