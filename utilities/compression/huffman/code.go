package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the longest code a [Code] can hold. Trees built from a table
// whose counts fit in uint32 are far shallower than this.
const maxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits. The most significant of the
	// Size low bits is the first bit, i.e. the branch taken at the root.
	Bits uint64
}

// String returns the code as a string of '0' and '1' characters, first bit
// first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}

// CodeTable maps each symbol in a tree to its code. Symbols not in the tree map
// to the zero Code.
type CodeTable struct {
	codes [numSymbols]Code
	order []byte
}

// DeriveCodeTable walks the tree depth first, left before right, appending a 0
// bit for every left branch and a 1 bit for every right branch. A tree with a
// single leaf assigns it the code "0".
func DeriveCodeTable(root *Node) *CodeTable {
	table := &CodeTable{}

	if root.IsLeaf() {
		table.set(root.Symbol, Code{Size: 1, Bits: 0})
		return table
	}

	var walk func(node *Node, code Code)
	walk = func(node *Node, code Code) {
		if node.IsLeaf() {
			table.set(node.Symbol, code)
			return
		}
		assert.Assertf(code.Size < maxCodeSize, "Huffman tree deeper than %d levels", maxCodeSize)
		walk(node.Left, Code{Size: code.Size + 1, Bits: code.Bits << 1})
		walk(node.Right, Code{Size: code.Size + 1, Bits: code.Bits<<1 | 1})
	}
	walk(root, Code{})
	return table
}

func (table *CodeTable) set(symbol byte, code Code) {
	assert.Assertf(table.codes[symbol].Size == 0, "symbol 0x%02x has two leaves", symbol)
	table.codes[symbol] = code
	table.order = append(table.order, symbol)
}

// Lookup returns the code for `symbol`. The second return value is false if
// the symbol isn't in the tree.
func (table *CodeTable) Lookup(symbol byte) (Code, bool) {
	code := table.codes[symbol]
	return code, code.Size != 0
}

// Len returns the number of symbols with a code.
func (table *CodeTable) Len() int {
	return len(table.order)
}

// Symbols returns the symbols with a code in the order the tree walk reached
// them.
func (table *CodeTable) Symbols() []byte {
	symbols := make([]byte, len(table.order))
	copy(symbols, table.order)
	return symbols
}

// EncodedBits returns how many bits encoding `input` will take. Symbols without
// a code are counted as 0 bits.
func (table *CodeTable) EncodedBits(input []byte) uint64 {
	total := uint64(0)
	for _, symbol := range input {
		total += uint64(table.codes[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range table.order {
		fmt.Fprintf(&buf, "\tLookup(0x%02x) = %q\n", symbol, table.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
