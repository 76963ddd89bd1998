package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/squish"
)

// frequencyEntrySize is the serialized width of one [Entry]: the symbol, then a
// big-endian uint32 count.
const frequencyEntrySize = 5

const numSymbols = 256

// Entry is a single symbol and the number of times it occurs.
type Entry struct {
	Symbol byte
	Count  uint32
}

// FrequencyTable maps each byte that occurs in an input to its count. Entries
// keep the order they were added in, which is the order the tree builder uses
// to break ties.
//
// A FrequencyTable is never modified after it's built or unmarshaled.
type FrequencyTable struct {
	entries  []Entry
	present  bitmap.Bitmap
	position [numSymbols]int
	total    uint64
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{present: bitmap.New(numSymbols)}
}

// BuildFrequencyTable counts the occurrences of every byte in `input` in a
// single pass. It fails with [squish.ErrEmptyInput] if `input` is empty, since
// no tree can be built from zero symbols, and with [squish.ErrInputTooLarge] if
// a count couldn't be stored in the table's serialized form.
func BuildFrequencyTable(input []byte) (*FrequencyTable, error) {
	if len(input) == 0 {
		return nil, squish.ErrEmptyInput.WithMessage("can't build a frequency table from 0 bytes")
	}
	if uint64(len(input)) > math.MaxUint32 {
		return nil, squish.ErrInputTooLarge.WithMessage(
			fmt.Sprintf("%d bytes exceeds the maximum of %d", len(input), uint32(math.MaxUint32)))
	}

	table := newFrequencyTable()
	for _, symbol := range input {
		if !table.present.Get(int(symbol)) {
			table.present.Set(int(symbol), true)
			table.position[symbol] = len(table.entries)
			table.entries = append(table.entries, Entry{Symbol: symbol})
		}
		table.entries[table.position[symbol]].Count++
	}
	table.total = uint64(len(input))
	return table, nil
}

// Len returns the number of distinct symbols in the table.
func (table *FrequencyTable) Len() int {
	return len(table.entries)
}

// Total returns the sum of all counts, i.e. the length of the original input.
func (table *FrequencyTable) Total() uint64 {
	return table.total
}

// Contains reports whether `symbol` occurs at least once.
func (table *FrequencyTable) Contains(symbol byte) bool {
	return table.present != nil && table.present.Get(int(symbol))
}

// Count returns the number of occurrences of `symbol`, or 0 if it doesn't occur.
func (table *FrequencyTable) Count(symbol byte) uint32 {
	if !table.Contains(symbol) {
		return 0
	}
	return table.entries[table.position[symbol]].Count
}

// Entries returns a copy of the table's entries in insertion order.
func (table *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, len(table.entries))
	copy(entries, table.entries)
	return entries
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (table *FrequencyTable) MarshalBinary() ([]byte, error) {
	output := make([]byte, 0, len(table.entries)*frequencyEntrySize)
	for _, entry := range table.entries {
		output = append(output, entry.Symbol)
		output = binary.BigEndian.AppendUint32(output, entry.Count)
	}
	return output, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler]. The table is
// replaced entirely. Any framing problem, zero count, or repeated symbol fails
// with [squish.ErrMalformedInput].
func (table *FrequencyTable) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return squish.ErrMalformedInput.WithMessage("frequency table is empty")
	}
	if len(data)%frequencyEntrySize != 0 {
		return squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf(
				"frequency table is %d bytes, not a multiple of the %d-byte entry size",
				len(data),
				frequencyEntrySize,
			),
		)
	}
	if len(data) > numSymbols*frequencyEntrySize {
		return squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf("frequency table has %d entries, max %d", len(data)/frequencyEntrySize, numSymbols))
	}

	result := newFrequencyTable()
	result.entries = make([]Entry, 0, len(data)/frequencyEntrySize)

	for offset := 0; offset < len(data); offset += frequencyEntrySize {
		symbol := data[offset]
		count := binary.BigEndian.Uint32(data[offset+1 : offset+frequencyEntrySize])

		if count == 0 {
			return squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("frequency table entry for symbol 0x%02x has count 0", symbol))
		}
		if result.present.Get(int(symbol)) {
			return squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("symbol 0x%02x appears twice in frequency table", symbol))
		}

		result.present.Set(int(symbol), true)
		result.position[symbol] = len(result.entries)
		result.entries = append(result.entries, Entry{Symbol: symbol, Count: count})
		result.total += uint64(count)
	}

	*table = *result
	return nil
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (table *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", table.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", table.total)
	for _, entry := range table.entries {
		fmt.Fprintf(&buf, "\tCount(0x%02x) = %d\n", entry.Symbol, entry.Count)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
