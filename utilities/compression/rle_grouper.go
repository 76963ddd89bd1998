package compression

import (
	"bufio"
	"errors"
	"io"
)

// MaxRunLength is the longest run a single RLE pair can describe.
const MaxRunLength = 255

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	RunLength int
}

// InvalidRLERun is returned by [RunLengthGrouper.GetNextRun] along with a
// non-nil error, including io.EOF.
var InvalidRLERun = ByteRun{Byte: 0, RunLength: 0}

// Chunks splits the run into pieces no longer than [MaxRunLength], in order.
// An invalid run gives no chunks.
func (run ByteRun) Chunks() []ByteRun {
	if run.RunLength < 1 {
		return nil
	}

	chunks := make([]ByteRun, 0, (run.RunLength+MaxRunLength-1)/MaxRunLength)
	for remaining := run.RunLength; remaining > 0; remaining -= MaxRunLength {
		size := remaining
		if size > MaxRunLength {
			size = MaxRunLength
		}
		chunks = append(chunks, ByteRun{Byte: run.Byte, RunLength: size})
	}
	return chunks
}

// RunLengthGrouper splits a byte stream into maximal runs of identical bytes.
// Runs are not capped; use [ByteRun.Chunks] to split them for encoding.
type RunLengthGrouper struct {
	rd io.ByteScanner
}

// NewRLEGrouper creates a grouper reading from `rd`. If `rd` can't unread bytes
// it's wrapped in a [bufio.Reader].
func NewRLEGrouper(rd io.Reader) RunLengthGrouper {
	if scanner, ok := rd.(io.ByteScanner); ok {
		return RunLengthGrouper{rd: scanner}
	}
	return RunLengthGrouper{rd: bufio.NewReader(rd)}
}

// GetNextRun returns a [ByteRun] for the next byte or run of byte values in the
// stream. Once the stream is exhausted it returns [InvalidRLERun] and io.EOF.
func (grouper RunLengthGrouper) GetNextRun() (ByteRun, error) {
	firstByte, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRLERun, err
	}

	var runLength int
	for runLength = 1; ; runLength++ {
		currentByte, err := grouper.rd.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return InvalidRLERun, err
		}
		if currentByte != firstByte {
			// Hit a different byte, back up and return.
			if err := grouper.rd.UnreadByte(); err != nil {
				return InvalidRLERun, err
			}
			break
		}
	}
	return ByteRun{Byte: firstByte, RunLength: runLength}, nil
}
