package compression_test

import (
	"bytes"
	"io"
	"testing"

	c "github.com/dargueta/squish/utilities/compression"
	"github.com/stretchr/testify/assert"
)

type BasicTestCase struct {
	Data           []byte
	ExpectedResult c.ByteRun
	Name           string
}

var basicTestCases = []BasicTestCase{
	{[]byte{}, c.InvalidRLERun, "empty"},
	{[]byte{0, 0, 1, 0, 0, 0, 0}, c.ByteRun{Byte: byte(0), RunLength: 2}, "two initial"},
	{[]byte{6, 1, 5, 20, 31}, c.ByteRun{Byte: byte(6), RunLength: 1}, "one byte"},
	{[]byte{9, 9, 9, 9, 9, 9}, c.ByteRun{Byte: byte(9), RunLength: 6}, "entire run"},
	{bytes.Repeat([]byte{7}, 1000), c.ByteRun{Byte: byte(7), RunLength: 1000}, "uncapped"},
}

func runBasicTestCase(t *testing.T, test BasicTestCase) {
	grouper := c.NewRLEGrouper(bytes.NewBuffer(test.Data))
	result, _ := grouper.GetNextRun()
	if result != test.ExpectedResult {
		t.Errorf("Expected %+v, got %+v", test.ExpectedResult, result)
	}
}

func TestRLEGrouper__Basic(t *testing.T) {
	for _, test := range basicTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runBasicTestCase(t, test)
			},
		)
	}
}

func TestRLEGrouper__Sequence(t *testing.T) {
	data := []byte{1, 9, 4, 4, 4, 4, 4, 6, 6, 0, 1, 0, 0, 0}
	expected := []c.ByteRun{
		{byte(1), 1}, {byte(9), 1}, {byte(4), 5}, {byte(6), 2}, {byte(0), 1},
		{byte(1), 1}, {byte(0), 3}, c.InvalidRLERun,
	}

	buffer := bytes.NewBuffer(data)
	grouper := c.NewRLEGrouper(buffer)
	for i, expectedRun := range expected {
		result, err := grouper.GetNextRun()
		if result != expectedRun {
			t.Errorf(
				"run %d is wrong: expected %+v but got %+v",
				i,
				expectedRun,
				result,
			)
		}
		if expectedRun == c.InvalidRLERun && err != io.EOF {
			t.Errorf("expected err to be io.EOF, got %v", err)
		}
	}
}

// onlyReader hides any io.ByteScanner implementation so the grouper has to
// wrap the stream itself.
type onlyReader struct {
	io.Reader
}

func TestRLEGrouper__PlainReader(t *testing.T) {
	grouper := c.NewRLEGrouper(onlyReader{bytes.NewReader([]byte{3, 3, 3, 8})})

	run, err := grouper.GetNextRun()
	assert.NoError(t, err)
	assert.Equal(t, c.ByteRun{Byte: 3, RunLength: 3}, run)

	run, err = grouper.GetNextRun()
	assert.NoError(t, err)
	assert.Equal(t, c.ByteRun{Byte: 8, RunLength: 1}, run)

	run, err = grouper.GetNextRun()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, c.InvalidRLERun, run)
}

func TestByteRunChunks(t *testing.T) {
	tests := []struct {
		Name     string
		Run      c.ByteRun
		Expected []c.ByteRun
	}{
		{"invalid", c.InvalidRLERun, nil},
		{"single", c.ByteRun{Byte: 1, RunLength: 1}, []c.ByteRun{{Byte: 1, RunLength: 1}}},
		{"255", c.ByteRun{Byte: 2, RunLength: 255}, []c.ByteRun{{Byte: 2, RunLength: 255}}},
		{
			"256",
			c.ByteRun{Byte: 2, RunLength: 256},
			[]c.ByteRun{{Byte: 2, RunLength: 255}, {Byte: 2, RunLength: 1}},
		},
		{
			"600",
			c.ByteRun{Byte: 5, RunLength: 600},
			[]c.ByteRun{{Byte: 5, RunLength: 255}, {Byte: 5, RunLength: 255}, {Byte: 5, RunLength: 90}},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, test.Run.Chunks())
		})
	}
}
