package testing

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/dargueta/squish"
	"github.com/dargueta/squish/utilities/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// RandomBytes returns `size` random bytes, or fails the test and aborts.
func RandomBytes(t *testing.T, size int) []byte {
	data := make([]byte, size)
	_, err := rand.Read(data)
	require.NoErrorf(t, err, "failed to generate %d random bytes", size)
	return data
}

// RequireRoundTrip compresses `data` with `codec`, decompresses the result, and
// fails the test if it doesn't match the original. It returns the compressed
// bytes so callers can make further assertions about them.
func RequireRoundTrip(t *testing.T, codec squish.Codec, data []byte) []byte {
	compressed, err := codec.Compress(data)
	require.NoErrorf(t, err, "%s: unexpected error while compressing", codec.Name())
	t.Logf("%s: compressed %d -> %d", codec.Name(), len(data), len(compressed))

	decompressed, err := codec.Decompress(compressed)
	require.NoErrorf(t, err, "%s: unexpected error while decompressing", codec.Name())
	require.Equalf(
		t, len(data), len(decompressed), "%s: decompressed data length is wrong", codec.Name())
	require.Equalf(t, data, decompressed, "%s: decompressed data is wrong", codec.Name())
	return compressed
}

// RequireStreamRoundTrip is like [RequireRoundTrip] but goes through
// [compression.CompressStream] and [compression.DecompressStream], using a
// fixed-size in-memory stream as the intermediate storage.
//
//   - `maxCompressedSize` bounds the intermediate stream. Writing past it fails
//     the test, so pick something comfortably larger than the expected output.
func RequireStreamRoundTrip(
	t *testing.T, codec squish.Codec, data []byte, maxCompressedSize int,
) {
	storage := bytesextra.NewReadWriteSeeker(make([]byte, maxCompressedSize))
	source := bytesextra.NewReadWriteSeeker(data)

	compressedSize, err := compression.CompressStream(codec, source, storage)
	require.NoErrorf(t, err, "%s: unexpected error while compressing", codec.Name())

	_, err = storage.Seek(0, io.SeekStart)
	require.NoError(t, err, "failed to rewind compressed stream")

	sink := bytes.NewBuffer(make([]byte, 0, len(data)))
	n, err := compression.DecompressStream(codec, io.LimitReader(storage, compressedSize), sink)
	require.NoErrorf(t, err, "%s: unexpected error while decompressing", codec.Name())
	require.EqualValues(t, len(data), n, "decompressed stream has wrong size")
	require.Equal(t, data, sink.Bytes(), "decompressed stream is wrong")
}
