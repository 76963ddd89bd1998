package compression

import (
	"fmt"

	"github.com/dargueta/squish"
	"github.com/klauspost/compress/zstd"
)

// zstdMaxDecodedSize caps how much memory a single Decompress call may allocate
// for a corrupt or hostile frame header.
const zstdMaxDecodedSize = 1 << 30

// ZstdCodec is a baseline codec wrapping a single Zstandard frame. A fresh
// encoder and decoder are created for every call.
type ZstdCodec struct{}

func (ZstdCodec) Name() string { return "zstd" }

func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to create encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(src, make([]byte, 0, len(src)/2+16)), nil
}

func (ZstdCodec) Decompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(zstdMaxDecodedSize),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd: failed to create decoder: %w", err)
	}
	defer dec.Close()

	output, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, squish.ErrMalformedInput.Wrap(err)
	}
	return output, nil
}

var _ squish.Codec = ZstdCodec{}
