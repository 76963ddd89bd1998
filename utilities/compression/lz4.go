package compression

import (
	"encoding/binary"
	"fmt"

	"github.com/dargueta/squish"
	"github.com/pierrec/lz4/v4"
)

// LZ4 block format:
//
//	[method (1)] [uncompressed_size (4 BE)] [payload...]
//
// The method byte says whether the payload is an LZ4 block or the input stored
// as-is because LZ4 couldn't shrink it.
const (
	lz4MethodNone   byte = 0x02
	lz4MethodLZ4    byte = 0x82
	lz4HeaderSize        = 5
	lz4MaxExpansion      = 255
)

// LZ4Codec is a baseline codec wrapping LZ4 block compression.
type LZ4Codec struct{}

func (LZ4Codec) Name() string { return "lz4" }

func (LZ4Codec) Compress(src []byte) ([]byte, error) {
	if uint64(len(src)) > uint64(^uint32(0)) {
		return nil, squish.ErrInputTooLarge.WithMessage(
			fmt.Sprintf("lz4: %d bytes doesn't fit in the size header", len(src)))
	}

	dst := make([]byte, lz4HeaderSize+lz4.CompressBlockBound(len(src)))
	binary.BigEndian.PutUint32(dst[1:lz4HeaderSize], uint32(len(src)))

	n, err := lz4.CompressBlock(src, dst[lz4HeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || n >= len(src) {
		// Data is incompressible, store as-is
		dst[0] = lz4MethodNone
		n = copy(dst[lz4HeaderSize:], src)
	} else {
		dst[0] = lz4MethodLZ4
	}
	return dst[:lz4HeaderSize+n], nil
}

func (LZ4Codec) Decompress(src []byte) ([]byte, error) {
	if len(src) < lz4HeaderSize {
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf("lz4: block too small: %d bytes", len(src)))
	}

	method := src[0]
	uncompressedSize := int(binary.BigEndian.Uint32(src[1:lz4HeaderSize]))
	payload := src[lz4HeaderSize:]

	switch method {
	case lz4MethodNone:
		if len(payload) != uncompressedSize {
			return nil, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf(
					"lz4: stored block is %d bytes, header says %d",
					len(payload),
					uncompressedSize,
				),
			)
		}
		dst := make([]byte, uncompressedSize)
		copy(dst, payload)
		return dst, nil
	case lz4MethodLZ4:
		if uncompressedSize > len(payload)*lz4MaxExpansion {
			return nil, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf(
					"lz4: %d payload bytes can't expand to %d",
					len(payload),
					uncompressedSize,
				),
			)
		}
		dst := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return nil, squish.ErrMalformedInput.Wrap(err)
		}
		if n != uncompressedSize {
			return nil, squish.ErrMalformedInput.WithMessage(
				fmt.Sprintf("lz4: expected %d bytes, got %d", uncompressedSize, n))
		}
		return dst, nil
	default:
		return nil, squish.ErrMalformedInput.WithMessage(
			fmt.Sprintf("lz4: unknown compression method: 0x%02x", method))
	}
}

var _ squish.Codec = LZ4Codec{}
