package squish

// Codec is the interface implemented by every compression algorithm the
// project exposes. Implementations must be stateless: each call allocates
// everything it needs and shares nothing with other calls, so a single Codec
// value may be used from any number of goroutines.
type Codec interface {
	// Name returns the algorithm name used to select the codec, e.g. "rle".
	Name() string

	// Compress returns the compressed form of `input`. The input slice is never
	// modified.
	Compress(input []byte) ([]byte, error)

	// Decompress reverses Compress. Implementations must return an error
	// wrapping [ErrMalformedInput] for any input they can't parse, and must
	// never loop forever or read out of bounds on corrupt data.
	Decompress(input []byte) ([]byte, error)
}

// Algorithm names for the two core codecs.
const (
	AlgorithmRLE     = "rle"
	AlgorithmHuffman = "huffman"
)
