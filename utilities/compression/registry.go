package compression

import (
	"sort"
	"strings"

	"github.com/dargueta/squish"
	"github.com/dargueta/squish/utilities/compression/huffman"
)

var registeredCodecs = map[string]squish.Codec{}

func init() {
	Register(RLECodec{})
	Register(huffman.Codec{})
	Register(LZ4Codec{})
	Register(ZstdCodec{})
}

// Register makes a codec available through [Lookup]. Registering a second codec
// with the same name replaces the first. It's meant to be called from init
// functions and isn't safe to call concurrently with [Lookup].
func Register(codec squish.Codec) {
	registeredCodecs[strings.ToLower(codec.Name())] = codec
}

// Lookup returns the codec registered under `name`, ignoring case. Unknown
// names fail with [squish.ErrUnknownAlgorithm].
func Lookup(name string) (squish.Codec, error) {
	codec, ok := registeredCodecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, squish.ErrUnknownAlgorithm.WithMessage(name)
	}
	return codec, nil
}

// Algorithms returns the names of all registered codecs in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registeredCodecs))
	for name := range registeredCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsCoreAlgorithm reports whether `name` is one of the two codecs whose wire
// format squish defines, as opposed to a baseline.
func IsCoreAlgorithm(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	return name == squish.AlgorithmRLE || name == squish.AlgorithmHuffman
}
