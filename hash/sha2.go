package hash

import (
	"fmt"
	"hash"

	"github.com/gohash/sha2kit/sha2"
)

// BySha2 computes the SHA2 hash of the input data using this
// module's own FIPS 180-4 engine (package sha2), not the standard
// library's crypto/sha256 or crypto/sha512.
func (h Hasher) BySha2(size int) Hasher {
	if h.Error != nil {
		return h
	}
	var hasher func() hash.Hash
	switch size {
	case 224:
		hasher = func() hash.Hash { return sha2.New224() }
	case 256:
		hasher = func() hash.Hash { return sha2.New256() }
	case 384:
		hasher = func() hash.Hash { return sha2.New384() }
	case 512:
		hasher = func() hash.Hash { return sha2.New512() }
	default:
		h.Error = fmt.Errorf("hash: unsupported SHA2 size: %d, supported sizes are 224, 256, 384, 512", size)
		return h
	}

	// Streaming mode
	if h.reader != nil {
		h.dst, h.Error = h.stream(func() hash.Hash {
			return hasher()
		})
		return h
	}

	// Standard mode
	if len(h.src) > 0 {
		hashFunc := hasher()
		hashFunc.Write(h.src)
		h.dst = hashFunc.Sum(nil)
	}
	return h
}
