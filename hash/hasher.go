// Package hash provides the fluent front-end for computing SHA-2 digests,
// adapted from a general multi-algorithm hasher down to the one family
// this module implements (package sha2).
package hash

import (
	"fmt"
	"hash"
	"io"
	"io/fs"

	"github.com/gohash/sha2kit/coding"
	"github.com/gohash/sha2kit/utils"
)

// BufferSize buffer size for streaming (64KB is a good balance)
var BufferSize = 64 * 1024

type Hasher struct {
	src    []byte
	dst    []byte
	reader io.Reader
	Error  error
}

// NewHasher returns a new Hasher instance.
func NewHasher() Hasher {
	return Hasher{}
}

// FromString hashes from string.
func (h Hasher) FromString(s string) Hasher {
	h.src = utils.String2Bytes(s)
	return h
}

// FromBytes hashes from byte slice.
func (h Hasher) FromBytes(b []byte) Hasher {
	h.src = b
	return h
}

func (h Hasher) FromFile(f fs.File) Hasher {
	h.reader = f
	return h
}

// ToRawString outputs as raw string without encoding.
func (h Hasher) ToRawString() string {
	return utils.Bytes2String(h.dst)
}

// ToRawBytes outputs as raw byte slice without encoding.
func (h Hasher) ToRawBytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return h.dst
}

// ToBase64String outputs as base64 string.
func (h Hasher) ToBase64String() string {
	if len(h.dst) == 0 {
		return ""
	}
	return coding.NewEncoder().FromBytes(h.dst).ByBase64().ToString()
}

// ToBase64Bytes outputs as base64 byte slice.
func (h Hasher) ToBase64Bytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return coding.NewEncoder().FromBytes(h.dst).ByBase64().ToBytes()
}

// ToHexString outputs as hex string.
func (h Hasher) ToHexString() string {
	if len(h.dst) == 0 {
		return ""
	}
	return coding.NewEncoder().FromBytes(h.dst).ByHex().ToString()
}

// ToHexBytes outputs as hex byte slice.
func (h Hasher) ToHexBytes() []byte {
	if len(h.dst) == 0 {
		return []byte{}
	}
	return coding.NewEncoder().FromBytes(h.dst).ByHex().ToBytes()
}

func (h Hasher) stream(fn func() hash.Hash) ([]byte, error) {
	hasher := fn()
	defer hasher.Reset()

	// Try to reset the reader position if it's a seeker
	if seeker, ok := h.reader.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	copiedN, err := io.CopyBuffer(hasher, h.reader, make([]byte, BufferSize))
	if err != nil && err != io.EOF {
		return []byte{}, fmt.Errorf("hash: stream copy error: %w", err)
	}
	if copiedN == 0 {
		return []byte{}, nil
	}
	return hasher.Sum(nil), nil
}
