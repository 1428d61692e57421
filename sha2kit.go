// Package sha2kit is a simple, semantic and developer-friendly golang SHA-2
// hashing toolkit, built around a from-scratch FIPS 180-4 implementation of
// SHA-224, SHA-256, SHA-384 and SHA-512.
package sha2kit

import "github.com/gohash/sha2kit/hash"

const Version = "0.1.0"

// Hash defines a Hasher instance, the fluent entry point for computing a
// SHA-2 digest: Hash.FromString(...).BySha2(256).ToHexString().
var Hash = hash.NewHasher()
