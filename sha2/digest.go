package sha2

import "hash"

// Hash extends the standard hash.Hash with the digest accessors called
// for by the streaming interface: a lowercase hex form of Sum, and the
// running count of bits consumed so far. Digest() and HexDigest() never
// mutate the running hash — repeated calls, interleaved with further
// Write calls, always reflect exactly the bytes written so far.
type Hash interface {
	hash.Hash

	// Digest returns the current digest without resetting or otherwise
	// disturbing the hash state. Equivalent to Sum(nil).
	Digest() []byte

	// HexDigest returns the lowercase hex encoding of Digest.
	HexDigest() string

	// MessageLength returns the total number of bits written so far,
	// excluding padding.
	MessageLength() uint64
}
