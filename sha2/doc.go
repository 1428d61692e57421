// Package sha2 implements the SHA-2 family of hash functions (SHA-224,
// SHA-256, SHA-384, SHA-512) as defined in FIPS 180-4, from the ground up.
//
// Two monomorphised engines back the four variants: a 32-bit-word engine
// shared by SHA-224/SHA-256, and a 64-bit-word engine shared by
// SHA-384/SHA-512. Each variant is a Params record layered on top of its
// engine, differing only in initial hash value and output truncation.
//
// All four constructors return a Hash, which extends the standard
// hash.Hash with a non-destructive HexDigest and a MessageLength counter.
package sha2
