// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrobwtv3

import (
	"crypto/rc4"
	"crypto/sha256"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/pkg/errors"
	"golang.org/x/crypto/salsa20"
)

// salsaNonce is the fixed all-zero 8-byte Salsa20 nonce. AstroBWTv3
// takes no caller-supplied keys or nonces.
var salsaNonce [8]byte

// sha256Sum returns the FIPS-180-4 SHA-256 digest of data.
func sha256Sum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// salsa20Expand returns 256 bytes of Salsa20 keystream under key and
// the zero nonce. The keystream is applied to a zero buffer, so the
// output is the raw keystream.
func salsa20Expand(key [32]byte) [256]byte {
	var out [256]byte
	salsa20.XORKeyStream(out[:], out[:], salsaNonce[:], &key)
	return out
}

// newRC4 builds an RC4 stream cipher keyed by the full 256-byte
// contents of the working buffer at re-key time. A 256-byte key is
// always within crypto/rc4's accepted [1,256] range, so the error
// return is unreachable; a failure here is a programming bug and
// aborts the process rather than surfacing as a wrong digest.
func newRC4(key [256]byte) *rc4.Cipher {
	cipher, err := rc4.NewCipher(key[:])
	if err != nil {
		panic(errors.Wrap(err, "astrobwtv3: rc4.NewCipher with 256-byte key"))
	}
	return cipher
}

// fnv1aSum returns the 64-bit FNV-1a hash of data (offset basis
// 0xcbf29ce484222325, prime 0x100000001b3).
func fnv1aSum(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data) //nolint:errcheck // hash.Hash.Write never errors
	return h.Sum64()
}

// xxh64Sum returns the XXH64 hash of data with seed 0.
func xxh64Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// sipHash24Sum returns the SipHash-2-4 digest of data under keys k0, k1.
func sipHash24Sum(data []byte, k0, k1 uint64) uint64 {
	return siphash.Hash(k0, k1, data)
}
