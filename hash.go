// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astrobwtv3 implements the AstroBWTv3 hash function: a
// deterministic, CPU-friendly 256-bit digest built from a chain of
// stream ciphers, small hashes, a data-dependent branchy mutation
// loop, and a suffix-array construction over the accumulated scratch
// state. The data-dependent control flow is what makes the function
// resistant to GPU and FPGA acceleration.
//
// The package exposes one pure function of its input. There is no
// streaming or incremental API, no configuration, and no persisted
// state between calls.
package astrobwtv3

import (
	"encoding/binary"

	"github.com/tdx/astrobwtv3/internal/sais"
)

// Size is the length in bytes of an AstroBWTv3 digest.
const Size = 32

// Sum returns the 32-byte AstroBWTv3 digest of input.
//
// Pipeline: SHA-256(input) -> Salsa20 expand -> RC4 mask -> FNV1a
// seed -> mutation loop -> suffix array over the scratch prefix ->
// serialize as host-endian u32 -> SHA-256.
func Sum(input []byte) [Size]byte {
	st := newAstroState(input)
	runMixingLoop(st)

	l := scratchLength(st)
	sa := sais.Build(st.s[:l])

	saBytes := make([]byte, 4*len(sa))
	for i, v := range sa {
		binary.NativeEndian.PutUint32(saBytes[4*i:], v)
	}

	return sha256Sum(saBytes)
}

// Hash returns the 32-byte AstroBWTv3 digest of input as a slice, for
// callers that prefer []byte over [32]byte.
func Hash(input []byte) []byte {
	sum := Sum(input)
	return sum[:]
}
