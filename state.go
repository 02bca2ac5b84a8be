// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrobwtv3

import "crypto/rc4"

// scratchCapacity is the fixed capacity of the scratch buffer S. The
// trailing 64 bytes are never written or read: tries is capped at 277
// and 277*256 < scratchCapacity.
const scratchCapacity = 256*384 + 64

// maxTries is the hard upper bound on the iteration counter. The
// loop's own termination test only stops once tries > 276, so the
// last iteration actually run has tries == 277. A tries value past
// maxTries means the termination test itself is broken; the hash must
// never silently produce a wrong digest, so that aborts the process.
const maxTries = 277

// astroState holds the working state of one Sum call: allocated once
// per call, mutated in place, discarded on return. Single-threaded
// use only; concurrent Sum calls each own their state.
type astroState struct {
	d         [256]byte // working buffer D
	s         []byte    // scratch S, one 256-byte frame appended per iteration
	lhash     uint64
	prevLhash uint64
	tries     uint64
	cipher    *rc4.Cipher // RC4 state, keystream advances across iterations
}

// newAstroState builds the pre-loop state:
// D <- Salsa20(key = SHA-256(input)); D <- RC4(key = D) applied to D;
// lhash = prevLhash = FNV1a(D); tries = 0. The RC4 instance is kept,
// with its keystream already advanced 256 bytes by the masking step.
func newAstroState(input []byte) *astroState {
	st := &astroState{
		s: make([]byte, 0, scratchCapacity),
	}

	seed := sha256Sum(input)
	st.d = salsa20Expand(seed)

	st.cipher = newRC4(st.d)
	st.cipher.XORKeyStream(st.d[:], st.d[:])

	st.lhash = fnv1aSum(st.d[:])
	st.prevLhash = st.lhash

	return st
}

// appendFrame snapshots the current D into S at offset
// (tries-1)*256..tries*256.
func (st *astroState) appendFrame() {
	st.s = append(st.s, st.d[:]...)
}
