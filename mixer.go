// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrobwtv3

// runMixingLoop runs the branchy mutation loop to completion, leaving
// st.s holding one 256-byte frame per iteration and st.tries holding
// the final iteration count. At exit 261 <= tries <= maxTries, since
// the earliest termination check fires only once tries > 260.
func runMixingLoop(st *astroState) {
	for !stepOneIteration(st) {
	}
}

// stepOneIteration runs exactly one loop iteration and reports
// whether the loop should terminate. Split out of runMixingLoop so
// tests can replay the loop one iteration at a time and check each
// scratch frame against the intermediate D.
func stepOneIteration(st *astroState) (done bool) {
	st.tries++
	if st.tries > maxTries {
		// Every prior iteration is bounded by the termination test
		// below, so reaching this means the test itself is broken,
		// not that the input was unusual.
		panic("astrobwtv3: tries exceeded its statically bounded cap")
	}

	rs := st.prevLhash ^ st.lhash ^ st.tries
	b := uint8(rs)
	pos1 := uint8(rs >> 8)
	pos2 := uint8(rs >> 16)

	if pos1 > pos2 {
		pos1, pos2 = pos2, pos1
	}

	// Cap the mutation range: a range longer than 32 bytes is cut to
	// its length mod 32, so at most 32 bytes are mutated.
	if pos2-pos1 > 32 {
		pos2 = pos1 + ((pos2 - pos1) & 0x1F)
	}

	runOpcodeProgram(st, b, pos1, pos2)

	delta := st.d[pos1] - st.d[pos2]

	// Four cascading gates on the same delta. They are independent
	// conditionals, not a switch: when delta < 0x10 all four fire in
	// sequence, churning lhash three times and then applying RC4.
	if delta < 0x10 {
		// 6.25% probability.
		st.prevLhash += st.lhash
		st.lhash = xxh64Sum(st.d[:pos2])
	}
	if delta < 0x20 {
		// 12.5% probability.
		st.prevLhash += st.lhash
		st.lhash = fnv1aSum(st.d[:pos2])
	}
	if delta < 0x30 {
		// 18.75% probability.
		st.prevLhash += st.lhash
		st.lhash = sipHash24Sum(st.d[:pos2], st.tries, st.prevLhash)
	}
	if delta <= 0x40 {
		// 25% probability.
		st.cipher.XORKeyStream(st.d[:], st.d[:])
	}

	st.d[255] ^= st.d[pos1] ^ st.d[pos2]

	st.appendFrame()

	return st.tries > 260+16 || (st.d[255] >= 0xF0 && st.tries > 260)
}

// scratchLength computes the byte length of the S prefix the suffix
// array is built over. Up to ~1 KiB of the stream is discarded, with
// the cut point taken from D[253:255].
func scratchLength(st *astroState) int {
	tail := (uint32(st.d[253])<<8 | uint32(st.d[254])) & 0x3FF
	return int((st.tries-4)*256) + int(tail)
}
