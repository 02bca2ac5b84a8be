// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astrobwtv3

import "testing"

func TestNewAstroStateDeterministic(t *testing.T) {
	input := []byte("deterministic seed")

	s1 := newAstroState(input)
	s2 := newAstroState(input)

	if s1.d != s2.d {
		t.Fatalf("newAstroState not deterministic: %v != %v", s1.d, s2.d)
	}
	if s1.lhash != s2.lhash || s1.prevLhash != s2.prevLhash {
		t.Fatalf("newAstroState hash seeds not deterministic")
	}
	if s1.lhash != s1.prevLhash {
		t.Fatalf("initial lhash (%d) must equal prevLhash (%d)", s1.lhash, s1.prevLhash)
	}
	if s1.tries != 0 {
		t.Fatalf("tries = %d, want 0 at construction", s1.tries)
	}
	if cap(s1.s) != scratchCapacity {
		t.Fatalf("scratch capacity = %d, want %d", cap(s1.s), scratchCapacity)
	}
}

func TestAppendFrameMatchesD(t *testing.T) {
	st := newAstroState([]byte("frame check"))
	st.tries = 1
	st.d[0] = 0xAB
	st.appendFrame()

	if len(st.s) != 256 {
		t.Fatalf("len(S) = %d, want 256 after one frame", len(st.s))
	}
	var frame [256]byte
	copy(frame[:], st.s[0:256])
	if frame != st.d {
		t.Fatalf("appended frame %v != D %v", frame, st.d)
	}
}
