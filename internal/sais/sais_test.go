// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sais

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	if got := Build(nil); len(got) != 0 {
		t.Fatalf("Build(nil) = %v, want empty", got)
	}
	if got := Build([]byte{}); len(got) != 0 {
		t.Fatalf("Build([]byte{}) = %v, want empty", got)
	}
}

func TestBuildSingleByte(t *testing.T) {
	got := Build([]byte("a"))
	want := []uint32{0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build(\"a\") = %v, want %v", got, want)
	}
}

// TestBuildMississippi pins the suffix array of "mississippi", the
// classic worked example, verifiable by hand.
func TestBuildMississippi(t *testing.T) {
	got := Build([]byte("mississippi"))
	want := []uint32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build(\"mississippi\") = %v, want %v", got, want)
	}
}

func TestBuildBanana(t *testing.T) {
	got := Build([]byte("banana"))
	want := []uint32{5, 3, 1, 0, 4, 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build(\"banana\") = %v, want %v", got, want)
	}
}

// TestBuildIsSortedPermutation checks the two structural invariants
// of any valid suffix array against randomized inputs: the output is
// a permutation of 0..n, and consecutive suffixes it orders are
// non-decreasing lexicographically.
func TestBuildIsSortedPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(500)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(rng.Intn(4)) // small alphabet maximizes tie pressure
		}

		sa := Build(data)
		if len(sa) != n {
			t.Fatalf("trial %d: Build returned %d entries, want %d", trial, len(sa), n)
		}

		seen := make([]bool, n)
		for _, v := range sa {
			if int(v) >= n || seen[v] {
				t.Fatalf("trial %d: Build is not a permutation of 0..%d: %v", trial, n, sa)
			}
			seen[v] = true
		}

		for i := 1; i < len(sa); i++ {
			a := string(data[sa[i-1]:])
			b := string(data[sa[i]:])
			if a > b {
				t.Fatalf("trial %d: suffix %d (%q) sorts after suffix %d (%q)", trial, sa[i-1], a, sa[i], b)
			}
		}
	}
}

// TestBuildMatchesSortSuffixes cross-checks Build against a naive,
// obviously-correct sort.Slice over explicit suffix strings.
func TestBuildMatchesSortSuffixes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(200)
		data := make([]byte, n)
		rng.Read(data)

		got := Build(data)

		naive := make([]int, n)
		for i := range naive {
			naive[i] = i
		}
		sort.Slice(naive, func(i, j int) bool {
			return string(data[naive[i]:]) < string(data[naive[j]:])
		})

		for i, v := range got {
			if int(v) != naive[i] {
				t.Fatalf("trial %d: Build()[%d] = %d, want %d", trial, i, v, naive[i])
			}
		}
	}
}
