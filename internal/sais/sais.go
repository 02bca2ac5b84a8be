// Copyright 2023 The tdx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sais builds the suffix array of a byte string: given T of
// length n, the permutation of 0..n sorted by lexicographic order of
// the suffixes T[SA[i]:]. No sentinel or empty-suffix entry is ever
// produced, so the caller never has to strip one.
package sais

import "sort"

// Build returns the suffix array of data: len(data) entries, no
// sentinel, each the start offset of one suffix in ascending
// lexicographic order. Build(nil) and Build([]byte{}) both return an
// empty, non-nil slice.
func Build(data []byte) []uint32 {
	n := len(data)
	if n == 0 {
		return []uint32{}
	}

	sa := make([]int32, n)
	rank := make([]int32, n)
	next := make([]int32, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int32(data[i])
	}

	// Prefix-doubling (Manber-Myers rank doubling): after round k, sa
	// is sorted by each suffix's first 2^round characters, encoded as
	// a pair of ranks (rank[i], rank[i+k]) with out-of-range treated
	// as lexicographically smallest (a suffix that has ended is a
	// prefix of, and therefore smaller than, any suffix that hasn't).
	// Doubling stops once ranks are already a full 0..n-1 permutation
	// (every suffix distinguished) or once k >= n (no further
	// doubling can add information).
	for k := 1; ; k *= 2 {
		s := &doublingSort{sa: sa, rank: rank, k: k, n: n}
		sort.Sort(s)

		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if s.less(sa[i-1], sa[i]) {
				next[sa[i]]++
			}
		}
		rank, next = next, rank

		if int(rank[sa[n-1]]) == n-1 || k >= n {
			break
		}
	}

	out := make([]uint32, n)
	for i, v := range sa {
		out[i] = uint32(v)
	}
	return out
}

// doublingSort sorts candidate suffix start offsets sa by the pair
// (rank[i], rankAt(i+k)), the standard rank-doubling comparator.
type doublingSort struct {
	sa   []int32
	rank []int32
	k    int
	n    int
}

func (d *doublingSort) Len() int      { return len(d.sa) }
func (d *doublingSort) Swap(i, j int) { d.sa[i], d.sa[j] = d.sa[j], d.sa[i] }
func (d *doublingSort) Less(i, j int) bool {
	return d.less(d.sa[i], d.sa[j])
}

func (d *doublingSort) less(a, b int32) bool {
	if d.rank[a] != d.rank[b] {
		return d.rank[a] < d.rank[b]
	}
	return d.rankAt(a) < d.rankAt(b)
}

func (d *doublingSort) rankAt(i int32) int32 {
	j := int(i) + d.k
	if j < d.n {
		return d.rank[j]
	}
	return -1
}
