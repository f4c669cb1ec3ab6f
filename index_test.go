// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iomalloc

import "testing"

func TestRoundUpPowerOfTwo(t *testing.T) {
	for _, tc := range []struct{ in, out uint32 }{
		{1, 2},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	} {
		if g, e := RoundUpPowerOfTwo(tc.in), tc.out; g != e {
			t.Errorf("RoundUpPowerOfTwo(%d): got %d, want %d", tc.in, g, e)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for n := uint32(0); n <= 64; n++ {
		g := isPowerOfTwo(n)
		e := n != 0 && n&(n-1) == 0
		if g != e {
			t.Fatalf("isPowerOfTwo(%d): got %v, want %v", n, g, e)
		}
	}
}

func TestAdvanceUsedFree(t *testing.T) {
	const capacity = 8

	if g, e := advance(6, 3, capacity), uint32(1); g != e {
		t.Fatal(g, e)
	}

	if g, e := used(6, 2, capacity), uint32(4); g != e {
		t.Fatal(g, e)
	}

	if g, e := used(2, 6, capacity), uint32(4); g != e {
		t.Fatal(g, e)
	}

	// Empty: head == tail.
	if g, e := used(3, 3, capacity), uint32(0); g != e {
		t.Fatal(g, e)
	}

	if g, e := free(3, 3, capacity), uint32(capacity-1); g != e {
		t.Fatal(g, e)
	}

	for head := uint32(0); head < capacity; head++ {
		for tail := uint32(0); tail < capacity; tail++ {
			if g, e := used(head, tail, capacity)+free(head, tail, capacity)+1, uint32(capacity); g != e {
				t.Fatalf("head=%d tail=%d: used+free+1 = %d, want %d", head, tail, g, e)
			}
		}
	}
}

func TestBytesUntilEnd(t *testing.T) {
	const capacity = 8
	for i := uint32(0); i < capacity; i++ {
		if g, e := bytesUntilEnd(i, capacity), capacity-i; g != e {
			t.Fatal(g, e)
		}
	}
}
