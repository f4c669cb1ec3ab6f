// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ringstat accumulates running statistics about an iomalloc.Store
// by sampling it around the operations a caller already performs - the
// same way lldb.AllocStats is a value filled by walking a live Allocator
// rather than a field carried on the Allocator itself.
package ringstat

import (
	"github.com/cznic/mathutil"
	"github.com/hgn/iomalloc"
)

// A Sampler accumulates statistics across a sequence of Push/Shift calls
// made through it against a single *iomalloc.Store. It is a thin decorator,
// not a replacement for the Store: callers that don't need statistics keep
// calling the Store directly.
type Sampler struct {
	Pushed        int64 // successful Push calls
	Shifted       int64 // successful Shift/PeekCommit calls
	Evicted       int64 // whole frames evicted by HeadDrop or DropAll
	EvictedBytes  int64 // framed bytes (header included) evicted
	HighWaterMark int    // largest Count() observed after a Push
}

// NewSampler returns a zero Sampler.
func NewSampler() *Sampler { return &Sampler{} }

// Push calls s.Push and folds the outcome into the running totals: the
// number of frames and bytes the policy engine evicted to make room is
// derived from the Count/Space deltas around the call, since Store itself
// reports neither directly.
func (t *Sampler) Push(s *iomalloc.Store, payload []byte, policy iomalloc.Policy) error {
	countBefore, spaceBefore := s.Count(), s.Space()
	needed := len(payload) + 2

	if err := s.Push(payload, policy); err != nil {
		return err
	}

	countAfter, spaceAfter := s.Count(), s.Space()

	if evicted := countBefore - countAfter + 1; evicted > 0 {
		t.Evicted += int64(evicted)
		t.EvictedBytes += int64(spaceAfter - spaceBefore + needed)
	}

	t.Pushed++
	t.HighWaterMark = mathutil.Max(t.HighWaterMark, countAfter)
	return nil
}

// Shift calls s.Shift and folds the outcome into the running totals.
func (t *Sampler) Shift(s *iomalloc.Store, out []byte) (int, error) {
	n, err := s.Shift(out)
	if err == nil {
		t.Shifted++
	}
	return n, err
}

// PeekCommit calls s.PeekCommit and folds the outcome into the running
// totals.
func (t *Sampler) PeekCommit(s *iomalloc.Store) error {
	err := s.PeekCommit()
	if err == nil {
		t.Shifted++
	}
	return err
}

// Snapshot is a point-in-time combination of a Sampler's running totals
// and a Store's current Count/Space, useful for a single log line or
// metric emission.
type Snapshot struct {
	Pushed, Shifted, Evicted, EvictedBytes int64
	HighWaterMark                         int
	Count, Space                          int
}

// Snapshot reads s's current Count/Space and combines them with t's
// running totals.
func (t *Sampler) Snapshot(s *iomalloc.Store) Snapshot {
	return Snapshot{
		Pushed:        t.Pushed,
		Shifted:       t.Shifted,
		Evicted:       t.Evicted,
		EvictedBytes:  t.EvictedBytes,
		HighWaterMark: t.HighWaterMark,
		Count:         s.Count(),
		Space:         s.Space(),
	}
}
