// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guard serializes access to an *iomalloc.Store for use by more
// than one goroutine, and invalidates outstanding Cursors on mutation.
//
// iomalloc.Store is explicitly single-threaded: it has no locks and no
// mutation detection of its own. guard.Store is the sanctioned wrapper for
// concurrent producer/consumer pairs, the way lldb's InnerFiler is a thin
// wrapper adding one concern (offset translation, there; serialization and
// staleness detection, here) over an otherwise self-contained type.
package guard

import (
	"sync"

	"github.com/hgn/iomalloc"
)

// A Store wraps an *iomalloc.Store behind a mutex. Every exported method
// is safe to call from any number of goroutines. Unlike iomalloc.Store,
// this is not meant for a hot path requiring zero synchronization
// overhead - use the bare core directly if only one goroutine ever touches
// it.
type Store struct {
	mu    sync.Mutex
	core  *iomalloc.Store
	epoch uint64 // bumped by every successful Push, Shift, Peek or PeekCommit, see Cursor.Next
}

// New wraps core. core must not be used directly by any other goroutine
// once wrapped.
func New(core *iomalloc.Store) *Store {
	return &Store{core: core}
}

// Push serializes iomalloc.Store.Push.
func (s *Store) Push(payload []byte, policy iomalloc.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.core.Push(payload, policy)
	if err == nil {
		s.epoch++
	}
	return err
}

// Shift serializes iomalloc.Store.Shift.
func (s *Store) Shift(out []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.core.Shift(out)
	if err == nil {
		s.epoch++
	}
	return n, err
}

// Peek serializes iomalloc.Store.Peek. Peek does not mutate the core, but
// it is still taken under the lock so it cannot interleave with a
// concurrent Push/Shift/PeekCommit mid-frame, and like those calls a
// successful Peek invalidates outstanding Cursors.
func (s *Store) Peek(out []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.core.Peek(out)
	if err == nil {
		s.epoch++
	}
	return n, err
}

// PeekCommit serializes iomalloc.Store.PeekCommit.
func (s *Store) PeekCommit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.core.PeekCommit()
	if err == nil {
		s.epoch++
	}
	return err
}

// Count serializes iomalloc.Store.Count.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Count()
}

// Space serializes iomalloc.Store.Space.
func (s *Store) Space() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Space()
}

// Snapshot returns a Cursor over the current state of the store. The
// Cursor remembers the epoch at snapshot time; any subsequent successful
// Push, Shift, Peek or PeekCommit on this Store invalidates it.
func (s *Store) Snapshot() *Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Cursor{inner: iomalloc.NewCursor(s.core), epoch: s.epoch}
}

// A Cursor is a guard-aware wrapper around iomalloc.Cursor that detects,
// rather than silently tolerates, mutation of the underlying Store between
// a Snapshot and a Next.
type Cursor struct {
	inner *iomalloc.Cursor
	epoch uint64
}

// ErrStale is returned by Cursor.Next when the owning Store has mutated
// since Snapshot (or since the previous successful Next).
var ErrStale = stale{}

type stale struct{}

func (stale) Error() string { return "guard: cursor is stale" }

// Next returns the next frame, or ErrStale if s has mutated since this
// Cursor was created.
func (c *Cursor) Next(s *Store, out []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != c.epoch {
		return 0, ErrStale
	}
	return c.inner.Next(s.core, out)
}
