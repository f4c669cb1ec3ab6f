// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A read-only forward iterator over a Store's resident frames.

package iomalloc

// A Cursor is a read-only snapshot of a Store's (tail, head) pair at the
// time it was created. It walks frames oldest-first without mutating the
// Store. A Cursor does not pin or reference-count the Store: it is an
// ordinary value, cheap to create and copy, and it is undefined - not
// detected, not reported - if the Store is mutated while a Cursor walks
// it. Package guard provides a staleness-checked alternative for use
// alongside concurrent mutation.
type Cursor struct {
	tail, head uint32
}

// NewCursor snapshots s's current (tail, head) pair.
func NewCursor(s *Store) *Cursor {
	return &Cursor{tail: s.tail, head: s.head}
}

// Next decodes the next frame and copies its payload into out, advancing
// the cursor past it. It fails with ErrInvalidArgument once the cursor has
// reached its snapshotted head, and with ErrOutOfBufferSpace (cursor left
// at its prior position) if out is smaller than the framed payload.
func (c *Cursor) Next(s *Store, out []byte) (int, error) {
	if used(c.head, c.tail, s.capacity) == 0 {
		return 0, ErrInvalidArgument("Cursor.Next: exhausted", nil)
	}

	length, payloadStart := decodeHeader(s.arena, c.tail, s.capacity)
	if int(length) > len(out) {
		return 0, ErrOutOfBufferSpace("Cursor.Next: out buffer", len(out))
	}

	c.tail = decodePayload(s.arena, payloadStart, s.capacity, out, length)
	return int(length), nil
}
