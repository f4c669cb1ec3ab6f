// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Overwrite policies consulted by Push when free space is insufficient.

package iomalloc

// A Policy selects what Push does when the arena does not have room for a
// new frame. It is an enumerated choice per call, not a property of the
// Store, because the right answer is application-specific - a telemetry
// queue wants HeadDrop, a command queue wants TailDrop.
type Policy int

const (
	// TailDrop refuses the push outright: ErrOutOfBufferSpace, state
	// unchanged.
	TailDrop Policy = iota

	// HeadDrop evicts whole frames from the tail, oldest first, until
	// there is room, then proceeds. Always succeeds unless the payload
	// itself cannot fit even in an empty store (checked before the
	// policy runs).
	HeadDrop

	// DropAll discards every resident frame and proceeds. Always
	// succeeds.
	DropAll
)

func (p Policy) String() string {
	switch p {
	case TailDrop:
		return "tail-drop"
	case HeadDrop:
		return "head-drop"
	case DropAll:
		return "drop-all"
	default:
		return "unsupported"
	}
}

// makeRoom applies policy so that at least needed bytes are free, or
// reports why it could not. It is called only after Push has already
// verified needed <= capacity-1, which is what guarantees the HeadDrop loop
// terminates: every iteration evicts a whole frame (at least 2 bytes) and
// used can only shrink, so free eventually reaches needed.
func (s *Store) makeRoom(needed uint32, policy Policy) error {
	switch policy {
	case TailDrop:
		if free(s.head, s.tail, s.capacity) < needed {
			return ErrOutOfBufferSpace("Store.Push", needed)
		}
		return nil
	case HeadDrop:
		for free(s.head, s.tail, s.capacity) < needed {
			length, payloadStart := decodeHeader(s.arena, s.tail, s.capacity)
			s.tail = advance(payloadStart, length, s.capacity)
			s.chunks--
		}
		return nil
	case DropAll:
		s.tail, s.head, s.chunks = 0, 0, 0
		return nil
	default:
		return ErrUnsupported("Store.Push", policy)
	}
}
