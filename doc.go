// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package iomalloc implements a bounded, single-producer/single-consumer,
in-place FIFO queue of variable-length opaque byte chunks, packed
length-prefixed into one contiguous power-of-two arena allocated once at
creation.

It targets the same niche as an embedded staging buffer between an I/O
source and a slower consumer: memory is allocated once up front, Push and
Shift are O(1) with no per-chunk heap activity, chunks keep their
ingestion order and are never split or merged by a caller, and when the
store fills the caller picks an overwrite Policy instead of the store
growing.

Design

A Store is a value owning a capacity (power of two, >= 2), an arena of
exactly that many bytes, a head index (next byte to write), a tail index
(first byte of the oldest chunk), and a chunk count. One byte of the arena
is always sacrificed so that head == tail can mean "empty" without
ambiguity with "full" - the usable byte count is therefore capacity-1.

A chunk is framed as a 2-byte big-endian length prefix followed by that
many payload bytes; either may straddle the arena's physical end. Push
encodes a new frame at head and advances it. Shift decodes the frame at
tail, copies its payload out, and advances tail. Peek does the same
without advancing; PeekCommit advances afterward. A Cursor snapshots
(tail, head) and walks frames read-only from that snapshot; it still reads
the live arena, so a subsequent mutation of the Store leaves its walk
undefined, and the mutation is not detected.

Overwrite policies

Push takes a Policy describing what happens when the arena does not have
room for the new frame:

	TailDrop  refuses the push (ErrOutOfBufferSpace), state unchanged.
	HeadDrop  evicts oldest frames until there is room, then proceeds.
	DropAll   discards every resident frame, then proceeds.

This is a caller's choice, not the Store's, because the right answer
depends on what the chunks represent: a telemetry feed prefers HeadDrop, a
command queue usually prefers TailDrop.

Concurrency

A Store is not safe for concurrent use: there are no locks, no suspension
points, and no asynchronous callbacks anywhere in this package. A single
producer may call Push and a single consumer may call Shift/Peek/
PeekCommit from their own goroutine, but not both without external
synchronization - see package guard for a serialized wrapper suitable for
that case.

Out of scope

This package does not implement dynamic resizing, chunks of more than 65534
bytes (the length prefix is 16 bits), partial reads, persistence, or any
fairness/priority among chunks: arrival order is the only order there is.

*/
package iomalloc
