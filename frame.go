// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Frame encoding: a 2-byte big-endian length prefix followed by that many
// payload bytes, packed into a wrap-around arena.

package iomalloc

import "encoding/binary"

/*

A frame occupies logical offsets [i, i+2+L) of the arena, modulo capacity:

	offset 0   1          2           2+L-1
	      +----+----+-----+-----+ ... +-----+
	      | Lhi| Llo| payload bytes         |
	      +----+----+-----+-----+ ... +-----+

Lhi*256 + Llo == L, the payload byte count. Both the header and the payload
independently may straddle the arena's physical end (capacity-1 -> 0). The
four shapes a frame can take - header split 1+1 payload
contiguous, header contiguous payload split at offset 0, header contiguous
payload split after some prefix, and the fast fully-contiguous path - are all
instances of one generality: copying a run of bytes that starts at an
arbitrary index and may cross the physical end exactly once, because no
single frame is ever longer than capacity-1. frameCopy below is that one
routine; encodeFrame makes two calls of it (header, then payload), and
decoding is decodeHeader followed by decodePayload, one call each.

*/

// frameCopy copies n bytes between buf and the arena starting at the
// logical index start, wrapping at capacity. write selects direction: true
// copies buf -> arena, false copies arena -> buf. It never copies across
// the physical end more than once, which holds because n <= capacity here.
func frameCopy(arena []byte, start, capacity uint32, buf []byte, write bool) {
	n := uint32(len(buf))
	if n == 0 {
		return
	}
	first := bytesUntilEnd(start, capacity)
	if first > n {
		first = n
	}
	if write {
		copy(arena[start:start+first], buf[:first])
	} else {
		copy(buf[:first], arena[start:start+first])
	}
	if rem := n - first; rem > 0 {
		if write {
			copy(arena[0:rem], buf[first:])
		} else {
			copy(buf[first:], arena[0:rem])
		}
	}
}

// encodeFrame writes a frame of the given payload starting at logical
// index i and returns the index immediately after it (i.e. the new head).
// Caller guarantees len(payload)+2 <= capacity and that the region is free.
func encodeFrame(arena []byte, i, capacity uint32, payload []byte) uint32 {
	var hdr [2]byte
	binary.BigEndian.PutUint16(hdr[:], uint16(len(payload)))
	frameCopy(arena, i, capacity, hdr[:], true)
	payloadStart := advance(i, 2, capacity)
	frameCopy(arena, payloadStart, capacity, payload, true)
	return advance(i, uint32(2+len(payload)), capacity)
}

// decodeHeader reads the 2-byte length prefix at logical index i and
// returns the decoded length and the index of the first payload byte.
func decodeHeader(arena []byte, i, capacity uint32) (length, payloadStart uint32) {
	var hdr [2]byte
	frameCopy(arena, i, capacity, hdr[:], false)
	length = uint32(binary.BigEndian.Uint16(hdr[:]))
	payloadStart = advance(i, 2, capacity)
	return
}

// decodePayload copies length bytes starting at payloadStart (as returned
// by decodeHeader) into out and returns the index immediately following
// the frame.
func decodePayload(arena []byte, payloadStart, capacity uint32, out []byte, length uint32) (next uint32) {
	frameCopy(arena, payloadStart, capacity, out[:length], false)
	return advance(payloadStart, length, capacity)
}
