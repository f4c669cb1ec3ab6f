// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iomalloc

import "fmt"

// A Kind classifies the errors a Store can return. It does not distinguish
// call sites, only the taxonomy of spec §7: caller misuse, allocation
// failure, insufficient space (on either the write or the read side), and
// an unrecognized Policy.
type Kind int

const (
	// KindInvalidArgument is returned for caller misuse: an empty store on
	// dequeue, a non power-of-two or too-small capacity, a payload that
	// can never fit, and similar argument violations.
	KindInvalidArgument Kind = iota

	// KindOutOfMemory is returned when the one-shot backing arena cannot
	// be acquired.
	KindOutOfMemory

	// KindOutOfBufferSpace covers two distinct call sites that share a
	// kind: a TailDrop Push with insufficient free bytes, and a
	// Shift/Peek/Cursor.Next whose out buffer is smaller than the framed
	// payload. In the second case the store (or cursor) is left
	// untouched.
	KindOutOfBufferSpace

	// KindUnsupported is returned for a Policy value outside the
	// enumerated set.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindOutOfMemory:
		return "out of memory"
	case KindOutOfBufferSpace:
		return "out of buffer space"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// An Error reports a Kind, the operation/source that produced it, and the
// offending argument, if any. The Src/Arg shape lets a caller switch on
// Kind and recover Arg without parsing a message string.
type Error struct {
	Kind Kind
	Src  string
	Arg  any
}

func (e *Error) Error() string {
	if e.Arg == nil {
		return fmt.Sprintf("iomalloc: %s: %s", e.Src, e.Kind)
	}
	return fmt.Sprintf("iomalloc: %s: %s (%v)", e.Src, e.Kind, e.Arg)
}

// ErrInvalidArgument reports caller misuse.
func ErrInvalidArgument(src string, arg any) error {
	return &Error{Kind: KindInvalidArgument, Src: src, Arg: arg}
}

// ErrOutOfMemory reports a failed arena allocation.
func ErrOutOfMemory(src string, arg any) error {
	return &Error{Kind: KindOutOfMemory, Src: src, Arg: arg}
}

// ErrOutOfBufferSpace reports either a refused TailDrop push or an
// undersized read-side output buffer.
func ErrOutOfBufferSpace(src string, arg any) error {
	return &Error{Kind: KindOutOfBufferSpace, Src: src, Arg: arg}
}

// ErrUnsupported reports a Policy value outside {TailDrop, HeadDrop,
// DropAll}.
func ErrUnsupported(src string, arg any) error {
	return &Error{Kind: KindUnsupported, Src: src, Arg: arg}
}

// Is reports whether err carries the given Kind. It lets callers write
// `iomalloc.Is(err, iomalloc.KindOutOfBufferSpace)` instead of a type
// assertion.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
