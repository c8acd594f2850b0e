// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package dynbuf provides a growable, contiguous byte buffer with explicit
// ownership-transfer semantics, intended as a building block for assembling
// wire-format messages where repeated allocation must be minimized.
//
// A Buffer tracks a write cursor and a caller-defined mark as offsets from
// the start of its backing region. The backing region is a plain byte slice:
// its length is the cursor (the fill) and its capacity is the buffer
// capacity. Growth reallocates the region and preserves cursor and mark as
// offsets, so positions returned by Append stay valid across growth while
// slices obtained from Bytes do not.
//
// All operations are synchronous and single-threaded. A Buffer must not be
// used concurrently from multiple goroutines without external
// synchronization; use Ref to share one instance across cooperating
// components.
package dynbuf

import "io"

// Buffer is a resizable, contiguous byte buffer.
//
// The zero value is a ready-to-use empty buffer with no backing region:
//
//	var b Buffer
//	b.Append([]byte("hello"))
type Buffer struct {
	data     []byte // len is the write cursor, cap is the capacity
	mark     int    // bookmark offset, advisory only
	borrowed bool   // backing region supplied by the caller via Borrow
}

var _ io.Writer = (*Buffer)(nil)

// New returns an owning buffer with the given initial capacity.
// A zero capacity leaves the backing region unallocated.
func New(capacity int) *Buffer {
	if capacity == 0 {
		return new(Buffer)
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Borrow returns a buffer writing into region, whose length becomes the
// buffer capacity. The region stays owned by the caller: this buffer never
// recycles it, and Release hands it back unchanged. The first growth
// abandons the region and switches the buffer to an owned allocation.
func Borrow(region []byte) *Buffer {
	return &Buffer{data: region[:0:len(region)], borrowed: true}
}

// Len returns the fill: the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the total capacity of the backing region.
func (b *Buffer) Cap() int { return cap(b.data) }

// Remaining returns the unused capacity, Cap() - Len().
func (b *Buffer) Remaining() int { return cap(b.data) - len(b.data) }

// Empty reports whether no bytes have been written.
func (b *Buffer) Empty() bool { return len(b.data) == 0 }

// Bytes returns the written region of the buffer. The slice shares the
// backing region and is invalidated by any call that may grow the buffer.
func (b *Buffer) Bytes() []byte { return b.data }

// Mark returns the current bookmark offset. See SetMark.
func (b *Buffer) Mark() int { return b.mark }

// Ensure grows the buffer so at least n more bytes fit without
// reallocation. When growth is needed the new capacity is 1.5x the needed
// space, Len()+n, amortizing reallocation across repeated small appends.
// Existing data is preserved.
func (b *Buffer) Ensure(n int) {
	if n > b.Remaining() {
		b.Grow((len(b.data)+n)*3/2, false)
	}
}

// Reserve grows the buffer so exactly n more bytes fit, with no extra
// slack. If nocopy is true and growth occurs, existing data is not carried
// into the new region; the fill is preserved but the contents below it are
// unspecified. A fast path for callers about to overwrite the whole buffer.
func (b *Buffer) Reserve(n int, nocopy bool) {
	if n > b.Remaining() {
		b.Grow(len(b.data)+n, nocopy)
	}
}

// Grow reallocates the backing region to the given capacity, preserving the
// cursor and mark offsets exactly. Unless nocopy is true, the fill bytes are
// copied into the new region. The new region is always owned, even if the
// old one was borrowed.
//
// The capacity must not be less than Len(); shrinking below the fill is a
// caller error (checked only with -tags debug).
func (b *Buffer) Grow(capacity int, nocopy bool) {
	assertGrow("Grow", capacity, len(b.data))
	next := make([]byte, len(b.data), capacity)
	if !nocopy {
		copy(next, b.data)
	}
	b.data = next
	b.borrowed = false
}

// AppendUnchecked copies p to the cursor position and advances the cursor,
// without any capacity check: the caller must have already made room via
// Ensure or Reserve (checked only with -tags debug). Returns the offset of
// the written region so the caller can patch it later through Bytes. A nil
// p writes nothing and returns -1.
func (b *Buffer) AppendUnchecked(p []byte) int {
	if p == nil {
		return -1
	}
	assertRemaining("AppendUnchecked", len(p), b.Remaining())
	offset := len(b.data)
	b.data = append(b.data, p...)
	return offset
}

// Append grows the buffer as needed and copies p to the cursor position.
// Returns the offset of the written region, or -1 for nil p.
func (b *Buffer) Append(p []byte) int {
	b.Ensure(len(p))
	return b.AppendUnchecked(p)
}

// Set replaces the buffer contents with p, discarding whatever was written
// before. Afterward Len() == len(p), and when growth was needed the
// capacity is exactly len(p).
func (b *Buffer) Set(p []byte) {
	b.Clear()
	b.Reserve(len(p), true)
	b.AppendUnchecked(p)
}

// Write appends p to the buffer, growing as needed. It implements
// io.Writer and never returns an error.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.Append(p)
	return len(p), nil
}

// Clear resets the cursor to the start of the region. The backing region
// and the mark are untouched.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// SetMark bookmarks the current cursor position. The mark is purely
// advisory: the buffer never reads it, but keeps its offset stable across
// growth for the caller.
func (b *Buffer) SetMark() {
	b.mark = len(b.data)
}

// Free drops the backing region and resets the buffer to the empty zero
// state. Borrowed regions are simply abandoned, never recycled. Free is
// idempotent.
func (b *Buffer) Free() {
	b.data = nil
	b.mark = 0
	b.borrowed = false
}

// Release moves ownership of the backing region to the caller and resets
// the buffer to the empty zero state. The returned slice holds the fill
// bytes; its capacity is the full region. Returns nil when nothing was
// allocated.
func (b *Buffer) Release() []byte {
	data := b.data
	b.data = nil
	b.mark = 0
	b.borrowed = false
	return data
}
