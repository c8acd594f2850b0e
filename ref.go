// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

package dynbuf

// Ref is a shared-ownership handle to a Buffer, for passing one instance
// between cooperating components such as a message producer and consumer.
// The embedded buffer is freed when the last reference is released.
//
// The reference count is not synchronized: as with the buffer itself,
// callers serialize access across goroutines.
type Ref struct {
	buf  Buffer
	refs int
}

// NewRef returns a handle holding one reference to a fresh owning buffer
// with the given initial capacity.
func NewRef(capacity int) *Ref {
	ref := &Ref{refs: 1}
	if capacity > 0 {
		ref.buf.data = make([]byte, 0, capacity)
	}
	return ref
}

// Buffer returns the shared buffer.
//
// Important: the pointer must not be used after the holder's reference is
// released.
func (ref *Ref) Buffer() *Buffer {
	return &ref.buf
}

// Acquire takes an additional reference for a new holder.
func (ref *Ref) Acquire() {
	ref.refs++
}

// Release drops one reference. The last release frees the buffer.
// No-op once the count reaches zero.
func (ref *Ref) Release() {
	if ref.refs == 0 {
		return
	}
	if ref.refs--; ref.refs == 0 {
		ref.buf.Free()
	}
}
