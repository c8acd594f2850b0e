// Copyright 2026 dacapoday
// SPDX-License-Identifier: Apache-2.0

package dynbuf

import "sync"

// Pool recycles owning Buffers to cut allocation on hot paths that
// assemble many short-lived messages.
//
// The zero value is ready to use.
type Pool struct {
	pool sync.Pool
}

// Get returns a cleared buffer with at least the given capacity, either
// recycled or freshly allocated.
func (p *Pool) Get(capacity int) *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	if buf == nil {
		return New(capacity)
	}
	if buf.Cap() < capacity {
		buf.Grow(capacity, true)
	}
	return buf
}

// Put hands a buffer back for reuse. The buffer must not be used by the
// caller afterward. Borrowed buffers are not recycled; their region
// belongs to whoever supplied it.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil || buf.borrowed {
		return
	}
	buf.Clear()
	buf.mark = 0
	p.pool.Put(buf)
}
