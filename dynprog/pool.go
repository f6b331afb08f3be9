// SPDX-License-Identifier: MIT

package dynprog

import "git.lukeshu.com/go/typedsync"

// rowPool lends the two rows a RollingArray table needs. Both rows are cut
// from one pooled buffer, so a table costs a single Get and Put.
type rowPool[T any] struct {
	buffers typedsync.Pool[[]T]
}

// borrow returns two rows of width cells with stale contents and the func
// that hands their buffer back. Callers write every cell before reading it.
func (p *rowPool[T]) borrow(width int) (prev, curr []T, release func()) {
	buf, _ := p.buffers.Get()
	if cap(buf) < 2*width {
		buf = make([]T, 2*width)
	}
	buf = buf[:2*width]

	return buf[:width:width], buf[width:], func() { p.buffers.Put(buf) }
}

var (
	editRows rowPool[int]
	warpRows rowPool[float64]
)
