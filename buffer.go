// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Buffer defers delivery of values to a consumer through a bounded
// lock-free single-producer single-consumer queue.
//
// At most one goroutine may call Offer/Put and at most one goroutine may
// call Poll/Drain/DrainEx at a time.
type Buffer[T any] struct {
	q      lfq.SPSC[T]
	serial ID
}

// NewBuffer creates a Buffer holding up to capacity pending values.
// Panics if capacity is not positive.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("accept: buffer capacity must be positive")
	}
	b := &Buffer[T]{serial: NextID()}
	b.q.Init(capacity)
	return b
}

// Serial returns the ID assigned to this buffer at creation.
func (b *Buffer[T]) Serial() ID {
	return b.serial
}

// Offer enqueues v without blocking.
// Returns iox.ErrWouldBlock if the buffer is full.
func (b *Buffer[T]) Offer(v T) error {
	return b.q.Enqueue(&v)
}

// Put enqueues v, waiting past iox.ErrWouldBlock with adaptive backoff
// until the draining side makes room.
func (b *Buffer[T]) Put(v T) {
	var bo iox.Backoff
	for b.q.Enqueue(&v) != nil {
		bo.Wait()
	}
}

// Sink returns Offer as a ConsumerEx.
func (b *Buffer[T]) Sink() ConsumerEx[T] {
	return b.Offer
}

// BlockingSink returns Put as a Consumer.
func (b *Buffer[T]) BlockingSink() Consumer[T] {
	return b.Put
}

// Poll delivers the oldest pending value to c.
// Returns iox.ErrWouldBlock if the buffer is empty.
func (b *Buffer[T]) Poll(c ConsumerEx[T]) error {
	v, err := b.q.Dequeue()
	if err != nil {
		return err
	}
	return c.Accept(v)
}

// Drain delivers pending values to c in FIFO order until the buffer is
// observed empty, and returns how many were delivered. Values put while
// Drain runs are delivered too, so a producer that keeps up with c keeps
// Drain going; use DrainN to bound a single call.
func (b *Buffer[T]) Drain(c Consumer[T]) int {
	n := 0
	for {
		v, err := b.q.Dequeue()
		if err != nil {
			return n
		}
		c.Accept(v)
		n++
	}
}

// DrainN is like Drain but delivers at most limit values.
func (b *Buffer[T]) DrainN(c Consumer[T], limit int) int {
	n := 0
	for n < limit {
		v, err := b.q.Dequeue()
		if err != nil {
			break
		}
		c.Accept(v)
		n++
	}
	return n
}

// DrainEx is like Drain but stops at the first error from c.
// The failing value counts as delivered and is not re-queued.
func (b *Buffer[T]) DrainEx(c ConsumerEx[T]) (int, error) {
	n := 0
	for {
		v, err := b.q.Dequeue()
		if err != nil {
			return n, nil
		}
		n++
		if err := c.Accept(v); err != nil {
			return n, err
		}
	}
}
