// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "slices"

// Consumer is a side-effecting operation over a single value.
type Consumer[T any] func(T)

// Of lifts f into a Consumer.
func Of[T any](f func(T)) Consumer[T] {
	return f
}

// Noop returns a Consumer that does nothing.
func Noop[T any]() Consumer[T] {
	return func(T) {}
}

// Accept invokes c with v. A nil Consumer is a no-op.
func (c Consumer[T]) Accept(v T) {
	if c != nil {
		c(v)
	}
}

// Then returns a Consumer that calls c and then next with the same value.
func (c Consumer[T]) Then(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c.Accept(v)
		next.Accept(v)
	}
}

// Before returns a Consumer that calls prev and then c with the same value.
func (c Consumer[T]) Before(prev Consumer[T]) Consumer[T] {
	return prev.Then(c)
}

// Ex lifts c into the error-returning form. The result never fails.
func (c Consumer[T]) Ex() ConsumerEx[T] {
	return func(v T) error {
		c.Accept(v)
		return nil
	}
}

// Sequence returns a Consumer that calls each of cs in order.
// Nil entries are skipped.
func Sequence[T any](cs ...Consumer[T]) Consumer[T] {
	cs = slices.Clone(cs)
	return func(v T) {
		for _, c := range cs {
			c.Accept(v)
		}
	}
}
