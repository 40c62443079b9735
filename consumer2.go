// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "slices"

// Consumer2 is a side-effecting operation over two values.
type Consumer2[T1, T2 any] func(T1, T2)

// Of2 lifts f into a Consumer2.
func Of2[T1, T2 any](f func(T1, T2)) Consumer2[T1, T2] {
	return f
}

// Noop2 returns a Consumer2 that does nothing.
func Noop2[T1, T2 any]() Consumer2[T1, T2] {
	return func(T1, T2) {}
}

// Accept invokes c. A nil Consumer2 is a no-op.
func (c Consumer2[T1, T2]) Accept(v1 T1, v2 T2) {
	if c != nil {
		c(v1, v2)
	}
}

// Then returns a Consumer2 that calls c and then next with the same arguments.
func (c Consumer2[T1, T2]) Then(next Consumer2[T1, T2]) Consumer2[T1, T2] {
	return func(v1 T1, v2 T2) {
		c.Accept(v1, v2)
		next.Accept(v1, v2)
	}
}

// Before returns a Consumer2 that calls prev and then c with the same arguments.
func (c Consumer2[T1, T2]) Before(prev Consumer2[T1, T2]) Consumer2[T1, T2] {
	return prev.Then(c)
}

// Ex lifts c into the error-returning form. The result never fails.
func (c Consumer2[T1, T2]) Ex() ConsumerEx2[T1, T2] {
	return func(v1 T1, v2 T2) error {
		c.Accept(v1, v2)
		return nil
	}
}

// Sequence2 returns a Consumer2 that calls each of cs in order.
// Nil entries are skipped.
func Sequence2[T1, T2 any](cs ...Consumer2[T1, T2]) Consumer2[T1, T2] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2) {
		for _, c := range cs {
			c.Accept(v1, v2)
		}
	}
}

// ConsumerEx2 is the fallible form of Consumer2.
type ConsumerEx2[T1, T2 any] func(T1, T2) error

// OfEx2 lifts f into a ConsumerEx2.
func OfEx2[T1, T2 any](f func(T1, T2) error) ConsumerEx2[T1, T2] {
	return f
}

// NoopEx2 returns a ConsumerEx2 that does nothing and never fails.
func NoopEx2[T1, T2 any]() ConsumerEx2[T1, T2] {
	return func(T1, T2) error { return nil }
}

// Accept invokes c. A nil ConsumerEx2 is a no-op.
func (c ConsumerEx2[T1, T2]) Accept(v1 T1, v2 T2) error {
	if c == nil {
		return nil
	}
	return c(v1, v2)
}

// Then returns a ConsumerEx2 that calls c and, if c succeeded, next.
func (c ConsumerEx2[T1, T2]) Then(next ConsumerEx2[T1, T2]) ConsumerEx2[T1, T2] {
	return func(v1 T1, v2 T2) error {
		if err := c.Accept(v1, v2); err != nil {
			return err
		}
		return next.Accept(v1, v2)
	}
}

// Before returns a ConsumerEx2 that calls prev and, if prev succeeded, c.
func (c ConsumerEx2[T1, T2]) Before(prev ConsumerEx2[T1, T2]) ConsumerEx2[T1, T2] {
	return prev.Then(c)
}

// Handled converts c into a Consumer2. An error from c is passed to handler.
// A nil handler discards the error.
func (c ConsumerEx2[T1, T2]) Handled(handler func(error)) Consumer2[T1, T2] {
	return func(v1 T1, v2 T2) {
		if err := c.Accept(v1, v2); err != nil && handler != nil {
			handler(err)
		}
	}
}

// OnException converts c into a Consumer2. When c fails, fallback is
// called with the same arguments.
func (c ConsumerEx2[T1, T2]) OnException(fallback Consumer2[T1, T2]) Consumer2[T1, T2] {
	return func(v1 T1, v2 T2) {
		if err := c.Accept(v1, v2); err != nil {
			fallback.Accept(v1, v2)
		}
	}
}

// Unchecked converts c into a Consumer2 that panics with the error from c.
func (c ConsumerEx2[T1, T2]) Unchecked() Consumer2[T1, T2] {
	return c.Handled(raise)
}

// SequenceEx2 returns a ConsumerEx2 that calls each of cs in order and
// stops at the first error. Nil entries are skipped.
func SequenceEx2[T1, T2 any](cs ...ConsumerEx2[T1, T2]) ConsumerEx2[T1, T2] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2) error {
		for _, c := range cs {
			if err := c.Accept(v1, v2); err != nil {
				return err
			}
		}
		return nil
	}
}
