// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "slices"

// Consumer4 is a side-effecting operation over four values.
type Consumer4[T1, T2, T3, T4 any] func(T1, T2, T3, T4)

// Of4 lifts f into a Consumer4.
func Of4[T1, T2, T3, T4 any](f func(T1, T2, T3, T4)) Consumer4[T1, T2, T3, T4] {
	return f
}

// Noop4 returns a Consumer4 that does nothing.
func Noop4[T1, T2, T3, T4 any]() Consumer4[T1, T2, T3, T4] {
	return func(T1, T2, T3, T4) {}
}

// Accept invokes c unless it is nil.
func (c Consumer4[T1, T2, T3, T4]) Accept(v1 T1, v2 T2, v3 T3, v4 T4) {
	if c != nil {
		c(v1, v2, v3, v4)
	}
}

// Then calls c and then next.
func (c Consumer4[T1, T2, T3, T4]) Then(next Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) {
		c.Accept(v1, v2, v3, v4)
		next.Accept(v1, v2, v3, v4)
	}
}

// Before calls prev and then c.
func (c Consumer4[T1, T2, T3, T4]) Before(prev Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	return prev.Then(c)
}

// Ex lifts c into the error-returning form.
func (c Consumer4[T1, T2, T3, T4]) Ex() ConsumerEx4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) error {
		c.Accept(v1, v2, v3, v4)
		return nil
	}
}

// Sequence4 calls each of cs in order, skipping nil entries.
func Sequence4[T1, T2, T3, T4 any](cs ...Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2, v3 T3, v4 T4) {
		for _, c := range cs {
			c.Accept(v1, v2, v3, v4)
		}
	}
}

// ConsumerEx4 is the fallible form of Consumer4.
type ConsumerEx4[T1, T2, T3, T4 any] func(T1, T2, T3, T4) error

// OfEx4 lifts f into a ConsumerEx4.
func OfEx4[T1, T2, T3, T4 any](f func(T1, T2, T3, T4) error) ConsumerEx4[T1, T2, T3, T4] {
	return f
}

// NoopEx4 returns a ConsumerEx4 that never fails.
func NoopEx4[T1, T2, T3, T4 any]() ConsumerEx4[T1, T2, T3, T4] {
	return func(T1, T2, T3, T4) error { return nil }
}

// Accept invokes c unless it is nil.
func (c ConsumerEx4[T1, T2, T3, T4]) Accept(v1 T1, v2 T2, v3 T3, v4 T4) error {
	if c == nil {
		return nil
	}
	return c(v1, v2, v3, v4)
}

// Then calls c and, if c succeeded, next.
func (c ConsumerEx4[T1, T2, T3, T4]) Then(next ConsumerEx4[T1, T2, T3, T4]) ConsumerEx4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) error {
		if err := c.Accept(v1, v2, v3, v4); err != nil {
			return err
		}
		return next.Accept(v1, v2, v3, v4)
	}
}

// Before calls prev and, if prev succeeded, c.
func (c ConsumerEx4[T1, T2, T3, T4]) Before(prev ConsumerEx4[T1, T2, T3, T4]) ConsumerEx4[T1, T2, T3, T4] {
	return prev.Then(c)
}

// Handled passes an error from c to handler.
func (c ConsumerEx4[T1, T2, T3, T4]) Handled(handler func(error)) Consumer4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) {
		if err := c.Accept(v1, v2, v3, v4); err != nil && handler != nil {
			handler(err)
		}
	}
}

// OnException calls fallback with the same arguments when c fails.
func (c ConsumerEx4[T1, T2, T3, T4]) OnException(fallback Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	return func(v1 T1, v2 T2, v3 T3, v4 T4) {
		if err := c.Accept(v1, v2, v3, v4); err != nil {
			fallback.Accept(v1, v2, v3, v4)
		}
	}
}

// Unchecked panics with the error from c.
func (c ConsumerEx4[T1, T2, T3, T4]) Unchecked() Consumer4[T1, T2, T3, T4] {
	return c.Handled(raise)
}

// SequenceEx4 calls each of cs in order and stops at the first error.
func SequenceEx4[T1, T2, T3, T4 any](cs ...ConsumerEx4[T1, T2, T3, T4]) ConsumerEx4[T1, T2, T3, T4] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2, v3 T3, v4 T4) error {
		for _, c := range cs {
			if err := c.Accept(v1, v2, v3, v4); err != nil {
				return err
			}
		}
		return nil
	}
}
