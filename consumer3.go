// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "slices"

// Consumer3 is a side-effecting operation over three values.
type Consumer3[T1, T2, T3 any] func(T1, T2, T3)

// Of3 lifts f into a Consumer3.
func Of3[T1, T2, T3 any](f func(T1, T2, T3)) Consumer3[T1, T2, T3] {
	return f
}

// Noop3 returns a Consumer3 that does nothing.
func Noop3[T1, T2, T3 any]() Consumer3[T1, T2, T3] {
	return func(T1, T2, T3) {}
}

// Accept invokes c unless it is nil.
func (c Consumer3[T1, T2, T3]) Accept(v1 T1, v2 T2, v3 T3) {
	if c != nil {
		c(v1, v2, v3)
	}
}

// Then calls c and then next.
func (c Consumer3[T1, T2, T3]) Then(next Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) {
		c.Accept(v1, v2, v3)
		next.Accept(v1, v2, v3)
	}
}

// Before calls prev and then c.
func (c Consumer3[T1, T2, T3]) Before(prev Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	return prev.Then(c)
}

// Ex lifts c into the error-returning form.
func (c Consumer3[T1, T2, T3]) Ex() ConsumerEx3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) error {
		c.Accept(v1, v2, v3)
		return nil
	}
}

// Sequence3 calls each of cs in order, skipping nil entries.
func Sequence3[T1, T2, T3 any](cs ...Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2, v3 T3) {
		for _, c := range cs {
			c.Accept(v1, v2, v3)
		}
	}
}

// ConsumerEx3 is the fallible form of Consumer3.
type ConsumerEx3[T1, T2, T3 any] func(T1, T2, T3) error

// OfEx3 lifts f into a ConsumerEx3.
func OfEx3[T1, T2, T3 any](f func(T1, T2, T3) error) ConsumerEx3[T1, T2, T3] {
	return f
}

// NoopEx3 returns a ConsumerEx3 that never fails.
func NoopEx3[T1, T2, T3 any]() ConsumerEx3[T1, T2, T3] {
	return func(T1, T2, T3) error { return nil }
}

// Accept invokes c unless it is nil.
func (c ConsumerEx3[T1, T2, T3]) Accept(v1 T1, v2 T2, v3 T3) error {
	if c == nil {
		return nil
	}
	return c(v1, v2, v3)
}

// Then calls c and, if c succeeded, next.
func (c ConsumerEx3[T1, T2, T3]) Then(next ConsumerEx3[T1, T2, T3]) ConsumerEx3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) error {
		if err := c.Accept(v1, v2, v3); err != nil {
			return err
		}
		return next.Accept(v1, v2, v3)
	}
}

// Before calls prev and, if prev succeeded, c.
func (c ConsumerEx3[T1, T2, T3]) Before(prev ConsumerEx3[T1, T2, T3]) ConsumerEx3[T1, T2, T3] {
	return prev.Then(c)
}

// Handled passes an error from c to handler.
func (c ConsumerEx3[T1, T2, T3]) Handled(handler func(error)) Consumer3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) {
		if err := c.Accept(v1, v2, v3); err != nil && handler != nil {
			handler(err)
		}
	}
}

// OnException calls fallback with the same arguments when c fails.
func (c ConsumerEx3[T1, T2, T3]) OnException(fallback Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	return func(v1 T1, v2 T2, v3 T3) {
		if err := c.Accept(v1, v2, v3); err != nil {
			fallback.Accept(v1, v2, v3)
		}
	}
}

// Unchecked panics with the error from c.
func (c ConsumerEx3[T1, T2, T3]) Unchecked() Consumer3[T1, T2, T3] {
	return c.Handled(raise)
}

// SequenceEx3 calls each of cs in order and stops at the first error.
func SequenceEx3[T1, T2, T3 any](cs ...ConsumerEx3[T1, T2, T3]) ConsumerEx3[T1, T2, T3] {
	cs = slices.Clone(cs)
	return func(v1 T1, v2 T2, v3 T3) error {
		for _, c := range cs {
			if err := c.Accept(v1, v2, v3); err != nil {
				return err
			}
		}
		return nil
	}
}
