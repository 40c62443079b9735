// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "slices"

// ConsumerEx is a side-effecting operation over a single value that may fail.
// A non-nil error aborts any composition it takes part in.
type ConsumerEx[T any] func(T) error

// OfEx lifts f into a ConsumerEx.
func OfEx[T any](f func(T) error) ConsumerEx[T] {
	return f
}

// NoopEx returns a ConsumerEx that does nothing and never fails.
func NoopEx[T any]() ConsumerEx[T] {
	return func(T) error { return nil }
}

// Accept invokes c with v. A nil ConsumerEx is a no-op.
func (c ConsumerEx[T]) Accept(v T) error {
	if c == nil {
		return nil
	}
	return c(v)
}

// Then returns a ConsumerEx that calls c and, if c succeeded, next.
// The first error is returned; effects of c are not undone when next fails.
func (c ConsumerEx[T]) Then(next ConsumerEx[T]) ConsumerEx[T] {
	return func(v T) error {
		if err := c.Accept(v); err != nil {
			return err
		}
		return next.Accept(v)
	}
}

// Before returns a ConsumerEx that calls prev and, if prev succeeded, c.
func (c ConsumerEx[T]) Before(prev ConsumerEx[T]) ConsumerEx[T] {
	return prev.Then(c)
}

// Handled converts c into a Consumer. An error from c is passed to handler.
// A nil handler discards the error.
func (c ConsumerEx[T]) Handled(handler func(error)) Consumer[T] {
	return func(v T) {
		if err := c.Accept(v); err != nil && handler != nil {
			handler(err)
		}
	}
}

// OnException converts c into a Consumer. When c fails, fallback is
// called with the same value.
func (c ConsumerEx[T]) OnException(fallback Consumer[T]) Consumer[T] {
	return func(v T) {
		if err := c.Accept(v); err != nil {
			fallback.Accept(v)
		}
	}
}

// Unchecked converts c into a Consumer that panics with the error from c.
func (c ConsumerEx[T]) Unchecked() Consumer[T] {
	return c.Handled(raise)
}

// SequenceEx returns a ConsumerEx that calls each of cs in order and
// stops at the first error. Nil entries are skipped.
func SequenceEx[T any](cs ...ConsumerEx[T]) ConsumerEx[T] {
	cs = slices.Clone(cs)
	return func(v T) error {
		for _, c := range cs {
			if err := c.Accept(v); err != nil {
				return err
			}
		}
		return nil
	}
}
