// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "fmt"

// Each lifts c over a slice: the result calls c on every element in order.
// Nesting adds dimensions, so Each(Each(c)) accepts [][]T.
func Each[T any](c Consumer[T]) Consumer[[]T] {
	return func(vs []T) {
		for _, v := range vs {
			c.Accept(v)
		}
	}
}

// EachEx lifts c over a slice and stops at the first failing element.
// The returned error wraps the failure with the element index.
func EachEx[T any](c ConsumerEx[T]) ConsumerEx[[]T] {
	return func(vs []T) error {
		for i, v := range vs {
			if err := c.Accept(v); err != nil {
				return fmt.Errorf("accept: element %d: %w", i, err)
			}
		}
		return nil
	}
}
