// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "code.hybscloud.com/kont"

// unit is the pre-built success value for Try.
var unit = kont.Right[error](struct{}{})

// Try calls c with v and reports the outcome as an Either:
// Right on success, Left carrying the error.
func (c ConsumerEx[T]) Try(v T) kont.Either[error, struct{}] {
	if err := c.Accept(v); err != nil {
		return kont.Left[error, struct{}](err)
	}
	return unit
}

// Perform defers the call to c into a kont computation.
// c runs when the computation is evaluated; an error from c is raised
// with kont.ThrowError, so it can be caught by kont.CatchError and
// surfaces as Left under kont.RunError.
func (c ConsumerEx[T]) Perform(v T) kont.Eff[struct{}] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[struct{}] {
		if err := c.Accept(v); err != nil {
			return kont.ThrowError[error, struct{}](err)
		}
		return kont.Pure(struct{}{})
	})
}

// FromEither adapts an Either-reporting callback into a ConsumerEx.
func FromEither[T any](f func(T) kont.Either[error, struct{}]) ConsumerEx[T] {
	return func(v T) error {
		if err, ok := f(v).GetLeft(); ok {
			return err
		}
		return nil
	}
}
