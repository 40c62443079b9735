// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept

import "go.uber.org/zap"

// Ignore is an error handler that discards the error.
func Ignore(error) {}

// raise is the error handler behind Unchecked.
func raise(err error) {
	panic(err)
}

// LogError returns an error handler that logs each error on logger at
// error level under msg. A nil logger discards everything.
func LogError(logger *zap.Logger, msg string, fields ...zap.Field) func(error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error) {
		logger.Error(msg, append(fields[:len(fields):len(fields)], zap.Error(err))...)
	}
}

// Collect returns an error handler that appends each error to dst.
// Not safe for concurrent use.
func Collect(dst *[]error) func(error) {
	return func(err error) {
		*dst = append(*dst, err)
	}
}
