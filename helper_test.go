// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept_test

import (
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/accept"
)

// recorder logs every call made through the consumers it hands out,
// in call order, as "name(args)".
type recorder struct {
	calls []string
}

func (r *recorder) log(name string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf("%s%v", name, args))
}

// tag returns a Consumer recording calls under name.
func (r *recorder) tag(name string) accept.Consumer[int] {
	return func(v int) { r.log(name, v) }
}

// tagEx returns a ConsumerEx recording calls under name and returning err.
func (r *recorder) tagEx(name string, err error) accept.ConsumerEx[int] {
	return func(v int) error {
		r.log(name, v)
		return err
	}
}

// expect fails tb unless the recorded calls equal want.
func (r *recorder) expect(tb testing.TB, want ...string) {
	tb.Helper()
	if !slices.Equal(r.calls, want) {
		tb.Fatalf("calls got %q, want %q", r.calls, want)
	}
}
