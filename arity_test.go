// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accept_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/accept"
)

func TestConsumer2(t *testing.T) {
	var calls []string
	tag := func(name string) accept.Consumer2[int, string] {
		return func(n int, s string) { calls = append(calls, fmt.Sprintf("%s(%d,%s)", name, n, s)) }
	}
	c := accept.Sequence2(tag("a"), nil, tag("b")).Then(tag("c")).Before(tag("z"))
	c.Accept(1, "x")
	want := []string{"z(1,x)", "a(1,x)", "b(1,x)", "c(1,x)"}
	if !slices.Equal(calls, want) {
		t.Fatalf("calls got %q, want %q", calls, want)
	}
}

func TestConsumerEx2(t *testing.T) {
	var calls []string
	tag := func(name string, err error) accept.ConsumerEx2[int, string] {
		return func(n int, s string) error {
			calls = append(calls, fmt.Sprintf("%s(%d,%s)", name, n, s))
			return err
		}
	}

	err := accept.SequenceEx2(tag("a", nil), tag("b", errBoom), tag("c", nil))(1, "x")
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want %v", err, errBoom)
	}
	if err := tag("d", nil).Before(tag("e", nil)).Accept(2, "y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var handled []error
	tag("f", errBoom).Handled(accept.Collect(&handled))(3, "z")
	tag("g", errBoom).OnException(accept.Of2(func(n int, s string) {
		calls = append(calls, fmt.Sprintf("fallback(%d,%s)", n, s))
	}))(4, "w")

	want := []string{"a(1,x)", "b(1,x)", "e(2,y)", "d(2,y)", "f(3,z)", "g(4,w)", "fallback(4,w)"}
	if !slices.Equal(calls, want) {
		t.Fatalf("calls got %q, want %q", calls, want)
	}
	if len(handled) != 1 {
		t.Fatalf("handled %d errors, want 1", len(handled))
	}
}

func TestConsumer3(t *testing.T) {
	sum := 0
	add := accept.Of3(func(a, b, c int) { sum += a + b + c })
	double := accept.Of3(func(a, b, c int) { sum *= 2 })
	add.Then(double)(1, 2, 3)
	if sum != 12 {
		t.Fatalf("then: got %d, want 12", sum)
	}
	sum = 0
	add.Before(double)(1, 2, 3)
	if sum != 6 {
		t.Fatalf("before: got %d, want 6", sum)
	}
	sum = 0
	accept.Sequence3(add, add, accept.Noop3[int, int, int]())(1, 1, 1)
	if sum != 6 {
		t.Fatalf("sequence: got %d, want 6", sum)
	}
}

func TestConsumerEx3(t *testing.T) {
	n := 0
	inc := accept.OfEx3(func(a, b, c int) error { n += a; return nil })
	fail := accept.OfEx3(func(a, b, c int) error { return errBoom })

	if err := inc.Then(fail).Then(inc)(1, 0, 0); !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want %v", err, errBoom)
	}
	if n != 1 {
		t.Fatalf("got %d, want 1", n)
	}
	if err := accept.SequenceEx3(inc, accept.NoopEx3[int, int, int](), inc)(1, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fail.OnException(accept.Of3(func(a, b, c int) { n += 10 }))(0, 0, 0)
	if n != 13 {
		t.Fatalf("got %d, want 13", n)
	}
	inc.Before(fail).Handled(accept.Ignore)(1, 0, 0)
	if n != 13 {
		t.Fatalf("before: got %d, want 13", n)
	}
}

func TestConsumer4(t *testing.T) {
	var got [][4]int
	rec := accept.Of4(func(a, b, c, d int) { got = append(got, [4]int{a, b, c, d}) })
	accept.Sequence4(rec, rec.Then(rec).Before(rec))(1, 2, 3, 4)
	if len(got) != 4 {
		t.Fatalf("got %d calls, want 4", len(got))
	}
	for _, g := range got {
		if g != [4]int{1, 2, 3, 4} {
			t.Fatalf("got args %v, want [1 2 3 4]", g)
		}
	}
}

func TestConsumerEx4(t *testing.T) {
	var order []int
	step := func(id int, err error) accept.ConsumerEx4[int, int, int, int] {
		return func(a, b, c, d int) error {
			order = append(order, id)
			return err
		}
	}
	err := accept.SequenceEx4(step(1, nil), step(2, nil)).Then(step(3, errBoom)).Before(step(0, nil))(0, 0, 0, 0)
	if !errors.Is(err, errBoom) {
		t.Fatalf("got %v, want %v", err, errBoom)
	}
	if !slices.Equal(order, []int{0, 1, 2, 3}) {
		t.Fatalf("order got %v, want [0 1 2 3]", order)
	}

	defer func() {
		if v := recover(); v != errBoom {
			t.Fatalf("recovered %v, want %v", v, errBoom)
		}
	}()
	step(4, errBoom).Unchecked()(0, 0, 0, 0)
}

func TestConsumerExLiftAllArities(t *testing.T) {
	n := 0
	if err := accept.Of2(func(a, b int) { n++ }).Ex()(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := accept.Of3(func(a, b, c int) { n++ }).Ex()(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := accept.Of4(func(a, b, c, d int) { n++ }).Ex()(0, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	accept.NoopEx4[int, int, int, int]().Handled(nil)(0, 0, 0, 0)
	accept.Noop4[int, int, int, int]().Accept(0, 0, 0, 0)
	accept.Noop2[int, int]()(0, 0)
	if err := accept.NoopEx2[int, int]().Accept(0, 0); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d, want 3", n)
	}
}
