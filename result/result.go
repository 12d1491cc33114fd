// Package result provides a Result type describing the outcome of an
// operation that either succeeds with a value or fails with an error.
package result

import (
	"errors"
	"fmt"
	"iter"
)

// errNil stands in for the error payload when Err is called with nil,
// so an Err result never reports a nil error.
var errNil = errors.New("result: nil error")

// Result holds either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result. A nil err is replaced with a non-nil
// placeholder so the failure stays observable through Get and UnwrapErr.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNil
	}
	return Result[T]{err: err, ok: false}
}

// Of creates a Result from Go's conventional (value, error) return pair.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// Try runs fn and captures its outcome as a Result.
func Try[T any](fn func() (T, error)) Result[T] {
	return Of(fn())
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Get returns the value and error in Go's conventional form.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success value or panics on a failed Result.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on a successful Result.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value or computes one from the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Match calls onOk with the value or onErr with the error.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// All returns an iterator over the Result's zero or one success value.
func (r Result[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to the success value, passing a failure through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies fn to the error, passing a success through unchanged.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](fn(r.err))
}

// FlatMap chains fn onto the success value; the first error encountered is
// propagated verbatim and fn is never called on a failed Result.
func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}
