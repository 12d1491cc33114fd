package maybe

import (
	"github.com/niclas-ahden/roc-maybe/option"
	"github.com/niclas-ahden/roc-maybe/result"
)

// ToOption converts Just(v) to option.Some(v) and Nothing to option.None.
func ToOption[T any](m Maybe[T]) option.Option[T] {
	if m.just {
		return option.Some(m.value)
	}
	return option.None[T]()
}

// FromOption converts option.Some(v) to Just(v) and option.None to Nothing.
// FromOption(ToOption(m)) == m for both variants.
func FromOption[T any](o option.Option[T]) Maybe[T] {
	if value, ok := o.Get(); ok {
		return Just(value)
	}
	return Nothing[T]()
}

// ToResult converts Just(v) to result.Ok(v), and Nothing to result.Err with
// the caller-supplied error.
func ToResult[T any](m Maybe[T], err error) result.Result[T] {
	if m.just {
		return result.Ok(m.value)
	}
	return result.Err[T](err)
}

// FromResult converts result.Ok(v) to Just(v) and any failure to Nothing.
// The error payload is discarded: this is a lossy, one-directional
// conversion. Keep the Result when the error matters.
func FromResult[T any](r result.Result[T]) Maybe[T] {
	if value, err := r.Get(); err == nil {
		return Just(value)
	}
	return Nothing[T]()
}

// MapTry applies a fallible fn to the contained value. Just(v) yields
// Ok(Just(u)) when fn succeeds, or fn's error verbatim when it fails.
// Nothing yields Ok(Nothing) and fn is never called.
func MapTry[T, U any](m Maybe[T], fn func(T) result.Result[U]) result.Result[Maybe[U]] {
	if !m.just {
		return result.Ok(Nothing[U]())
	}
	return result.Map(fn(m.value), Just[U])
}
