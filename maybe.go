// Package maybe provides a Maybe sum type for values that are either present
// (Just) or absent (Nothing), together with the combinator algebra over it:
// mapping, chaining, filtering, multi-argument combination, list aggregation,
// and explicit conversions to the option and result interop types.
//
// Maybe values are immutable: every combinator returns a fresh value and no
// operation mutates its input. Absence is not failure. Combinators that can
// fail are the ones returning result.Result, and they report the first error
// encountered without doing further work.
//
// Combinators whose callback performs externally observable work take a
// context.Context and carry a Ctx suffix (MapCtx, AndThenCtx, ...). They
// invoke the callback synchronously at most once per relevant element and
// return only after it has completed; the context is passed through to the
// callback untouched.
package maybe

import (
	"fmt"
	"iter"
)

// Maybe holds either a present value (Just) or nothing. The zero value is
// Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just creates a Maybe containing a value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, just: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{just: false}
}

// FromPtr creates a Maybe from a pointer, treating nil as Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// FromOk creates a Maybe from a value and ok flag, mirroring Go's comma-ok
// idiom for map lookups and type assertions.
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(value)
}

// IsJust returns true if the Maybe contains a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Get returns the contained value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// Unwrap returns the contained value or panics if the Maybe is Nothing.
func (m Maybe[T]) Unwrap() T {
	if !m.just {
		panic("called Unwrap on Nothing")
	}
	return m.value
}

// WithDefault returns the contained value, or fallback when Nothing. The
// fallback is evaluated by the caller regardless of presence.
func (m Maybe[T]) WithDefault(fallback T) T {
	if m.just {
		return m.value
	}
	return fallback
}

// WithDefaultFunc returns the contained value, calling fn for a fallback
// only when Nothing.
func (m Maybe[T]) WithDefaultFunc(fn func() T) T {
	if m.just {
		return m.value
	}
	return fn()
}

// OrElse returns the Maybe itself when it is Just, otherwise other.
func (m Maybe[T]) OrElse(other Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return other
}

// OrElseFunc returns the Maybe itself when it is Just, calling fn for a
// replacement only when Nothing.
func (m Maybe[T]) OrElseFunc(fn func() Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return fn()
}

// Filter keeps the value only if predicate returns true, otherwise Nothing.
// The predicate is not called on Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.just && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// Match calls onJust with the value or onNothing when empty.
func (m Maybe[T]) Match(onJust func(T), onNothing func()) {
	if m.just {
		onJust(m.value)
	} else {
		onNothing()
	}
}

// ToPtr converts the Maybe to a pointer, nil when Nothing. The pointer
// references a copy of the stored value.
func (m Maybe[T]) ToPtr() *T {
	if !m.just {
		return nil
	}
	value := m.value
	return &value
}

// All returns an iterator over the Maybe's zero or one value.
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.just {
			yield(m.value)
		}
	}
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Map applies fn to the contained value, or returns Nothing unchanged.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.just {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// AndThen chains fn onto the contained value. fn is never called on Nothing;
// this short-circuit is what every combinator built on AndThen relies on.
func AndThen[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return fn(m.value)
	}
	return Nothing[U]()
}

// Join flattens a nested Maybe by one level.
func Join[T any](mm Maybe[Maybe[T]]) Maybe[T] {
	return AndThen(mm, func(m Maybe[T]) Maybe[T] { return m })
}
