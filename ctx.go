package maybe

import (
	"context"

	"github.com/niclas-ahden/roc-maybe/result"
)

// MapCtx is Map with an effectful fn. fn runs synchronously at most once,
// and never on Nothing.
func MapCtx[T, U any](ctx context.Context, m Maybe[T], fn func(context.Context, T) U) Maybe[U] {
	if m.just {
		return Just(fn(ctx, m.value))
	}
	return Nothing[U]()
}

// AndThenCtx is AndThen with an effectful fn, invoked at most once.
func AndThenCtx[T, U any](ctx context.Context, m Maybe[T], fn func(context.Context, T) Maybe[U]) Maybe[U] {
	if m.just {
		return fn(ctx, m.value)
	}
	return Nothing[U]()
}

// FilterCtx is Filter with an effectful predicate, invoked at most once.
func FilterCtx[T any](ctx context.Context, m Maybe[T], predicate func(context.Context, T) bool) Maybe[T] {
	if m.just && predicate(ctx, m.value) {
		return m
	}
	return Nothing[T]()
}

// MapTryCtx is MapTry with an effectful fn, invoked at most once and never
// on Nothing.
func MapTryCtx[T, U any](ctx context.Context, m Maybe[T], fn func(context.Context, T) result.Result[U]) result.Result[Maybe[U]] {
	if !m.just {
		return result.Ok(Nothing[U]())
	}
	return result.Map(fn(ctx, m.value), Just[U])
}

// Combine2Ctx is Combine2 with an effectful fn. Presence of every argument
// is checked first; fn runs once with all payloads or not at all, so a
// partially present pair never triggers a partial effect.
func Combine2Ctx[A, B, C any](ctx context.Context, ma Maybe[A], mb Maybe[B], fn func(context.Context, A, B) C) Maybe[C] {
	if ma.just && mb.just {
		return Just(fn(ctx, ma.value, mb.value))
	}
	return Nothing[C]()
}

// Combine3Ctx is Combine3 with an effectful fn, run once or not at all.
func Combine3Ctx[A, B, C, D any](ctx context.Context, ma Maybe[A], mb Maybe[B], mc Maybe[C], fn func(context.Context, A, B, C) D) Maybe[D] {
	if ma.just && mb.just && mc.just {
		return Just(fn(ctx, ma.value, mb.value, mc.value))
	}
	return Nothing[D]()
}

// Combine4Ctx is Combine4 with an effectful fn, run once or not at all.
func Combine4Ctx[A, B, C, D, E any](ctx context.Context, ma Maybe[A], mb Maybe[B], mc Maybe[C], md Maybe[D], fn func(context.Context, A, B, C, D) E) Maybe[E] {
	if ma.just && mb.just && mc.just && md.just {
		return Just(fn(ctx, ma.value, mb.value, mc.value, md.value))
	}
	return Nothing[E]()
}

// TraverseCtx is Traverse with an effectful fn, invoked in list order and
// not called again after the first Nothing.
func TraverseCtx[T, U any](ctx context.Context, items []T, fn func(context.Context, T) Maybe[U]) Maybe[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		m := fn(ctx, item)
		if !m.just {
			return Nothing[[]U]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}
