package maybe

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/niclas-ahden/roc-maybe/result"
)

type ctxKey struct{}

func taggedContext(tag string) context.Context {
	return context.WithValue(context.Background(), ctxKey{}, tag)
}

func TestMapCtx(t *testing.T) {
	t.Run("passes the context through to fn", func(t *testing.T) {
		ctx := taggedContext("request-7")
		m := MapCtx(ctx, Just(42), func(ctx context.Context, x int) string {
			tag, _ := ctx.Value(ctxKey{}).(string)
			return tag
		})
		if m != Just("request-7") {
			t.Errorf("expected the context tag, got %v", m)
		}
	})

	t.Run("calls fn exactly once on Just", func(t *testing.T) {
		calls := 0
		m := MapCtx(context.Background(), Just(21), func(_ context.Context, x int) int {
			calls++
			return x * 2
		})
		if m != Just(42) || calls != 1 {
			t.Errorf("expected Just(42) after one call, got %v after %d", m, calls)
		}
	})

	t.Run("does not call fn on Nothing", func(t *testing.T) {
		calls := 0
		m := MapCtx(context.Background(), Nothing[int](), func(_ context.Context, x int) int {
			calls++
			return x
		})
		if !m.IsNothing() || calls != 0 {
			t.Errorf("expected Nothing with no calls, got %v after %d", m, calls)
		}
	})
}

func TestAndThenCtx(t *testing.T) {
	lookup := func(_ context.Context, key string) Maybe[int] {
		if key == "hit" {
			return Just(1)
		}
		return Nothing[int]()
	}

	t.Run("chains fn on Just", func(t *testing.T) {
		if AndThenCtx(context.Background(), Just("hit"), lookup) != Just(1) {
			t.Error("expected Just(1)")
		}
		if !AndThenCtx(context.Background(), Just("miss"), lookup).IsNothing() {
			t.Error("expected Nothing for a miss")
		}
	})

	t.Run("does not call fn on Nothing", func(t *testing.T) {
		calls := 0
		m := AndThenCtx(context.Background(), Nothing[string](), func(ctx context.Context, key string) Maybe[int] {
			calls++
			return lookup(ctx, key)
		})
		if !m.IsNothing() || calls != 0 {
			t.Errorf("expected Nothing with no calls, got %v after %d", m, calls)
		}
	})
}

func TestFilterCtx(t *testing.T) {
	t.Run("keeps values the predicate accepts", func(t *testing.T) {
		even := func(_ context.Context, x int) bool { return x%2 == 0 }
		if FilterCtx(context.Background(), Just(4), even) != Just(4) {
			t.Error("expected Just(4) to survive")
		}
		if !FilterCtx(context.Background(), Just(3), even).IsNothing() {
			t.Error("expected Just(3) to be dropped")
		}
	})

	t.Run("does not call the predicate on Nothing", func(t *testing.T) {
		calls := 0
		m := FilterCtx(context.Background(), Nothing[int](), func(context.Context, int) bool {
			calls++
			return true
		})
		if !m.IsNothing() || calls != 0 {
			t.Errorf("expected Nothing with no calls, got %v after %d", m, calls)
		}
	})
}

func TestMapTryCtx(t *testing.T) {
	t.Run("Just with succeeding fn yields Ok of Just", func(t *testing.T) {
		r := MapTryCtx(context.Background(), Just(21), func(_ context.Context, x int) result.Result[int] {
			return result.Ok(x * 2)
		})
		if !r.IsOk() || r.Unwrap() != Just(42) {
			t.Errorf("expected Ok(Just(42)), got %v", r)
		}
	})

	t.Run("Just with failing fn propagates the error", func(t *testing.T) {
		boom := errors.New("boom")
		r := MapTryCtx(context.Background(), Just(21), func(context.Context, int) result.Result[int] {
			return result.Err[int](boom)
		})
		if !r.IsErr() || r.UnwrapErr() != boom {
			t.Errorf("expected Err(boom), got %v", r)
		}
	})

	t.Run("Nothing yields Ok of Nothing without calling fn", func(t *testing.T) {
		calls := 0
		r := MapTryCtx(context.Background(), Nothing[int](), func(_ context.Context, x int) result.Result[int] {
			calls++
			return result.Ok(x)
		})
		if calls != 0 {
			t.Errorf("expected no fn calls, got %d", calls)
		}
		if !r.IsOk() || !r.Unwrap().IsNothing() {
			t.Errorf("expected Ok(Nothing), got %v", r)
		}
	})
}

func TestCombineCtx(t *testing.T) {
	t.Run("Combine2Ctx runs fn once when both are Just", func(t *testing.T) {
		calls := 0
		m := Combine2Ctx(context.Background(), Just(3), Just(4), func(_ context.Context, a, b int) int {
			calls++
			return a + b
		})
		if m != Just(7) || calls != 1 {
			t.Errorf("expected Just(7) after one call, got %v after %d", m, calls)
		}
	})

	t.Run("Combine2Ctx runs no effect on a partially present pair", func(t *testing.T) {
		calls := 0
		fn := func(_ context.Context, a, b int) int { calls++; return a + b }

		if !Combine2Ctx(context.Background(), Just(3), Nothing[int](), fn).IsNothing() {
			t.Error("expected Nothing")
		}
		if !Combine2Ctx(context.Background(), Nothing[int](), Just(4), fn).IsNothing() {
			t.Error("expected Nothing")
		}
		if calls != 0 {
			t.Errorf("expected no fn calls, got %d", calls)
		}
	})

	t.Run("Combine3Ctx and Combine4Ctx follow the same contract", func(t *testing.T) {
		calls := 0

		m3 := Combine3Ctx(context.Background(), Just(1), Just(2), Just(3), func(_ context.Context, a, b, c int) int {
			calls++
			return a + b + c
		})
		if m3 != Just(6) || calls != 1 {
			t.Errorf("expected Just(6) after one call, got %v after %d", m3, calls)
		}

		calls = 0
		m3 = Combine3Ctx(context.Background(), Just(1), Nothing[int](), Just(3), func(_ context.Context, a, b, c int) int {
			calls++
			return 0
		})
		if !m3.IsNothing() || calls != 0 {
			t.Errorf("expected Nothing with no calls, got %v after %d", m3, calls)
		}

		calls = 0
		m4 := Combine4Ctx(context.Background(), Just(1), Just(2), Just(3), Just(4), func(_ context.Context, a, b, c, d int) int {
			calls++
			return a + b + c + d
		})
		if m4 != Just(10) || calls != 1 {
			t.Errorf("expected Just(10) after one call, got %v after %d", m4, calls)
		}

		calls = 0
		m4 = Combine4Ctx(context.Background(), Just(1), Just(2), Just(3), Nothing[int](), func(_ context.Context, a, b, c, d int) int {
			calls++
			return 0
		})
		if !m4.IsNothing() || calls != 0 {
			t.Errorf("expected Nothing with no calls, got %v after %d", m4, calls)
		}
	})

	t.Run("Combine2Ctx passes the context through", func(t *testing.T) {
		ctx := taggedContext("combine")
		m := Combine2Ctx(ctx, Just("a"), Just("b"), func(ctx context.Context, a, b string) string {
			tag, _ := ctx.Value(ctxKey{}).(string)
			return a + b + tag
		})
		if m != Just("abcombine") {
			t.Errorf("expected Just(abcombine), got %v", m)
		}
	})
}

func TestTraverseCtx(t *testing.T) {
	t.Run("visits items in order with the context", func(t *testing.T) {
		var visited []int
		ctx := taggedContext("walk")
		m := TraverseCtx(ctx, []int{1, 2, 3}, func(ctx context.Context, x int) Maybe[int] {
			if tag, _ := ctx.Value(ctxKey{}).(string); tag != "walk" {
				t.Fatalf("expected context tag walk, got %q", tag)
			}
			visited = append(visited, x)
			return Just(x * 10)
		})
		values, ok := m.Get()
		if !ok || !slices.Equal(values, []int{10, 20, 30}) {
			t.Errorf("expected Just([10 20 30]), got %v", m)
		}
		if !slices.Equal(visited, []int{1, 2, 3}) {
			t.Errorf("expected in-order visits, got %v", visited)
		}
	})

	t.Run("stops calling fn after the first Nothing", func(t *testing.T) {
		calls := 0
		m := TraverseCtx(context.Background(), []int{1, 2, 3}, func(_ context.Context, x int) Maybe[int] {
			calls++
			if x == 2 {
				return Nothing[int]()
			}
			return Just(x)
		})
		if !m.IsNothing() {
			t.Errorf("expected Nothing, got %v", m)
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})
}
