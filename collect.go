package maybe

// KeepJusts returns the present payloads of ms in their original order,
// dropping every Nothing.
func KeepJusts[T any](ms []Maybe[T]) []T {
	values := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.just {
			values = append(values, m.value)
		}
	}
	return values
}

// CombineAll returns Just of all payloads, in order, when every element of
// ms is Just. The first Nothing stops the scan and yields Nothing.
// CombineAll of an empty or nil slice is Just of an empty slice.
func CombineAll[T any](ms []Maybe[T]) Maybe[[]T] {
	values := make([]T, 0, len(ms))
	for _, m := range ms {
		if !m.just {
			return Nothing[[]T]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}

// Traverse applies fn to each item and combines the results, stopping at and
// returning Nothing the first time fn does. Equivalent to CombineAll over a
// mapped slice, without evaluating fn past the first absence.
func Traverse[T, U any](items []T, fn func(T) Maybe[U]) Maybe[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		m := fn(item)
		if !m.just {
			return Nothing[[]U]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}
