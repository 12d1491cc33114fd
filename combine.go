package maybe

// Combine2 applies fn to both payloads when every argument is Just,
// otherwise returns Nothing without calling fn.
func Combine2[A, B, C any](ma Maybe[A], mb Maybe[B], fn func(A, B) C) Maybe[C] {
	if ma.just && mb.just {
		return Just(fn(ma.value, mb.value))
	}
	return Nothing[C]()
}

// Combine3 applies fn to all three payloads when every argument is Just,
// otherwise returns Nothing without calling fn.
func Combine3[A, B, C, D any](ma Maybe[A], mb Maybe[B], mc Maybe[C], fn func(A, B, C) D) Maybe[D] {
	if ma.just && mb.just && mc.just {
		return Just(fn(ma.value, mb.value, mc.value))
	}
	return Nothing[D]()
}

// Combine4 applies fn to all four payloads when every argument is Just,
// otherwise returns Nothing without calling fn.
func Combine4[A, B, C, D, E any](ma Maybe[A], mb Maybe[B], mc Maybe[C], md Maybe[D], fn func(A, B, C, D) E) Maybe[E] {
	if ma.just && mb.just && mc.just && md.just {
		return Just(fn(ma.value, mb.value, mc.value, md.value))
	}
	return Nothing[E]()
}
