package cycle

// Detect returns the Cycle of the sequence generated by next from start.
func Detect[T comparable](start T, next func(T) T) Cycle {
	return DetectBy(start, next, func(s T) T { return s })
}

// DetectBy is Detect for states compared by key(state).
func DetectBy[T any, K comparable](start T, next func(T) T, key func(T) K) Cycle {
	// Phase 1: hare runs twice as fast until both meet inside the cycle.
	tortoise, hare := next(start), next(next(start))
	for key(tortoise) != key(hare) {
		tortoise = next(tortoise)
		hare = next(next(hare))
	}

	// Phase 2: restart the tortoise; they meet again at the cycle entry.
	offset := 0
	tortoise = start
	for key(tortoise) != key(hare) {
		tortoise = next(tortoise)
		hare = next(hare)
		offset++
	}

	// Phase 3: walk the hare once around the cycle.
	period := 1
	entry := key(tortoise)
	for hare = next(tortoise); key(hare) != entry; hare = next(hare) {
		period++
	}

	return Cycle{Offset: offset, Period: period}
}

// StateAt returns the state after n applications of next, replaying at most
// Offset+Period steps.
func StateAt[T comparable](start T, next func(T) T, n int) (T, error) {
	return StateAtBy(start, next, func(s T) T { return s }, n)
}

// StateAtBy is StateAt for states compared by key(state).
func StateAtBy[T any, K comparable](start T, next func(T) T, key func(T) K, n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, ErrNegativeSteps
	}
	steps, err := DetectBy(start, next, key).Reduce(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return Iterate(start, next, steps), nil
}

// Iterate applies next n times to start.
func Iterate[T any](start T, next func(T) T, n int) T {
	s := start
	for i := 0; i < n; i++ {
		s = next(s)
	}
	return s
}
