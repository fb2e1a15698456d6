package quiz

// Random is the source of every random choice made while building a quiz.
// *rand.Rand satisfies it.
type Random interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// intn returns a number in [0, n).
func intn(r Random, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// shuffle returns a uniformly permuted copy of items.
func shuffle[T any](r Random, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intn(r, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
