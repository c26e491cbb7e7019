package util

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// Batch splits s into consecutive chunks of at most size elements
func Batch[T any](s []T, size int) [][]T {
	if size <= 0 {
		size = len(s)
	}

	batches := [][]T{}
	for lower := 0; lower < len(s); lower += size {
		upper := lower + size
		if upper > len(s) {
			upper = len(s)
		}

		batches = append(batches, s[lower:upper])
	}

	return batches
}
