package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Subsets returns every subset of items, including the empty one. Subsets that
// contain items[0] come first, each followed by the subsets of the remainder.
func Subsets[T any](items []T) [][]T {
	if len(items) == 0 {
		return [][]T{{}}
	}
	rest := Subsets(items[1:])
	result := make([][]T, 0, 2*len(rest))
	for _, subset := range rest {
		with := make([]T, 0, len(subset)+1)
		with = append(with, items[0])
		with = append(with, subset...)
		result = append(result, with)
	}
	return append(result, rest...)
}

// Permutations returns the ordered selections of n distinct elements of items
// for which keep(position, item) holds at every position. Selections are
// emitted in lexicographic order of the chosen indices.
func Permutations[T any](items []T, n int, keep func(pos int, item T) bool) [][]T {
	var result [][]T
	if n > len(items) {
		return result
	}
	used := make([]bool, len(items))
	current := make([]T, 0, n)

	var extend func()
	extend = func() {
		if len(current) == n {
			perm := make([]T, n)
			copy(perm, current)
			result = append(result, perm)
			return
		}
		pos := len(current)
		for i, item := range items {
			if used[i] || (keep != nil && !keep(pos, item)) {
				continue
			}
			used[i] = true
			current = append(current, item)
			extend()
			current = current[:pos]
			used[i] = false
		}
	}
	extend()
	return result
}
