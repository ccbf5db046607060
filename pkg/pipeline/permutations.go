package pipeline

import "slices"

// Permutations returns every ordering of values in lexicographic order.
// Repeated values yield each distinct ordering once.
func Permutations(values []int64) [][]int64 {
	if len(values) == 0 {
		return nil
	}
	cur := slices.Clone(values)
	slices.Sort(cur)

	var out [][]int64
	for {
		out = append(out, slices.Clone(cur))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor and
// reports false when p was already the last ordering.
func nextPermutation(p []int64) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}
