package cardocr

// Distance returns the Levenshtein distance between two patterns: the
// minimum number of single symbol insertions, deletions and substitutions
// that turn a into b.
//
// The dynamic programming table is kept as two rolling rows; row i holds
// the distances from a[:i] to every prefix of b.
func Distance(a, b Pattern) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[n]
}
