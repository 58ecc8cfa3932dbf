package services

// forEachPartition visits every way to split total into parts positive
// sizes, each at least min, in non-decreasing order. Each partition is
// produced exactly once. The visitor returns false to stop early; the
// function reports whether the walk ran to completion.
//
// The slice passed to fn is reused between calls; callers that retain a
// partition must copy it.
func forEachPartition(total, parts, min int, fn func(partition []int) bool) bool {
	if parts < 1 || total < min {
		return true
	}
	buf := make([]int, 0, parts)
	return extendPartition(total, parts, min, buf, fn)
}

func extendPartition(total, parts, min int, prefix []int, fn func([]int) bool) bool {
	if parts == 1 {
		if total < min {
			return true
		}
		return fn(append(prefix, total))
	}

	// Keeping parts non-decreasing bounds the first part by total/parts,
	// which is what makes each partition appear exactly once.
	for i := min; i <= total/parts; i++ {
		if !extendPartition(total-i, parts-1, i, append(prefix, i), fn) {
			return false
		}
	}
	return true
}

// nextOrdering advances sizes to the next lexicographic permutation,
// reporting false once the last one has been reached. Starting from a
// non-decreasing partition and stepping until exhaustion visits every
// distinct ordering exactly once, with repeated sizes never revisited.
func nextOrdering(sizes []int) bool {
	i := len(sizes) - 2
	for i >= 0 && sizes[i] >= sizes[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(sizes) - 1
	for sizes[j] <= sizes[i] {
		j--
	}
	sizes[i], sizes[j] = sizes[j], sizes[i]

	for l, r := i+1, len(sizes)-1; l < r; l, r = l+1, r-1 {
		sizes[l], sizes[r] = sizes[r], sizes[l]
	}
	return true
}
