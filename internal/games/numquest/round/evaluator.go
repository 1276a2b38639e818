package round

import "sort"

// Targets returns the distinct values that count as a correct answer for the
// set under op, in ascending order.
//
// LessThan and GreaterThan yield the single extremum; every tile showing it is
// correct. Equal yields every value that appears at least twice, which may be
// empty for a set without duplicates.
func Targets(set NumberSet, op Operator) []int {
	values := set.Values()

	switch op {
	case LessThan:
		lo := values[0]
		for _, v := range values[1:] {
			if v < lo {
				lo = v
			}
		}
		return []int{lo}

	case GreaterThan:
		hi := values[0]
		for _, v := range values[1:] {
			if v > hi {
				hi = v
			}
		}
		return []int{hi}

	case Equal:
		counts := make(map[int]int, len(values))
		for _, v := range values {
			counts[v]++
		}
		repeated := make([]int, 0, len(values)/2)
		for v, n := range counts {
			if n >= 2 {
				repeated = append(repeated, v)
			}
		}
		sort.Ints(repeated)
		return repeated
	}

	return nil
}

// IsCorrect reports whether selecting value satisfies op for the set.
func IsCorrect(value int, set NumberSet, op Operator) bool {
	for _, t := range Targets(set, op) {
		if t == value {
			return true
		}
	}
	return false
}
