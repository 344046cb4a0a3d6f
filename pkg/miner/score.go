package miner

// exactlyNScore implements spec.md §4.5's EXACTLY_N_ROOMS_COLOR table:
// 7.0 for n<=2, 5.5 for n=3. n=4 (all rooms share a color) is the least
// informative case of all, so it continues the table's descending trend.
func exactlyNScore(n int) float64 {
	switch {
	case n <= 2:
		return 7.0
	case n == 3:
		return 5.5
	default:
		return 4.0
	}
}

// atLeastNScore implements spec.md §4.5's AT_LEAST_N_COLOR_OBJECTS formula,
// generalized across the whole at-least-n family (object-type, color,
// style, warm, cool): 4.0 + 2.5*(k/n).
func atLeastNScore(k, n int) float64 {
	return 4.0 + 2.5*(float64(k)/float64(n))
}

// quantityScore implements spec.md §4.5's quantity-comparison formula:
// 6.0 + min(diff, 3).
func quantityScore(diff int) float64 {
	if diff > 3 {
		diff = 3
	}
	return 6.0 + float64(diff)
}

// roomNegScore picks between the "room has objects" and "room empty" score
// a ROOM_NO_* or AREA_NO_* candidate gets per spec.md §4.5 — negatives are
// worth less when there was nothing to negate in the first place.
func roomNegScore(nonEmpty bool, whenNonEmpty float64) float64 {
	if nonEmpty {
		return whenNonEmpty
	}
	return 2.0
}
