package core

// CycleIndex steps from currentIndex by direction, wrapping around total.
// direction should be 1 (next) or -1 (previous).
func CycleIndex(currentIndex, direction, total int) int {
	if total <= 0 {
		return 0
	}
	next := (currentIndex + direction) % total
	if next < 0 {
		next += total
	}
	return next
}

// NextFocus picks the focus target after current among targets, which must
// be sorted. When current is not a target the nearest one in direction wins.
// It returns -1 when there are no targets.
func NextFocus(current, direction int, targets []int) int {
	if len(targets) == 0 {
		return -1
	}
	for i, t := range targets {
		if t == current {
			return targets[CycleIndex(i, direction, len(targets))]
		}
	}
	if direction < 0 {
		for i := len(targets) - 1; i >= 0; i-- {
			if targets[i] < current {
				return targets[i]
			}
		}
		return targets[len(targets)-1]
	}
	for _, t := range targets {
		if t > current {
			return t
		}
	}
	return targets[0]
}
