package domain

// CurrentStreak walks the row backwards from today. An empty cell ends the
// walk, a skipped cell is stepped over without counting, and every scored
// cell adds one.
func CurrentStreak(row WeekRow) int {
	streak := 0
	for day := TodayColumn; day >= 0; day-- {
		switch {
		case row[day] == CellNone:
			return streak
		case row[day] == CellSkip:
			continue
		default:
			streak++
		}
	}
	return streak
}

// BestStreak returns the longest run of non-empty cells anywhere in the row.
// Skipped cells extend the run here.
func BestStreak(row WeekRow) int {
	current, best := 0, 0
	for _, state := range row {
		if state == CellNone {
			current = 0
			continue
		}
		current++
		if current > best {
			best = current
		}
	}
	return best
}
