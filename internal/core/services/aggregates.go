package services

import "github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"

// recomputeAll rebuilds every aggregate from the grid. It is linear in
// habits x days, so structural changes always take this path.
func (e *HabitEngine) recomputeAll() {
	var daily [domain.DaysInWindow]int

	for h, row := range e.grid {
		weekly := 0
		for day, state := range row {
			p := state.Points()
			daily[day] += p
			weekly += p
		}
		e.weeklyTotals[h] = weekly
		e.recomputeStreaks(h)
	}

	e.dailyTotals = daily
	e.weeklyPointTotal = sumDays(daily)
}

// recomputeStreaks rescans the whole row instead of patching the counters.
func (e *HabitEngine) recomputeStreaks(h int) {
	e.streaks[h] = domain.CurrentStreak(e.grid[h])
	e.bestStreaks[h] = domain.BestStreak(e.grid[h])
}

func sumDays(totals [domain.DaysInWindow]int) int {
	sum := 0
	for _, t := range totals {
		sum += t
	}
	return sum
}
