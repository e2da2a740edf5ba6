package services

import "github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"

type BoardReader interface {
	Snapshot() domain.EngineState
}

type StatsService struct {
	board BoardReader
}

func NewStatsService(board BoardReader) *StatsService {
	return &StatsService{
		board: board,
	}
}

func (s *StatsService) GetWeeklyStats() *domain.WeeklyStats {
	return BuildWeeklyStats(s.board.Snapshot())
}

// BuildWeeklyStats summarises a snapshot. Completion rates are measured
// against the points reachable on active days.
func BuildWeeklyStats(state domain.EngineState) *domain.WeeklyStats {
	stats := &domain.WeeklyStats{
		StartDate:        state.DayDates[0],
		EndDate:          state.DayDates[domain.TodayColumn],
		TotalHabits:      len(state.Habits),
		TotalPoints:      state.WeeklyPointTotal,
		OverallGoal:      state.OverallWeeklyGoal,
		OverallMaxPoints: state.OverallMaxPoints,
		HabitStats:       make([]domain.HabitStat, 0, len(state.Habits)),
	}

	totalReachable := 0

	for i, h := range state.Habits {
		row := state.Grid[i]
		hStat := domain.HabitStat{
			Index:         i,
			HabitName:     h.Name,
			WeeklyGoal:    h.WeeklyGoal,
			MaxPoints:     h.MaxPoints(),
			TotalValue:    state.WeeklyTotals[i],
			GoalReached:   h.GoalReached(state.WeeklyTotals[i]),
			CurrentStreak: state.Streaks[i],
			BestStreak:    state.BestStreaks[i],
			DailyProgress: make([]int, 0, domain.DaysInWindow),
		}

		for _, cell := range row {
			hStat.DailyProgress = append(hStat.DailyProgress, cell.Points())

			switch {
			case cell.Completed():
				hStat.DaysCompleted++
			case cell == domain.CellSkip:
				hStat.DaysSkipped++
			}
		}

		if hStat.MaxPoints > 0 {
			hStat.CompletionRate = float64(hStat.TotalValue) / float64(hStat.MaxPoints) * 100
		}
		totalReachable += hStat.MaxPoints

		stats.HabitStats = append(stats.HabitStats, hStat)
	}

	if totalReachable > 0 {
		stats.OverallRate = float64(state.WeeklyPointTotal) / float64(totalReachable) * 100
	}

	return stats
}
