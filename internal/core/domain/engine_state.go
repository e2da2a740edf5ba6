package domain

// EngineState is a read-only snapshot of the board. Slices are owned by the
// snapshot and never alias engine storage.
type EngineState struct {
	Habits            []Habit              `json:"habits"`
	Grid              []WeekRow            `json:"grid"`
	DailyTotals       [DaysInWindow]int    `json:"daily_totals"`
	WeeklyTotals      []int                `json:"weekly_totals"`
	WeeklyPointTotal  int                  `json:"weekly_point_total"`
	OverallWeeklyGoal int                  `json:"overall_weekly_goal"`
	Streaks           []int                `json:"streaks"`
	BestStreaks       []int                `json:"best_streaks"`
	DayLabels         [DaysInWindow]string `json:"day_labels"`
	DayDates          [DaysInWindow]string `json:"day_dates"`

	MaxPoints          []int  `json:"max_points"`
	GoalsReached       []bool `json:"goals_reached"`
	OverallMaxPoints   int    `json:"overall_max_points"`
	OverallGoalReached bool   `json:"overall_goal_reached"`
}

// OverallWeeklyGoal sums the weekly goals of all habits.
func OverallWeeklyGoal(habits []Habit) int {
	total := 0
	for _, h := range habits {
		total += h.WeeklyGoal
	}
	return total
}

// RowPoints sums the point value of every cell in the row.
func RowPoints(row WeekRow) int {
	total := 0
	for _, s := range row {
		total += s.Points()
	}
	return total
}
