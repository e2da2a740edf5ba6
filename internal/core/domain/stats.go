package domain

type WeeklyStats struct {
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	TotalHabits      int         `json:"total_habits"`
	TotalPoints      int         `json:"total_points"`
	OverallGoal      int         `json:"overall_goal"`
	OverallMaxPoints int         `json:"overall_max_points"`
	OverallRate      float64     `json:"overall_completion_rate"`
	HabitStats       []HabitStat `json:"habits"`
}

type HabitStat struct {
	Index          int     `json:"index"`
	HabitName      string  `json:"habit_name"`
	WeeklyGoal     int     `json:"weekly_goal"`
	MaxPoints      int     `json:"max_points"`
	TotalValue     int     `json:"total_value"`
	CompletionRate float64 `json:"completion_rate"`
	DaysCompleted  int     `json:"days_completed"`
	DaysSkipped    int     `json:"days_skipped"`
	DailyProgress  []int   `json:"daily_progress"`
	GoalReached    bool    `json:"goal_reached"`
	CurrentStreak  int     `json:"current_streak"`
	BestStreak     int     `json:"best_streak"`
}
