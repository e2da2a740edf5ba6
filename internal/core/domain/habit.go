package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong = errors.New("habit description is too long (max 500 chars)")
	ErrInvalidLevel     = errors.New("invalid level label (must be Easy, Medium, Hard or Skip)")
	ErrInvalidGoal      = errors.New("weekly goal out of range")
)

const (
	LevelEasy   = "Easy"
	LevelMedium = "Medium"
	LevelHard   = "Hard"
	LevelSkip   = "Skip"

	LevelCount       = 4
	DefaultHabitName = "New Habit"
	DefaultGoal      = 20
	MaxNameLen       = 100
	MaxDescLen       = 500
)

var DefaultLevels = [LevelCount]string{LevelEasy, LevelMedium, LevelHard, LevelSkip}

type Habit struct {
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Levels            [LevelCount]string `json:"levels"`
	LevelDescriptions [LevelCount]string `json:"level_descriptions"`
	ActiveDays        [DaysInWindow]bool `json:"active_days"`
	WeeklyGoal        int                `json:"weekly_goal"`
}

// NewHabit returns a habit active every day with the default goal.
func NewHabit(name string) Habit {
	h := Habit{
		Name:       strings.TrimSpace(name),
		Levels:     DefaultLevels,
		WeeklyGoal: DefaultGoal,
	}
	for d := range h.ActiveDays {
		h.ActiveDays[d] = true
	}
	return h
}

func (h Habit) ActiveDayCount() int {
	n := 0
	for _, active := range h.ActiveDays {
		if active {
			n++
		}
	}
	return n
}

// MaxPoints is the best weekly total reachable on active days alone.
func (h Habit) MaxPoints() int {
	return h.ActiveDayCount() * MaxCellPoints
}

func (h Habit) GoalReached(weeklyTotal int) bool {
	return weeklyTotal >= h.WeeklyGoal
}

func (h Habit) LevelTooltip() string {
	parts := make([]string, 0, LevelCount)
	for i, level := range h.Levels {
		parts = append(parts, fmt.Sprintf("%s: %s", level, h.LevelDescriptions[i]))
	}
	return strings.Join(parts, ", ")
}

// Normalize trims text fields, fills blank level labels from DefaultLevels
// and validates the result. The receiver is left untouched.
func (h Habit) Normalize() (Habit, error) {
	h.Name = strings.TrimSpace(h.Name)
	h.Description = strings.TrimSpace(h.Description)

	if h.Name == "" {
		return Habit{}, ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(h.Name) > MaxNameLen {
		return Habit{}, ErrHabitNameTooLong
	}
	if utf8.RuneCountInString(h.Description) > MaxDescLen {
		return Habit{}, ErrHabitDescTooLong
	}

	for i, level := range h.Levels {
		level = strings.TrimSpace(level)
		if level == "" {
			level = DefaultLevels[i]
		}
		if !isLevelLabel(level) {
			return Habit{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
		}
		h.Levels[i] = level
		h.LevelDescriptions[i] = strings.TrimSpace(h.LevelDescriptions[i])
	}

	if h.WeeklyGoal < 0 || h.WeeklyGoal > h.MaxPoints() {
		return Habit{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidGoal, h.WeeklyGoal, h.MaxPoints())
	}

	return h, nil
}

func isLevelLabel(s string) bool {
	for _, l := range DefaultLevels {
		if l == s {
			return true
		}
	}
	return false
}

// DefaultHabits is the board a fresh session starts with.
func DefaultHabits() []Habit {
	seed := []struct {
		name, desc string
		levels     [LevelCount]string
	}{
		{"Exercise", "Daily exercise routine", [LevelCount]string{"15 min", "30 min", "1 hour", "No exercise"}},
		{"Read", "Read for 30 minutes", [LevelCount]string{"10 pages", "20 pages", "30 pages", "No reading"}},
		{"Meditate", "Meditate for 10 minutes", [LevelCount]string{"5 min", "10 min", "20 min", "No meditation"}},
	}

	habits := make([]Habit, 0, len(seed))
	for _, s := range seed {
		h := NewHabit(s.name)
		h.Description = s.desc
		h.LevelDescriptions = s.levels
		habits = append(habits, h)
	}
	return habits
}
