package services

import (
	"fmt"
	"slices"
	"sync"

	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"
)

const DefaultStreakResetHour = 4

// HabitEngine owns the habit list, the week grid and every aggregate derived
// from them. All operations are serialised; each either applies completely or
// leaves the board untouched.
type HabitEngine struct {
	mu sync.Mutex

	window    domain.DayWindow
	resetHour int

	habits []domain.Habit
	grid   []domain.WeekRow

	dailyTotals       [domain.DaysInWindow]int
	weeklyTotals      []int
	weeklyPointTotal  int
	overallWeeklyGoal int
	streaks           []int
	bestStreaks       []int
}

func NewHabitEngine(habits []domain.Habit, window domain.DayWindow, resetHour int) (*HabitEngine, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if resetHour < 0 || resetHour > 23 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidResetHour, resetHour)
	}

	e := &HabitEngine{
		window:    window,
		resetHour: resetHour,
		habits:    make([]domain.Habit, 0, len(habits)),
		grid:      make([]domain.WeekRow, 0, len(habits)),
	}

	for i, def := range habits {
		h, err := def.Normalize()
		if err != nil {
			return nil, fmt.Errorf("habit %d: %w", i, err)
		}
		e.habits = append(e.habits, h)
		e.grid = append(e.grid, window.InitialRow(h))
	}

	e.weeklyTotals = make([]int, len(e.habits))
	e.streaks = make([]int, len(e.habits))
	e.bestStreaks = make([]int, len(e.habits))
	e.overallWeeklyGoal = domain.OverallWeeklyGoal(e.habits)
	e.recomputeAll()

	return e, nil
}

func (e *HabitEngine) Snapshot() domain.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot()
}

func (e *HabitEngine) Habit(index int) (domain.Habit, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := domain.CheckHabitIndex(index, len(e.habits)); err != nil {
		return domain.Habit{}, err
	}
	return e.habits[index], nil
}

func (e *HabitEngine) ResetHour() int {
	return e.resetHour
}

// CycleCell advances one cell along none -> low -> mid -> high -> skip -> none.
// Cells on inactive days stay cyclable.
func (e *HabitEngine) CycleCell(habitIndex, dayIndex int) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := domain.CheckHabitIndex(habitIndex, len(e.habits)); err != nil {
		return domain.EngineState{}, err
	}
	if err := domain.CheckDayIndex(dayIndex); err != nil {
		return domain.EngineState{}, err
	}

	prev := e.grid[habitIndex][dayIndex]
	next := prev.Next()
	delta := next.Points() - prev.Points()

	e.grid[habitIndex][dayIndex] = next
	e.dailyTotals[dayIndex] += delta
	e.weeklyTotals[habitIndex] += delta
	e.weeklyPointTotal = sumDays(e.dailyTotals)
	e.recomputeStreaks(habitIndex)

	return e.snapshot(), nil
}

func (e *HabitEngine) AddHabit(def domain.Habit) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h, err := def.Normalize()
	if err != nil {
		return domain.EngineState{}, err
	}

	e.habits = append(e.habits, h)
	e.grid = append(e.grid, e.window.InitialRow(h))
	e.weeklyTotals = append(e.weeklyTotals, 0)
	e.streaks = append(e.streaks, 0)
	e.bestStreaks = append(e.bestStreaks, 0)
	e.overallWeeklyGoal = domain.OverallWeeklyGoal(e.habits)
	e.recomputeAll()

	return e.snapshot(), nil
}

// RemoveHabit drops the habit at index; every later habit shifts down by one.
func (e *HabitEngine) RemoveHabit(index int) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := domain.CheckHabitIndex(index, len(e.habits)); err != nil {
		return domain.EngineState{}, err
	}

	e.habits = slices.Delete(e.habits, index, index+1)
	e.grid = slices.Delete(e.grid, index, index+1)
	e.weeklyTotals = slices.Delete(e.weeklyTotals, index, index+1)
	e.streaks = slices.Delete(e.streaks, index, index+1)
	e.bestStreaks = slices.Delete(e.bestStreaks, index, index+1)
	e.overallWeeklyGoal = domain.OverallWeeklyGoal(e.habits)
	e.recomputeAll()

	return e.snapshot(), nil
}

// EditHabit replaces the static fields of a habit. Recorded cells and
// streaks are kept as they are, even when the active days change.
func (e *HabitEngine) EditHabit(index int, def domain.Habit) (domain.EngineState, error) {
	return e.UpdateHabit(index, func(domain.Habit) domain.Habit { return def })
}

// UpdateHabit is EditHabit for partial changes: merge receives the current
// definition and returns the new one while the board stays locked.
func (e *HabitEngine) UpdateHabit(index int, merge func(domain.Habit) domain.Habit) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := domain.CheckHabitIndex(index, len(e.habits)); err != nil {
		return domain.EngineState{}, err
	}

	h, err := merge(e.habits[index]).Normalize()
	if err != nil {
		return domain.EngineState{}, err
	}

	e.habits[index] = h
	e.overallWeeklyGoal = domain.OverallWeeklyGoal(e.habits)

	return e.snapshot(), nil
}

// TickStreakCheck zeroes the current streak of every habit whose yesterday
// cell is still empty. It only acts at the configured reset hour and never
// touches the grid or best streaks.
func (e *HabitEngine) TickStreakCheck(currentHour int) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if currentHour < 0 || currentHour > 23 {
		return domain.EngineState{}, fmt.Errorf("%w: %d", domain.ErrInvalidResetHour, currentHour)
	}

	if currentHour == e.resetHour {
		for h, row := range e.grid {
			if row[domain.YesterdayColumn] == domain.CellNone {
				e.streaks[h] = 0
			}
		}
	}

	return e.snapshot(), nil
}

// ResetWeek starts a fresh board for window, keeping the habit definitions.
func (e *HabitEngine) ResetWeek(window domain.DayWindow) (domain.EngineState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := window.Validate(); err != nil {
		return domain.EngineState{}, err
	}

	e.window = window
	for h, habit := range e.habits {
		e.grid[h] = window.InitialRow(habit)
	}
	e.recomputeAll()

	return e.snapshot(), nil
}

func (e *HabitEngine) snapshot() domain.EngineState {
	n := len(e.habits)
	state := domain.EngineState{
		Habits:            slices.Clone(e.habits),
		Grid:              slices.Clone(e.grid),
		DailyTotals:       e.dailyTotals,
		WeeklyTotals:      slices.Clone(e.weeklyTotals),
		WeeklyPointTotal:  e.weeklyPointTotal,
		OverallWeeklyGoal: e.overallWeeklyGoal,
		Streaks:           slices.Clone(e.streaks),
		BestStreaks:       slices.Clone(e.bestStreaks),
		DayLabels:         e.window.Labels,
		DayDates:          e.window.Dates,
		MaxPoints:         make([]int, n),
		GoalsReached:      make([]bool, n),
		OverallMaxPoints:  n * domain.DaysInWindow * domain.MaxCellPoints,
	}

	// slices.Clone returns nil for empty input; keep JSON arrays non-null.
	if n == 0 {
		state.Habits = []domain.Habit{}
		state.Grid = []domain.WeekRow{}
		state.WeeklyTotals = []int{}
		state.Streaks = []int{}
		state.BestStreaks = []int{}
	}

	for i, h := range e.habits {
		state.MaxPoints[i] = h.MaxPoints()
		state.GoalsReached[i] = h.GoalReached(e.weeklyTotals[i])
	}
	state.OverallGoalReached = e.weeklyPointTotal >= e.overallWeeklyGoal

	return state
}
