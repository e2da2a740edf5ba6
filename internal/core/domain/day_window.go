package domain

import (
	"fmt"
	"time"
)

const (
	DaysInWindow = 7
	TodayColumn  = DaysInWindow - 1
	// YesterdayColumn is the grid column holding the day before today.
	YesterdayColumn = DaysInWindow - 2

	dayDateFormat = "01/02"
)

var WeekdayNames = [DaysInWindow]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekRow holds one habit's cells, oldest day first and today last.
type WeekRow [DaysInWindow]CellState

// DayWindow is the rotated seven-day sequence ending at today.
type DayWindow struct {
	Labels       [DaysInWindow]string `json:"labels"`
	Dates        [DaysInWindow]string `json:"dates"`
	TodayWeekday int                  `json:"today_weekday"`
}

// WeekdayIndex maps t to a Monday-first index (Monday=0, Sunday=6).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func NewDayWindow(now time.Time) DayWindow {
	w := DayWindow{TodayWeekday: WeekdayIndex(now)}

	for col := 0; col < DaysInWindow; col++ {
		w.Labels[col] = WeekdayNames[w.Weekday(col)]
		offset := TodayColumn - col
		w.Dates[col] = now.AddDate(0, 0, -offset).Format(dayDateFormat)
	}

	return w
}

// Weekday returns the Monday-first weekday index shown in the given column.
func (w DayWindow) Weekday(column int) int {
	return (w.TodayWeekday + 1 + column) % DaysInWindow
}

// InitialRow builds the starting row for h: inactive weekdays are skipped,
// everything else starts empty. ActiveDays is indexed by weekday (Monday = 0),
// not by column, so column c reads h.ActiveDays[w.Weekday(c)].
func (w DayWindow) InitialRow(h Habit) WeekRow {
	var row WeekRow
	for col := range row {
		if h.ActiveDays[w.Weekday(col)] {
			row[col] = CellNone
		} else {
			row[col] = CellSkip
		}
	}
	return row
}

func (w DayWindow) Validate() error {
	if w.TodayWeekday < 0 || w.TodayWeekday >= DaysInWindow {
		return fmt.Errorf("%w: today weekday %d", ErrIndexOutOfRange, w.TodayWeekday)
	}
	return nil
}

func (w DayWindow) Start() string {
	return w.Dates[0]
}

func (w DayWindow) End() string {
	return w.Dates[TodayColumn]
}
