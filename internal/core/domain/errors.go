package domain

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidResetHour = errors.New("invalid streak reset hour (must be 0-23)")
)

func CheckHabitIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: habit %d (have %d)", ErrIndexOutOfRange, index, count)
	}
	return nil
}

func CheckDayIndex(day int) error {
	if day < 0 || day >= DaysInWindow {
		return fmt.Errorf("%w: day %d (want 0-%d)", ErrIndexOutOfRange, day, TodayColumn)
	}
	return nil
}
