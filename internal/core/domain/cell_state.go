package domain

import (
	"fmt"
	"strings"
)

// CellState is the completion level recorded for one habit on one day.
type CellState string

const (
	CellNone CellState = "none"
	CellLow  CellState = "low"
	CellMid  CellState = "mid"
	CellHigh CellState = "high"
	CellSkip CellState = "skip"
)

// MaxCellPoints is the point value of the highest level.
const MaxCellPoints = 3

var cellCycle = []CellState{CellNone, CellLow, CellMid, CellHigh, CellSkip}

func (s CellState) IsValid() bool {
	switch s {
	case CellNone, CellLow, CellMid, CellHigh, CellSkip:
		return true
	default:
		return false
	}
}

func ParseCellState(input string) (CellState, error) {
	s := CellState(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", fmt.Errorf("invalid cell state: %q", input)
	}
	return s, nil
}

func (s CellState) Points() int {
	switch s {
	case CellLow:
		return 1
	case CellMid:
		return 2
	case CellHigh:
		return 3
	default:
		return 0
	}
}

// Next returns the following state in the fixed cycle
// none -> low -> mid -> high -> skip -> none.
func (s CellState) Next() CellState {
	for i, c := range cellCycle {
		if c == s {
			return cellCycle[(i+1)%len(cellCycle)]
		}
	}
	return CellNone
}

// Completed reports whether the cell holds a scored level.
func (s CellState) Completed() bool {
	return s == CellLow || s == CellMid || s == CellHigh
}

func (s CellState) Label() string {
	switch s {
	case CellLow:
		return LevelEasy
	case CellMid:
		return LevelMedium
	case CellHigh:
		return LevelHard
	case CellSkip:
		return LevelSkip
	default:
		return ""
	}
}

func (s CellState) PointsText() string {
	if s == CellNone {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.Points(), MaxCellPoints)
}
