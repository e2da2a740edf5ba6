package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-weekly-grid/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"
	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/services"
)

type BoardHandler struct {
	engine *services.HabitEngine
	now    func() time.Time
}

func NewBoardHandler(engine *services.HabitEngine, now func() time.Time) *BoardHandler {
	if now == nil {
		now = time.Now
	}
	return &BoardHandler{
		engine: engine,
		now:    now,
	}
}

type habitRequest struct {
	Name              *string  `json:"name" binding:"omitempty,max=100"`
	Description       *string  `json:"description" binding:"omitempty,max=500"`
	Levels            []string `json:"levels" binding:"omitempty,len=4"`
	LevelDescriptions []string `json:"level_descriptions" binding:"omitempty,len=4"`
	ActiveDays        []bool   `json:"active_days" binding:"omitempty,len=7"`
	WeeklyGoal        *int     `json:"weekly_goal"`
}

// applyTo overlays the fields present in the request on base.
func (r habitRequest) applyTo(base domain.Habit) domain.Habit {
	if r.Name != nil {
		base.Name = *r.Name
	}
	if r.Description != nil {
		base.Description = *r.Description
	}
	if r.Levels != nil {
		copy(base.Levels[:], r.Levels)
	}
	if r.LevelDescriptions != nil {
		copy(base.LevelDescriptions[:], r.LevelDescriptions)
	}
	if r.ActiveDays != nil {
		copy(base.ActiveDays[:], r.ActiveDays)
	}
	if r.WeeklyGoal != nil {
		base.WeeklyGoal = *r.WeeklyGoal
	}
	return base
}

type legendEntry struct {
	State      domain.CellState `json:"state"`
	Label      string           `json:"label"`
	Points     int              `json:"points"`
	PointsText string           `json:"points_text"`
}

func (h *BoardHandler) RegisterRoutes(router *gin.RouterGroup) {
	board := router.Group("/board")
	{
		board.GET("", h.Get)
		board.GET("/legend", h.Legend)
		board.POST("/reset", h.Reset)
		board.POST("/cells/:habit/:day/cycle", h.CycleCell)
		board.GET("/habits/:habit", h.GetHabit)
		board.POST("/habits", h.AddHabit)
		board.PUT("/habits/:habit", h.EditHabit)
		board.DELETE("/habits/:habit", h.RemoveHabit)
	}
}

func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Snapshot())
}

func (h *BoardHandler) Legend(c *gin.Context) {
	states := []domain.CellState{domain.CellNone, domain.CellLow, domain.CellMid, domain.CellHigh, domain.CellSkip}
	legend := make([]legendEntry, 0, len(states))
	for _, s := range states {
		legend = append(legend, legendEntry{
			State:      s,
			Label:      s.Label(),
			Points:     s.Points(),
			PointsText: s.PointsText(),
		})
	}
	c.JSON(http.StatusOK, legend)
}

func (h *BoardHandler) Reset(c *gin.Context) {
	state, err := h.engine.ResetWeek(domain.NewDayWindow(h.now()))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.Logger(c).Info("week reset", zap.String("today", state.DayDates[domain.TodayColumn]))
	c.JSON(http.StatusOK, state)
}

func (h *BoardHandler) CycleCell(c *gin.Context) {
	habitIndex, ok := intParam(c, "habit")
	if !ok {
		return
	}
	dayIndex, ok := intParam(c, "day")
	if !ok {
		return
	}

	state, err := h.engine.CycleCell(habitIndex, dayIndex)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *BoardHandler) GetHabit(c *gin.Context) {
	index, ok := intParam(c, "habit")
	if !ok {
		return
	}

	habit, err := h.engine.Habit(index)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"index":   index,
		"habit":   habit,
		"tooltip": habit.LevelTooltip(),
	})
}

func (h *BoardHandler) AddHabit(c *gin.Context) {
	// An empty body adds a default habit.
	var req habitRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	state, err := h.engine.AddHabit(req.applyTo(domain.NewHabit(domain.DefaultHabitName)))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.Logger(c).Info("habit added", zap.Int("habits", len(state.Habits)))
	c.JSON(http.StatusCreated, state)
}

func (h *BoardHandler) EditHabit(c *gin.Context) {
	index, ok := intParam(c, "habit")
	if !ok {
		return
	}

	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.engine.UpdateHabit(index, req.applyTo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *BoardHandler) RemoveHabit(c *gin.Context) {
	index, ok := intParam(c, "habit")
	if !ok {
		return
	}

	state, err := h.engine.RemoveHabit(index)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.Logger(c).Info("habit removed", zap.Int("index", index))
	c.JSON(http.StatusOK, state)
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " index"})
		return 0, false
	}
	return v, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrHabitNameEmpty),
		errors.Is(err, domain.ErrHabitNameTooLong),
		errors.Is(err, domain.ErrHabitDescTooLong),
		errors.Is(err, domain.ErrInvalidLevel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		middleware.Logger(c).Error("board operation failed", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
