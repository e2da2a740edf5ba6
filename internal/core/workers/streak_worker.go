package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-weekly-grid/internal/core/domain"
)

const DefaultCheckInterval = time.Minute

type StreakChecker interface {
	TickStreakCheck(currentHour int) (domain.EngineState, error)
}

// StreakResetWorker periodically hands the local hour to the engine so it can
// reset streaks whose yesterday cell was left empty.
type StreakResetWorker struct {
	checker  StreakChecker
	interval time.Duration
	location *time.Location
	log      *zap.Logger
	now      func() time.Time
	done     chan struct{}
}

func NewStreakResetWorker(checker StreakChecker, interval time.Duration, location *time.Location, logger *zap.Logger) *StreakResetWorker {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StreakResetWorker{
		checker:  checker,
		interval: interval,
		location: location,
		log:      logger.Named("streak_worker"),
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

func (w *StreakResetWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.log.Info("streak reset worker started", zap.Duration("interval", w.interval))
		for {
			select {
			case <-ticker.C:
				w.RunOnce()
			case <-ctx.Done():
				w.log.Info("streak reset worker shutting down")
				return
			}
		}
	}()
}

// Done is closed once the worker loop has returned.
func (w *StreakResetWorker) Done() <-chan struct{} {
	return w.done
}

func (w *StreakResetWorker) RunOnce() {
	hour := w.now().In(w.location).Hour()

	state, err := w.checker.TickStreakCheck(hour)
	if err != nil {
		w.log.Error("streak check failed", zap.Int("hour", hour), zap.Error(err))
		return
	}

	w.log.Debug("streak check done",
		zap.Int("hour", hour),
		zap.Ints("streaks", state.Streaks),
	)
}
