package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ExpiryStore is the slice of the store the sweeper needs.
type ExpiryStore interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically bulk-expires PENDING bookings past their expiry, so a
// vehicle's calendar is not blocked by a request nobody happens to read.
// Lazy expiry on the read paths covers the rest.
type Sweeper struct {
	store     ExpiryStore
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time
	scheduler gocron.Scheduler
}

func NewSweeper(store ExpiryStore, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger.With("component", "sweeper"),
		now:      time.Now,
	}
}

// Start schedules the recurring sweep. Overlapping runs are not stacked: a
// sweep still in flight causes the next tick to be rescheduled.
func (s *Sweeper) Start() error {
	scheduler, err := gocron.NewScheduler()

	if err != nil {
		return fmt.Errorf("failed to create sweep scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.Sweep),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	s.scheduler = scheduler
	scheduler.Start()
	s.logger.Info("expiry sweeper started", "interval", s.interval)

	return nil
}

// Stop shuts the scheduler down, waiting for an in-flight sweep to finish.
func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}

	return s.scheduler.Shutdown()
}

// Sweep runs a single expiry pass. Running it again with no new arrivals is
// a no-op.
func (s *Sweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	expired, err := s.store.ExpireStale(ctx, s.now())

	if err != nil {
		s.logger.Error("expiry sweep failed", "err", err)
		return
	}

	if expired > 0 {
		s.logger.Info("expired stale bookings", "count", expired)
	}
}
