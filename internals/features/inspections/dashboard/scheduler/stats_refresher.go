package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/features/inspections/dashboard/service"
)

type Refresher interface {
	Refresh(ctx context.Context) (service.Stats, error)
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct{ s *zap.SugaredLogger }

func (l cronLogger) Info(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l cronLogger) Error(err error, msg string, kv ...interface{}) {
	l.s.Errorw(msg, append(kv, "error", err)...)
}

// StartStatsRefresher recomputes the dashboard stats on schedule. Runs that
// overlap a slow previous run are skipped. Stop the returned cron on
// shutdown.
func StartStatsRefresher(schedule string, r Refresher, log *zap.Logger) (*cron.Cron, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("stats-refresher")
	cl := cronLogger{s: log.Sugar()}

	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		st, err := r.Refresh(ctx)
		if err != nil {
			log.Warn("refresh failed", zap.Error(err))
			return
		}
		log.Debug("refreshed", zap.Int64("total", st.Total), zap.Int64("last_7_days", st.Last7Days))
	})
	if err != nil {
		return nil, fmt.Errorf("stats refresher schedule %q: %w", schedule, err)
	}
	log.Info("started", zap.String("schedule", schedule))
	c.Start()
	return c, nil
}
