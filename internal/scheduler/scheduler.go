package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/repository/sheets"
	"github.com/sudhakarm/stonemine/internal/service/reports"
	"github.com/sudhakarm/stonemine/pkg/clients/notify"
)

// SummaryStore persists the nightly-close snapshot.
type SummaryStore interface {
	SaveDailySummary(ctx context.Context, summary models.DailySummary) error
}

// Scheduler runs the nightly close: day book for the closing date, snapshot
// upsert, spreadsheet mirror and webhook notification. The snapshot upsert is
// idempotent per date, so a failed night is simply retried by the next run.
type Scheduler struct {
	cron       *cron.Cron
	reportsSvc *reports.Service
	store      SummaryStore
	mirror     sheets.Mirror
	notifier   notify.Client
	cfg        config.CloseConfig
	location   *time.Location
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance. mirror and notifier may be
// nil when the corresponding integrations are not configured.
func NewScheduler(cfg config.CloseConfig, reportsSvc *reports.Service, store SummaryStore, mirror sheets.Mirror, notifier notify.Client, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(location)),
		reportsSvc: reportsSvc,
		store:      store,
		mirror:     mirror,
		notifier:   notifier,
		cfg:        cfg,
		location:   location,
		logger:     logger,
	}, nil
}

// Start schedules the nightly close and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("cron", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDailyClose); err != nil {
		return fmt.Errorf("failed to schedule daily close: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyClose() {
	s.closeDay(time.Now())
}

// closeDay runs the close for the calendar date that now falls on in the
// scheduler's timezone. The cron fires on local wall-clock time, so the
// closing date has to be read off the same clock.
func (s *Scheduler) closeDay(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	day := now.In(s.location)
	s.logger.Info("running daily close", zap.String("date", day.Format("2006-01-02")))

	book, err := s.reportsSvc.DayBook(ctx, day)
	if err != nil {
		s.logger.Error("daily close failed building day book", zap.Error(err))
		return
	}

	income, _ := book.TotalIncome.Float64()
	expense, _ := book.TotalExpense.Float64()
	net, _ := book.Net.Float64()

	summary := models.DailySummary{
		Date:         book.Date,
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          net,
	}

	if err := s.store.SaveDailySummary(ctx, summary); err != nil {
		s.logger.Error("daily close failed saving snapshot", zap.Error(err))
		return
	}

	if s.mirror != nil {
		if err := s.mirror.AppendDailySummary(ctx, summary); err != nil {
			s.logger.Error("daily close failed mirroring to sheet", zap.Error(err))
		}
	}

	if s.notifier != nil {
		payload := notify.DailySummaryPayload{
			Date:         book.Date.Format("2006-01-02"),
			TotalIncome:  income,
			TotalExpense: expense,
			Net:          net,
			Message: fmt.Sprintf("Day book %s: income %.2f, expense %.2f, net %.2f",
				book.Date.Format("2006-01-02"), income, expense, net),
		}
		if err := s.notifier.SendDailySummary(ctx, payload); err != nil {
			s.logger.Error("daily close failed notifying webhook", zap.Error(err))
		} else {
			s.logger.Info("daily close notification sent")
		}
	}
}
