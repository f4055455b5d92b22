package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/reports"
)

type emptyRecordStore struct{}

func (emptyRecordStore) ListIncomeForRange(ctx context.Context, start, end time.Time) ([]models.Income, error) {
	return nil, nil
}

func (emptyRecordStore) ListExpensesForRange(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	return nil, nil
}

func (emptyRecordStore) ListPaymentsForRange(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	return nil, nil
}

func (emptyRecordStore) ListAdvancesForRange(ctx context.Context, start, end time.Time) ([]models.Advance, error) {
	return nil, nil
}

func (emptyRecordStore) ListSalesForRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	return nil, nil
}

type capturingSummaryStore struct {
	saved []models.DailySummary
}

func (s *capturingSummaryStore) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	s.saved = append(s.saved, summary)
	return nil
}

func TestCloseDayUsesSchedulerTimezone(t *testing.T) {
	store := &capturingSummaryStore{}
	svc := reports.NewService(emptyRecordStore{}, nil)

	sched, err := NewScheduler(config.CloseConfig{
		CronSchedule: "0 21 * * *",
		Timezone:     "Asia/Kolkata",
	}, svc, store, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}

	// 20:00 UTC on Feb 28 is already 01:30 on Mar 1 in Kolkata, so the
	// close must book against Mar 1.
	sched.closeDay(time.Date(2026, time.February, 28, 20, 0, 0, 0, time.UTC))

	if len(store.saved) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(store.saved))
	}
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !store.saved[0].Date.Equal(want) {
		t.Errorf("snapshot date = %s, want %s", store.saved[0].Date, want)
	}
}

func TestNewSchedulerRejectsUnknownTimezone(t *testing.T) {
	_, err := NewScheduler(config.CloseConfig{
		CronSchedule: "0 21 * * *",
		Timezone:     "Mars/Olympus",
	}, nil, nil, nil, nil, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
}
