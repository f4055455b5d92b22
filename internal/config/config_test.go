package config_test

import (
	"testing"

	"github.com/sudhakarm/stonemine/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Ledger.WageProration != config.ProrationMonthly {
		t.Errorf("proration = %q, want default %q", cfg.Ledger.WageProration, config.ProrationMonthly)
	}
	if cfg.Ledger.IncludeDieselInProfit {
		t.Error("diesel must be excluded from profit by default")
	}
	if cfg.Close.CronSchedule == "" {
		t.Error("daily close cron must default")
	}
}

func TestLoadPolicyKnobs(t *testing.T) {
	t.Setenv("WAGE_PRORATION_POLICY", "DailyOnly")
	t.Setenv("TRIP_PROFIT_INCLUDE_DIESEL", "true")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ledger.WageProration != config.ProrationDailyOnly {
		t.Errorf("proration = %q, want DailyOnly", cfg.Ledger.WageProration)
	}
	if !cfg.Ledger.IncludeDieselInProfit {
		t.Error("diesel policy not picked up")
	}
}

func TestLoadRejectsUnknownProrationPolicy(t *testing.T) {
	t.Setenv("WAGE_PRORATION_POLICY", "HalfAndHalf")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error for unknown proration policy")
	}
}

func TestLoadRejectsHalfSheetsConfig(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_MIRROR_ID", "sheet-id-only")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error when sheets credentials are missing")
	}
}
