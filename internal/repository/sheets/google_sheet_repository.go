package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
)

const summaryRange = "DailySummary!A:E"

// Mirror appends daily-close snapshots to an external spreadsheet the owners
// already work in. It is an audit trail only; MongoDB stays the system of
// record.
type Mirror interface {
	AppendDailySummary(ctx context.Context, summary models.DailySummary) error
}

// GoogleSheetMirror implements Mirror using the official Google Sheets API.
type GoogleSheetMirror struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetMirror builds a Google Sheets backed mirror instance.
func NewGoogleSheetMirror(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetMirror, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetMirror{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendDailySummary appends one close row: date, income, expense, net.
func (m *GoogleSheetMirror) AppendDailySummary(ctx context.Context, summary models.DailySummary) error {
	values := []interface{}{
		summary.Date.Format("2006-01-02"),
		summary.TotalIncome,
		summary.TotalExpense,
		summary.Net,
		summary.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := m.service.Spreadsheets.Values.Append(m.spreadsheetID, summaryRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append daily summary row: %w", err)
	}

	m.logger.Debug("daily summary mirrored to sheet", zap.Time("date", summary.Date))
	return nil
}
