// Package service holds the issue reporters handed to machines running the
// extended flavor.
package service

import (
	"context"
	"log/slog"

	"github.com/aretw0/vending/internal/logging"
)

// LogReporter implements ports.IssueReporter by writing a structured log
// record for every service request. It stands in for a real maintenance
// backend.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a reporter writing to logger.
// A nil logger discards the reports.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogReporter{logger: logger.With("component", "service")}
}

// ReportIssue logs the service request.
func (r *LogReporter) ReportIssue(ctx context.Context, serialID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Service requested", "serial_id", serialID)
	return nil
}
