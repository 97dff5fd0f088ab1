package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
)

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithLogger sets the structured logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) MachineOption {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithIssueReporter enables the report-issue selection.
// Without a reporter the machine runs the basic flavor and the report-issue
// code is treated like any other unknown code.
func WithIssueReporter(reporter ports.IssueReporter) MachineOption {
	return func(m *Machine) {
		m.reporter = reporter
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}
