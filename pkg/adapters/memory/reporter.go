package memory

import (
	"context"
	"sync"
)

// IssueLog implements ports.IssueReporter by recording the reported serial ids.
// An optional error is returned from every call, to exercise failure paths.
type IssueLog struct {
	reports []string
	err     error
	mu      sync.RWMutex
}

// NewIssueLog creates an empty issue log.
func NewIssueLog() *IssueLog {
	return &IssueLog{}
}

// FailWith makes subsequent reports return err (after being recorded).
func (l *IssueLog) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// ReportIssue records the serial id.
func (l *IssueLog) ReportIssue(ctx context.Context, serialID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.reports = append(l.reports, serialID)
	return l.err
}

// Reports returns a copy of the reported serial ids.
func (l *IssueLog) Reports() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ret := make([]string, len(l.reports))
	copy(ret, l.reports)
	return ret
}
