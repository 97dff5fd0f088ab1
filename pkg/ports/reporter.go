package ports

import "context"

// IssueReporter forwards a service request on behalf of a machine.
// The machine treats the call as best-effort: the returned error is logged
// and otherwise ignored.
type IssueReporter interface {
	ReportIssue(ctx context.Context, serialID string) error
}
