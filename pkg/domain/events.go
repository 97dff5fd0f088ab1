package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCoinsInserted EventType = "coins_inserted"
	EventCoinsReturned EventType = "coins_returned"
	EventSale          EventType = "sale"
	EventRejected      EventType = "rejected"
	EventIssueReported EventType = "issue_reported"
)

// RejectReason explains why a selection did not result in a sale.
type RejectReason string

const (
	RejectInsufficientFunds RejectReason = "insufficient_funds"
	RejectOutOfStock        RejectReason = "out_of_stock"
	RejectUnavailableChoice RejectReason = "unavailable_choice"
	RejectSoldOut           RejectReason = "sold_out"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SerialID  string    `json:"serial_id"`
}

// CoinEvent represents coins entering or leaving the machine.
type CoinEvent struct {
	EventBase
	Amount  int `json:"amount"`
	Balance int `json:"balance"`
}

// SaleEvent represents a successful sale.
type SaleEvent struct {
	EventBase
	Slot    Slot   `json:"slot"`
	Item    string `json:"item"`
	Price   int    `json:"price"`
	Stock   int    `json:"stock"` // remaining after the sale
	Balance int    `json:"balance"`
}

// RejectEvent represents a selection that was refused.
type RejectEvent struct {
	EventBase
	Code   int          `json:"code"`
	Action Action       `json:"action"`
	Reason RejectReason `json:"reason"`
}

// IssueEvent represents a call to the service collaborator.
type IssueEvent struct {
	EventBase
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for machine observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnCoinsInserted func(context.Context, *CoinEvent)
	OnCoinsReturned func(context.Context, *CoinEvent)
	OnSale          func(context.Context, *SaleEvent)
	OnRejected      func(context.Context, *RejectEvent)
	OnIssueReported func(context.Context, *IssueEvent)
}

// Merge returns hooks that invoke h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnCoinsInserted: chain(h.OnCoinsInserted, other.OnCoinsInserted),
		OnCoinsReturned: chain(h.OnCoinsReturned, other.OnCoinsReturned),
		OnSale:          chain(h.OnSale, other.OnSale),
		OnRejected:      chain(h.OnRejected, other.OnRejected),
		OnIssueReported: chain(h.OnIssueReported, other.OnIssueReported),
	}
}

func chain[E any](first, second func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		second(ctx, e)
	}
}
