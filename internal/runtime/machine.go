package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
)

// Machine holds the stock and coin state of a single vending machine and
// executes resolved actions against it.
// A Machine is not safe for concurrent use.
type Machine struct {
	serialID string
	catalog  domain.Catalog

	stockA  int
	stockB  int
	balance int

	display  ports.Display
	reporter ports.IssueReporter
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	now      func() time.Time
}

type handler func(m *Machine, ctx context.Context, code int)

// dispatchTable binds every action to the rule that executes it.
var dispatchTable = map[domain.Action]handler{
	domain.ActionSellItemA: func(m *Machine, ctx context.Context, code int) {
		m.sell(ctx, code, domain.SlotA)
	},
	domain.ActionSellItemB: func(m *Machine, ctx context.Context, code int) {
		m.sell(ctx, code, domain.SlotB)
	},
	domain.ActionReturnCoins: func(m *Machine, ctx context.Context, _ int) {
		m.ReturnCoins(ctx)
	},
	domain.ActionReportIssue: func(m *Machine, ctx context.Context, _ int) {
		m.reportIssue(ctx)
	},
	domain.ActionUnavailable: func(m *Machine, ctx context.Context, code int) {
		m.show(msgChoiceUnavailable(code))
		m.reject(ctx, code, domain.ActionUnavailable, domain.RejectUnavailableChoice)
	},
}

// NewMachine stocks a machine from the catalog with an empty coin balance.
func NewMachine(serialID string, catalog domain.Catalog, display ports.Display, opts ...MachineOption) (*Machine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if display == nil {
		return nil, fmt.Errorf("display is required")
	}

	m := &Machine{
		serialID: serialID,
		catalog:  catalog,
		stockA:   catalog.A.Stock,
		stockB:   catalog.B.Stock,
		display:  display,
		logger:   logging.NewNop(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With("serial_id", serialID)
	return m, nil
}

// InsertCoins adds amount to the coin balance. Zero is accepted and still
// reported on the display.
func (m *Machine) InsertCoins(ctx context.Context, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}

	m.balance += amount
	m.show(msgInserted(amount, m.balance))

	if m.hooks.OnCoinsInserted != nil {
		m.hooks.OnCoinsInserted(ctx, &domain.CoinEvent{
			EventBase: m.event(domain.EventCoinsInserted),
			Amount:    amount,
			Balance:   m.balance,
		})
	}
	return nil
}

// Choose executes the action bound to the selection code.
// Once both stocks are exhausted the code is ignored and the coins are
// returned.
func (m *Machine) Choose(ctx context.Context, code int) {
	if !m.stockAvailable() {
		m.logger.Debug("Sold out, returning coins", "code", code)
		m.show(msgSoldOut)
		m.reject(ctx, code, domain.Resolve(code), domain.RejectSoldOut)
		m.ReturnCoins(ctx)
		return
	}

	action := m.resolve(code)
	m.logger.Debug("Dispatch", "code", code, "action", action.String())
	dispatchTable[action](m, ctx, code)
}

// ReturnCoins reports the coin balance and resets it to zero.
func (m *Machine) ReturnCoins(ctx context.Context) {
	returned := m.balance
	m.show(msgReturned(returned))
	m.balance = 0

	if m.hooks.OnCoinsReturned != nil {
		m.hooks.OnCoinsReturned(ctx, &domain.CoinEvent{
			EventBase: m.event(domain.EventCoinsReturned),
			Amount:    returned,
			Balance:   m.balance,
		})
	}
}

// IsItemAAvailable reports whether slot A still has stock.
func (m *Machine) IsItemAAvailable() bool { return m.stockA > 0 }

// IsItemBAvailable reports whether slot B still has stock.
func (m *Machine) IsItemBAvailable() bool { return m.stockB > 0 }

// ItemAStock returns the items left in slot A.
func (m *Machine) ItemAStock() int { return m.stockA }

// ItemBStock returns the items left in slot B.
func (m *Machine) ItemBStock() int { return m.stockB }

// CoinBalance returns the coins inserted and not yet spent or returned.
func (m *Machine) CoinBalance() int { return m.balance }

// SerialID returns the identifier handed to the issue reporter.
func (m *Machine) SerialID() string { return m.serialID }

// Catalog returns the items the machine was stocked with.
func (m *Machine) Catalog() domain.Catalog { return m.catalog }

// Extended reports whether the report-issue selection is enabled.
func (m *Machine) Extended() bool { return m.reporter != nil }

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		SerialID:    m.serialID,
		ItemAStock:  m.stockA,
		ItemBStock:  m.stockB,
		CoinBalance: m.balance,
	}
}

func (m *Machine) resolve(code int) domain.Action {
	action := domain.Resolve(code)
	if action == domain.ActionReportIssue && m.reporter == nil {
		return domain.ActionUnavailable
	}
	return action
}

func (m *Machine) stockAvailable() bool {
	return m.IsItemAAvailable() || m.IsItemBAvailable()
}

func (m *Machine) stock(slot domain.Slot) *int {
	if slot == domain.SlotB {
		return &m.stockB
	}
	return &m.stockA
}

func (m *Machine) sell(ctx context.Context, code int, slot domain.Slot) {
	item := m.catalog.Item(slot)
	stock := m.stock(slot)
	action := domain.Resolve(code)

	if m.balance < item.Price {
		m.show(msgCantSell(item.Name, item.Price, m.balance))
		m.reject(ctx, code, action, domain.RejectInsufficientFunds)
		return
	}
	if *stock == 0 {
		m.show(msgItemUnavailable(item.Name))
		m.reject(ctx, code, action, domain.RejectOutOfStock)
		return
	}

	*stock--
	m.balance -= item.Price
	m.show(msgSold(item.Name, m.balance))

	if m.hooks.OnSale != nil {
		m.hooks.OnSale(ctx, &domain.SaleEvent{
			EventBase: m.event(domain.EventSale),
			Slot:      slot,
			Item:      item.Name,
			Price:     item.Price,
			Stock:     *stock,
			Balance:   m.balance,
		})
	}
}

func (m *Machine) reportIssue(ctx context.Context) {
	err := m.reporter.ReportIssue(ctx, m.serialID)
	if err != nil {
		m.logger.Warn("Issue report failed", "err", err)
	} else {
		m.logger.Info("Issue reported")
	}

	if m.hooks.OnIssueReported != nil {
		m.hooks.OnIssueReported(ctx, &domain.IssueEvent{
			EventBase: m.event(domain.EventIssueReported),
			Err:       err,
		})
	}
}

func (m *Machine) reject(ctx context.Context, code int, action domain.Action, reason domain.RejectReason) {
	if m.hooks.OnRejected != nil {
		m.hooks.OnRejected(ctx, &domain.RejectEvent{
			EventBase: m.event(domain.EventRejected),
			Code:      code,
			Action:    action,
			Reason:    reason,
		})
	}
}

func (m *Machine) show(message string) {
	m.display.Display(message)
}

func (m *Machine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: m.now(),
		Type:      t,
		SerialID:  m.serialID,
	}
}
