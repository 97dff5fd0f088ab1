package vending

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/internal/runtime"
	"github.com/aretw0/vending/pkg/adapters/console"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/google/uuid"
)

// Machine is the high-level entry point for the vending library.
// It wraps the internal runtime and provides a simplified API for consumers.
// A Machine is owned by a single caller and is not safe for concurrent use.
type Machine struct {
	runtime  *runtime.Machine
	display  ports.Display
	reporter ports.IssueReporter
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	catalog  domain.Catalog
	serialID string
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithDisplay sets the sink receiving status messages (default: stdout).
func WithDisplay(d ports.Display) Option {
	return func(m *Machine) {
		m.display = d
	}
}

// WithIssueReporter enables the extended flavor: selection 100 forwards the
// machine serial id to the reporter.
func WithIssueReporter(r ports.IssueReporter) Option {
	return func(m *Machine) {
		m.reporter = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithCatalog overrides the default stocking.
func WithCatalog(c domain.Catalog) Option {
	return func(m *Machine) {
		m.catalog = c
	}
}

// WithSerialID sets the identifier reported to the service.
// A random "VM-" prefixed id is generated when unset.
func WithSerialID(id string) Option {
	return func(m *Machine) {
		m.serialID = id
	}
}

// New builds a machine stocked with the default catalog unless configured otherwise.
func New(opts ...Option) (*Machine, error) {
	m := &Machine{
		catalog: domain.DefaultCatalog(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.display == nil {
		m.display = console.New(nil)
	}
	if m.serialID == "" {
		m.serialID = NewSerialID()
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}

	runtimeOpts := []runtime.MachineOption{
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
	}
	if m.reporter != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithIssueReporter(m.reporter))
	}

	rt, err := runtime.NewMachine(m.serialID, m.catalog, m.display, runtimeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to stock machine: %w", err)
	}
	m.runtime = rt

	return m, nil
}

// NewSerialID generates a random machine serial id.
func NewSerialID() string {
	return "VM-" + uuid.NewString()
}

// InsertCoins adds amount coins to the balance. amount must not be negative.
func (m *Machine) InsertCoins(ctx context.Context, amount int) error {
	return m.runtime.InsertCoins(ctx, amount)
}

// Choose executes the action bound to the selection code.
func (m *Machine) Choose(ctx context.Context, code int) {
	m.runtime.Choose(ctx, code)
}

// ReturnCoins reports the balance and resets it to zero.
func (m *Machine) ReturnCoins(ctx context.Context) {
	m.runtime.ReturnCoins(ctx)
}

// IsItemAAvailable reports whether slot A still has stock.
func (m *Machine) IsItemAAvailable() bool { return m.runtime.IsItemAAvailable() }

// IsItemBAvailable reports whether slot B still has stock.
func (m *Machine) IsItemBAvailable() bool { return m.runtime.IsItemBAvailable() }

// ItemAStock returns the items left in slot A.
func (m *Machine) ItemAStock() int { return m.runtime.ItemAStock() }

// ItemBStock returns the items left in slot B.
func (m *Machine) ItemBStock() int { return m.runtime.ItemBStock() }

// CoinBalance returns the coins inserted and not yet spent or returned.
func (m *Machine) CoinBalance() int { return m.runtime.CoinBalance() }

// Snapshot returns a copy of the current stocks and balance.
func (m *Machine) Snapshot() domain.Snapshot { return m.runtime.Snapshot() }

// SerialID returns the machine serial id.
func (m *Machine) SerialID() string { return m.serialID }

// Catalog returns the items the machine was stocked with.
func (m *Machine) Catalog() domain.Catalog { return m.catalog }

// Extended reports whether the report-issue selection is enabled.
func (m *Machine) Extended() bool { return m.runtime.Extended() }
