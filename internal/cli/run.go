package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/internal/presentation/graph"
	"github.com/aretw0/vending/internal/presentation/tui"
	"github.com/aretw0/vending/pkg/adapters/console"
	"github.com/aretw0/vending/pkg/adapters/service"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"
)

// RunOptions carries the command line flags shared by the subcommands.
type RunOptions struct {
	ConfigPath     string
	ConfigRequired bool // true when the path was given explicitly
	Debug          bool
	Extended       bool
	Input          io.Reader
	Output         io.Writer
}

func (o RunOptions) streams() (io.Reader, io.Writer) {
	in, out := o.Input, o.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// env bundles a configured machine with its collaborators.
type env struct {
	cfg      config.Config
	machine  *vending.Machine
	registry *prometheus.Registry
	logger   *slog.Logger
}

func setup(opts RunOptions, out io.Writer) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return nil, err
	}
	if opts.Extended {
		cfg.Extended = true
	}

	logger, err := cfg.Logger(opts.Debug)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	metrics.SetStock(cfg.Items)

	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	machineOpts := []vending.Option{
		vending.WithDisplay(console.New(out, console.WithColor(cfg.Color))),
		vending.WithCatalog(cfg.Items),
		vending.WithSerialID(cfg.Serial),
		vending.WithLogger(logger),
		vending.WithLifecycleHooks(hooks),
	}
	if cfg.Extended {
		machineOpts = append(machineOpts, vending.WithIssueReporter(service.NewLogReporter(logger)))
	}

	m, err := vending.New(machineOpts...)
	if err != nil {
		return nil, err
	}

	logger.Debug("Machine stocked", "serial_id", cfg.Serial, "extended", cfg.Extended)
	return &env{cfg: cfg, machine: m, registry: registry, logger: logger}, nil
}

// RunSession runs an interactive session until quit, end of input, or a signal.
func RunSession(ctx context.Context, opts RunOptions) error {
	in, out := opts.streams()

	e, err := setup(opts, out)
	if err != nil {
		return fmt.Errorf("error initializing machine: %w", err)
	}

	sessionOpts := []SessionOption{
		WithGatherer(e.registry),
		WithSessionLogger(e.logger),
	}
	if isTerminal(in) {
		tui.PrintBanner(out, strings.TrimSpace(vending.Version), e.machine.SerialID())
		fmt.Fprintln(out, "Type 'help' for the list of commands.")
		sessionOpts = append(sessionOpts, WithPrompt(true), WithRenderer(tui.NewRenderer()))
	}

	err = NewSession(e.machine, in, out, sessionOpts...).Run(ctx)
	if err != nil && ctx.Err() != nil {
		e.logger.Info("Session interrupted", "signal", interruptSignal(ctx))
		// Hand the coins back before leaving.
		e.machine.ReturnCoins(context.WithoutCancel(ctx))
		return nil
	}
	return err
}

// interruptSignal names the signal that cancelled ctx when ctx is a SignalContext.
func interruptSignal(ctx context.Context) string {
	if sc, ok := ctx.(interface{ Signal() os.Signal }); ok {
		if sig := sc.Signal(); sig != nil {
			return sig.String()
		}
	}
	return "none"
}

// RunDemo replays the showcase sequence on an extended machine:
// insert 10, choose 1, choose 2, return coins, report an issue.
func RunDemo(ctx context.Context, opts RunOptions) error {
	_, out := opts.streams()
	opts.Extended = true

	e, err := setup(opts, out)
	if err != nil {
		return fmt.Errorf("error initializing machine: %w", err)
	}

	m := e.machine
	if err := m.InsertCoins(ctx, 10); err != nil {
		return err
	}
	m.Choose(ctx, domain.CodeSellItemA)
	m.Choose(ctx, domain.CodeSellItemB)
	m.ReturnCoins(ctx)
	m.Choose(ctx, domain.CodeReportIssue)
	return nil
}

// RunMenu prints the selection table of a freshly stocked machine.
func RunMenu(opts RunOptions) error {
	in, out := opts.streams()

	e, err := setup(opts, out)
	if err != nil {
		return fmt.Errorf("error initializing machine: %w", err)
	}

	md := tui.MenuMarkdown(e.cfg.Items, e.machine.Snapshot(), e.machine.Extended())
	if isTerminal(in) {
		if rendered, err := tui.NewRenderer()(md); err == nil {
			md = rendered
		}
	}
	_, err = fmt.Fprint(out, md)
	return err
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCoinsInserted: func(ctx context.Context, e *domain.CoinEvent) {
			logger.Debug("Coins Inserted", "amount", e.Amount, "balance", e.Balance)
		},
		OnCoinsReturned: func(ctx context.Context, e *domain.CoinEvent) {
			logger.Debug("Coins Returned", "amount", e.Amount)
		},
		OnSale: func(ctx context.Context, e *domain.SaleEvent) {
			logger.Debug("Sale", "item", e.Item, "price", e.Price, "stock", e.Stock)
		},
		OnRejected: func(ctx context.Context, e *domain.RejectEvent) {
			logger.Debug("Rejected", "code", e.Code, "action", e.Action.String(), "reason", string(e.Reason))
		},
		OnIssueReported: func(ctx context.Context, e *domain.IssueEvent) {
			if e.Err != nil {
				logger.Debug("Issue Reported (Error)", "err", e.Err)
			} else {
				logger.Debug("Issue Reported (Success)")
			}
		},
	}
}

// RunGraph prints the selection flowchart of the configured machine.
func RunGraph(opts RunOptions) error {
	_, out := opts.streams()

	cfg, err := config.Load(opts.ConfigPath, opts.ConfigRequired)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, graph.GenerateMermaid(cfg.Items, cfg.Extended || opts.Extended, nil))
	return err
}
