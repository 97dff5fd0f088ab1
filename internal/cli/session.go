package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/internal/presentation/graph"
	"github.com/aretw0/vending/internal/presentation/tui"
	"github.com/aretw0/vending/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrQuit is returned by Execute when the user asks to leave the session.
var ErrQuit = errors.New("quit")

const helpText = `Commands:
  insert N    insert N coins
  choose N    press selection N (a bare number works too)
  return      return the inserted coins
  status      show stocks and balance
  menu        show the selection codes
  graph       print the selection flowchart (mermaid)
  stats       print the machine counters
  help        show this help
  quit        leave`

// Session reads commands line by line and applies them to a machine.
type Session struct {
	machine  *vending.Machine
	in       *bufio.Scanner
	out      io.Writer
	prompt   bool
	render   func(string) (string, error)
	gatherer prometheus.Gatherer
	logger   *slog.Logger

	lines    chan inputResult
	pumpOnce sync.Once
}

type inputResult struct {
	line string
	err  error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrompt prints "> " before reading each command.
func WithPrompt(prompt bool) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithRenderer renders markdown output (the menu) before printing it.
func WithRenderer(render func(string) (string, error)) SessionOption {
	return func(s *Session) {
		s.render = render
	}
}

// WithGatherer enables the stats command.
func WithGatherer(g prometheus.Gatherer) SessionOption {
	return func(s *Session) {
		s.gatherer = g
	}
}

// WithSessionLogger sets the logger used for command tracing.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session reading from in and printing command output to out.
// Machine messages go to the machine display, which is usually out as well.
func NewSession(m *vending.Machine, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		machine: m,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes commands until quit, end of input, or cancellation.
// Cancelling ctx returns immediately, even while waiting for a line.
// Input is read by a single background reader bound to the ctx of the first
// call, so a Session is meant to be run once.
func (s *Session) Run(ctx context.Context) error {
	s.startPump(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}

		var (
			res inputResult
			ok  bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok = <-s.lines:
		}
		if !ok {
			return nil
		}
		if res.err != nil {
			return fmt.Errorf("failed to read input: %w", res.err)
		}
		// A line and the cancellation may arrive together.
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := SanitizeInput(res.line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v. Please try again.\n", err)
			continue
		}

		if err := s.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *Session) startPump(ctx context.Context) {
	s.pumpOnce.Do(func() {
		s.lines = make(chan inputResult)
		go s.pump(ctx)
	})
}

// pump forwards input lines until end of input or cancellation.
func (s *Session) pump(ctx context.Context) {
	defer close(s.lines)

	for s.in.Scan() {
		select {
		case s.lines <- inputResult{line: s.in.Text()}:
		case <-ctx.Done():
			return
		}
	}
	if err := s.in.Err(); err != nil {
		select {
		case s.lines <- inputResult{err: err}:
		case <-ctx.Done():
		}
	}
}

// Execute applies a single command line.
func (s *Session) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	s.logger.Debug("Command", "cmd", cmd, "args", args)

	// A bare number is a selection.
	if code, err := strconv.Atoi(cmd); err == nil && len(args) == 0 {
		s.machine.Choose(ctx, code)
		return nil
	}

	switch cmd {
	case "insert", "i":
		amount, err := intArg(cmd, args)
		if err != nil {
			return err
		}
		return s.machine.InsertCoins(ctx, amount)
	case "choose", "c":
		code, err := intArg(cmd, args)
		if err != nil {
			return err
		}
		s.machine.Choose(ctx, code)
	case "return", "r":
		s.machine.ReturnCoins(ctx)
	case "status", "s":
		s.printStatus()
	case "menu", "m":
		return s.printMenu()
	case "graph":
		fmt.Fprint(s.out, graph.GenerateMermaid(s.machine.Catalog(), s.machine.Extended(), &graph.Overlay{Snapshot: s.machine.Snapshot()}))
	case "stats":
		if s.gatherer == nil {
			return fmt.Errorf("stats are not enabled")
		}
		return observability.Report(s.gatherer, s.out)
	case "help", "h", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit", "q":
		return ErrQuit
	default:
		return fmt.Errorf("unknown command %q, type 'help' for the list of commands", cmd)
	}
	return nil
}

func (s *Session) printStatus() {
	snap := s.machine.Snapshot()
	catalog := s.machine.Catalog()
	fmt.Fprintf(s.out, "%s: %d left, %s: %d left, balance: %d coin(s)\n",
		catalog.A.Name, snap.ItemAStock, catalog.B.Name, snap.ItemBStock, snap.CoinBalance)
}

func (s *Session) printMenu() error {
	md := tui.MenuMarkdown(s.machine.Catalog(), s.machine.Snapshot(), s.machine.Extended())
	if s.render != nil {
		rendered, err := s.render(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := fmt.Fprintln(s.out, strings.TrimRight(md, "\n"))
	return err
}

func intArg(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s N", cmd)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", cmd, args[0])
	}
	return n, nil
}
