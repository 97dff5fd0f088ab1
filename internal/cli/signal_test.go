package cli

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"
)

func TestSignalContext_CapturesInterrupt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cannot deliver os.Interrupt to the current process on windows")
	}

	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess failed: %v", err)
	}
	if err := p.Signal(os.Interrupt); err != nil {
		t.Fatalf("Signal failed: %v", err)
	}

	select {
	case <-sc.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by the interrupt")
	}

	if sig := sc.Signal(); sig != os.Interrupt {
		t.Errorf("Signal() = %v, want %v", sig, os.Interrupt)
	}
	if got := interruptSignal(sc); got != os.Interrupt.String() {
		t.Errorf("interruptSignal() = %q, want %q", got, os.Interrupt.String())
	}
}

func TestSignalContext_CancelWithoutSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()

	if sig := sc.Signal(); sig != nil {
		t.Errorf("Signal() = %v, want nil", sig)
	}
	if got := interruptSignal(sc); got != "none" {
		t.Errorf("interruptSignal() = %q, want none", got)
	}
	if got := interruptSignal(context.Background()); got != "none" {
		t.Errorf("interruptSignal(background) = %q, want none", got)
	}
}
