package testutils

import (
	"testing"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/pkg/adapters/memory"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
)

// SerialID is the machine id used by NewMachine.
const SerialID = "VM-TEST"

// NewMachine builds a machine that records its display messages in memory and
// logs to the test output. Extra options are applied after the defaults.
// It fails the test immediately on error.
func NewMachine(t *testing.T, opts ...vending.Option) (*vending.Machine, *memory.Display) {
	t.Helper()

	display := memory.NewDisplay()
	defaults := []vending.Option{
		vending.WithDisplay(display),
		vending.WithSerialID(SerialID),
		vending.WithLogger(slogt.New(t)),
	}

	m, err := vending.New(append(defaults, opts...)...)
	require.NoError(t, err, "Failed to build vending machine")

	return m, display
}
