package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/vending/internal/presentation/tui"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuMarkdown(t *testing.T) {
	snap := domain.Snapshot{ItemAStock: 4, ItemBStock: 0, CoinBalance: 3}

	md := tui.MenuMarkdown(domain.DefaultCatalog(), snap, false)

	assert.Contains(t, md, "| 1 | choco bar | 5 | 4 |")
	assert.Contains(t, md, "| 2 | juice box | 7 | 0 |")
	assert.Contains(t, md, "| 0 | return coins | | |")
	assert.NotContains(t, md, "report issue")
	assert.Contains(t, md, "Balance: **3** coin(s)")

	md = tui.MenuMarkdown(domain.DefaultCatalog(), snap, true)
	assert.Contains(t, md, "| 100 | report issue | | |")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()

	out, err := render("# Menu\n\nBalance: **3** coin(s)\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Menu")
	assert.Contains(t, out, "Balance")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3", "VM-1")

	out := buf.String()
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "serial VM-1")
	// A bytes.Buffer is not a terminal, so no escape sequences are emitted.
	assert.False(t, strings.Contains(out, "\x1b["))
}
