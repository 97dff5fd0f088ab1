package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
)

// MenuMarkdown lists the selection codes of a machine as a markdown table.
func MenuMarkdown(catalog domain.Catalog, snap domain.Snapshot, extended bool) string {
	var sb strings.Builder

	sb.WriteString("# Menu\n\n")
	sb.WriteString("| Code | Selection | Price | Left |\n")
	sb.WriteString("|-----:|-----------|------:|-----:|\n")
	fmt.Fprintf(&sb, "| %d | %s | %d | %d |\n", domain.CodeSellItemA, catalog.A.Name, catalog.A.Price, snap.ItemAStock)
	fmt.Fprintf(&sb, "| %d | %s | %d | %d |\n", domain.CodeSellItemB, catalog.B.Name, catalog.B.Price, snap.ItemBStock)
	fmt.Fprintf(&sb, "| %d | return coins | | |\n", domain.CodeReturnCoins)
	if extended {
		fmt.Fprintf(&sb, "| %d | report issue | | |\n", domain.CodeReportIssue)
	}

	fmt.Fprintf(&sb, "\nBalance: **%d** coin(s)\n", snap.CoinBalance)
	return sb.String()
}
