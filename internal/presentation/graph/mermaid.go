package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
)

// Overlay contains machine state to visualize on the diagram.
type Overlay struct {
	Snapshot domain.Snapshot
}

type shape int

const (
	shapeBox shape = iota
	shapeStart
	shapeDecision
	shapeAction
	shapeOutput
)

type node struct {
	id    string
	label string
	shape shape
}

type edge struct {
	from, to, label string
}

// GenerateMermaid produces a Mermaid flowchart of the selection decision table.
// It applies semantic styling:
// - Entry: ((Circle))
// - Decision: {Rhombus}
// - Action: [[Subroutine]]
// - Display message: [/Parallelogram/]
// With an overlay, exhausted item slots are greyed out and the sold-out
// branch is highlighted once both stocks are empty.
func GenerateMermaid(catalog domain.Catalog, extended bool, overlay *Overlay) string {
	nodes, edges := decisionTable(catalog, extended)

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range nodes {
		opener, closer := "[", "]"
		switch n.shape {
		case shapeStart:
			opener, closer = "((", "))"
		case shapeDecision:
			opener, closer = "{", "}"
		case shapeAction:
			opener, closer = "[[", "]]"
		case shapeOutput:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", n.id, opener, escape(n.label), closer))
	}

	for _, e := range edges {
		if e.label == "" {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", e.from, e.to))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", e.from, escape(e.label), e.to))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef empty fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		if overlay.Snapshot.ItemAStock == 0 {
			sb.WriteString("    class sell_item_a empty;\n")
		}
		if overlay.Snapshot.ItemBStock == 0 {
			sb.WriteString("    class sell_item_b empty;\n")
		}
		if overlay.Snapshot.SoldOut() {
			sb.WriteString("    class sold_out current;\n")
		}
	}

	return sb.String()
}

func decisionTable(catalog domain.Catalog, extended bool) ([]node, []edge) {
	nodes := []node{
		{id: "choose", label: "choose(code)", shape: shapeStart},
		{id: "sold_out", label: "No items left for sale", shape: shapeOutput},
		{id: "resolve", label: "resolve code", shape: shapeDecision},
		{id: "return_coins", label: "Returned {balance} coin(s)", shape: shapeOutput},
		{id: "unavailable", label: "Choice {code} not available", shape: shapeOutput},
	}
	edges := []edge{
		{from: "choose", to: "sold_out", label: "both stocks empty"},
		{from: "sold_out", to: "return_coins"},
		{from: "choose", to: "resolve", label: "stock left"},
	}

	for _, slot := range []struct {
		id   string
		code int
		item domain.Item
	}{
		{"sell_item_a", domain.CodeSellItemA, catalog.A},
		{"sell_item_b", domain.CodeSellItemB, catalog.B},
	} {
		nodes = append(nodes,
			node{id: slot.id, label: "sell " + slot.item.Name, shape: shapeAction},
			node{id: slot.id + "_poor", label: fmt.Sprintf("Can't sell %s (price: %d)", slot.item.Name, slot.item.Price), shape: shapeOutput},
			node{id: slot.id + "_empty", label: slot.item.Name + " unavailable", shape: shapeOutput},
			node{id: slot.id + "_sold", label: "Sold " + slot.item.Name, shape: shapeOutput},
		)
		edges = append(edges,
			edge{from: "resolve", to: slot.id, label: fmt.Sprint(slot.code)},
			edge{from: slot.id, to: slot.id + "_poor", label: fmt.Sprintf("balance < %d", slot.item.Price)},
			edge{from: slot.id, to: slot.id + "_empty", label: "stock == 0"},
			edge{from: slot.id, to: slot.id + "_sold", label: "otherwise"},
		)
	}

	edges = append(edges, edge{from: "resolve", to: "return_coins", label: fmt.Sprint(domain.CodeReturnCoins)})

	if extended {
		nodes = append(nodes, node{id: "report_issue", label: "report issue to service", shape: shapeAction})
		edges = append(edges, edge{from: "resolve", to: "report_issue", label: fmt.Sprint(domain.CodeReportIssue)})
	}

	edges = append(edges, edge{from: "resolve", to: "unavailable", label: "other"})
	return nodes, edges
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
