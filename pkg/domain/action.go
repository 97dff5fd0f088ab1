package domain

import "fmt"

// Action is the closed set of responses to a selection code.
type Action int

const (
	ActionUnavailable Action = iota
	ActionSellItemA
	ActionSellItemB
	ActionReturnCoins
	ActionReportIssue
)

// Selection codes understood by the machine keypad.
const (
	CodeReturnCoins = 0
	CodeSellItemA   = 1
	CodeSellItemB   = 2
	CodeReportIssue = 100
)

var actionNames = map[Action]string{
	ActionUnavailable: "unavailable",
	ActionSellItemA:   "sell_item_a",
	ActionSellItemB:   "sell_item_b",
	ActionReturnCoins: "return_coins",
	ActionReportIssue: "report_issue",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Resolve maps a selection code to its Action.
// It is total: any code without a binding resolves to ActionUnavailable.
func Resolve(code int) Action {
	switch code {
	case CodeSellItemA:
		return ActionSellItemA
	case CodeSellItemB:
		return ActionSellItemB
	case CodeReturnCoins:
		return ActionReturnCoins
	case CodeReportIssue:
		return ActionReportIssue
	default:
		return ActionUnavailable
	}
}
