/*
Package vending is a single-process vending machine simulator.

A Machine tracks two item stocks and a coin balance. Callers insert coins and
press a numeric selection; the selection is resolved to an action which is
executed against the current state, and every outcome is reported as a
human-readable line on the injected display.

# Selections

	1   sell item A (choco bar, 5 coins)
	2   sell item B (juice box, 7 coins)
	0   return coins
	100 report an issue to the service (extended flavor only)

Any other code is answered with "Choice {code} not available". Once both
stocks are exhausted every selection returns the inserted coins instead.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/vending"
	)

	func main() {
		m, err := vending.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		_ = m.InsertCoins(ctx, 10) // Inserted 10 coin(s), current balance: 10
		m.Choose(ctx, 1)           // Sold choco bar, current balance: 5
		m.Choose(ctx, 2)           // Can't sell juice box (price: 7), current balance: 5
		m.ReturnCoins(ctx)         // Returned 5 coin(s)
	}
*/
package vending
