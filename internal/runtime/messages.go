package runtime

import "fmt"

const msgSoldOut = "No items left for sale"

func msgInserted(amount, balance int) string {
	return fmt.Sprintf("Inserted %d coin(s), current balance: %d", amount, balance)
}

func msgReturned(amount int) string {
	return fmt.Sprintf("Returned %d coin(s)", amount)
}

func msgSold(item string, balance int) string {
	return fmt.Sprintf("Sold %s, current balance: %d", item, balance)
}

func msgCantSell(item string, price, balance int) string {
	return fmt.Sprintf("Can't sell %s (price: %d), current balance: %d", item, price, balance)
}

func msgItemUnavailable(item string) string {
	return fmt.Sprintf("%s unavailable", item)
}

func msgChoiceUnavailable(code int) string {
	return fmt.Sprintf("Choice %d not available", code)
}
