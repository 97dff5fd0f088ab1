package domain

// Snapshot is a read-only copy of the machine state.
type Snapshot struct {
	SerialID    string `json:"serial_id"`
	ItemAStock  int    `json:"item_a_stock"`
	ItemBStock  int    `json:"item_b_stock"`
	CoinBalance int    `json:"coin_balance"`
}

// SoldOut reports whether both item stocks are exhausted.
func (s Snapshot) SoldOut() bool {
	return s.ItemAStock == 0 && s.ItemBStock == 0
}
