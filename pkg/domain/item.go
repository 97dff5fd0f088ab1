package domain

import "fmt"

// Slot identifies one of the two item positions of the machine.
type Slot string

const (
	SlotA Slot = "a"
	SlotB Slot = "b"
)

// Item describes a sellable product.
type Item struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Price int    `json:"price" yaml:"price" mapstructure:"price"`
	Stock int    `json:"stock" yaml:"stock" mapstructure:"stock"`
}

// Catalog holds the items the machine is stocked with at start-up.
type Catalog struct {
	A Item `json:"a" yaml:"a" mapstructure:"a"`
	B Item `json:"b" yaml:"b" mapstructure:"b"`
}

// Default catalog values.
const (
	DefaultItemAName  = "choco bar"
	DefaultItemAPrice = 5
	DefaultItemBName  = "juice box"
	DefaultItemBPrice = 7
	DefaultStock      = 5
)

// DefaultCatalog returns the factory stocking: 5 choco bars at 5 coins and
// 5 juice boxes at 7 coins.
func DefaultCatalog() Catalog {
	return Catalog{
		A: Item{Name: DefaultItemAName, Price: DefaultItemAPrice, Stock: DefaultStock},
		B: Item{Name: DefaultItemBName, Price: DefaultItemBPrice, Stock: DefaultStock},
	}
}

// Item returns the item stocked in the given slot.
func (c Catalog) Item(slot Slot) Item {
	if slot == SlotB {
		return c.B
	}
	return c.A
}

// Validate reports the first inconsistency found in the catalog.
func (c Catalog) Validate() error {
	for _, slot := range []Slot{SlotA, SlotB} {
		item := c.Item(slot)
		switch {
		case item.Name == "":
			return fmt.Errorf("%w: item %s has no name", ErrInvalidCatalog, slot)
		case item.Price < 1:
			return fmt.Errorf("%w: item %s price must be at least 1, got %d", ErrInvalidCatalog, slot, item.Price)
		case item.Stock < 0:
			return fmt.Errorf("%w: item %s stock must not be negative, got %d", ErrInvalidCatalog, slot, item.Stock)
		}
	}
	// Items are reported by name on the display and in metrics.
	if c.A.Name == c.B.Name {
		return fmt.Errorf("%w: items a and b share the name %q", ErrInvalidCatalog, c.A.Name)
	}
	return nil
}
