package domain

import "errors"

// ErrInvalidAmount is returned when a coin insertion is negative.
var ErrInvalidAmount = errors.New("coin amount must not be negative")

// ErrInvalidCatalog is returned when the machine is stocked with an inconsistent catalog.
var ErrInvalidCatalog = errors.New("invalid catalog")
