/*
Package domain contains the core domain models of the vending machine.

It defines the closed set of actions a selection code resolves to, the item
catalog, the read-only state snapshot and the lifecycle events emitted while
the machine runs. This package is kept pure and free of external dependencies
like I/O, following Hexagonal Architecture principles.

# Key Entities

  - Action: One resolved response to a numeric selection code.
  - Item: A sellable product slot (name, price, initial stock).
  - Catalog: The two item slots a machine is stocked with.
  - Snapshot: A copy of the machine stocks and coin balance.
*/
package domain
