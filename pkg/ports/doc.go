/*
Package ports defines the driven ports (interfaces) of the vending machine.

These interfaces decouple the machine from the collaborators it talks to,
allowing the console, a test recorder, or any other sink to be plugged in.

# Key Interfaces

  - Display: Receives the human-readable status messages.
  - IssueReporter: Forwards a service request for the machine serial id.
*/
package ports
