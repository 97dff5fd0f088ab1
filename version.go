package vending

// Version is the release of the vending module, reported by the CLI.
var Version = "0.3.0"
