package ports

// Display receives the status messages emitted by the machine.
// The message text is part of the machine contract and must not be altered
// by implementations other than for presentation.
type Display interface {
	Display(message string)
}

// DisplayFunc adapts an ordinary function to the Display interface.
type DisplayFunc func(message string)

// Display calls f(message).
func (f DisplayFunc) Display(message string) {
	f(message)
}
