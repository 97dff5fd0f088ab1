package memory

import (
	"sync"
)

// Display implements ports.Display by recording every message in order.
// Safe for concurrent use.
type Display struct {
	messages []string
	mu       sync.RWMutex
}

// NewDisplay creates an empty recording display.
func NewDisplay() *Display {
	return &Display{}
}

// Display records the message.
func (d *Display) Display(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, message)
}

// Messages returns a copy of the recorded messages.
func (d *Display) Messages() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ret := make([]string, len(d.messages))
	copy(ret, d.messages)
	return ret
}

// Last returns the most recent message, or "" if nothing was displayed.
func (d *Display) Last() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.messages) == 0 {
		return ""
	}
	return d.messages[len(d.messages)-1]
}

// Reset forgets the recorded messages.
func (d *Display) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = nil
}
