// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionReload Action = "reload"

	// Carousel actions
	ActionAdvance Action = "advance" // l/right/space - next story
	ActionRetreat Action = "retreat" // h/left - previous story
	ActionOpen    Action = "open"    // enter - activate focused story

	// Detail view actions
	ActionClose Action = "close" // esc - close detail or help
)
