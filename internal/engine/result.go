package engine

// Result is the outcome of one successfully executed statement.
type Result struct {
	// Message is a human-readable description of the effect.
	Message string

	// Header and Rows carry a display row set for SELECT and SHOW.
	// Header is nil for statements with nothing to display.
	Header []string
	Rows   [][]string

	// Affected counts the data rows touched by a mutation.
	Affected int

	// NeedsConfirm is set by an unconditional DELETE: nothing has been
	// written, and the caller must confirm before invoking Truncate.
	NeedsConfirm bool
}
