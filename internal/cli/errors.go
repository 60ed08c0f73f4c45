package cli

import "fmt"

type invariantError struct {
	step  int
	event string
	err   error
}

func (e invariantError) Error() string {
	return fmt.Sprintf("invariant violated after event %d (%s): %v", e.step, e.event, e.err)
}

func (e invariantError) Unwrap() error { return e.err }
