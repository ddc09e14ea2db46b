package diff

import "fmt"

// MalformedDiffError is returned when nothing usable could be parsed
// out of the PR's patches. Per-file failures are not errors; they are
// recorded as Model warnings and parsing continues best-effort.
type MalformedDiffError struct {
	Reason string
}

func (e *MalformedDiffError) Error() string {
	return fmt.Sprintf("malformed diff: %s", e.Reason)
}
