package types

import "github.com/google/uuid"

// RunID identifies a single pipeline invocation in log output. CI systems
// often interleave retried runs into one stream; the ID keeps them apart.
type RunID string

// NewRunID generates a new random RunID.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}
