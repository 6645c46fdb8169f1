package interfaces

import (
	"github.com/m-mizutani/lockdiff/pkg/domain/model"
)

// LockfileParser extracts the installed package set from raw lockfile bytes
type LockfileParser interface {
	// Parse returns the packages recorded in the lockfile, in file order.
	// Malformed input yields types.ErrLockfileMalformed.
	Parse(data []byte) ([]model.Package, error)
}
