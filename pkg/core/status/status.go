// Package status exports errors produced by the core package.
//
// Every error returned by a core operation wraps exactly one of these
// sentinels, so callers classify failures with errors.Is instead of
// matching message text.
package status

import (
	"github.com/gitkeeper/gitkeeper/pkg/errors"
)

var (
	// ErrValidation indicates malformed or missing caller input
	ErrValidation = errors.New("invalid input")

	// ErrNotFound indicates an object was not found (branch, lock, backup)
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state collision, such as a lock held by
	// someone else or a branch that already exists
	ErrConflict = errors.New("conflict")

	// ErrPermission indicates the actor does not own the object it is
	// trying to change
	ErrPermission = errors.New("permission denied")

	// ErrConfirmationRequired indicates a destructive or risky operation
	// was attempted without force
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrEngine indicates a version control engine call failed
	ErrEngine = errors.New("engine call failed")

	// ErrStaleData indicates a persisted record is expired or undecodable
	ErrStaleData = errors.New("stale record")
)
