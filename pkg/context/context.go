// Package context wires together the stores holding gitkeeper's
// persisted state for one repository.
package context

import (
	"fmt"

	"github.com/gitkeeper/gitkeeper/pkg/storage"
)

// Stores defines a complete context for gitkeeper objects
type Stores interface {
	// Locks yields the lock record storage for a context
	Locks() storage.Store
	// SetLocks sets the context storage for lock records
	SetLocks(locks storage.Store)

	// Metadata yields the backup descriptor storage for a context
	Metadata() storage.Store
	// SetMetadata sets the context storage for backup descriptors
	SetMetadata(metadata storage.Store)

	// Artifacts yields the backup snapshot artifact storage for a context
	Artifacts() storage.Store
	// SetArtifacts sets the context storage for backup snapshot artifacts
	SetArtifacts(artifacts storage.Store)
}

// type safeguard
var _ Stores = &defaultStores{}

// defaultStores is the default implementation of Stores
type defaultStores struct {
	locks     storage.Store
	metadata  storage.Store
	artifacts storage.Store
	_         struct{}
}

// New creates a new empty instance of context stores, to be set with the Setxxx methods.
func New() Stores {
	return &defaultStores{}
}

// NewStores creates a new instance of context stores
func NewStores(locks, metadata, artifacts storage.Store) Stores {
	return &defaultStores{locks: locks, metadata: metadata, artifacts: artifacts}
}

// Locks yields the lock record storage for a context
func (c *defaultStores) Locks() storage.Store {
	return c.locks
}

// SetLocks sets the context storage for lock records
func (c *defaultStores) SetLocks(locks storage.Store) {
	c.locks = locks
}

// Metadata yields the backup descriptor storage for a context
func (c *defaultStores) Metadata() storage.Store {
	return c.metadata
}

// SetMetadata sets the context storage for backup descriptors
func (c *defaultStores) SetMetadata(metadata storage.Store) {
	c.metadata = metadata
}

// Artifacts yields the backup snapshot artifact storage for a context
func (c *defaultStores) Artifacts() storage.Store {
	return c.artifacts
}

// SetArtifacts sets the context storage for backup snapshot artifacts
func (c *defaultStores) SetArtifacts(artifacts storage.Store) {
	c.artifacts = artifacts
}

func (c *defaultStores) String() string {
	return fmt.Sprintf("locks: %q, metadata: %q, artifacts: %q",
		c.locks, c.metadata, c.artifacts)
}
