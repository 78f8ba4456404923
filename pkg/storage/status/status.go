// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementations.
package status

import "github.com/gitkeeper/gitkeeper/pkg/errors"

var (
	// Sentinel errors returned by implementations of the interface defined by storage

	// ErrNotFound indicates that the fetched object does not exist on storage
	ErrNotFound = errors.New("object not found")

	// ErrExists indicates that the object already exists and the write asked not to override it
	ErrExists = errors.New("exists already")

	// ErrInvalidKey indicates that the storage object has an invalid key
	ErrInvalidKey = errors.New("invalid storage object key")

	// ErrStorageAPI indicates any other error reported by the storage backend
	ErrStorageAPI = errors.New("storage API error")
)
