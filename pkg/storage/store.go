// Package storage defines the stores used to persist gitkeeper state.
//
// A store is a flat keyspace of blobs. Lock records, backup descriptors
// and backup snapshot artifacts each live in their own store, so a
// backend only ever sees keys of a single shape.
package storage

import (
	"context"
	"io"
)

// WriteMode tells Put what to do when the key is already present.
type WriteMode int

const (
	// OverWrite replaces whatever the key currently holds.
	OverWrite WriteMode = iota

	// IfNotPresent fails with status.ErrExists when the key is already
	// taken. Backends must implement this with an atomic
	// create-if-absent primitive: two concurrent writers of the same
	// key must never both succeed.
	IfNotPresent
)

func (m WriteMode) String() string {
	switch m {
	case IfNotPresent:
		return "if-not-present"
	default:
		return "overwrite"
	}
}

//go:generate moq -out ./mockstorage/store.go -pkg mockstorage . Store

// Store implements a flat blob store.
//
// Keys use "/" as a logical separator regardless of backend. Errors
// are sentinels from the storage/status package, possibly wrapped.
type Store interface {
	String() string

	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, source io.Reader, mode WriteMode) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
