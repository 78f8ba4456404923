// Package model describes the persisted and derived objects gitkeeper
// works with: branch locks, backups of the repository's ref set, branch
// divergence and health reports, and merge operations.
//
// Persisted records (locks, backup descriptors) are plain YAML documents
// written to a storage.Store. They are parsed as data into the types of
// this package and are never evaluated or executed. Path helpers in this
// package derive the store keys under which records live, so every
// component addresses the same layout.
package model
