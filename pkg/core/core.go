// Package core implements gitkeeper's branch governance operations:
// advisory branch locks, ref-set backups with restore, branch health
// analysis, and orchestrated merges.
//
// Core components keep no in-memory state between calls. Everything
// they know is either in the stores (pkg/storage via pkg/context) or
// in the repository itself (pkg/engine), so concurrent gitkeeper
// processes coordinate purely through those.
package core

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gitkeeper/gitkeeper/pkg/core/status"
	"github.com/gitkeeper/gitkeeper/pkg/errors"
	"github.com/gitkeeper/gitkeeper/pkg/storage"
	"gopkg.in/yaml.v2"
)

// wrapf builds a classified error: a formatted message whose cause is
// one of the status sentinels.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...)).Wrap(sentinel)
}

// engineErr classifies a failed engine call, folding the engine's own
// diagnostic into the message.
func engineErr(op string, err error) error {
	return errors.New(fmt.Sprintf("%s: %v", op, err)).Wrap(status.ErrEngine)
}

// shortHash abbreviates a commit hash for messages and reports.
func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}

// readRecord retrieves a raw record from a store.
func readRecord(ctx context.Context, store storage.Store, pth string) ([]byte, error) {
	rdr, err := store.Get(ctx, pth)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rdr.Close() }()
	return io.ReadAll(rdr)
}

// writeRecord marshals a record to yaml and puts it on a store.
func writeRecord(ctx context.Context, store storage.Store, pth string, record interface{}, mode storage.WriteMode) error {
	buffer, err := yaml.Marshal(record)
	if err != nil {
		return err
	}
	return store.Put(ctx, pth, bytes.NewReader(buffer), mode)
}
