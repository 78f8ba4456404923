// Package localfs implements the gitkeeper Store for a local file system.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitkeeper/gitkeeper/pkg/storage"
	"github.com/gitkeeper/gitkeeper/pkg/storage/status"
	"github.com/spf13/afero"
)

// New creates a new local file system backed store.
//
// Put with storage.IfNotPresent relies on O_EXCL, so create-if-absent
// is atomic for any afero.Fs that honors the flag (the OS file system
// and the in-memory one both do).
func New(fs afero.Fs) storage.Store {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(".gitkeeper", "objects"))
	}
	return &localFS{
		fs: fs,
	}
}

type localFS struct {
	fs afero.Fs
}

func (l *localFS) Has(ctx context.Context, key string) (bool, error) {
	fi, err := l.fs.Stat(key)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	return !fi.IsDir(), nil
}

func (l *localFS) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	has, err := l.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("get %q: %w", key, status.ErrNotFound)
	}
	t, err := l.fs.Open(key)
	if err != nil {
		return nil, fmt.Errorf("open %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	return t, nil
}

func (l *localFS) Put(ctx context.Context, key string, source io.Reader, mode storage.WriteMode) error {
	if dir := filepath.Dir(key); dir != "" {
		if err := l.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("ensuring directories for %q: %v: %w", key, err, status.ErrStorageAPI)
		}
	}
	flag := os.O_CREATE | os.O_WRONLY | os.O_SYNC
	if mode == storage.IfNotPresent {
		flag |= os.O_EXCL
	} else {
		flag |= os.O_TRUNC
	}
	target, err := l.fs.OpenFile(key, flag, 0600)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("create record for %q: %w", key, status.ErrExists)
		}
		return fmt.Errorf("create record for %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	// if the source knows how to write itself out, let it
	if wt, ok := source.(io.WriterTo); ok {
		_, err = wt.WriteTo(target)
	} else {
		_, err = io.Copy(target, source)
	}
	if err != nil {
		_ = target.Close()
		return fmt.Errorf("write record for %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	if err = target.Close(); err != nil {
		return fmt.Errorf("close record for %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	return nil
}

func (l *localFS) Delete(ctx context.Context, key string) error {
	if err := l.fs.Remove(key); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("delete %q: %w", key, status.ErrNotFound)
		}
		return fmt.Errorf("removing %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	return nil
}

func (l *localFS) Keys(ctx context.Context) ([]string, error) {
	const root = "."
	var res []string
	e := afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root || info.IsDir() {
			return nil
		}
		res = append(res, filepath.ToSlash(path))
		return nil
	})
	if e != nil {
		return nil, fmt.Errorf("walking keys: %v: %w", e, status.ErrStorageAPI)
	}
	return res, nil
}

func (l *localFS) Clear(ctx context.Context) error {
	return l.fs.RemoveAll("/")
}

func (l *localFS) String() string {
	const localfs = "localfs"
	switch fs := l.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}

/* thread-safe local storage implementation.
 * use a decorator pattern to implement atomic Put()s via atomicity of afero.Fs.Rename()
 * for those filesystems where Rename() is thread-safe: files are placed in a staging area,
 * then Rename()d into place. Partially written objects never appear under their final key.
 */

/* staging area key prefix and helper functions */
const (
	nestedPutStageName = ".put-stage"
)

func maybeInvalidKey(key string) error {
	const pathSepString = string(os.PathSeparator)
	pathComponents := strings.Split(strings.TrimLeft(key, pathSepString), pathSepString)
	if len(pathComponents) == 0 {
		return nil
	}
	if pathComponents[0] == nestedPutStageName {
		return fmt.Errorf("key %q conflicts with put staging area name %q: %w",
			key, nestedPutStageName, status.ErrInvalidKey)
	}
	return nil
}

func filterInvalidKeys(ks []string) []string {
	/* https://github.com/golang/go/wiki/SliceTricks#filtering-without-allocating */
	ksFiltered := ks[:0]
	for _, key := range ks {
		if err := maybeInvalidKey(key); err == nil {
			ksFiltered = append(ksFiltered, key)
		}
	}
	for i := len(ksFiltered); i < len(ks); i++ {
		ks[i] = ""
	}
	return ksFiltered
}

// NewAtomic decorates a local file system store so that objects are
// staged first and published with a rename. Readers listing or getting
// keys never observe half-written objects.
//
// IfNotPresent on the atomic store is a pre-check, not a guarantee:
// the rename publishing the staged object replaces any concurrent
// winner. Stores needing a hard create-if-absent use the plain store.
func NewAtomic(fs afero.Fs) (storage.Store, error) {
	if fs == nil {
		fs = afero.NewBasePathFs(afero.NewOsFs(), filepath.Join(".gitkeeper", "objects"))
	}
	/* the staging area exists within the afero.Fs itself */
	if err := fs.MkdirAll(nestedPutStageName, 0700); err != nil {
		return nil, fmt.Errorf("ensuring put staging directory %q: %v: %w",
			nestedPutStageName, err, status.ErrStorageAPI)
	}
	return &localFSAtomic{
		storeImpl: localFS{fs: fs},
	}, nil
}

type localFSAtomic struct {
	storeImpl localFS
}

/* implementing the Store interface is mostly a matter of wrapping the decorated
 * localFS's interface with helper functions.
 */

func (l *localFSAtomic) Has(ctx context.Context, key string) (bool, error) {
	if err := maybeInvalidKey(key); err != nil {
		return false, err
	}
	return l.storeImpl.Has(ctx, key)
}

func (l *localFSAtomic) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := maybeInvalidKey(key); err != nil {
		return nil, err
	}
	return l.storeImpl.Get(ctx, key)
}

func (l *localFSAtomic) Delete(ctx context.Context, key string) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	return l.storeImpl.Delete(ctx, key)
}

func (l *localFSAtomic) Keys(ctx context.Context) ([]string, error) {
	ks, err := l.storeImpl.Keys(ctx)
	if err != nil {
		return ks, err
	}
	return filterInvalidKeys(ks), nil
}

func (l *localFSAtomic) Clear(ctx context.Context) error {
	return l.storeImpl.Clear(ctx)
}

/* the Put() implementation is the only part of the Store interface implemented
 * outside of the functional wrap design pattern
 */
func (l *localFSAtomic) Put(ctx context.Context, key string, source io.Reader, mode storage.WriteMode) error {
	if err := maybeInvalidKey(key); err != nil {
		return err
	}
	if mode == storage.IfNotPresent {
		has, err := l.storeImpl.Has(ctx, key)
		if err != nil {
			return err
		}
		if has {
			return fmt.Errorf("create record for %q: %w", key, status.ErrExists)
		}
	}
	putStageKey := filepath.Join(nestedPutStageName, key)
	if err := l.storeImpl.Put(ctx, putStageKey, source, mode); err != nil {
		return err
	}
	/* Rename() doesn't create directories automatically */
	if dir := filepath.Dir(key); dir != "" {
		if err := l.storeImpl.fs.MkdirAll(dir, 0700); err != nil {
			_ = l.storeImpl.fs.Remove(putStageKey)
			return fmt.Errorf("ensuring directories for %q: %v: %w", key, err, status.ErrStorageAPI)
		}
	}
	if err := l.storeImpl.fs.Rename(putStageKey, key); err != nil {
		_ = l.storeImpl.fs.Remove(putStageKey)
		return fmt.Errorf("publishing %q: %v: %w", key, err, status.ErrStorageAPI)
	}
	return nil
}

// dupe: localFS.String
func (l *localFSAtomic) String() string {
	const localfs = "localfs-atomic"
	switch fs := l.storeImpl.fs.(type) {
	case *afero.BasePathFs:
		pp, err := fs.RealPath("")
		if err != nil {
			return localfs
		}
		return localfs + "@" + pp
	default:
		return localfs
	}
}
