package localfs

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/gitkeeper/gitkeeper/pkg/storage"
	"github.com/gitkeeper/gitkeeper/pkg/storage/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	has, err := bs.Has(context.Background(), "sixteentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "seventeentons")
	require.NoError(t, err)
	require.True(t, has)

	has, err = bs.Has(context.Background(), "fifteentons")
	require.NoError(t, err)
	require.False(t, has)
}

func TestGet(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))

	_, err = bs.Get(context.Background(), "fifteentons")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestKeys(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestDelete(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, bs.Delete(context.Background(), "seventeentons"))
	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 1)

	err := bs.Delete(context.Background(), "seventeentons")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestClear(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	require.NoError(t, bs.Clear(context.Background()))
	k, _ := bs.Keys(context.Background())
	require.Empty(t, k)
}

func TestPut(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	content := bytes.NewBufferString("here we go once again")
	err := bs.Put(context.Background(), "eighteentons", content, storage.IfNotPresent)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "eighteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())

	assert.Equal(t, "here we go once again", string(b))

	k, _ := bs.Keys(context.Background())
	assert.Len(t, k, 3)
}

func TestPutIfNotPresent(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	err := bs.Put(context.Background(), "sixteentons", bytes.NewBufferString("no dice"), storage.IfNotPresent)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrExists)

	// the original object survives a failed exclusive write
	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "this is the text", string(b))
}

func TestPutOverWrite(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	err := bs.Put(context.Background(), "sixteentons", bytes.NewBufferString("rewritten"), storage.OverWrite)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "sixteentons")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "rewritten", string(b))
}

func TestPutNestedKey(t *testing.T) {
	bs, cleanup := setupStore(t)
	defer cleanup()

	err := bs.Put(context.Background(), "some-id/backup.yaml", bytes.NewBufferString("nested"), storage.IfNotPresent)
	require.NoError(t, err)

	has, err := bs.Has(context.Background(), "some-id/backup.yaml")
	require.NoError(t, err)
	assert.True(t, has)

	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	assert.Contains(t, keys, "some-id/backup.yaml")
}

func setupStore(t testing.TB) (storage.Store, func()) {
	t.Helper()

	fs := afero.NewMemMapFs()
	f, err := fs.Create("sixteentons")
	require.NoError(t, err)
	_, err = f.WriteString("this is the text")
	require.NoError(t, err)
	f.Close()

	ff, err := fs.Create("seventeentons")
	require.NoError(t, err)
	_, err = ff.WriteString("this is the text for another thing")
	require.NoError(t, err)
	ff.Close()

	return New(fs), func() {}
}

func setupAtomicStore(t testing.TB) storage.Store {
	t.Helper()

	bs, err := NewAtomic(afero.NewMemMapFs())
	require.NoError(t, err)
	return bs
}

func TestAtomicPut(t *testing.T) {
	bs := setupAtomicStore(t)

	err := bs.Put(context.Background(), "some-id/refs.bundle", bytes.NewBufferString("bundle bytes"), storage.OverWrite)
	require.NoError(t, err)

	rdr, err := bs.Get(context.Background(), "some-id/refs.bundle")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "bundle bytes", string(b))

	// the staging area never leaks into key listings
	keys, err := bs.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"some-id/refs.bundle"}, keys)
}

func TestAtomicPutIfNotPresent(t *testing.T) {
	bs := setupAtomicStore(t)

	require.NoError(t,
		bs.Put(context.Background(), "record", bytes.NewBufferString("first"), storage.IfNotPresent))

	err := bs.Put(context.Background(), "record", bytes.NewBufferString("second"), storage.IfNotPresent)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrExists)

	rdr, err := bs.Get(context.Background(), "record")
	require.NoError(t, err)
	b, err := io.ReadAll(rdr)
	require.NoError(t, err)
	require.NoError(t, rdr.Close())
	assert.Equal(t, "first", string(b))
}

func TestAtomicInvalidKey(t *testing.T) {
	bs := setupAtomicStore(t)

	err := bs.Put(context.Background(), ".put-stage/record", bytes.NewBufferString("nope"), storage.OverWrite)
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidKey)

	_, err = bs.Get(context.Background(), ".put-stage/record")
	require.Error(t, err)
	assert.ErrorIs(t, err, status.ErrInvalidKey)

	_, err = bs.Has(context.Background(), ".put-stage/record")
	require.Error(t, err)

	err = bs.Delete(context.Background(), ".put-stage/record")
	require.Error(t, err)
}

func TestStoreString(t *testing.T) {
	assert.Equal(t, "localfs", New(afero.NewMemMapFs()).String())

	bs, err := NewAtomic(afero.NewMemMapFs())
	require.NoError(t, err)
	assert.Equal(t, "localfs-atomic", bs.String())

	based := New(afero.NewBasePathFs(afero.NewMemMapFs(), "/state/locks"))
	assert.Contains(t, based.String(), "localfs@")
}
