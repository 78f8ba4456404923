package core

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	context2 "github.com/gitkeeper/gitkeeper/pkg/context"
	"github.com/gitkeeper/gitkeeper/pkg/engine"
	"github.com/gitkeeper/gitkeeper/pkg/engine/mockengine"
	"github.com/gitkeeper/gitkeeper/pkg/model"
	"github.com/gitkeeper/gitkeeper/pkg/storage"
	"github.com/gitkeeper/gitkeeper/pkg/storage/localfs"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

var (
	dev1 = model.Contributor{Name: "dev1", Email: "dev1@example.com"}
	dev2 = model.Contributor{Name: "dev2", Email: "dev2@example.com"}
)

type testReadCloserWithErr struct {
}

func (testReadCloserWithErr) Read(_ []byte) (int, error) {
	return 0, fmt.Errorf("io error")
}
func (testReadCloserWithErr) Close() error {
	return nil
}

// testClock is a hand-wound time source for expiry scenarios.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(at time.Time) *testClock {
	return &testClock{now: at}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// memStores builds a complete in-memory store context.
func memStores() context2.Stores {
	return context2.NewStores(
		localfs.New(afero.NewMemMapFs()),
		localfs.New(afero.NewMemMapFs()),
		localfs.New(afero.NewMemMapFs()),
	)
}

// storesWith wires the same store into every slot, handy with mocks.
func storesWith(store storage.Store) context2.Stores {
	return context2.NewStores(store, store, store)
}

// putRaw plants raw bytes at a store key, bypassing the managers.
func putRaw(ctx context.Context, store storage.Store, key, content string) {
	if err := store.Put(ctx, key, bytes.NewBufferString(content), storage.OverWrite); err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
}

func storeHas(ctx context.Context, store storage.Store, key string) bool {
	has, err := store.Has(ctx, key)
	if err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
	return has
}

func readKey(ctx context.Context, store storage.Store, key string) string {
	rdr, err := store.Get(ctx, key)
	if err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
	defer func() { _ = rdr.Close() }()
	b, err := io.ReadAll(rdr)
	if err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
	return string(b)
}

func buildLockYaml(lock model.LockDescriptor) string {
	asYaml, err := yaml.Marshal(lock)
	if err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
	return string(asYaml)
}

func buildBackupYaml(backup model.BackupDescriptor) string {
	asYaml, err := yaml.Marshal(backup)
	if err != nil {
		panic(fmt.Sprintf("test config error: %v", err))
	}
	return string(asYaml)
}

func garbleYaml(in string) string {
	return in + `
>>>> # this line intentionally invalid YAML
	`
}

// fakeRepo models just enough of a git repository to stand behind an
// EngineMock: branch tips, the object set, the checked-out branch and
// fake bundle files. Mutating calls are journaled so tests can assert
// cross-method ordering.
type fakeRepo struct {
	mu       sync.Mutex
	branches map[string]string
	objects  map[string]bool
	current  string
	detached bool
	seq      int
	jrn      journal
}

func newFakeRepo(current string, branches map[string]string) *fakeRepo {
	r := &fakeRepo{
		branches: make(map[string]string, len(branches)),
		objects:  make(map[string]bool, len(branches)),
		current:  current,
	}
	for name, tip := range branches {
		r.branches[name] = tip
		r.objects[tip] = true
	}
	return r
}

func (r *fakeRepo) mintHash() string {
	r.seq++
	h := fmt.Sprintf("%040x", r.seq)
	r.objects[h] = true
	return h
}

func (r *fakeRepo) tip(branch string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.branches[branch]
}

// advance moves a branch tip to a fresh commit and returns it.
func (r *fakeRepo) advance(branch string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.mintHash()
	r.branches[branch] = h
	return h
}

// forget drops a commit from the object set, as a history rewrite
// followed by gc would.
func (r *fakeRepo) forget(hash string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.objects, hash)
}

func (r *fakeRepo) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.branches))
	for name := range r.branches {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *fakeRepo) gitErr(op, stderr string) error {
	return &engine.GitError{Op: op, Stderr: stderr, Err: fmt.Errorf("exit status 1")}
}

func (r *fakeRepo) resolveLocked(rev string) (string, bool) {
	if tip, ok := r.branches[rev]; ok {
		return tip, true
	}
	if r.objects[rev] {
		return rev, true
	}
	return "", false
}

const fakeBundleHeader = "# fake bundle\n"

// engine builds an EngineMock backed by this repository. Methods the
// model cannot answer are left nil for tests to fill in.
func (r *fakeRepo) engine() *mockengine.EngineMock {
	return &mockengine.EngineMock{
		RefExistsFunc: func(_ context.Context, name string) (bool, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			_, ok := r.branches[name]
			return ok, nil
		},
		CurrentBranchFunc: func(_ context.Context) (string, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.detached {
				return "HEAD", nil
			}
			return r.current, nil
		},
		ResolveCommitFunc: func(_ context.Context, rev string) (string, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			if h, ok := r.resolveLocked(rev); ok {
				return h, nil
			}
			return "", r.gitErr("rev-parse", fmt.Sprintf("fatal: bad revision %q", rev))
		},
		CheckoutFunc: func(_ context.Context, name string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.branches[name]; ok {
				r.current = name
				r.detached = false
			} else if r.objects[name] {
				r.current = name
				r.detached = true
			} else {
				return r.gitErr("checkout", fmt.Sprintf("error: pathspec %q did not match", name))
			}
			r.jrn.add("checkout %s", name)
			return nil
		},
		CreateBranchFunc: func(_ context.Context, name, from string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.branches[name]; ok {
				return r.gitErr("branch", fmt.Sprintf("fatal: a branch named %q already exists", name))
			}
			h, ok := r.resolveLocked(from)
			if !ok {
				return r.gitErr("branch", fmt.Sprintf("fatal: not a valid object name: %q", from))
			}
			r.branches[name] = h
			r.jrn.add("create %s %s", name, h)
			return nil
		},
		DeleteBranchFunc: func(_ context.Context, name string, force bool) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.branches[name]; !ok {
				return r.gitErr("branch", fmt.Sprintf("error: branch %q not found", name))
			}
			if name == r.current && !r.detached {
				return r.gitErr("branch", fmt.Sprintf("error: cannot delete branch %q checked out", name))
			}
			delete(r.branches, name)
			r.jrn.add("delete %s force=%v", name, force)
			return nil
		},
		MergeFunc: func(_ context.Context, name string, mode engine.MergeMode) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			tip, ok := r.resolveLocked(name)
			if !ok {
				return r.gitErr("merge", fmt.Sprintf("merge: %s - not something we can merge", name))
			}
			switch mode {
			case engine.FFOnly:
				r.branches[r.current] = tip
			case engine.Squash:
				// index only, no commit
			default:
				r.branches[r.current] = r.mintHash()
			}
			r.jrn.add("merge %s %s", name, mode)
			return nil
		},
		RebaseFunc: func(_ context.Context, branch, onto string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.branches[branch]; !ok {
				return r.gitErr("rebase", fmt.Sprintf("fatal: no such branch: %q", branch))
			}
			r.branches[branch] = r.mintHash()
			r.jrn.add("rebase %s onto %s", branch, onto)
			return nil
		},
		CommitFunc: func(_ context.Context, message string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.branches[r.current] = r.mintHash()
			r.jrn.add("commit %s", message)
			return nil
		},
		RevertFunc: func(_ context.Context, commit string, parentIndex int) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.resolveLocked(commit); !ok {
				return r.gitErr("revert", fmt.Sprintf("fatal: bad revision %q", commit))
			}
			r.branches[r.current] = r.mintHash()
			r.jrn.add("revert %s mainline=%d", commit, parentIndex)
			return nil
		},
		BundleCreateFunc: func(_ context.Context, path string, refs []string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			var buf bytes.Buffer
			buf.WriteString(fakeBundleHeader)
			for name, tip := range r.branches {
				fmt.Fprintf(&buf, "%s %s\n", tip, name)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
				return r.gitErr("bundle", err.Error())
			}
			r.jrn.add("bundle-create")
			return nil
		},
		BundleVerifyFunc: func(_ context.Context, path string) error {
			b, err := os.ReadFile(path)
			if err != nil || !strings.HasPrefix(string(b), fakeBundleHeader) {
				return r.gitErr("bundle", fmt.Sprintf("error: %q does not look like a v2 bundle file", path))
			}
			r.jrn.add("bundle-verify")
			return nil
		},
		BundleFetchFunc: func(_ context.Context, path, branch, targetRef string) error {
			b, err := os.ReadFile(path)
			if err != nil {
				return r.gitErr("fetch", err.Error())
			}
			r.mu.Lock()
			defer r.mu.Unlock()
			for _, line := range strings.Split(string(b), "\n") {
				fields := strings.Fields(line)
				if len(fields) == 2 && fields[1] == branch {
					r.branches[targetRef] = fields[0]
					r.objects[fields[0]] = true
					r.jrn.add("bundle-fetch %s %s", branch, targetRef)
					return nil
				}
			}
			return r.gitErr("fetch", fmt.Sprintf("fatal: couldn't find remote ref %q", branch))
		},
		WorkingTreeCleanFunc: func(_ context.Context) (bool, error) {
			return true, nil
		},
		RemoteTipFunc: func(_ context.Context, _ string) (string, bool, error) {
			return "", false, nil
		},
	}
}

// journal records engine activity across mocked methods so tests can
// assert cross-method ordering.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(format string, args ...interface{}) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]string, len(j.entries))
	copy(out, j.entries)
	return out
}

func (j *journal) indexOf(entry string) int {
	for i, e := range j.all() {
		if e == entry {
			return i
		}
	}
	return -1
}
