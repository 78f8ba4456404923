package model

import (
	"fmt"
	"strings"
)

// BranchKind enumerates the branch archetypes gitkeeper scaffolds. The
// kind maps deterministically onto a name prefix; there is no runtime
// lookup table to override it.
type BranchKind int

const (
	// KindFeature is day-to-day feature work, prefixed "feature/".
	KindFeature BranchKind = iota
	// KindBugfix is a fix targeting the base branch, prefixed "bugfix/".
	KindBugfix
	// KindHotfix is an urgent production fix, prefixed "hotfix/".
	KindHotfix
)

// ParseBranchKind maps a user-supplied kind name onto a BranchKind.
func ParseBranchKind(s string) (BranchKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feature":
		return KindFeature, nil
	case "bugfix":
		return KindBugfix, nil
	case "hotfix":
		return KindHotfix, nil
	default:
		return 0, fmt.Errorf("unknown branch kind %q (want feature, bugfix or hotfix)", s)
	}
}

func (k BranchKind) String() string {
	switch k {
	case KindFeature:
		return "feature"
	case KindBugfix:
		return "bugfix"
	case KindHotfix:
		return "hotfix"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Prefix yields the branch name prefix for this kind.
func (k BranchKind) Prefix() string {
	return k.String() + "/"
}

// QualifiedName derives the full branch name for a short name of this
// kind, e.g. KindFeature + "login" -> "feature/login".
func (k BranchKind) QualifiedName(shortName string) string {
	return k.Prefix() + shortName
}

// ValidateBranchName rejects names git itself would refuse as well as
// names that would defeat record slugging. Allowed runes are letters,
// digits, '.', '_', '-' and '/' as a segment separator.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return fmt.Errorf("empty branch name")
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("invalid branch name %q: leading or trailing slash", branch)
	}
	if strings.Contains(branch, "..") || strings.Contains(branch, "//") {
		return fmt.Errorf("invalid branch name %q: empty or dotted path segment", branch)
	}
	if strings.HasPrefix(branch, "-") {
		return fmt.Errorf("invalid branch name %q: leading dash", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("invalid branch name %q: reserved suffix", branch)
	}
	for _, r := range branch {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-', r == '/':
		default:
			return fmt.Errorf("invalid branch name %q: unsupported character %q", branch, string(r))
		}
	}
	return nil
}

// BranchDivergence counts the commits separating a branch from a base:
// Ahead are commits reachable from the branch but not the base, Behind
// the reverse. Divergence is derived on demand and never persisted.
type BranchDivergence struct {
	Branch string
	Base   string
	Ahead  int
	Behind int
}

// SyncState classifies a BranchDivergence.
type SyncState int

const (
	// InSync means no commits separate branch and base in either direction.
	InSync SyncState = iota
	// AheadOnly means the branch holds commits the base lacks, and nothing more.
	AheadOnly
	// BehindOnly means the base holds commits the branch lacks, and nothing more.
	BehindOnly
	// Diverged means both sides hold commits the other lacks.
	Diverged
	// InvalidSync means the divergence could not be computed.
	InvalidSync
)

func (s SyncState) String() string {
	switch s {
	case InSync:
		return "in-sync"
	case AheadOnly:
		return "ahead"
	case BehindOnly:
		return "behind"
	case Diverged:
		return "diverged"
	case InvalidSync:
		return "invalid"
	default:
		return fmt.Sprintf("syncstate(%d)", int(s))
	}
}

// State classifies the divergence into a SyncState. Negative counts do
// not occur; they classify as InvalidSync should they ever appear.
func (d BranchDivergence) State() SyncState {
	switch {
	case d.Ahead < 0 || d.Behind < 0:
		return InvalidSync
	case d.Ahead == 0 && d.Behind == 0:
		return InSync
	case d.Ahead > 0 && d.Behind == 0:
		return AheadOnly
	case d.Ahead == 0 && d.Behind > 0:
		return BehindOnly
	default:
		return Diverged
	}
}

// RemoteStatus is the outcome of comparing a branch with its remote copy.
type RemoteStatus struct {
	Branch string
	// Found reports whether the remote tracks the branch at all.
	Found bool
	// InSync reports whether local and remote tips match. Meaningless
	// when Found is false.
	InSync bool
	// LocalHash and RemoteHash are the compared tips when Found.
	LocalHash  string
	RemoteHash string
}
