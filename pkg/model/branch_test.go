package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		branch  string
		wantErr bool
	}{
		{name: "plain", branch: "main"},
		{name: "qualified", branch: "feature/login"},
		{name: "deeply qualified", branch: "feature/login/v2"},
		{name: "dots and dashes", branch: "release-1.2.x"},
		{name: "empty", branch: "", wantErr: true},
		{name: "leading slash", branch: "/main", wantErr: true},
		{name: "trailing slash", branch: "main/", wantErr: true},
		{name: "double dot", branch: "a..b", wantErr: true},
		{name: "empty segment", branch: "a//b", wantErr: true},
		{name: "leading dash", branch: "-main", wantErr: true},
		{name: "lock suffix", branch: "main.lock", wantErr: true},
		{name: "space", branch: "my branch", wantErr: true},
		{name: "tilde", branch: "main~1", wantErr: true},
		{name: "caret", branch: "main^", wantErr: true},
		{name: "colon", branch: "a:b", wantErr: true},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateBranchName(tt.branch); (err != nil) != tt.wantErr {
				t.Errorf("ValidateBranchName(%q) error = %v, wantErr %v", tt.branch, err, tt.wantErr)
			}
		})
	}
}

func TestParseBranchKind(t *testing.T) {
	for _, toPin := range []struct {
		in         string
		expected   BranchKind
		wantsError bool
	}{
		{in: "feature", expected: KindFeature},
		{in: "bugfix", expected: KindBugfix},
		{in: "hotfix", expected: KindHotfix},
		{in: " Feature ", expected: KindFeature},
		{in: "release", wantsError: true},
		{in: "", wantsError: true},
	} {
		testcase := toPin
		t.Run(testcase.in, func(t *testing.T) {
			t.Parallel()
			kind, err := ParseBranchKind(testcase.in)
			if testcase.wantsError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, kind)
		})
	}
}

func TestBranchKindNames(t *testing.T) {
	require.Equal(t, "feature/login", KindFeature.QualifiedName("login"))
	require.Equal(t, "bugfix/crash", KindBugfix.QualifiedName("crash"))
	require.Equal(t, "hotfix/cve", KindHotfix.QualifiedName("cve"))
	require.Equal(t, "feature/", KindFeature.Prefix())
}

func TestDivergenceState(t *testing.T) {
	for _, toPin := range []struct {
		name     string
		ahead    int
		behind   int
		expected SyncState
	}{
		{name: "in sync", ahead: 0, behind: 0, expected: InSync},
		{name: "ahead only", ahead: 3, behind: 0, expected: AheadOnly},
		{name: "behind only", ahead: 0, behind: 2, expected: BehindOnly},
		{name: "diverged", ahead: 3, behind: 2, expected: Diverged},
		{name: "negative is invalid", ahead: -1, behind: 0, expected: InvalidSync},
	} {
		testcase := toPin
		t.Run(testcase.name, func(t *testing.T) {
			t.Parallel()
			d := BranchDivergence{Branch: "feature/x", Base: "main", Ahead: testcase.ahead, Behind: testcase.behind}
			assert.Equal(t, testcase.expected, d.State())
		})
	}
}

func TestSyncStateString(t *testing.T) {
	assert.Equal(t, "in-sync", InSync.String())
	assert.Equal(t, "ahead", AheadOnly.String())
	assert.Equal(t, "behind", BehindOnly.String())
	assert.Equal(t, "diverged", Diverged.String())
	assert.Equal(t, "invalid", InvalidSync.String())
}
