package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthReportIssueCount(t *testing.T) {
	var r HealthReport
	r.Branch = "feature/login"
	assert.True(t, r.Healthy())
	assert.Equal(t, 0, r.IssueCount())

	r.Add(CategoryRemoteSync, SeverityInfo, "no remote copy of %s", r.Branch)
	assert.True(t, r.Healthy(), "info findings do not count as issues")

	r.Add(CategoryBaseCurrency, SeverityWarning, "behind main by %d commits", 4)
	r.Add(CategoryConflictRisk, SeverityCritical, "predicted conflicts in %d files", 2)
	assert.False(t, r.Healthy())
	assert.Equal(t, 2, r.IssueCount())
	assert.Len(t, r.Findings, 3)
	assert.Equal(t, "behind main by 4 commits", r.Findings[1].Message)
}

func TestFindingStrings(t *testing.T) {
	assert.Equal(t, "remote-sync", CategoryRemoteSync.String())
	assert.Equal(t, "base-currency", CategoryBaseCurrency.String())
	assert.Equal(t, "staleness", CategoryStaleness.String())
	assert.Equal(t, "working-tree", CategoryWorkingTree.String())
	assert.Equal(t, "conflict-risk", CategoryConflictRisk.String())

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "critical", SeverityCritical.String())
}
