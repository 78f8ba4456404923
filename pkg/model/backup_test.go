package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestNewBackupID(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 15, 2, 0, time.UTC)
	assert.Equal(t, "main_20260301-101502", NewBackupID("main", at))
	assert.Equal(t, "feature__login_20260301-101502", NewBackupID("feature/login", at))

	// ids are sortable by creation time for a given branch
	later := NewBackupID("main", at.Add(time.Second))
	assert.Less(t, NewBackupID("main", at), later)
}

func TestNewBackupIDNormalizesUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	utc := time.Date(2026, 3, 1, 10, 15, 2, 0, time.UTC)
	assert.Equal(t, NewBackupID("main", utc), NewBackupID("main", utc.In(loc)))
}

func TestBackupIDTime(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 15, 2, 0, time.UTC)

	for _, toPin := range []string{"main", "feature/login", "my_branch"} {
		branch := toPin
		t.Run(branch, func(t *testing.T) {
			t.Parallel()
			parsed, err := BackupIDTime(NewBackupID(branch, at))
			require.NoError(t, err)
			assert.True(t, parsed.Equal(at))
		})
	}

	_, err := BackupIDTime("no-separator")
	require.Error(t, err)
	_, err = BackupIDTime("main_")
	require.Error(t, err)
	_, err = BackupIDTime("main_notatime")
	require.Error(t, err)
}

func TestBackupAge(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := BackupDescriptor{
		ID:         NewBackupID("main", created),
		Branch:     "main",
		CreatedAt:  created,
		CommitHash: "a1b2c3d",
	}
	assert.Equal(t, 48*time.Hour, b.Age(created.Add(48*time.Hour)))
	assert.Equal(t, time.Duration(0), b.Age(created.Add(-time.Hour)))
}

func TestValidateBackup(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	valid := BackupDescriptor{
		ID:         NewBackupID("feature/login", created),
		Branch:     "feature/login",
		CreatedAt:  created,
		CreatedBy:  Contributor{Name: "dev1"},
		CommitHash: "a1b2c3d4e5f6",
	}

	tests := []struct {
		name    string
		mutate  func(b BackupDescriptor) BackupDescriptor
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(b BackupDescriptor) BackupDescriptor { return b },
		},
		{
			name: "missing id",
			mutate: func(b BackupDescriptor) BackupDescriptor {
				b.ID = ""
				return b
			},
			wantErr: true,
		},
		{
			name: "invalid branch",
			mutate: func(b BackupDescriptor) BackupDescriptor {
				b.Branch = "bad name"
				return b
			},
			wantErr: true,
		},
		{
			name: "missing commit",
			mutate: func(b BackupDescriptor) BackupDescriptor {
				b.CommitHash = ""
				return b
			},
			wantErr: true,
		},
		{
			name: "missing creation time",
			mutate: func(b BackupDescriptor) BackupDescriptor {
				b.CreatedAt = time.Time{}
				return b
			},
			wantErr: true,
		},
	}
	for _, tts := range tests {
		tt := tts
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateBackup(tt.mutate(valid)); (err != nil) != tt.wantErr {
				t.Errorf("ValidateBackup() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackupRoundtripsYAML(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := BackupDescriptor{
		ID:          NewBackupID("main", created),
		Branch:      "main",
		Description: "before release merge",
		CreatedAt:   created,
		CreatedBy:   Contributor{Name: "dev1", Email: "dev1@example.com"},
		CommitHash:  "a1b2c3d4e5f6",
	}
	require.NoError(t, ValidateBackup(b))
	require.Contains(t, b.String(), b.ID)

	buf, err := yaml.Marshal(b)
	require.NoError(t, err)

	var back BackupDescriptor
	require.NoError(t, yaml.Unmarshal(buf, &back))
	assert.Equal(t, b.ID, back.ID)
	assert.Equal(t, b.CreatedBy, back.CreatedBy)
	assert.True(t, b.CreatedAt.Equal(back.CreatedAt))
}
