package catalog

import (
	"sync"
	"testing"

	"github.com/devfolio/dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplaceNotifiesListeners(t *testing.T) {
	store := NewStore(Snapshot{})
	assert.Equal(t, uint64(1), store.Version())

	var seen []uint64
	store.Subscribe(func(s Snapshot) { seen = append(seen, s.Version) })

	next, err := store.Replace(SampleSnapshot())
	require.NoError(t, err)

	assert.Equal(t, uint64(2), next.Version)
	assert.Equal(t, []uint64{1, 2}, seen)
	assert.Len(t, store.Snapshot().Projects, 3)
}

func TestStoreReplaceKeepsSnapshotOnInvalidData(t *testing.T) {
	store := NewStore(SampleSnapshot())

	notified := 0
	store.Subscribe(func(Snapshot) { notified++ })

	invalid := SampleSnapshot()
	invalid.Projects = append(invalid.Projects, invalid.Projects[0])

	_, err := store.Replace(invalid)
	assert.ErrorIs(t, err, model.ErrInvalidCatalog)
	assert.Equal(t, uint64(1), store.Version())
	assert.Len(t, store.Snapshot().Projects, 3)
	assert.Equal(t, 1, notified)
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(s *Snapshot)
		expectError bool
	}{
		{name: "sample data", mutate: func(*Snapshot) {}},
		{name: "empty catalog", mutate: func(s *Snapshot) { *s = Snapshot{} }},
		{
			name:        "duplicate period",
			mutate:      func(s *Snapshot) { s.Activity = append(s.Activity, s.Activity[0]) },
			expectError: true,
		},
		{
			name:        "negative stars",
			mutate:      func(s *Snapshot) { s.Projects[0].Stars = -1 },
			expectError: true,
		},
		{
			name:        "negative activity",
			mutate:      func(s *Snapshot) { s.Activity[2].Commits = -5 },
			expectError: true,
		},
		{
			name:        "no contributor",
			mutate:      func(s *Snapshot) { s.Projects[1].Contributors = 0 },
			expectError: true,
		},
		{
			name:        "malformed date",
			mutate:      func(s *Snapshot) { s.Projects[2].LastUpdate = "March 2024" },
			expectError: true,
		},
		{
			name:        "task on unknown project",
			mutate:      func(s *Snapshot) { s.Tasks[0].ProjectID = 42 },
			expectError: true,
		},
		{
			name:        "task with unknown status",
			mutate:      func(s *Snapshot) { s.Tasks[1].Status = "bogus" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SampleSnapshot()
			tt.mutate(&s)

			if tt.expectError {
				assert.ErrorIs(t, s.Validate(), model.ErrInvalidCatalog)
			} else {
				assert.NoError(t, s.Validate())
			}
		})
	}
}

func TestSnapshotProject(t *testing.T) {
	s := SampleSnapshot()

	p, found := s.Project(2)
	assert.True(t, found)
	assert.Equal(t, "Nuxt3 Chat", p.Name)

	_, found = s.Project(99)
	assert.False(t, found)
}

func TestStoreConcurrentReplace(t *testing.T) {
	store := NewStore(SampleSnapshot())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := store.Replace(SampleSnapshot())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			assert.Len(t, store.Snapshot().Projects, 3)
		}()
	}
	wg.Wait()

	// every replace bumps the version exactly once
	assert.Equal(t, uint64(9), store.Version())
}
