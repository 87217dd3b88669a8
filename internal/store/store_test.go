package store

import (
	"testing"

	"github.com/mahmoud/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsIsolated(t *testing.T) {
	s := New(types.DefaultCV())

	snap := s.Snapshot()
	snap.Basics.Name = "Someone Else"
	snap.Work[0].Highlights[0] = "tampered"

	current := s.Snapshot()
	assert.Equal(t, "Mahmoud Khashaba", current.Basics.Name)
	assert.NotEqual(t, "tampered", current.Work[0].Highlights[0])
}

func TestReplaceSwapsWholeDocument(t *testing.T) {
	s := New(types.DefaultCV())

	next := &types.CVData{Basics: types.Basics{Name: "Replacement"}}
	s.Replace(next)

	assert.Equal(t, "Replacement", s.Snapshot().Basics.Name)

	// Mutating the caller's copy after Replace must not leak into the store.
	next.Basics.Name = "Mutated"
	assert.Equal(t, "Replacement", s.Snapshot().Basics.Name)
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name  string
		path  []string
		value string
		read  func(cv *types.CVData) string
	}{
		{
			name:  "basics name",
			path:  []string{"basics", "name"},
			value: "Grace Hopper",
			read:  func(cv *types.CVData) string { return cv.Basics.Name },
		},
		{
			name:  "location city",
			path:  []string{"basics", "location", "city"},
			value: "Alexandria",
			read:  func(cv *types.CVData) string { return cv.Basics.Location.City },
		},
		{
			name:  "profile url",
			path:  []string{"basics", "profiles", "1", "url"},
			value: "https://example.com",
			read:  func(cv *types.CVData) string { return cv.Basics.Profiles[1].URL },
		},
		{
			name:  "work position",
			path:  []string{"work", "0", "position"},
			value: "Principal Engineer",
			read:  func(cv *types.CVData) string { return cv.Work[0].Position },
		},
		{
			name:  "work highlight",
			path:  []string{"work", "1", "highlights", "0"},
			value: "Rewrote the billing system",
			read:  func(cv *types.CVData) string { return cv.Work[1].Highlights[0] },
		},
		{
			name:  "skill keyword",
			path:  []string{"skills", "0", "keywords", "2"},
			value: "Go",
			read:  func(cv *types.CVData) string { return cv.Skills[0].Keywords[2] },
		},
		{
			name:  "education institution",
			path:  []string{"education", "0", "institution"},
			value: "Cairo University",
			read:  func(cv *types.CVData) string { return cv.Education[0].Institution },
		},
		{
			name:  "project description",
			path:  []string{"projects", "0", "description"},
			value: "A rewritten description",
			read:  func(cv *types.CVData) string { return cv.Projects[0].Description },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(types.DefaultCV())

			require.NoError(t, s.UpdateField(tt.path, tt.value))
			assert.Equal(t, tt.value, tt.read(s.Snapshot()))
		})
	}
}

func TestUpdateFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		path []string
	}{
		{"empty path", nil},
		{"unknown section", []string{"hobbies", "0"}},
		{"unknown basics field", []string{"basics", "nickname"}},
		{"index out of range", []string{"work", "99", "company"}},
		{"index not a number", []string{"work", "first", "company"}},
		{"entry without field name", []string{"work", "0"}},
		{"education entry without field name", []string{"education", "0"}},
		{"skills entry without field name", []string{"skills", "0"}},
		{"projects entry without field name", []string{"projects", "0"}},
		{"certificates entry without field name", []string{"certificates", "0"}},
		{"path too deep", []string{"basics", "name", "first"}},
		{"path stops at a list", []string{"work", "0", "highlights"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(types.DefaultCV())
			before := s.Snapshot()

			err := s.UpdateField(tt.path, "value")

			require.Error(t, err)
			var pathErr *PathError
			assert.ErrorAs(t, err, &pathErr)
			// A failed update must leave the document untouched.
			assert.Equal(t, before, s.Snapshot())
		})
	}
}
