package importer

import (
	"testing"

	"github.com/mahmoud/cv-studio/internal/store"
	"github.com/mahmoud/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validCV returns a document that passes the bulk import schema. The schema
// requires a non-empty street address, unlike the scorer which only looks at
// the city.
func validCV() *types.CVData {
	cv := types.DefaultCV()
	cv.Basics.Location.Address = "12 Tahrir Square"
	return cv
}

func TestParse_Valid(t *testing.T) {
	data, err := Export(validCV())
	require.NoError(t, err)

	cv, err := Parse(data)

	require.NoError(t, err)
	assert.Equal(t, validCV(), cv)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"basics": `))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParse_ShapeFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cv *types.CVData)
	}{
		{"missing email", func(cv *types.CVData) { cv.Basics.Email = "" }},
		{"missing name", func(cv *types.CVData) { cv.Basics.Name = "" }},
		{"missing summary", func(cv *types.CVData) { cv.Basics.Summary = "" }},
		{"missing location city", func(cv *types.CVData) { cv.Basics.Location.City = "" }},
		{"work entry without company", func(cv *types.CVData) { cv.Work[0].Company = "" }},
		{"work entry without position", func(cv *types.CVData) { cv.Work[0].Position = "" }},
		{"education entry without institution", func(cv *types.CVData) { cv.Education[0].Institution = "" }},
		{"skill group without level", func(cv *types.CVData) { cv.Skills[0].Level = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := validCV()
			tt.mutate(cv)
			data, err := Export(cv)
			require.NoError(t, err)

			_, err = Parse(data)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Fields)
		})
	}
}

func TestParse_MissingTopLevelSections(t *testing.T) {
	_, err := Parse([]byte(`{"basics": {}}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestImport_RoundTrip(t *testing.T) {
	original := validCV()
	data, err := Export(original)
	require.NoError(t, err)

	s := store.New(&types.CVData{})
	imp := New(s)

	imported, err := imp.Import(data)
	require.NoError(t, err)
	assert.Equal(t, original, imported)
	assert.Equal(t, original, s.Snapshot())
}

func TestImport_RejectionLeavesStoreUntouched(t *testing.T) {
	prior := validCV()
	s := store.New(prior)
	imp := New(s)

	bad := validCV()
	bad.Basics.Email = ""
	data, err := Export(bad)
	require.NoError(t, err)

	_, err = imp.Import(data)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, prior, s.Snapshot())
}

func TestImport_ParseFailureLeavesStoreUntouched(t *testing.T) {
	prior := validCV()
	s := store.New(prior)
	imp := New(s)

	_, err := imp.Import([]byte("not json"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, prior, s.Snapshot())
}
