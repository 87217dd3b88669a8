package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoud/cv-studio/internal/types"
)

func TestLoadCV_DefaultWithoutPath(t *testing.T) {
	cv, err := loadCV("")

	require.NoError(t, err)
	assert.Equal(t, types.DefaultCV().Basics.Name, cv.Basics.Name)
}

func TestLoadCV_FromFile(t *testing.T) {
	source := types.DefaultCV()
	source.Basics.Location.Address = "12 Tahrir Square"
	source.Basics.Name = "File Person"

	data, err := json.Marshal(source)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cv, err := loadCV(path)

	require.NoError(t, err)
	assert.Equal(t, "File Person", cv.Basics.Name)
}

func TestLoadCV_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := loadCV(path)
	assert.Error(t, err)
}

func TestLoadCV_MissingFile(t *testing.T) {
	_, err := loadCV("/nonexistent/cv.json")
	assert.Error(t, err)
}
