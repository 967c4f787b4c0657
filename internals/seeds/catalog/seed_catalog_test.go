package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_BundledData(t *testing.T) {
	f, err := LoadFile("data_catalog.json")
	require.NoError(t, err)

	insts := f.InstitutionModels()
	schs := f.ScholarshipModels()
	assert.Len(t, insts, 5)
	assert.Len(t, schs, 4)

	require.NotNil(t, schs[0].ScholarshipDeadline)
	assert.Equal(t, "2026-09-15", schs[0].ScholarshipDeadline.Format("2006-01-02"))
	assert.Nil(t, schs[3].ScholarshipDeadline)
}

func TestLoadFile_SkipsIncompleteEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	body := `{
	  "institutions": [{"id": "00000000-0000-0000-0000-000000000000", "name": "no id"}, {"id": "6f1d2c1e-4b1a-4c55-9a0e-1b2f3c4d5e99", "name": ""}],
	  "scholarships": [{"id": "9a7c0b3e-2d4f-4e61-8b1a-0c2d3e4f5a99", "title": "Ok"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, f.InstitutionModels())
	assert.Len(t, f.ScholarshipModels(), 1)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
