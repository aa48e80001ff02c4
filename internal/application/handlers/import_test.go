package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/logitrust/internal/infrastructure/parsers"
)

func TestImportHandler_Import(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewImportHandler(NewPlaceHandler(site))

	rows := []parsers.RawPlace{
		{Name: "신규 창고", Address: "평택", LineNum: 2},
		{ID: "p1", Name: "중복", Address: "x", LineNum: 3},
		{Name: "", Address: "y", LineNum: 4},
		{Name: "항만 B", Address: "부산", PlaceType: "port", LineNum: 5},
	}

	result, err := handler.Import(t.Context(), rows, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Message, "already exists")
	assert.Equal(t, 4, result.Errors[1].Line)
	assert.Len(t, site.Places(), 12)
}

func TestImportHandler_DryRun(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewImportHandler(NewPlaceHandler(site))

	rows := []parsers.RawPlace{
		{Name: "A", Address: "a", PlaceType: "factory", LineNum: 1},
		{Name: "B", Address: "b", PlaceType: "airport", LineNum: 2},
	}

	result, err := handler.Import(t.Context(), rows, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Contains(t, result.Errors[0].Message, "airport")
	assert.Len(t, site.Places(), 10)
}

func TestImportHandler_Handle(t *testing.T) {
	site, _ := newDemoSite(t)
	handler := NewImportHandler(NewPlaceHandler(site))
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "sites.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,address,place_type\n냉동창고,김포,WAREHOUSE\n"), 0o644))

	result, err := handler.Handle(t.Context(), csvPath, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	txtPath := filepath.Join(dir, "sites.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("[]"), 0o644))

	_, err = handler.Handle(t.Context(), txtPath, ImportOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	result, err = handler.Handle(t.Context(), txtPath, ImportOptions{Format: "json"})
	require.NoError(t, err)
	assert.Zero(t, result.Imported)

	_, err = handler.Handle(t.Context(), filepath.Join(dir, "missing.csv"), ImportOptions{})
	assert.ErrorContains(t, err, "opening file")
}
