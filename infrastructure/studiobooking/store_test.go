package studiobooking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStore_WriteAndReadCSV(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	records := [][]string{{"date", "class_booked"}, {"15/1/24 9:30 AM", "Yoga, manhã"}}
	path := filepath.Join(dir, "nested", "out.csv")

	require.NoError(t, store.Write(path, records))

	got, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestStore_ReadXLSX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "member.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"x", "date"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"", "Jane Doe Attendance"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := NewStore().Read(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe Attendance", got[1][1])
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.xlsx", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	names, err := NewStore().List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xlsx", "b.csv"}, names)
}

func TestStore_Errors(t *testing.T) {
	store := NewStore()

	_, err := store.List(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = store.Read("file.xls")
	assert.Error(t, err)

	_, err = store.Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
