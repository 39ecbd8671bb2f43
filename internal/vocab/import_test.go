package vocab

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeWriter struct {
	existing map[string]bool
	created  []Item
}

func (f *fakeWriter) Exists(_ context.Context, word string, kind Kind) (bool, error) {
	return f.existing[strings.ToLower(word)+"|"+string(kind)], nil
}

func (f *fakeWriter) Create(_ context.Context, item Item) (Item, error) {
	item.ID = len(f.created) + 1
	f.created = append(f.created, item)
	return item, nil
}

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportXLSX(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "kind", "difficulty", "meaning", "part of speech", "example"},
		{"negotiate", "WORD", 2, "交渉する", "verb", "We negotiated a new contract."},
		{"in charge of", "IDIOM", 1, "～を担当して", "", ""},
		{"duplicate", "WORD", 1, "複製"},
	})

	w := &fakeWriter{existing: map[string]bool{"duplicate|WORD": true}}
	result, err := ImportXLSX(context.Background(), w, path)
	require.NoError(t, err)

	require.Equal(t, 3, result.Processed)
	require.Equal(t, 2, result.Created)
	require.Equal(t, 1, result.Skipped)
	require.Empty(t, result.Errors)

	require.Equal(t, "negotiate", w.created[0].Word)
	require.Equal(t, KindWord, w.created[0].Kind)
	require.Equal(t, 2, w.created[0].Difficulty)
	require.Equal(t, KindIdiom, w.created[1].Kind)
}

func TestImportXLSX_InvalidRows(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"word", "kind", "difficulty", "meaning"},
		{"", "WORD", 1, "空"},
		{"ok", "WORD", 9, "難易度不正"},
		{"fine", "WORD", 1, "良い"},
	})

	w := &fakeWriter{existing: map[string]bool{}}
	result, err := ImportXLSX(context.Background(), w, path)
	require.NoError(t, err)

	require.Equal(t, 3, result.Processed)
	require.Equal(t, 1, result.Created)
	require.Len(t, result.Errors, 2)
}
