package vocab

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Writer is the ingestion-side counterpart of Inventory.
type Writer interface {
	// Exists reports whether an item with the same word (case-insensitive)
	// and kind is already in the inventory.
	Exists(ctx context.Context, word string, kind Kind) (bool, error)

	// Create persists a new item and returns it with its assigned id.
	Create(ctx context.Context, item Item) (Item, error)
}

// ImportResult summarizes one spreadsheet import.
type ImportResult struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// ImportXLSX reads vocabulary rows from the first sheet of an .xlsx file
// and inserts the ones not already present. Expected columns:
// word, kind (WORD/IDIOM), difficulty (1-3), meaning, part of speech,
// example. The first row is treated as a header.
func ImportXLSX(ctx context.Context, w Writer, path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.Processed++

		item, err := parseRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		exists, err := w.Exists(ctx, item.Word, item.Kind)
		if err != nil {
			return nil, fmt.Errorf("check existing word %q: %w", item.Word, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		if _, err := w.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("insert word %q: %w", item.Word, err)
		}
		result.Created++
	}

	return result, nil
}

func parseRow(row []string) (Item, error) {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	word := col(0)
	if word == "" {
		return Item{}, fmt.Errorf("empty word")
	}

	kind := Kind(strings.ToUpper(col(1)))
	if kind == "" {
		kind = KindWord
	}
	if kind != KindWord && kind != KindIdiom {
		return Item{}, fmt.Errorf("unknown kind %q", col(1))
	}

	difficulty, err := strconv.Atoi(col(2))
	if err != nil || difficulty < DifficultyBasic || difficulty > DifficultyExpert {
		return Item{}, fmt.Errorf("invalid difficulty %q", col(2))
	}

	meaning := col(3)
	if meaning == "" {
		return Item{}, fmt.Errorf("empty meaning")
	}

	return Item{
		Word:         word,
		Kind:         kind,
		Difficulty:   difficulty,
		Meaning:      meaning,
		PartOfSpeech: col(4),
		Example:      col(5),
	}, nil
}
