package store

import (
	"context"
	"fmt"

	"github.com/example/vocaquiz/ent"
	entlog "github.com/example/vocaquiz/ent/generationlog"
)

// LedgerRepo reads the generation ledger. Writes go through
// Store.CommitBatch so a ledger row is never separated from its
// questions.
type LedgerRepo struct {
	client *ent.Client
}

// List returns ledger entries newest first, up to limit (0 = unlimited).
func (r *LedgerRepo) List(ctx context.Context, limit int) ([]LedgerEntry, error) {
	q := r.client.GenerationLog.Query().
		Order(ent.Desc(entlog.FieldCreatedAt), ent.Desc(entlog.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list generation ledger: %w", err)
	}

	entries := make([]LedgerEntry, len(rows))
	for i, row := range rows {
		entries[i] = ledgerEntry(row)
	}
	return entries, nil
}

// GetByBatch returns the entry for a batch id, or nil if not found.
func (r *LedgerRepo) GetByBatch(ctx context.Context, batchID string) (*LedgerEntry, error) {
	row, err := r.client.GenerationLog.Query().
		Where(entlog.BatchIDEQ(batchID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ledger entry %s: %w", batchID, err)
	}
	entry := ledgerEntry(row)
	return &entry, nil
}

func ledgerEntry(row *ent.GenerationLog) LedgerEntry {
	return LedgerEntry{
		ID: row.ID,
		BatchRecord: BatchRecord{
			BatchID:          row.BatchID,
			Date:             row.GeneratedDate,
			Difficulty:       row.Difficulty,
			Requested:        row.Requested,
			Succeeded:        row.Succeeded,
			Failed:           row.Failed,
			Model:            row.Model,
			PromptTokens:     row.PromptTokens,
			CompletionTokens: row.CompletionTokens,
			TotalCost:        row.TotalCost,
			Status:           row.Status,
			ErrorMessage:     row.ErrorMessage,
		},
		CreatedAt: row.CreatedAt,
	}
}
