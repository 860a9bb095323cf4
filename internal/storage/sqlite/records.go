package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contas/internal/models"
)

// InsertRecord persists a financial record as a JSON document and returns
// the generated identifier.
func (s *SQLiteStore) InsertRecord(ctx context.Context, kind models.RecordKind, rec *models.FinancialRecord) (string, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO records (id, kind, doc, created_at) VALUES (?, ?, ?, ?)",
		id, string(kind), string(doc), time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert record: %w", err)
	}

	return id, nil
}

// FindRecords returns every document of the given collection in insertion
// order.
func (s *SQLiteStore) FindRecords(ctx context.Context, kind models.RecordKind) ([]models.StoredRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, doc, created_at FROM records WHERE kind = ? ORDER BY created_at, id",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.StoredRecord
	for rows.Next() {
		var (
			id        string
			doc       string
			createdAt int64
		)
		if err := rows.Scan(&id, &doc, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		var rec models.FinancialRecord
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", id, err)
		}

		records = append(records, models.StoredRecord{
			ID:        id,
			Kind:      kind,
			User:      rec.User,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// UpdateRecord replaces the top-level fields of the stored document with
// those present in fields, mirroring a document store's set-by-id update.
// Returns (nil, nil) if the id does not exist in the collection.
func (s *SQLiteStore) UpdateRecord(ctx context.Context, kind models.RecordKind, id string, fields map[string]json.RawMessage) (*models.StoredRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		doc       string
		createdAt int64
	)
	err = tx.QueryRowContext(ctx,
		"SELECT doc, created_at FROM records WHERE id = ? AND kind = ?",
		id, string(kind),
	).Scan(&doc, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil // Record not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal([]byte(doc), &merged); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", id, err)
	}
	for key, value := range fields {
		merged[key] = value
	}

	updated, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE records SET doc = ? WHERE id = ?",
		string(updated), id,
	); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	var rec models.FinancialRecord
	if err := json.Unmarshal(updated, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode updated record: %w", err)
	}

	return &models.StoredRecord{
		ID:        id,
		Kind:      kind,
		User:      rec.User,
		CreatedAt: createdAt,
	}, nil
}

// DeleteRecord removes a document by id, reporting whether a document was
// actually removed.
func (s *SQLiteStore) DeleteRecord(ctx context.Context, kind models.RecordKind, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE id = ? AND kind = ?",
		id, string(kind),
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}
	return affected > 0, nil
}
