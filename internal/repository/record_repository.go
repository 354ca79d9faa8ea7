package repository

import (
	"context"
	"database/sql"
	"time"

	"candor/internal/model"
	"candor/internal/snowflake"
)

// dbtx is the subset of *sql.DB / *sql.Tx the repositories need.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type RecordRepository interface {
	Save(ctx context.Context, record model.TranslationRecord) (model.TranslationRecord, error)
	ListRecent(ctx context.Context, limit int) ([]model.TranslationRecord, error)
}

type recordRepository struct {
	db dbtx
}

func NewRecordRepository(db dbtx) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Save(ctx context.Context, record model.TranslationRecord) (model.TranslationRecord, error) {
	record.ID = snowflake.NextID()
	record.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translation_records (id, phrase, translation, model, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID, record.Phrase, record.Translation, record.Model, record.Source, formatTime(record.CreatedAt),
	)
	if err != nil {
		return model.TranslationRecord{}, err
	}
	return record, nil
}

func (r *recordRepository) ListRecent(ctx context.Context, limit int) ([]model.TranslationRecord, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, phrase, translation, model, source, created_at
		 FROM translation_records ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.TranslationRecord
	for rows.Next() {
		var rec model.TranslationRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Phrase, &rec.Translation, &rec.Model, &rec.Source, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, _ = parseTime(createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
