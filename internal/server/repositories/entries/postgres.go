// Package entries provides the PostgreSQL-backed repository of diary entries.
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/dmitrijs2005/picdiary/internal/dbx"
	"github.com/dmitrijs2005/picdiary/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const entryColumns = `id, username, sequence_number, title, body, entry_date, created_at, image_key`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.DiaryEntry, error) {
	var (
		e        models.DiaryEntry
		imageKey sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Owner, &e.SequenceNumber, &e.Title, &e.Body, &e.EntryDate, &e.CreatedAt, &imageKey); err != nil {
		return nil, err
	}
	e.ImageKey = imageKey.String
	return &e, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Create inserts the entry and fills in its ID.
func (r *PostgresRepository) Create(ctx context.Context, e *models.DiaryEntry) error {
	query := `
		INSERT INTO diary_entries (username, sequence_number, title, body, entry_date, created_at, image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		e.Owner, e.SequenceNumber, e.Title, e.Body, e.EntryDate, e.CreatedAt, nullable(e.ImageKey)).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the owner's entry with the given sequence number.
func (r *PostgresRepository) Get(ctx context.Context, owner string, seq int) (*models.DiaryEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM diary_entries
		WHERE username = $1 AND sequence_number = $2
	`
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, owner, seq))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, owner string, seq int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM diary_entries WHERE username = $1 AND sequence_number = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, owner, seq).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

// List returns all entries of owner ordered by sequence number.
func (r *PostgresRepository) List(ctx context.Context, owner string) ([]*models.DiaryEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM diary_entries
		WHERE username = $1
		ORDER BY sequence_number
	`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.DiaryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateText replaces title and body in place.
func (r *PostgresRepository) UpdateText(ctx context.Context, owner string, seq int, title, body string) error {
	query := `
		UPDATE diary_entries SET title = $3, body = $4
		WHERE username = $1 AND sequence_number = $2
	`
	res, err := r.db.ExecContext(ctx, query, owner, seq, title, body)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, owner string, seq int) (string, error) {
	query := `
		DELETE FROM diary_entries
		WHERE username = $1 AND sequence_number = $2
		RETURNING image_key
	`
	var key sql.NullString
	if err := r.db.QueryRowContext(ctx, query, owner, seq).Scan(&key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return key.String, nil
}

func (r *PostgresRepository) ShiftDown(ctx context.Context, owner string, seq int) (int64, error) {
	query := `
		UPDATE diary_entries SET sequence_number = sequence_number - 1
		WHERE username = $1 AND sequence_number > $2
	`
	res, err := r.db.ExecContext(ctx, query, owner, seq)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
