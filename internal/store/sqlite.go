package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"prai/internal/review"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reviews (
	id           TEXT PRIMARY KEY,
	repo         TEXT NOT NULL,
	pr           INTEGER NOT NULL,
	head_sha     TEXT NOT NULL DEFAULT '',
	requested_by TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL,
	severity     TEXT NOT NULL DEFAULT '',
	report       TEXT,
	error        TEXT NOT NULL DEFAULT '',
	duration_ms  INTEGER NOT NULL DEFAULT 0,
	created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reviews_repo_pr ON reviews(repo, pr, created_at DESC);
`

// SQLite persists review records in a local database file.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Save(ctx context.Context, rec Record) error {

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var reportJSON []byte
	if rec.Report != nil {
		b, err := json.Marshal(rec.Report)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		reportJSON = b
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews (id, repo, pr, head_sha, requested_by, status, severity, report, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Repo,
		rec.PR,
		rec.HeadSHA,
		rec.RequestedBy,
		string(rec.Status),
		string(rec.Severity),
		nullable(reportJSON),
		rec.Error,
		rec.Duration.Milliseconds(),
		rec.CreatedAt,
	)
	return err
}

func (s *SQLite) Latest(ctx context.Context, repo string, pr int) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, repo, pr, head_sha, requested_by, status, severity, report, error, duration_ms, created_at
		FROM reviews WHERE repo = ? AND pr = ?
		ORDER BY created_at DESC LIMIT 1
	`, repo, pr)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, ErrNoReview
	}
	return rec, err
}

func (s *SQLite) List(ctx context.Context, repo string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, repo, pr, head_sha, requested_by, status, severity, report, error, duration_ms, created_at
		FROM reviews WHERE repo = ?
		ORDER BY created_at DESC LIMIT ?
	`, repo, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRecord(row scannable) (Record, error) {

	var rec Record
	var status, severity string
	var reportJSON sql.NullString
	var durationMS int64

	err := row.Scan(
		&rec.ID,
		&rec.Repo,
		&rec.PR,
		&rec.HeadSHA,
		&rec.RequestedBy,
		&status,
		&severity,
		&reportJSON,
		&rec.Error,
		&durationMS,
		&rec.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	rec.Status = ReviewStatus(status)
	rec.Severity = review.Severity(severity)
	rec.Duration = time.Duration(durationMS) * time.Millisecond

	if reportJSON.Valid && reportJSON.String != "" {
		var r review.Report
		if err := json.Unmarshal([]byte(reportJSON.String), &r); err != nil {
			return Record{}, fmt.Errorf("unmarshal report: %w", err)
		}
		rec.Report = &r
	}

	return rec, nil
}

func nullable(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
