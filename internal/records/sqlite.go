package records

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	lang       TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	questions  INTEGER NOT NULL,
	success    INTEGER NOT NULL,
	payload    TEXT NOT NULL
);`

// SQLiteStore keeps records in a single SQLite table, the full record as JSON
// next to a few columns for listing.
type SQLiteStore struct {
	db   *sqlx.DB
	path string
}

type recordRow struct {
	ID         string `db:"id"`
	Mode       string `db:"mode"`
	CreatedAt  string `db:"created_at"`
	Lang       string `db:"lang"`
	Difficulty string `db:"difficulty"`
	Questions  int    `db:"questions"`
	Success    bool   `db:"success"`
	Payload    string `db:"payload"`
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	db, err := sqlx.ConnectContext(ctx, "sqlite3", fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	// One writer keeps concurrent finalizations serialized.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(time.Hour)
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, r Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	row := recordRow{
		ID:         r.ID,
		Mode:       string(r.Mode),
		CreatedAt:  r.Timestamp.UTC().Format(time.RFC3339Nano),
		Lang:       string(r.Lang),
		Difficulty: r.Difficulty.String(),
		Questions:  r.Questions,
		Success:    r.Success,
		Payload:    string(payload),
	}
	stmt := `INSERT INTO records (id, mode, created_at, lang, difficulty, questions, success, payload)
VALUES (:id, :mode, :created_at, :lang, :difficulty, :questions, :success, :payload)`
	if _, err = s.db.NamedExecContext(ctx, stmt, row); err != nil {
		return "", fmt.Errorf("insert record: %w", err)
	}
	return fmt.Sprintf("%s#%s", s.path, r.ID), nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	var rows []recordRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM records ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		var r Record
		if err := json.Unmarshal([]byte(row.Payload), &r); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", row.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
