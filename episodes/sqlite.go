package episodes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore archives records in a SQLite database.
type SQLiteStore struct {
	db        *sql.DB
	tableName string
}

// SQLiteOptions configures the SQLite connection.
type SQLiteOptions struct {
	Path      string
	TableName string // default "episodes"
}

// NewSQLiteStore opens the database and ensures the schema exists.
func NewSQLiteStore(opts SQLiteOptions) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "episodes"
	}

	store := &SQLiteStore{db: db, tableName: tableName}
	if err := store.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			problem TEXT NOT NULL,
			record TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s (created_at);
	`, s.tableName, s.tableName, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a record.
func (s *SQLiteStore) Save(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, problem, record, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			problem = excluded.problem,
			record = excluded.record,
			created_at = excluded.created_at
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query, record.ID, record.Problem, string(data), record.CreatedAt); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Load returns the record with the given id.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Record, error) {
	query := fmt.Sprintf("SELECT record FROM %s WHERE id = ?", s.tableName)

	var data string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

// List returns all records, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]*Record, error) {
	query := fmt.Sprintf("SELECT record FROM %s ORDER BY created_at ASC", s.tableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		var record Record
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}
	return records, nil
}

// Delete removes a record if present.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.tableName)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
