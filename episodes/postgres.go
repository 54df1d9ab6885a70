package episodes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the store needs, so tests can
// substitute a mock.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore archives records in PostgreSQL.
type PostgresStore struct {
	pool      DBPool
	tableName string
}

// PostgresOptions configures the Postgres connection.
type PostgresOptions struct {
	ConnString string
	TableName  string // default "episodes"
}

// NewPostgresStore creates a store over a new connection pool.
func NewPostgresStore(ctx context.Context, opts PostgresOptions) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return NewPostgresStoreWithPool(pool, opts.TableName), nil
}

// NewPostgresStoreWithPool creates a store over an existing pool.
func NewPostgresStoreWithPool(pool DBPool, tableName string) *PostgresStore {
	if tableName == "" {
		tableName = "episodes"
	}
	return &PostgresStore{pool: pool, tableName: tableName}
}

// InitSchema creates the table if it doesn't exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			problem TEXT NOT NULL,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_%s_created_at ON %s (created_at);
	`, s.tableName, s.tableName, s.tableName)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Save inserts or replaces a record.
func (s *PostgresStore) Save(ctx context.Context, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, problem, record, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			problem = EXCLUDED.problem,
			record = EXCLUDED.record,
			created_at = EXCLUDED.created_at
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query, record.ID, record.Problem, data, record.CreatedAt); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Load returns the record with the given id.
func (s *PostgresStore) Load(ctx context.Context, id string) (*Record, error) {
	query := fmt.Sprintf("SELECT record FROM %s WHERE id = $1", s.tableName)

	var data []byte
	err := s.pool.QueryRow(ctx, query, id).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load record: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &record, nil
}

// List returns all records, oldest first.
func (s *PostgresStore) List(ctx context.Context) ([]*Record, error) {
	query := fmt.Sprintf("SELECT record FROM %s ORDER BY created_at ASC", s.tableName)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
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
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.tableName)
	if _, err := s.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
