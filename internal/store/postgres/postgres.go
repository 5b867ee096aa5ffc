// Package postgres implements the store contract on a relational
// backend: one table per collection holding the record as JSONB next to
// a BIGSERIAL id. Same semantics as the file driver, different
// durability story.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

const pqUniqueViolation = "23505"

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type Store struct {
	cfg         Config
	collections []string
	db          *sqlx.DB
}

func New(cfg Config, collections []string) *Store {
	return &Store{cfg: cfg, collections: collections}
}

// Open connects and creates any missing collection tables. Existing
// tables and their rows are left untouched.
func (s *Store) Open(ctx context.Context) error {
	if s.db == nil {
		db, err := sqlx.ConnectContext(ctx, "postgres", s.cfg.DSN())
		if err != nil {
			return apperrors.NewStoreUnavailable(err)
		}
		s.db = db
	}

	for _, name := range s.collections {
		query := fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (id BIGSERIAL PRIMARY KEY, data JSONB NOT NULL)`,
			pq.QuoteIdentifier(name),
		)
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return apperrors.NewStoreUnavailable(err)
		}
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context, collection string) ([]store.Record, error) {
	query := fmt.Sprintf(`SELECT id, data FROM %s ORDER BY id`, pq.QuoteIdentifier(collection))
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	defer rows.Close()

	out := []store.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewStoreUnavailable(err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, collection string, id int64) (store.Record, error) {
	query := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, pq.QuoteIdentifier(collection))
	var raw []byte
	err := s.db.QueryRowxContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("record", fmt.Errorf("%s/%d", collection, id))
	}
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	rec, err := decodeData(raw)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	rec["id"] = id
	return rec, nil
}

func (s *Store) Insert(ctx context.Context, collection string, rec store.Record) (int64, error) {
	data, err := encodeData(rec)
	if err != nil {
		return 0, apperrors.NewStoreUnavailable(err)
	}

	if id, supplied := store.IDOf(rec); supplied {
		query := fmt.Sprintf(`INSERT INTO %s (id, data) VALUES ($1, $2)`, pq.QuoteIdentifier(collection))
		if _, err := s.db.ExecContext(ctx, query, id, data); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
				return 0, apperrors.NewDuplicateKey(collection, id)
			}
			return 0, apperrors.NewStoreUnavailable(err)
		}
		// Keep the sequence ahead of caller-supplied ids.
		bump := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`,
			collection, pq.QuoteIdentifier(collection),
		)
		if _, err := s.db.ExecContext(ctx, bump); err != nil {
			return 0, apperrors.NewStoreUnavailable(err)
		}
		return id, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (data) VALUES ($1) RETURNING id`, pq.QuoteIdentifier(collection))
	var id int64
	if err := s.db.QueryRowxContext(ctx, query, data).Scan(&id); err != nil {
		return 0, apperrors.NewStoreUnavailable(err)
	}
	return id, nil
}

// Merge uses the JSONB concatenation operator, so only the fields
// present in partial are replaced.
func (s *Store) Merge(ctx context.Context, collection string, id int64, partial store.Record) error {
	data, err := encodeData(partial)
	if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	query := fmt.Sprintf(`UPDATE %s SET data = data || $2 WHERE id = $1`, pq.QuoteIdentifier(collection))
	res, err := s.db.ExecContext(ctx, query, id, data)
	if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	if affected == 0 {
		return apperrors.NewNotFound("record", fmt.Errorf("%s/%d", collection, id))
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection string, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, pq.QuoteIdentifier(collection))
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping reports backend reachability for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return apperrors.NewStoreUnavailable(errors.New("not opened"))
	}
	return s.db.PingContext(ctx)
}

func encodeData(rec store.Record) ([]byte, error) {
	stripped := make(store.Record, len(rec))
	for k, v := range rec {
		if k == "id" {
			continue
		}
		stripped[k] = v
	}
	return json.Marshal(stripped)
}

func decodeData(raw []byte) (store.Record, error) {
	var rec store.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func scanRecord(rows *sqlx.Rows) (store.Record, error) {
	var id int64
	var raw []byte
	if err := rows.Scan(&id, &raw); err != nil {
		return nil, err
	}
	rec, err := decodeData(raw)
	if err != nil {
		return nil, err
	}
	rec["id"] = id
	return rec, nil
}
