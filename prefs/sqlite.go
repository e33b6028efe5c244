package prefs

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLite keeps each slot as a row of a key/value table.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "open preferences db")
	}
	s, err := NewSQLiteDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteDB uses an already open database, creating the table if needed.
func NewSQLiteDB(db *sql.DB) (*SQLite, error) {
	if _, err := db.Exec(Schema); err != nil {
		return nil, errors.Wrap(err, "create preferences schema")
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) (Preferences, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences WHERE key IN (?, ?)`,
		KeyAccountBalance, KeyRiskPercentage)
	if err != nil {
		return Preferences{}, errors.Wrap(err, "load preferences")
	}
	defer rows.Close()

	var p Preferences
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Preferences{}, err
		}
		switch key {
		case KeyAccountBalance:
			p.AccountBalance = value
		case KeyRiskPercentage:
			p.RiskPercentage = value
		}
	}
	if err := rows.Err(); err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// Save writes both slots. An empty slot deletes its row.
func (s *SQLite) Save(ctx context.Context, p Preferences) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin save preferences")
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, kv := range [][2]string{
		{KeyAccountBalance, p.AccountBalance},
		{KeyRiskPercentage, p.RiskPercentage},
	} {
		if kv[1] == "" {
			if _, err := tx.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, kv[0]); err != nil {
				return errors.Wrapf(err, "delete %s", kv[0])
			}
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			kv[0], kv[1], now)
		if err != nil {
			return errors.Wrapf(err, "save %s", kv[0])
		}
	}
	return tx.Commit()
}

func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key IN (?, ?)`,
		KeyAccountBalance, KeyRiskPercentage)
	return errors.Wrap(err, "clear preferences")
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// dsn waits on locks held by the other store sharing the file.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_busy_timeout=5000"
}
