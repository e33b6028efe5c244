package journal

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("calculation not found")

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "open journal db")
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create journal schema")
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) Record(ctx context.Context, e Entry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO calculations
		(id, time, balance_text, risk_text, signal_text, instrument, account_currency,
		 pips, rate, lot_size, amount_at_risk, position_units)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Time, e.BalanceText, e.RiskText, e.SignalText, e.Instrument, e.AccountCurrency,
		e.Pips, e.Rate, e.LotSize, e.AmountAtRisk, e.PositionSizeUnits,
	)
	return errors.Wrapf(err, "record calculation %s", e.ID)
}

const selectEntry = `
	SELECT id, time, balance_text, risk_text, signal_text, instrument, account_currency,
	       pips, rate, lot_size, amount_at_risk, position_units
	FROM calculations`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.Time,
		&e.BalanceText,
		&e.RiskText,
		&e.SignalText,
		&e.Instrument,
		&e.AccountCurrency,
		&e.Pips,
		&e.Rate,
		&e.LotSize,
		&e.AmountAtRisk,
		&e.PositionSizeUnits,
	)
	return e, err
}

// Get returns a single entry by id.
func (j *SQLite) Get(ctx context.Context, entryID string) (Entry, error) {
	row := j.db.QueryRowContext(ctx, selectEntry+` WHERE id = ?`, entryID)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, errors.Wrapf(ErrNotFound, "calculation %q", entryID)
		}
		return Entry{}, err
	}
	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (j *SQLite) List(ctx context.Context, limit int) ([]Entry, error) {
	q := selectEntry + ` ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list calculations")
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// dsn waits on locks held by the other store sharing the file.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_busy_timeout=5000"
}
