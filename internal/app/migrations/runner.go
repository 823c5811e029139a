package migrations

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// executor runs statements either directly or inside a transaction.
type executor interface {
	exec(ctx context.Context, query string, args ...any) error
}

// tx is a migration transaction.
type tx interface {
	executor
	commit(ctx context.Context) error
	rollback(ctx context.Context) error
}

// runner abstracts the database a Migrator applies scripts to.
type runner interface {
	executor
	count(ctx context.Context, query string, args ...any) (int64, error)
	begin(ctx context.Context) (tx, error)
	placeholder() squirrel.PlaceholderFormat
}

type pgxRunner struct {
	pool *pgxpool.Pool
}

func (r pgxRunner) exec(ctx context.Context, query string, args ...any) error {
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func (r pgxRunner) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}

func (r pgxRunner) begin(ctx context.Context) (tx, error) {
	t, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return pgxTx{t}, nil
}

func (pgxRunner) placeholder() squirrel.PlaceholderFormat { return squirrel.Dollar }

type pgxTx struct {
	tx pgx.Tx
}

func (t pgxTx) exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.Exec(ctx, query, args...)
	return err
}

func (t pgxTx) commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t pgxTx) rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

type sqlRunner struct {
	db *sql.DB
}

func (r sqlRunner) exec(ctx context.Context, query string, args ...any) error {
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r sqlRunner) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func (r sqlRunner) begin(ctx context.Context) (tx, error) {
	t, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{t}, nil
}

func (sqlRunner) placeholder() squirrel.PlaceholderFormat { return squirrel.Question }

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

func (t sqlTx) commit(context.Context) error   { return t.tx.Commit() }
func (t sqlTx) rollback(context.Context) error { return t.tx.Rollback() }
