package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions using the context pattern.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption customizes the transactions started by a TxManager.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level. The default is Read Committed.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx executes fn within a database transaction. It commits when fn
// returns nil and rolls back on error or panic (re-panicking afterwards).
// A call made while ctx already carries a transaction joins it instead of
// opening a second, independent one.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
