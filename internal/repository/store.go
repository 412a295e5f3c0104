package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=repository

// Store is a Querier that can also run a group of queries in one transaction.
type Store interface {
	Querier
	// ExecTx runs fn against a transaction-scoped Querier. The transaction
	// commits when fn returns nil and rolls back otherwise.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is the pgxpool-backed Store.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

var _ Store = (*SQLStore)(nil)
