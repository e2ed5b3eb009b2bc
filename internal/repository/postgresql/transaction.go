package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hadir-hr/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

// txState is what travels in the context: the open transaction and the
// callbacks waiting for its commit.
type txState struct {
	tx          pgx.Tx
	afterCommit []func()
}

// WithTransaction executes fn inside a database transaction.
// The transaction travels in the context passed to fn; repositories pick it up via GetQuerier.
// A transaction already present in ctx is reused. Callbacks registered with
// AfterCommit run once the outermost call commits and are dropped on rollback.
func WithTransaction(ctx context.Context, db *database.DB, fn func(ctx context.Context) error) error {
	if _, ok := stateFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	state := &txState{tx: tx}
	if err := fn(context.WithValue(ctx, txContextKey{}, state)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, hook := range state.afterCommit {
		hook()
	}
	return nil
}

// AfterCommit defers fn until the transaction in ctx commits.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	state, ok := stateFromContext(ctx)
	if !ok {
		fn()
		return
	}
	state.afterCommit = append(state.afterCommit, fn)
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if state, ok := stateFromContext(ctx); ok {
		return state.tx
	}
	return db.Pool
}

func stateFromContext(ctx context.Context) (*txState, bool) {
	state, ok := ctx.Value(txContextKey{}).(*txState)
	return state, ok
}

// Transactor runs service-level units of work in one transaction.
type Transactor struct {
	db *database.DB
}

func NewTransactor(db *database.DB) *Transactor {
	return &Transactor{db: db}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, t.db, fn)
}

func (t *Transactor) AfterCommit(ctx context.Context, fn func()) {
	AfterCommit(ctx, fn)
}
