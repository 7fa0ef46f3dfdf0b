package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transactor.go -destination=./mocks/transactor_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"scoop/config"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	lockTimeout      = "5s"
	retryBaseBackoff = 25 * time.Millisecond
)

// TxFunc runs inside a transaction. Returning an error rolls it back.
type TxFunc func(ctx context.Context, tx *sqlx.Tx) error

// Transactor runs a unit of work atomically against the write connection.
type Transactor interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type transactorImpl struct {
	db       *Connection
	maxRetry int
}

func NewTransactor(db *Connection, cfg *config.Config) Transactor {
	return &transactorImpl{
		db:       db,
		maxRetry: cfg.TxMaxRetry(),
	}
}

// WithinTx retries fn when the store reports a serialization failure, a
// deadlock or a lock timeout. Any other error is returned after rollback.
func (t *transactorImpl) WithinTx(ctx context.Context, fn TxFunc) error {
	var err error

	for attempt := range t.maxRetry {
		err = t.run(ctx, fn)
		if err == nil || !failure.IsTransient(err) {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt+1).Msg("Transaction hit a transient conflict, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction retry aborted: %w", ctx.Err())
		case <-time.After(retryBaseBackoff * time.Duration(attempt+1)):
		}
	}

	return err
}

func (t *transactorImpl) run(ctx context.Context, fn TxFunc) (err error) {
	tx, err := t.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return Classify(fmt.Errorf("failed to begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error().Err(rbErr).Msg("Failed to rollback transaction")
			}
		}
	}()

	_, err = tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", lockTimeout))
	if err != nil {
		return Classify(fmt.Errorf("failed to set lock timeout: %w", err))
	}

	err = fn(ctx, tx)
	if err != nil {
		return Classify(err)
	}

	err = tx.Commit()
	if err != nil {
		return Classify(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// Classify turns contention errors reported by Postgres into failure.Transient.
func Classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeSerializationFailure,
		constant.PqErrorCodeDeadlockDetected,
		constant.PqErrorCodeLockNotAvailable:
		return failure.Transient(err)
	default:
		return err
	}
}
