package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/arena-booking/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
	opts     []*sql.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.opts = append(b.opts, opts)
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

var (
	errRepoExec   = errors.New("repository: failed to execute query")
	errSubmission = errors.New("usecase: submission failed")
)

// serializationErr повторяет цепочку обёрток repository -> use case
func serializationErr() error {
	driverErr := &pq.Error{Code: "40001", Message: "could not serialize access"}
	repoErr := fmt.Errorf("%w: Create - execute insert: %w", errRepoExec, driverErr)
	return fmt.Errorf("%w: failed to create booking: %w", errSubmission, repoErr)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"driver error", &pq.Error{Code: "40001"}, true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"wrapped through layers", serializationErr(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}

func TestDoSerializable_RetriesWrappedStatementFailure(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		if attempts == 1 {
			return serializationErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.Len(t, db.txs, 2)
	assert.True(t, db.txs[0].rolledBack)
	assert.True(t, db.txs[1].committed)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationErr()
	})

	assert.ErrorIs(t, err, errSubmission)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, DefaultMaxRetries+1, attempts)
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{})

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return fmt.Errorf("%w: %w", errSubmission, &pq.Error{Code: "23505"})
	})

	assert.ErrorIs(t, err, errSubmission)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_RetriesCommitFailure(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			tx, _ := dbmetrics.TxFromContext(ctx)
			tx.(*fakeTx).commitErr = &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDo(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db := &fakeBeginner{}
		err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error { return nil })

		require.NoError(t, err)
		assert.True(t, db.txs[0].committed)
		assert.Equal(t, sql.LevelReadCommitted, db.opts[0].Isolation)
	})

	t.Run("rollback on error", func(t *testing.T) {
		db := &fakeBeginner{}
		boom := errors.New("boom")
		err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.True(t, db.txs[0].rolledBack)
		assert.False(t, db.txs[0].committed)
	})

	t.Run("begin failure", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errors.New("no connection")}
		err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error { return nil })

		assert.ErrorIs(t, err, ErrBeginTx)
	})

	t.Run("commit failure", func(t *testing.T) {
		db := &fakeBeginner{}
		err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
			tx, _ := dbmetrics.TxFromContext(ctx)
			tx.(*fakeTx).commitErr = errors.New("disk full")
			return nil
		})

		assert.ErrorIs(t, err, ErrCommitTx)
	})

	t.Run("nested call reuses outer transaction", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)
		err := m.Do(context.Background(), func(ctx context.Context) error {
			return m.DoReadOnly(ctx, func(ctx context.Context) error { return nil })
		})

		require.NoError(t, err)
		assert.Len(t, db.txs, 1)
	})
}
