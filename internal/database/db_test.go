package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	DB
	tx *fakeTx
}

func (d fakeDB) Begin(context.Context) (Tx, error) { return d.tx, nil }

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	err := WithTx(context.Background(), fakeDB{tx: tx}, func(Tx) error { return nil })
	require.NoError(t, err)
	require.True(t, tx.committed)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")
	err := WithTx(context.Background(), fakeDB{tx: tx}, func(Tx) error { return boom })
	require.ErrorIs(t, err, boom)
	require.False(t, tx.committed)
	require.True(t, tx.rolledBack)
}
