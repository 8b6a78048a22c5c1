package errs_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/lending/internal/errs"
)

func TestStorage(t *testing.T) {
	t.Parallel()
	err := errs.Storage(sql.ErrConnDone)
	require.ErrorIs(t, err, errs.ErrStorage)
	require.ErrorIs(t, err, sql.ErrConnDone)
	require.Equal(t, "storage failure: sql: connection is already closed", err.Error())

	wrapped := fmt.Errorf("borrow: %w", errs.ErrBookUnavailable)
	require.Equal(t, wrapped, errs.Storage(wrapped))
	require.NoError(t, errs.Storage(nil))
}

func TestKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		kind error
	}{
		{errs.ErrBookNotFound, errs.ErrNotFound},
		{errs.ErrUserNotFound, errs.ErrNotFound},
		{errs.ErrNoActiveLoan, errs.ErrNotFound},
		{errs.ErrNoPendingRequest, errs.ErrNotFound},
		{errs.ErrBookUnavailable, errs.ErrUnavailable},
		{errs.ErrDuplicateISBN, errs.ErrConflict},
		{errs.ErrDuplicateLoan, errs.ErrConflict},
		{errs.ErrBookHasOpenLoans, errs.ErrConflict},
		{errs.ErrCopiesBelowAvailable, errs.ErrInvalidInput},
		{errs.ErrCopiesBelowBorrowed, errs.ErrInvalidInput},
		{errs.Invalid(errors.New("title is required")), errs.ErrInvalidInput},
	}
	for _, tt := range tests {
		require.ErrorIs(t, tt.err, tt.kind)
		require.True(t, errs.Classified(tt.err))
	}
	require.False(t, errs.Classified(errors.New("boom")))
}
