package postgres

import (
	"errors"
	"fmt"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateFrom(t *testing.T) {
	t.Run("unique violation becomes Duplicate", func(t *testing.T) {
		err := duplicateFrom(&pgconn.PgError{Code: uniqueViolation}, "Username is already taken")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindDuplicate, appErr.Kind)
		assert.Equal(t, "Username is already taken", appErr.Message)
	})

	t.Run("wrapped unique violation is still recognized", func(t *testing.T) {
		wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: uniqueViolation})
		err := duplicateFrom(wrapped, "Username is already taken")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindDuplicate, appErr.Kind)
	})

	t.Run("other pg errors pass through untouched", func(t *testing.T) {
		orig := &pgconn.PgError{Code: "23503"}
		err := duplicateFrom(orig, "Username is already taken")

		assert.Equal(t, error(orig), err)
		var appErr *apperror.AppError
		assert.False(t, errors.As(err, &appErr))
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, duplicateFrom(nil, "Username is already taken"))
	})
}
