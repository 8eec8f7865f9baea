package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func TestWrapErr(t *testing.T) {
	assert.NoError(t, wrapErr(ErrMsgFailedToInsertItem, nil))

	tooLong := wrapErr(ErrMsgFailedToInsertItem, &pgconn.PgError{Code: PgErrorCodeStringTooLong, Message: "value too long for type character varying(100)"})
	assert.ErrorIs(t, tooLong, domain.ErrValueTooLong)
	assert.ErrorIs(t, tooLong, domain.ErrInvalidArgument)
	assert.NotContains(t, tooLong.Error(), "varying")

	other := wrapErr(ErrMsgFailedToInsertItem, errors.New("connection reset"))
	assert.EqualError(t, other, "failed to insert inventory item: connection reset")
	assert.NotErrorIs(t, other, domain.ErrInvalidArgument)
}
