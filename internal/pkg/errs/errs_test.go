//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"booking-crm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("booking not found")
	cause := errs.New("no rows in result set")

	marked := errs.Mark(cause, sentinel)
	require.Error(t, marked)

	// Handlers match sentinels with the stdlib errors.Is, so the mark has
	// to be visible on the stdlib chain, not just to cockroachdb's matcher.
	assert.ErrorIs(t, marked, sentinel)
	assert.ErrorIs(t, marked, cause)
	assert.EqualError(t, marked, "no rows in result set")

	assert.NotErrorIs(t, marked, errs.New("unrelated"))
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errs.New("weak password")
	assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestWrapKeepsChain(t *testing.T) {
	cause := errors.New("connect refused")
	wrapped := errs.Wrap(cause, "dialing postgres")

	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}
