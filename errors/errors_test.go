package errors

import (
	// Go Internal Packages
	stderrors "errors"
	"testing"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOfWalksChain(t *testing.T) {
	inner := E(NotFound, "reward does not exist", nil)
	outer := E(Other, "wrapped", inner)

	assert.Equal(t, NotFound, KindOf(outer))
	assert.True(t, Is(NotFound, outer))
	assert.False(t, Is(Forbidden, outer))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, Other, KindOf(stderrors.New("plain")))
	assert.Equal(t, Other, KindOf(nil))
}

func TestErrorMessageWrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := E(Internal, "merchant lookup failed", cause)

	assert.Equal(t, "merchant lookup failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationErrs(t *testing.T) {
	ve := ValidationErrs()
	require.NoError(t, ve.Err())

	ve.Add("transaction_id", "cannot be empty")
	ve.Add("application", "cannot be empty")

	err := ve.Err()
	require.Error(t, err)
	assert.Equal(t, "application: cannot be empty; transaction_id: cannot be empty", err.Error())
}

func TestEmptyParamErr(t *testing.T) {
	err := EmptyParamErr("transaction_id")
	assert.Equal(t, Invalid, KindOf(err))
	assert.Contains(t, err.Error(), "transaction_id")
}
