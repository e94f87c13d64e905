package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsType(t *testing.T) {
	err := NewMissingContextError("no signed-in user")

	assert.True(t, IsType(err, ErrorTypeMissingContext))
	assert.False(t, IsType(err, ErrorTypeStoreWrite))
	assert.False(t, IsType(nil, ErrorTypeMissingContext))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeMissingContext))
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := NewPartialWriteError(errors.New("leaderboard down"))
	wrapped := fmt.Errorf("saving walk: %w", inner)

	assert.True(t, IsType(wrapped, ErrorTypePartialWrite))
}

func TestStoreWriteErrorCarriesCollection(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreWriteError(cause, "activity")

	require.True(t, IsType(err, ErrorTypeStoreWrite))
	assert.Equal(t, "activity", err.Context["collection"])
	assert.ErrorIs(t, err, cause)
}

func TestSourceUnavailableError(t *testing.T) {
	err := NewSourceUnavailableError("step source")

	assert.True(t, IsType(err, ErrorTypeSourceUnavailable))
	assert.Contains(t, err.Error(), "step source")
}

func TestWithContextAppearsInLogFields(t *testing.T) {
	err := NewPartialWriteError(errors.New("boom")).WithContext("private_record_id", uint(7))

	fields := err.LogFields()
	assert.Contains(t, fields, "private_record_id")
	assert.Contains(t, fields, uint(7))
}
