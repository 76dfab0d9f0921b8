package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestays/reservations-api/models"
)

func TestWithCaller_RoundTrip(t *testing.T) {
	caller := models.Caller{ID: "7", Role: models.RoleHost, Token: "raw-token"}
	ctx := WithCaller(context.Background(), caller)

	got, ok := CallerFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, caller, got)
}

func TestCallerFromContext_Missing(t *testing.T) {
	_, ok := CallerFromContext(context.Background())
	assert.False(t, ok)
}

func TestCallerFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "not-a-caller")
	_, ok := CallerFromContext(ctx)
	assert.False(t, ok)
}
