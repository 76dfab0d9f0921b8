package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestays/reservations-api/models"
)

const (
	testIssuer  = "usuarios-api"
	testSignKey = "test-sign-key"
)

func TestGenerateCallerToken_RoundTrip(t *testing.T) {
	tokenString, err := GenerateCallerToken(testIssuer, "42", models.RoleCliente, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	caller, err := ParseCallerToken(tokenString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, "42", caller.ID)
	assert.Equal(t, models.RoleCliente, caller.Role)
	assert.Equal(t, tokenString, caller.Token)
}

func TestGenerateCallerToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", userID: "1", duration: time.Hour, signKey: testSignKey},
		{name: "empty user id", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, userID: "1", signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, userID: "1", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCallerToken(tt.issuer, tt.userID, models.RoleAdmin, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestParseCallerToken_WrongSignKey(t *testing.T) {
	tokenString, err := GenerateCallerToken(testIssuer, "42", models.RoleHost, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParseCallerToken(tokenString, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestParseCallerToken_WrongIssuer(t *testing.T) {
	tokenString, err := GenerateCallerToken("someone-else", "42", models.RoleHost, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParseCallerToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseCallerToken_Expired(t *testing.T) {
	tokenString, err := GenerateCallerToken(testIssuer, "42", models.RoleAdmin, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ParseCallerToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseCallerToken_UnknownRole(t *testing.T) {
	// role claims outside the closed set must be rejected, not defaulted
	tokenString, err := GenerateCallerToken(testIssuer, "42", models.Role("Superuser"), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParseCallerToken(tokenString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestParseCallerToken_Garbage(t *testing.T) {
	_, err := ParseCallerToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "padded", header: "  Bearer abc  ", want: "abc"},
		{name: "missing token", header: "Bearer ", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
