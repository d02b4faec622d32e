package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventadmin/internal/domain"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestSession_ProbePersistedToken(t *testing.T) {
	tests := []struct {
		name     string
		pair     domain.TokenPair
		loadErr  error
		wantAuth bool
	}{
		{
			name:     "no stored token",
			pair:     domain.TokenPair{},
			wantAuth: false,
		},
		{
			name:     "stored token authenticates optimistically",
			pair:     domain.TokenPair{AccessToken: "T1", RefreshToken: "R1"},
			wantAuth: true,
		},
		{
			name:     "load failure leaves session unauthenticated",
			loadErr:  errors.New("disk gone"),
			wantAuth: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeTokenStore{pair: tt.pair, loadErr: tt.loadErr}
			s := NewSession(&fakeGateway{}, store, testLogger())
			assert.Equal(t, tt.wantAuth, s.IsAuthenticated())
		})
	}
}

func TestSession_ProbeExpiredTokenStillOptimistic(t *testing.T) {
	// The probe never revalidates against the server; an expired token is
	// accepted and the first API call reports the AuthError.
	store := &fakeTokenStore{pair: domain.TokenPair{
		AccessToken:  signedToken(t, time.Now().Add(-time.Hour)),
		RefreshToken: "R1",
	}}
	s := NewSession(&fakeGateway{}, store, testLogger())
	assert.True(t, s.IsAuthenticated())
}

func TestSession_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		pair     domain.TokenPair
		loginErr error
		saveErr  error
		want     bool
	}{
		{
			name: "success persists both tokens",
			pair: domain.TokenPair{AccessToken: "T1", RefreshToken: "R1"},
			want: true,
		},
		{
			name:     "gateway failure reports false, no error",
			loginErr: &domain.NetworkError{Op: "login", Err: errors.New("connection refused")},
			want:     false,
		},
		{
			name:     "rejected credentials report false",
			loginErr: &domain.AuthError{Message: "invalid credentials"},
			want:     false,
		},
		{
			name: "malformed response without refresh token reports false",
			pair: domain.TokenPair{AccessToken: "T1"},
			want: false,
		},
		{
			name:    "persist failure reports false",
			pair:    domain.TokenPair{AccessToken: "T1", RefreshToken: "R1"},
			saveErr: errors.New("read-only fs"),
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{loginPair: tt.pair, loginErr: tt.loginErr}
			store := &fakeTokenStore{saveErr: tt.saveErr}
			s := NewSession(gw, store, testLogger())

			ok := s.Login(ctx, "a@b.com", "x")

			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, s.IsAuthenticated())
			if tt.want {
				assert.Equal(t, "T1", store.pair.AccessToken)
				assert.Equal(t, "R1", store.pair.RefreshToken)
			}
		})
	}
}

func TestSession_LogoutIdempotent(t *testing.T) {
	store := &fakeTokenStore{pair: domain.TokenPair{AccessToken: "T1", RefreshToken: "R1"}}
	s := NewSession(&fakeGateway{}, store, testLogger())
	require.True(t, s.IsAuthenticated())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, domain.TokenPair{}, store.pair)

	// Second logout clears storage again without error.
	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 2, store.clearCalls)
}

func TestSession_LogoutMakesNoNetworkCall(t *testing.T) {
	gw := &fakeGateway{}
	s := NewSession(gw, &fakeTokenStore{pair: domain.TokenPair{AccessToken: "T1"}}, testLogger())
	s.Logout()
	assert.Zero(t, gw.loginCalls)
	assert.Zero(t, gw.userCalls)
}
