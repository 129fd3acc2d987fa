package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/pkg/utils"
)

func newTestJWT(t *testing.T, clock utils.Clock) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		SecretKey:  "test-secret",
		Issuer:     "postboard",
		ExpiryTime: 2 * time.Hour,
	}, clock)
	require.NoError(t, err)
	return svc
}

func TestJWTService(t *testing.T) {
	clock := utils.NewStubClock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC))
	svc := newTestJWT(t, clock)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken("user-1", "alice")
		require.NoError(t, err)

		claims, err := svc.ValidateToken("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "alice", claims.Username)
		assert.Equal(t, "postboard", claims.Issuer)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := svc.ValidateToken("Bearer ")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{SecretKey: "other", Issuer: "postboard", ExpiryTime: time.Hour}, clock)
		require.NoError(t, err)
		token, err := other.GenerateToken("user-1", "alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewJWTService(JWTConfig{SecretKey: "test-secret", Issuer: "elsewhere", ExpiryTime: time.Hour}, clock)
		require.NoError(t, err)
		token, err := other.GenerateToken("user-1", "alice")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			Username:         "alice",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		local := utils.NewStubClock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC))
		s := newTestJWT(t, local)
		token, err := s.GenerateToken("user-1", "alice")
		require.NoError(t, err)

		local.Advance(3 * time.Hour)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestNewJWTServiceRejectsBadConfig(t *testing.T) {
	_, err := NewJWTService(JWTConfig{ExpiryTime: time.Hour}, nil)
	assert.Error(t, err)

	_, err = NewJWTService(JWTConfig{SecretKey: "s"}, nil)
	assert.Error(t, err)
}

func TestUserContext(t *testing.T) {
	_, err := GetUserFromContext(context.Background())
	assert.Error(t, err)

	ctx := SetUserInContext(context.Background(), &UserContext{UserID: "u1", Username: "alice"})
	user, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, h.Compare(hash, "hunter2"))
	assert.False(t, h.Compare(hash, "hunter3"))
	assert.False(t, h.Compare("not-a-hash", "hunter2"))

	assert.Equal(t, 10, NewBcryptHasher(0).cost)
}

func TestSlidingWindowLimiter(t *testing.T) {
	ctx := context.Background()
	clock := utils.NewStubClock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC))
	l := NewIPRateLimiter(2, clock)

	allowed, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.False(t, allowed)

	allowed, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "keys are independent")

	clock.Advance(61 * time.Second)
	allowed, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed, "window slides")

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 2, l.Prune())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = l.Allow(cancelled, "10.0.0.1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSlidingWindowLimiterConcurrent(t *testing.T) {
	l := NewSlidingWindowLimiter(50, time.Minute, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := l.Allow(context.Background(), "k")
			if ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, granted)
}
