package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/config"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:        "test-secret-key-for-unit-tests",
			Algorithm:     "HS256",
			ExpireMinutes: 30,
		},
	}
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{Algorithm: "HS256"}})
	require.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestNewJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	for _, alg := range []string{"RS256", "ES256", "none", "bogus"} {
		t.Run(alg, func(t *testing.T) {
			cfg := newTestJWTConfig()
			cfg.JWT.Algorithm = alg

			_, err := NewJWTService(cfg)
			require.Error(t, err)
		})
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	expired := &jwtService{
		secret:    []byte("test-secret-key-for-unit-tests"),
		method:    jwt.SigningMethodHS256,
		accessTTL: -time.Minute,
	}

	token, err := expired.IssueToken(42)
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_ValidateTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := svc.IssueToken(42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	require.Error(t, err)
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other := newTestJWTConfig()
	other.JWT.Secret = "a-completely-different-secret"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.IssueToken(42)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ValidateRejectsOtherAlgorithms(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(42, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	// Same secret, different HMAC variant.
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString([]byte("test-secret-key-for-unit-tests"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(hs512)
	require.Error(t, err)

	// The unsigned variant must never pass.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	require.Error(t, err)
}

func TestJWTService_ValidateNonNumericSubject(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-unit-tests"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ValidateGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("")
	require.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
