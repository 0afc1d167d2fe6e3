package auth

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"taskboard/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("WrongPassword", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123!", first))
	assert.True(t, hasher.Check("Password123!", second))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("Password123!", ""))
	assert.False(t, hasher.Check("Password123!", "not-a-hash"))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	concrete, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, concrete.cost)
}

// encodeArgon2id builds a PHC-formatted hash the way the retired scheme did,
// so stored rows from before the bcrypt migration can be reproduced in tests.
func encodeArgon2id(password string, salt []byte, memory, time uint32, threads uint8) string {
	key := argon2.IDKey([]byte(password), salt, time, memory, threads, 32)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory, time, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func TestBcryptHasher_CheckLegacyArgon2id(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	salt := []byte("0123456789abcdef")

	legacy := encodeArgon2id("Password123!", salt, 1024, 1, 1)

	assert.True(t, hasher.Check("Password123!", legacy))
	assert.False(t, hasher.Check("WrongPassword", legacy))
}

func TestBcryptHasher_CheckMalformedArgon2id(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	cases := []struct {
		name string
		hash string
	}{
		{"missing sections", "$argon2id$v=19$m=1024,t=1,p=1"},
		{"bad parameters", "$argon2id$v=19$m=abc,t=1,p=1$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA"},
		{"bad hash encoding", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$!!!"},
		{"zero threads", "$argon2id$v=19$m=1024,t=1,p=0$c2FsdA$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, hasher.Check("Password123!", tc.hash))
		})
	}
}
