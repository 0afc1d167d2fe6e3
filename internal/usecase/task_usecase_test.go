package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{"in range", 10, 50, 10, 50},
		{"negative skip", -1, 50, 0, 50},
		{"zero limit", 0, 0, 0, MinPageLimit},
		{"negative limit", 0, -10, 0, MinPageLimit},
		{"limit above cap", 0, 1000, 0, MaxPageLimit},
		{"limit at cap", 0, MaxPageLimit, 0, MaxPageLimit},
		{"limit at floor", 0, MinPageLimit, 0, MinPageLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skip, limit := NormalizePagination(tc.skip, tc.limit)
			assert.Equal(t, tc.wantSkip, skip)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestNewUserOutput_Nil(t *testing.T) {
	assert.Nil(t, NewUserOutput(nil))
}

func TestNewTaskOutput_Nil(t *testing.T) {
	assert.Nil(t, NewTaskOutput(nil))
}
