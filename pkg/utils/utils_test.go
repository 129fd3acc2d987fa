package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type request struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required,min=4"`
	}

	assert.NoError(t, ValidateStruct(request{Username: "alice", Password: "hunter2"}))
	assert.EqualError(t, ValidateStruct(request{}), "username is required; password is required")
	assert.EqualError(t, ValidateStruct(request{Username: "a", Password: "abc"}), "password must be at least 4 characters")
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 10, 9, 30, 0, 123456789, time.FixedZone("X", 3600))

	formatted := FormatTimestamp(ts)
	assert.Equal(t, "2024-03-10T08:30:00.123456789Z", formatted)

	parsed, err := ParseTimestamp(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestStubClock(t *testing.T) {
	start := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	c := NewStubClock(start)

	assert.Equal(t, start, c.NowUTC())
	assert.Equal(t, start.Add(time.Second), c.Advance(time.Second))

	c.Set(start)
	assert.Equal(t, start, c.NowUTC())
	assert.Equal(t, time.UTC, NewRealClock().NowUTC().Location())
}
