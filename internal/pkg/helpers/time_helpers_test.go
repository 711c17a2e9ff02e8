package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestEventInstant(t *testing.T) {
	instant, ok := EventInstant("2026-03-15", "18:30")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC), instant)

	midnight, ok := EventInstant("2026-03-15", "whenever")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), midnight)

	_, ok = EventInstant("soon", "18:30")
	assert.False(t, ok)
}
