package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type countingTokenStore struct {
	sweeps int
	err    error
}

func (c *countingTokenStore) DeleteExpiredTokens(context.Context) error {
	c.sweeps++
	return c.err
}

func TestTokenJanitorSweepsEveryTable(t *testing.T) {
	refresh := &countingTokenStore{}
	verification := &countingTokenStore{}
	reset := &countingTokenStore{}

	janitor := NewTokenJanitor(refresh, verification, reset, 0, zerolog.Nop())
	janitor.Sweep(context.Background())

	assert.Equal(t, 1, refresh.sweeps)
	assert.Equal(t, 1, verification.sweeps)
	assert.Equal(t, 1, reset.sweeps)
}

func TestTokenJanitorSurvivesFailingTable(t *testing.T) {
	refresh := &countingTokenStore{err: errors.New("table locked")}
	verification := &countingTokenStore{}
	reset := &countingTokenStore{}

	janitor := NewTokenJanitor(refresh, verification, reset, 0, zerolog.Nop())
	janitor.Sweep(context.Background())

	// the failing table does not stop the later ones
	assert.Equal(t, 1, verification.sweeps)
	assert.Equal(t, 1, reset.sweeps)
}
