package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// expiredTokenStore is any repository that can purge rows past their expiry
type expiredTokenStore interface {
	DeleteExpiredTokens(ctx context.Context) error
}

// TokenJanitor periodically purges expired refresh, email verification and
// password reset tokens. Expiry is already enforced at read time, so the
// sweep is pure hygiene: a failed pass is logged and retried next tick.
type TokenJanitor struct {
	stores   []janitorTarget
	interval time.Duration
	logger   zerolog.Logger
}

type janitorTarget struct {
	name  string
	store expiredTokenStore
}

// NewTokenJanitor creates a janitor over the three token tables
func NewTokenJanitor(refresh, verification, reset expiredTokenStore, interval time.Duration, logger zerolog.Logger) *TokenJanitor {
	return &TokenJanitor{
		stores: []janitorTarget{
			{name: "refresh_tokens", store: refresh},
			{name: "email_verification_tokens", store: verification},
			{name: "password_reset_tokens", store: reset},
		},
		interval: interval,
		logger:   logger,
	}
}

// Sweep runs one purge pass over every token table. An error on one table
// does not stop the others.
func (j *TokenJanitor) Sweep(ctx context.Context) {
	for _, target := range j.stores {
		if err := target.store.DeleteExpiredTokens(ctx); err != nil {
			j.logger.Warn().Err(err).Str("table", target.name).Msg("Expired token sweep failed")
		}
	}
}

// Run sweeps immediately and then on every tick until the context is
// cancelled. Meant to be started in its own goroutine.
func (j *TokenJanitor) Run(ctx context.Context) {
	j.Sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("Token janitor stopped")
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}
