package services

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/cache"
)

const (
	membersCountCacheKey = "cache:stats:members"
	membersCountCacheTTL = time.Minute
)

// StatsService exposes public aggregate numbers
type StatsService interface {
	MembersCount(ctx context.Context) (int, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	users  *repositories.UserRepository
	cache  *cache.Client
	logger zerolog.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(users *repositories.UserRepository, cacheClient *cache.Client, logger zerolog.Logger) StatsService {
	return &statsServiceImpl{
		users:  users,
		cache:  cacheClient,
		logger: logger,
	}
}

// MembersCount returns the number of registered club members
func (s *statsServiceImpl) MembersCount(ctx context.Context) (int, error) {
	if cached, _ := s.cache.Get(ctx, membersCountCacheKey); cached != nil {
		if count, err := strconv.Atoi(string(cached)); err == nil {
			return count, nil
		}
	}

	count, err := s.users.CountMembers(ctx)
	if err != nil {
		return 0, err
	}

	s.cache.Set(ctx, membersCountCacheKey, []byte(strconv.Itoa(count)), membersCountCacheTTL)
	return count, nil
}
