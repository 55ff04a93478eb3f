package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/campusinova/innovation-platform/internal/matching"
	"github.com/campusinova/innovation-platform/internal/models"
	"github.com/campusinova/innovation-platform/internal/repository"
)

const (
	matchingCacheKey = "matching:analysis"
	matchingCacheTTL = 5 * time.Minute
)

// MatchingService produces the company/student expectation analysis. It is a
// best-effort analytics feature: any failure yields the empty result instead
// of an error, so it can never break the primary flows.
type MatchingService struct {
	userRepo repository.UserRepository
	cache    *redis.Client
}

// NewMatchingService creates a new MatchingService. The cache client may be
// nil, in which case every call recomputes the analysis.
func NewMatchingService(userRepo repository.UserRepository, cache *redis.Client) *MatchingService {
	return &MatchingService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Analysis fetches all shared expectation texts, partitions them by account
// type, and aggregates them into the matching result.
func (s *MatchingService) Analysis(ctx context.Context) matching.Result {
	if cached, ok := s.fromCache(ctx); ok {
		return cached
	}

	users, err := s.userRepo.FindWithExpectations()
	if err != nil {
		log.Error().Err(err).Msg("Error generating matching analysis")
		return matching.EmptyResult()
	}

	var companyTexts, studentTexts []string
	for _, user := range users {
		if user.Expectations == nil || *user.Expectations == "" {
			continue
		}
		switch user.Type {
		case models.UserTypeCompany:
			companyTexts = append(companyTexts, *user.Expectations)
		case models.UserTypeStudent:
			studentTexts = append(studentTexts, *user.Expectations)
		}
	}

	result := matching.Aggregate(companyTexts, studentTexts)
	s.toCache(ctx, result)
	return result
}

func (s *MatchingService) fromCache(ctx context.Context) (matching.Result, bool) {
	if s.cache == nil {
		return matching.Result{}, false
	}

	data, err := s.cache.Get(ctx, matchingCacheKey).Bytes()
	if err != nil {
		return matching.Result{}, false
	}

	var result matching.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return matching.Result{}, false
	}
	return result, true
}

func (s *MatchingService) toCache(ctx context.Context, result matching.Result) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, matchingCacheKey, data, matchingCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to cache matching analysis")
	}
}
