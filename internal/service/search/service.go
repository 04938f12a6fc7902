package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"filebot/internal/domain"
	"filebot/internal/repository"
)

// PageSize caps how many matches one search returns. The total is counted
// independently, so callers can tell when more matches exist.
const PageSize = 10

const (
	cacheGenKey = "files:search:gen"
	cacheTTL    = 5 * time.Minute
)

type Service interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
	InvalidateCache(ctx context.Context) error
}

type service struct {
	fileRepo repository.FileRepository
	redis    *redis.Client
}

func NewService(fileRepo repository.FileRepository, redis *redis.Client) Service {
	return &service{
		fileRepo: fileRepo,
		redis:    redis,
	}
}

func (s *service) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.SearchResult{Matches: []domain.FileMatch{}, Total: 0}, nil
	}

	cacheKey := s.cacheKey(ctx, query)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result domain.SearchResult
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	records, err := s.fileRepo.SearchByName(ctx, query, PageSize)
	if err != nil {
		return domain.SearchResult{}, err
	}

	total, err := s.fileRepo.CountByName(ctx, query)
	if err != nil {
		return domain.SearchResult{}, err
	}

	matches := make([]domain.FileMatch, 0, len(records))
	for i := range records {
		matches = append(matches, records[i].Match())
	}

	result := domain.SearchResult{Matches: matches, Total: total}

	if s.redis != nil {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, cacheTTL).Err()
		}
	}

	return result, nil
}

// InvalidateCache bumps the cache generation so results cached before the
// latest index are never served. Old-generation keys expire by TTL.
func (s *service) InvalidateCache(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Incr(ctx, cacheGenKey).Err()
}

func (s *service) cacheKey(ctx context.Context, query string) string {
	gen := "0"
	if s.redis != nil {
		if v, err := s.redis.Get(ctx, cacheGenKey).Result(); err == nil {
			gen = v
		}
	}
	return fmt.Sprintf("files:search:%s:%s", gen, strings.ToLower(query))
}
