// internal/recommend/service.go

// Package recommend orchestrates a ranking pass: student profile (cached),
// active listings, ingestion, and the matching engine. It is the in-process
// collaborator a routing layer calls; it owns no transport.
package recommend

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/seifbadreldinx/futureintern/internal/common/logger"
	"github.com/seifbadreldinx/futureintern/internal/common/metrics"
	"github.com/seifbadreldinx/futureintern/internal/ingest"
	"github.com/seifbadreldinx/futureintern/internal/matching"
	"github.com/seifbadreldinx/futureintern/internal/storage"
)

const profileCacheKeyPrefix = "student:profile:"

// Recommendations is the ordered result of one ranking pass.
type Recommendations struct {
	RequestID string                  `json:"requestId"`
	StudentID string                  `json:"studentId"`
	Total     int                     `json:"total"`
	Results   []matching.RankedResult `json:"recommendations"`
	Skipped   []string                `json:"skipped,omitempty"`
}

type Service struct {
	store        *storage.Store
	cache        *redis.Client
	engine       *matching.Engine
	logger       logger.Logger
	cacheTTL     time.Duration
	defaultLimit int
}

func NewService(store *storage.Store, cache *redis.Client, engine *matching.Engine,
	log logger.Logger, cacheTTL time.Duration, defaultLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Service{
		store:        store,
		cache:        cache,
		engine:       engine,
		logger:       log.WithFields(map[string]interface{}{"component": "recommend"}),
		cacheTTL:     cacheTTL,
		defaultLimit: defaultLimit,
	}
}

// Recommend ranks every active listing against the given student.
func (s *Service) Recommend(ctx context.Context, studentID string, opts matching.RankOptions) (*Recommendations, error) {
	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
		"studentId": studentID,
	})

	profile, err := s.studentProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ActiveListings(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]matching.ListingCandidate, 0, len(records))
	for _, rec := range records {
		listings = append(listings, ingest.Listing(rec))
	}

	return s.rank(log, requestID, *profile, listings, nil, opts), nil
}

// RecommendFromPayload ranks a caller-supplied JSON batch of listings
// against a student already materialized by the boundary. Invalid documents
// are reported as skipped, never fatal.
func (s *Service) RecommendFromPayload(ctx context.Context, student matching.StudentProfile,
	listingsJSON []byte, opts matching.RankOptions) (*Recommendations, error) {
	requestID := uuid.NewString()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
		"studentId": student.ID,
	})

	records, rejected := ingest.ListingsFromJSON(listingsJSON)
	listings := make([]matching.ListingCandidate, 0, len(records))
	for _, rec := range records {
		listings = append(listings, ingest.Listing(rec))
	}

	return s.rank(log, requestID, student, listings, rejected, opts), nil
}

func (s *Service) rank(log logger.Logger, requestID string, student matching.StudentProfile,
	listings []matching.ListingCandidate, rejected []string, opts matching.RankOptions) *Recommendations {
	if opts.Limit == 0 {
		opts.Limit = s.defaultLimit
	}

	strategy := string(s.engine.Strategy())
	start := time.Now()
	results, skipped := s.engine.Rank(student, listings, opts)
	duration := time.Since(start)

	skipped = append(rejected, skipped...)

	metrics.RankingsTotal.WithLabelValues(strategy).Inc()
	metrics.ListingsScored.WithLabelValues(strategy).Add(float64(len(listings)))
	metrics.ListingsSkipped.WithLabelValues(strategy).Add(float64(len(skipped)))
	metrics.RankingDuration.WithLabelValues(strategy).Observe(duration.Seconds())

	log.Info("ranking completed", map[string]interface{}{
		"inputCount":  len(listings),
		"outputCount": len(results),
		"skipped":     len(skipped),
		"durationMs":  duration.Milliseconds(),
	})

	return &Recommendations{
		RequestID: requestID,
		StudentID: student.ID,
		Total:     len(results),
		Results:   results,
		Skipped:   skipped,
	}
}

// studentProfile loads the student through the cache. The cache is
// best-effort: any cache failure falls through to the database.
func (s *Service) studentProfile(ctx context.Context, studentID string) (*matching.StudentProfile, error) {
	cacheKey := profileCacheKeyPrefix + studentID
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var profile matching.StudentProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				metrics.ProfileCacheHits.WithLabelValues("hit").Inc()
				return &profile, nil
			}
		}
		metrics.ProfileCacheHits.WithLabelValues("miss").Inc()
	}

	rec, err := s.store.StudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	profile := ingest.Student(*rec)

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("profile cache write failed", map[string]interface{}{
					"studentId": studentID,
					"error":     err,
				})
			}
		}
	}
	return &profile, nil
}
