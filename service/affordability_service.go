package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mortgage-power/domain"
	"mortgage-power/metrics"
	"mortgage-power/repository"
)

// Assessment is an affordability result plus the id it was saved under, if any.
type Assessment struct {
	domain.AffordabilityResult
	AssessmentID string `json:"assessmentId,omitempty"`
}

// AffordabilityService wraps the pure engine with caching and optional
// persistence. Neither dependency can make an assessment fail.
type AffordabilityService struct {
	cache    repository.CacheRepository
	repo     repository.AssessmentRepository
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

func NewAffordabilityService(
	cache repository.CacheRepository,
	repo repository.AssessmentRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AffordabilityService {
	return &AffordabilityService{
		cache:    cache,
		repo:     repo,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// AssessRequest is one call to Assess.
type AssessRequest struct {
	Profile domain.RawProfile
	Save    bool
	Options []Option
	// Variant distinguishes cache entries computed with different options.
	Variant string
}

// Assess normalizes the raw profile, returns a cached result when one exists
// and computes it otherwise. When Save is set the summary is persisted.
func (s *AffordabilityService) Assess(ctx context.Context, req AssessRequest) (Assessment, error) {
	start := s.now()
	profile := NormalizeProfile(req.Profile)

	key, err := cacheKey(profile, req.Variant)
	if err != nil {
		return Assessment{}, err
	}

	result, hit := s.cached(ctx, key)
	if hit {
		metrics.AssessmentsComputed.WithLabelValues("hit").Inc()
	} else {
		result = ComputeAffordability(profile, req.Options...)
		metrics.AssessmentsComputed.WithLabelValues("miss").Inc()
		metrics.PurchasingPowerScore.Observe(float64(result.PPScore))
		s.store(ctx, key, result)
	}
	metrics.AssessmentDuration.Observe(s.now().Sub(start).Seconds())

	assessment := Assessment{AffordabilityResult: result}
	if req.Save {
		assessment.AssessmentID = s.save(ctx, profile, result)
	}

	s.logger.Info("assessment computed",
		zap.Int("ppScore", result.PPScore),
		zap.Bool("cacheHit", hit),
		zap.Int("loanTracks", len(result.LoanTracks)),
		zap.String("assessmentId", assessment.AssessmentID),
	)
	return assessment, nil
}

// Find returns a previously saved assessment summary.
func (s *AffordabilityService) Find(ctx context.Context, id string) (domain.AssessmentRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.AssessmentRecord{}, repository.ErrAssessmentNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *AffordabilityService) cached(ctx context.Context, key string) (domain.AffordabilityResult, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		metrics.DependencyFailures.WithLabelValues("cache", "get").Inc()
		s.logger.Warn("cache lookup failed", zap.Error(err))
		return domain.AffordabilityResult{}, false
	}
	if !ok {
		return domain.AffordabilityResult{}, false
	}

	var result domain.AffordabilityResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return domain.AffordabilityResult{}, false
	}
	return result, true
}

func (s *AffordabilityService) store(ctx context.Context, key string, result domain.AffordabilityResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode result for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		metrics.DependencyFailures.WithLabelValues("cache", "set").Inc()
		s.logger.Warn("cache write failed", zap.Error(err))
	}
}

// save persists the summary. Failures are logged and yield an empty id.
func (s *AffordabilityService) save(ctx context.Context, profile domain.FinancialProfile, result domain.AffordabilityResult) string {
	record := domain.AssessmentRecord{
		ID:           uuid.NewString(),
		CreatedAt:    s.now().UTC(),
		Profile:      profile,
		PPScore:      result.PPScore,
		SafePrice:    result.Scenario(ScenarioSafe).MaxPurchasePrice,
		TargetPrice:  result.Scenario(ScenarioTarget).MaxPurchasePrice,
		StretchPrice: result.Scenario(ScenarioStretch).MaxPurchasePrice,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		metrics.DependencyFailures.WithLabelValues("repository", "save").Inc()
		s.logger.Warn("failed to save assessment", zap.String("assessmentId", record.ID), zap.Error(err))
		return ""
	}
	return record.ID
}

// cacheKey hashes the normalized profile, so raw inputs that normalize the
// same way share an entry.
func cacheKey(profile domain.FinancialProfile, variant string) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode profile for cache key: %w", err)
	}
	h := xxhash.New()
	_, _ = h.Write(data)
	_, _ = h.WriteString(variant)
	return "affordability:" + strconv.FormatUint(h.Sum64(), 16), nil
}
