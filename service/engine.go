package service

import "mortgage-power/domain"

type options struct {
	skipRecommendations bool
	skipLoanTracks      bool
}

// Option tunes which optional parts of the assessment are produced.
type Option func(*options)

func WithoutRecommendations() Option {
	return func(o *options) { o.skipRecommendations = true }
}

func WithoutLoanTracks() Option {
	return func(o *options) { o.skipLoanTracks = true }
}

// ComputeAffordability runs the full assessment for a normalized profile. It
// is pure: the same profile always yields the same result.
func ComputeAffordability(profile domain.FinancialProfile, opts ...Option) domain.AffordabilityResult {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tier := ResolveCreditTier(profile.CreditBucket, profile.CoBorrowerCreditBucket)
	rate := AssumedRate(profile, tier)

	scenarios := SolveScenarios(profile, rate)
	target := scenarios[1]

	sub := ComputeSubScores(profile, tier, target)

	result := domain.AffordabilityResult{
		PPScore:                ComposeScore(profile, sub),
		Scenarios:              scenarios,
		Breakdown:              sub.Breakdown(),
		CreditTier:             tier,
		EstimatedRatePercent:   rate,
		LoanTermYears:          profile.LoanTermYears,
		PropertyTaxRatePercent: profile.PropertyTaxRate * 100,
		InsuranceRatePercent:   profile.InsuranceRate * 100,
		HOAMonthly:             profile.HOAMonthly,
		LoanTracks:             []domain.LoanTrack{},
		Recommendations:        []domain.Recommendation{},
	}

	if !o.skipLoanTracks {
		result.LoanTracks = ClassifyLoanTracks(profile, tier, target, rate, sub)
	}
	result.TargetCheck = EvaluateTargetPrice(profile, rate)
	if !o.skipRecommendations {
		if recs := GenerateRecommendations(profile, tier, sub); recs != nil {
			result.Recommendations = recs
		}
	}
	return result
}
