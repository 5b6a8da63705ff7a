package service

import "mortgage-power/domain"

const lowestBucket = "<600"

var creditTiers = map[string]domain.CreditTierInfo{
	"720+":    {Bucket: "720+", RatePercent: 6.5, ScorePoints: 95, Label: "Excellent", NumericFloor: 720},
	"680-719": {Bucket: "680-719", RatePercent: 7.0, ScorePoints: 80, Label: "Good", NumericFloor: 680},
	"640-679": {Bucket: "640-679", RatePercent: 7.5, ScorePoints: 65, Label: "Fair", NumericFloor: 640},
	"600-639": {Bucket: "600-639", RatePercent: 8.0, ScorePoints: 50, Label: "Poor", NumericFloor: 600},
	"<600":    {Bucket: "<600", RatePercent: 9.0, ScorePoints: 35, Label: "Very Poor", NumericFloor: 500},
}

// TopCreditBucket is the best bucket in the tier table.
const TopCreditBucket = "720+"

// LookupCreditTier returns the tier for a bucket, falling back to the lowest
// tier for unknown buckets.
func LookupCreditTier(bucket string) domain.CreditTierInfo {
	if tier, ok := creditTiers[bucket]; ok {
		return tier
	}
	return creditTiers[lowestBucket]
}

// ResolveCreditTier picks the weaker of the two borrowers' tiers. An empty
// co-borrower bucket means a single borrower.
func ResolveCreditTier(primary, coBorrower string) domain.CreditTierInfo {
	tier := LookupCreditTier(primary)
	if coBorrower == "" {
		return tier
	}
	if co := LookupCreditTier(coBorrower); co.NumericFloor < tier.NumericFloor {
		return co
	}
	return tier
}

// AssumedRate is the rate used for every payment computation: the borrower's
// override if present, otherwise the tier rate.
func AssumedRate(profile domain.FinancialProfile, tier domain.CreditTierInfo) float64 {
	if profile.RateOverride != nil {
		return *profile.RateOverride
	}
	return tier.RatePercent
}
