package service

import (
	"math"

	"mortgage-power/domain"
)

const (
	withinTargetGuidance  = "Within a typical target DTI range."
	exceedsTargetGuidance = "Exceeds a typical target DTI range; consider a lower price or higher down payment."
)

// EvaluateTargetPrice prices a home the borrower already has in mind. It
// returns nil unless the borrower asked for a specific price and gave one.
func EvaluateTargetPrice(profile domain.FinancialProfile, ratePercent float64) *domain.TargetCheckResult {
	if !profile.SpecificPrice || profile.TargetPrice <= 0 {
		return nil
	}
	price := profile.TargetPrice

	down := math.Min(profile.DownPayment, price)
	if fraction, ok := profile.DownPaymentFraction(); ok {
		down = price * fraction
	}
	loan := math.Max(0, price-down)

	cost := escrow(price, loan, profile.PropertyTaxRate, profile.InsuranceRate, profile.HOAMonthly)
	cost.PrincipalInterest = MonthlyPayment(loan, ratePercent, profile.LoanTermYears)
	housing := cost.Total()

	dti := debtToIncome(profile.TotalMonthlyDebt+housing, profile.GrossMonthlyIncome)

	result := &domain.TargetCheckResult{
		TargetPrice:           price,
		DownPayment:           down,
		LoanAmount:            loan,
		MonthlyPrincipalInt:   cost.PrincipalInterest,
		MonthlyHousingPayment: housing,
		ResultingDTI:          dti,
		WithinTargetDTI:       dti <= TargetDTIThreshold,
		Guidance:              withinTargetGuidance,
	}
	if !result.WithinTargetDTI {
		result.Guidance = exceedsTargetGuidance
	}
	return result
}
