package service

import (
	"math"

	"mortgage-power/domain"
)

// priceFromLoan derives the purchase price a loan implies under the
// borrower's down payment terms.
func priceFromLoan(profile domain.FinancialProfile, loan float64) float64 {
	if fraction, ok := profile.DownPaymentFraction(); ok {
		return loan / math.Max(1-fraction, MinPriceDivisor)
	}
	return loan + profile.DownPayment
}

// SolveScenario finds the largest loan whose full housing cost fits in the
// budget left under dtiCeiling after existing debts. Taxes, insurance and PMI
// depend on the price being solved for, so the loan is found by fixed-point
// iteration from SolverSeedLoan.
func SolveScenario(profile domain.FinancialProfile, name string, dtiCeiling, ratePercent float64) domain.Scenario {
	maxHousing := profile.GrossMonthlyIncome*dtiCeiling - profile.TotalMonthlyDebt
	scenario := domain.Scenario{
		Name:                     name,
		DTICeiling:               dtiCeiling,
		MaxMonthlyHousingPayment: maxHousing,
	}
	if maxHousing <= 0 {
		return scenario
	}

	loan := SolverSeedLoan
	for i := 0; i < SolverMaxIterations; i++ {
		price := priceFromLoan(profile, loan)
		costs := escrow(price, loan, profile.PropertyTaxRate, profile.InsuranceRate, profile.HOAMonthly)

		maxPI := maxHousing - costs.Total()
		if maxPI <= 0 || math.IsNaN(maxPI) || math.IsInf(maxPI, 0) {
			loan = 0
			break
		}

		next := PrincipalFromPayment(maxPI, ratePercent, profile.LoanTermYears)
		converged := math.Abs(next-loan) < SolverTolerance
		loan = next
		if converged {
			break
		}
	}

	scenario.MaxLoanAmount = loan
	scenario.MaxPurchasePrice = priceFromLoan(profile, loan)
	return scenario
}

// SolveScenarios runs the solver for the Safe, Target and Stretch ceilings.
func SolveScenarios(profile domain.FinancialProfile, ratePercent float64) []domain.Scenario {
	scenarios := make([]domain.Scenario, 0, len(dtiScenarios))
	for _, s := range dtiScenarios {
		scenarios = append(scenarios, SolveScenario(profile, s.name, s.ceiling, ratePercent))
	}
	return scenarios
}
