package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-power/domain"
)

func scoreFor(p domain.FinancialProfile) (int, SubScores) {
	tier := ResolveCreditTier(p.CreditBucket, p.CoBorrowerCreditBucket)
	target := SolveScenario(p, ScenarioTarget, 0.43, AssumedRate(p, tier))
	sub := ComputeSubScores(p, tier, target)
	return ComposeScore(p, sub), sub
}

func TestComputeSubScores_Example(t *testing.T) {
	_, sub := scoreFor(exampleProfile())

	assert.InDelta(t, 30, sub.Income, 1e-9)
	assert.InDelta(t, 25*(1-(400.0/7500.0)/0.5), sub.Debt, 1e-9)
	assert.InDelta(t, 23.75, sub.Credit, 1e-9)
	assert.InDelta(t, 10, sub.Cash, 1e-9)
	assert.InDelta(t, 0.10, sub.DownPaymentFraction, 1e-9)

	assert.Equal(t, domain.ScoreBreakdown{Income: 100, Debt: 89, Credit: 95, Cash: 50}, sub.Breakdown())
}

func TestComposeScore_Example(t *testing.T) {
	score, _ := scoreFor(exampleProfile())
	assert.Equal(t, 86, score)
}

func TestComposeScore_Adjustments(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(r *domain.RawProfile)
		delta int
	}{
		{"bankruptcy", func(r *domain.RawProfile) { r.Bankruptcy = true }, -15},
		{"late payments", func(r *domain.RawProfile) { r.LatePayments = true }, -10},
		{"collections", func(r *domain.RawProfile) { r.Collections = true }, -8},
		{"short tenure", func(r *domain.RawProfile) { r.EmploymentYears = "1" }, -5},
		{"long tenure", func(r *domain.RawProfile) { r.EmploymentYears = "6" }, 3},
		{"thin reserves", func(r *domain.RawProfile) { r.ReservesMonths = "1" }, -5},
		{"strong reserves", func(r *domain.RawProfile) { r.ReservesMonths = "6" }, 5},
		{"veteran", func(r *domain.RawProfile) { r.VeteranEligible = true }, 3},
		{"non-permanent resident", func(r *domain.RawProfile) { r.Citizenship = "non-permanent" }, -3},
		{"under contract", func(r *domain.RawProfile) { r.UnderContract = true }, 2},
		{"buying soon", func(r *domain.RawProfile) { r.PurchaseTimeline = "0-3" }, 2},
		{"income averaging", func(r *domain.RawProfile) { r.IncomeNeedsAveraging = true }, -5},
		{"co-borrower", func(r *domain.RawProfile) { r.CoBorrower = true }, 3},
		// cash drops from 10 to 4 points on top of the -5
		{"first-time buyer with 4% down", func(r *domain.RawProfile) {
			r.FirstTimeHomebuyer = true
			r.DownPayment = "4"
		}, -6 - 5},
		{"gift without letter", func(r *domain.RawProfile) { r.DownPaymentSource = "gift"; r.DownPayment = "5" }, -5 - 3},
		{"gift with letter", func(r *domain.RawProfile) {
			r.DownPaymentSource = "gift"
			r.DownPayment = "5"
			r.GiftLetter = true
		}, -5 + 2},
	}

	base, _ := scoreFor(exampleProfile())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := exampleRaw()
			tt.edit(&raw)
			got, _ := scoreFor(NormalizeProfile(raw))
			assert.Equal(t, base+tt.delta, got)
		})
	}
}

func TestComposeScore_Bounds(t *testing.T) {
	worst := domain.RawProfile{
		CreditScore:     "<600",
		Bankruptcy:      true,
		LatePayments:    true,
		Collections:     true,
		MonthlyDebts:    "5000",
		AnnualIncome:    "12000",
		ReservesMonths:  "1",
		EmploymentYears: "0.5",
		Citizenship:     "non-permanent",
	}
	score, _ := scoreFor(NormalizeProfile(worst))
	assert.Equal(t, 0, score)

	best := exampleRaw()
	best.DownPayment = "25"
	best.ReservesMonths = "12"
	best.EmploymentYears = "10"
	best.VeteranEligible = true
	best.UnderContract = true
	score, _ = scoreFor(NormalizeProfile(best))
	assert.Equal(t, 100, score)
}

func TestComposeScore_Monotonic(t *testing.T) {
	prev := -1
	for _, income := range []domain.Field{"30000", "45000", "60000", "75000", "90000"} {
		raw := exampleRaw()
		raw.AnnualIncome = income
		score, _ := scoreFor(NormalizeProfile(raw))
		assert.GreaterOrEqual(t, score, prev, "income %s", income)
		prev = score
	}

	prev = 101
	for _, debts := range []domain.Field{"0", "500", "1000", "2000", "3000"} {
		raw := exampleRaw()
		raw.MonthlyDebts = debts
		score, _ := scoreFor(NormalizeProfile(raw))
		assert.LessOrEqual(t, score, prev, "debts %s", debts)
		prev = score
	}
}

func TestTargetPrice_MonotonicInIncome(t *testing.T) {
	prev := 0.0
	for _, income := range []domain.Field{"45000", "60000", "75000", "90000", "105000", "120000", "150000"} {
		raw := exampleRaw()
		raw.AnnualIncome = income
		p := NormalizeProfile(raw)
		target := SolveScenario(p, ScenarioTarget, 0.43, AssumedRate(p, LookupCreditTier(p.CreditBucket)))

		assert.Greater(t, target.MaxPurchasePrice, prev, "income %s", income)
		prev = target.MaxPurchasePrice
	}
}
