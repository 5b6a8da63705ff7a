package service

import (
	"math"

	"mortgage-power/domain"
)

// SubScores are the weighted components of the purchasing-power score, in
// points against their caps.
type SubScores struct {
	Income float64
	Debt   float64
	Credit float64
	Cash   float64

	// DownPaymentFraction is the down payment as a share of the Target price.
	DownPaymentFraction float64
	DownPaymentDollars  float64
}

func (s SubScores) Sum() float64 {
	return s.Income + s.Debt + s.Credit + s.Cash
}

// Breakdown expresses each sub-score as a percentage of its cap.
func (s SubScores) Breakdown() domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		Income: int(math.Round(s.Income / IncomeWeight * 100)),
		Debt:   int(math.Round(s.Debt / DebtWeight * 100)),
		Credit: int(math.Round(s.Credit / CreditWeight * 100)),
		Cash:   int(math.Round(s.Cash / CashWeight * 100)),
	}
}

// downPaymentAgainst returns the down payment in dollars and as a fraction of
// price. The fraction is 0 when price is 0.
func downPaymentAgainst(profile domain.FinancialProfile, price float64) (dollars, fraction float64) {
	if pct, ok := profile.DownPaymentFraction(); ok {
		dollars = price * pct
	} else {
		dollars = profile.DownPayment
	}
	if price > 0 {
		fraction = dollars / price
	}
	return dollars, fraction
}

// ComputeSubScores evaluates the four weighted components using the Target
// scenario's price for the cash component.
func ComputeSubScores(profile domain.FinancialProfile, tier domain.CreditTierInfo, target domain.Scenario) SubScores {
	dollars, fraction := downPaymentAgainst(profile, target.MaxPurchasePrice)
	return SubScores{
		Income:              math.Min(IncomeWeight, (profile.GrossMonthlyIncome/IncomeBenchmarkMonthly)*IncomeWeight),
		Debt:                math.Max(0, DebtWeight*(1-profile.DTIRatio/DebtRatioCeiling)),
		Credit:              (tier.ScorePoints / 100) * CreditWeight,
		Cash:                math.Min(CashWeight, fraction*100),
		DownPaymentFraction: fraction,
		DownPaymentDollars:  dollars,
	}
}

// scoreAdjustment is one conditional penalty or bonus.
type scoreAdjustment struct {
	applies func(p domain.FinancialProfile, s SubScores) bool
	points  float64
}

func giftShortfall(p domain.FinancialProfile, s SubScores) bool {
	return p.GiftFunded() && s.DownPaymentFraction < 0.10
}

var scoreAdjustments = []scoreAdjustment{
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.Bankruptcy }, -BankruptcyPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.LatePayments }, -LatePaymentPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.Collections }, -CollectionsPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.IncomeNeedsAveraging }, -IncomeAveragingPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool {
		return p.EmploymentYears > 0 && p.EmploymentYears < 2
	}, -ShortTenurePenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.EmploymentYears >= 5 }, LongTenureBonus},
	{func(p domain.FinancialProfile, s SubScores) bool { return giftShortfall(p, s) && !p.GiftLetter }, -GiftShortfallPenalty},
	{func(p domain.FinancialProfile, s SubScores) bool { return giftShortfall(p, s) && p.GiftLetter }, GiftLetterBonus},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.ReservesMonths > 0 && p.ReservesMonths < 2 }, -LowReservesPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.ReservesMonths >= 6 }, StrongReservesBonus},
	{func(p domain.FinancialProfile, s SubScores) bool {
		return p.FirstTimeHomebuyer && s.DownPaymentFraction < 0.05
	}, -FirstTimeLowDownPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.VeteranEligible }, VeteranBonus},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.CoBorrower }, CoBorrowerBonus},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.NonPermanentResident() }, -ResidencyPenalty},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.UnderContract }, UnderContractBonus},
	{func(p domain.FinancialProfile, _ SubScores) bool { return p.PurchaseTimeline == "0-3" }, NearTermTimelineBonus},
}

// ComposeScore adds every applicable adjustment to the weighted sum, then
// clamps to [0, 100] and rounds.
func ComposeScore(profile domain.FinancialProfile, sub SubScores) int {
	total := sub.Sum()
	for _, adj := range scoreAdjustments {
		if adj.applies(profile, sub) {
			total += adj.points
		}
	}
	return int(math.Round(math.Max(0, math.Min(100, total))))
}
