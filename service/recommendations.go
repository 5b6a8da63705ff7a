package service

import (
	"fmt"
	"math"
	"sort"

	"mortgage-power/domain"
)

var priorityRank = map[domain.Priority]int{
	domain.PriorityHigh:   0,
	domain.PriorityMedium: 1,
	domain.PriorityLow:    2,
}

func pointsLeft(limit, got float64) int {
	return int(math.Round(math.Max(0, limit-got)))
}

// GenerateRecommendations returns one action per weak spot in the profile,
// highest priority and largest gain first, at most MaxRecommendations.
func GenerateRecommendations(profile domain.FinancialProfile, tier domain.CreditTierInfo, sub SubScores) []domain.Recommendation {
	var recs []domain.Recommendation
	add := func(category, issue, action string, gain int, priority domain.Priority) {
		recs = append(recs, domain.Recommendation{
			Category:      category,
			Issue:         issue,
			Action:        action,
			PotentialGain: gain,
			Priority:      priority,
		})
	}

	if profile.GrossMonthlyIncome < IncomeBenchmarkMonthly {
		gain := pointsLeft(IncomeWeight, sub.Income)
		priority := domain.PriorityMedium
		if gain >= 10 {
			priority = domain.PriorityHigh
		}
		add("income",
			fmt.Sprintf("Qualifying income of $%.0f/month is below the $%.0f benchmark", profile.GrossMonthlyIncome, IncomeBenchmarkMonthly),
			"Document additional income such as bonuses, overtime or a side business",
			gain, priority)
	}
	if !profile.CoBorrower {
		add("income", "Applying without a co-borrower",
			"Consider adding a creditworthy co-borrower to combine incomes",
			CoBorrowerBonus, domain.PriorityLow)
	}
	if !profile.VeteranEligible {
		add("eligibility", "No VA eligibility on file",
			"If you or your spouse served, request a Certificate of Eligibility",
			VeteranBonus, domain.PriorityLow)
	}

	if profile.DTIRatio > 0.20 {
		priority := domain.PriorityLow
		switch {
		case profile.DTIRatio > TargetDTIThreshold:
			priority = domain.PriorityHigh
		case profile.DTIRatio > 0.36:
			priority = domain.PriorityMedium
		}
		add("debt",
			fmt.Sprintf("Debt-to-income ratio is %.0f%%", profile.DTIRatio*100),
			"Pay down revolving balances or car loans before applying",
			pointsLeft(DebtWeight, sub.Debt), priority)
	}

	if tier.Bucket != TopCreditBucket {
		priority := domain.PriorityMedium
		if tier.NumericFloor < 640 {
			priority = domain.PriorityHigh
		}
		top := creditTiers[TopCreditBucket]
		add("credit",
			fmt.Sprintf("Credit tier is %s (%s)", tier.Label, tier.Bucket),
			"Lower card utilization below 30% and dispute report errors to move up a tier",
			int(math.Round((top.ScorePoints-tier.ScorePoints)/100*CreditWeight)), priority)
	}
	if profile.LatePayments {
		add("credit", "Recent late payment on the credit report",
			"Keep every account current for 12 months; ask creditors for goodwill removal",
			LatePaymentPenalty, domain.PriorityHigh)
	}
	if profile.Collections {
		add("credit", "Open collections or judgments",
			"Settle or pay off collections and get a paid-in-full letter",
			CollectionsPenalty, domain.PriorityHigh)
	}
	if profile.Bankruptcy {
		add("credit", "Recent bankruptcy",
			"Rebuild credit through the waiting period and keep discharge papers ready",
			BankruptcyPenalty, domain.PriorityHigh)
	}

	if sub.DownPaymentFraction < 0.20 {
		priority := domain.PriorityMedium
		if sub.DownPaymentFraction < 0.05 {
			priority = domain.PriorityHigh
		}
		add("cash",
			fmt.Sprintf("Down payment is %.1f%% of the target price", sub.DownPaymentFraction*100),
			"Save toward 20% down to remove PMI and strengthen the file",
			pointsLeft(CashWeight, sub.Cash), priority)
	}
	if profile.ReservesMonths < 6 {
		gain := StrongReservesBonus
		if profile.ReservesMonths > 0 && profile.ReservesMonths < 2 {
			gain += LowReservesPenalty
		}
		add("cash",
			fmt.Sprintf("Reserves cover %.0f months of payments", profile.ReservesMonths),
			"Build reserves to at least 6 months of housing payments",
			gain, domain.PriorityMedium)
	}
	if profile.GiftFunded() && sub.DownPaymentFraction < 0.10 && !profile.GiftLetter {
		add("cash", "Gift funds without a gift letter",
			"Get a signed gift letter from the donor",
			GiftShortfallPenalty+GiftLetterBonus, domain.PriorityMedium)
	}

	switch {
	case profile.EmploymentYears > 0 && profile.EmploymentYears < 2:
		add("employment", "Less than 2 years in current employment",
			"Stay with your current employer until you reach 2 years",
			ShortTenurePenalty, domain.PriorityMedium)
	case profile.EmploymentYears >= 2 && profile.EmploymentYears < 5:
		add("employment", "Employment history between 2 and 5 years",
			"Continued tenure past 5 years adds stability to the file",
			LongTenureBonus, domain.PriorityLow)
	}

	if profile.PurchaseTimeline == "12+" {
		add("timeline", "Purchase timeline is more than a year out",
			"Use the time to pay down debt and grow savings, then get pre-approved",
			NearTermTimelineBonus, domain.PriorityLow)
	}
	if profile.NonPermanentResident() {
		add("residency", "Non-permanent residency status",
			"Have work authorization and visa documents ready; permanent residency widens options",
			ResidencyPenalty, domain.PriorityLow)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
		}
		return recs[i].PotentialGain > recs[j].PotentialGain
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
