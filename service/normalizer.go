package service

import (
	"math"
	"strconv"
	"strings"

	"mortgage-power/domain"
)

var numberCleaner = strings.NewReplacer("$", "", ",", "", "%", "")

// parseAmount turns a raw form value into a finite, non-negative number no
// larger than MaxInputAmount. Anything that cannot be parsed becomes 0.
func parseAmount(f domain.Field) float64 {
	s := numberCleaner.Replace(strings.TrimSpace(string(f)))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return math.Min(v, MaxInputAmount)
}

// finiteOrZero guards derived totals.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// debtToIncome is debts over income, 1 when there is no income, and never
// above MaxDTIRatio.
func debtToIncome(debts, income float64) float64 {
	if income <= 0 {
		return 1
	}
	return math.Min(debts/income, MaxDTIRatio)
}

// parseRateOverride returns nil when no usable rate was given. Numeric values
// are clamped to [MinRateOverride, MaxRateOverride].
func parseRateOverride(f domain.Field) *float64 {
	s := numberCleaner.Replace(strings.TrimSpace(string(f)))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	v = math.Min(MaxRateOverride, math.Max(MinRateOverride, v))
	return &v
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// NormalizeProfile coerces the raw form into a FinancialProfile. It never
// fails: malformed numbers degrade to zero.
func NormalizeProfile(raw domain.RawProfile) domain.FinancialProfile {
	p := domain.FinancialProfile{
		State:        strings.ToUpper(strings.TrimSpace(raw.State)),
		County:       strings.TrimSpace(raw.County),
		Occupancy:    orDefault(raw.Occupancy, "primary"),
		PropertyType: orDefault(raw.PropertyType, "single-family"),

		SpecificPrice:    raw.PurchaseIntent == "specific",
		TargetPrice:      parseAmount(raw.TargetPurchasePrice),
		UnderContract:    raw.UnderContract,
		PurchaseTimeline: raw.PurchaseTimeline,

		AnnualIncome:         parseAmount(raw.AnnualIncome),
		OtherMonthlyIncome:   parseAmount(raw.OtherMonthlyIncome),
		CoBorrower:           raw.CoBorrower,
		RentalIncome:         parseAmount(raw.RentalIncome),
		SelfEmployed:         raw.EmploymentType == "self-employed",
		EmploymentYears:      parseAmount(raw.EmploymentYears),
		IncomeNeedsAveraging: raw.IncomeNeedsAveraging,
		EmploymentGaps:       raw.EmploymentGaps,

		MonthlyDebts:           parseAmount(raw.MonthlyDebts),
		ChildSupportPayment:    parseAmount(raw.ChildSupportPayment),
		RentalMortgagePayments: parseAmount(raw.RentalMortgagePayments),
		PropertiesOwned:        int(parseAmount(raw.PropertiesOwned)),

		CreditBucket: raw.CreditScore,
		Bankruptcy:   raw.Bankruptcy,
		LatePayments: raw.LatePayments,
		Collections:  raw.Collections,
		Citizenship:  raw.Citizenship,

		DownPayment:       parseAmount(raw.DownPayment),
		DownPaymentKind:   domain.DownPaymentDollars,
		DownPaymentSource: orDefault(raw.DownPaymentSource, "own"),
		GiftLetter:        raw.GiftLetter,
		ReservesMonths:    parseAmount(raw.ReservesMonths),

		FirstTimeHomebuyer: raw.FirstTimeHomebuyer,
		VeteranEligible:    raw.VeteranEligible,

		RateOverride:    parseRateOverride(raw.InterestRate),
		LoanTermYears:   int(parseAmount(raw.LoanTermYears)),
		PropertyTaxRate: parseAmount(raw.PropertyTaxRate) / 100,
		InsuranceRate:   parseAmount(raw.InsuranceRate) / 100,
		HOAMonthly:      parseAmount(raw.HOAMonthly),
	}

	if _, ok := creditTiers[p.CreditBucket]; !ok {
		p.CreditBucket = lowestBucket
	}
	if raw.DownPaymentType == string(domain.DownPaymentPercent) {
		p.DownPaymentKind = domain.DownPaymentPercent
		p.DownPayment = math.Min(p.DownPayment, 100)
	}
	if p.LoanTermYears <= 0 {
		p.LoanTermYears = DefaultLoanTermYears
	}
	// A second home cannot be multi-family
	if p.Occupancy == "second" && p.PropertyType == "multi-family" {
		p.PropertyType = "single-family"
	}

	if p.CoBorrower {
		p.CoBorrowerIncome = parseAmount(raw.CoBorrowerAnnualIncome)/12 + parseAmount(raw.CoBorrowerMonthlyIncome)
		if _, ok := creditTiers[raw.CoBorrowerCreditScore]; ok {
			p.CoBorrowerCreditBucket = raw.CoBorrowerCreditScore
		}
	}
	if raw.StudentLoansIncluded {
		p.StudentLoanPayment = parseAmount(raw.StudentLoanPayment)
	}
	if raw.KeepingCurrentHome {
		p.ExistingMortgagePayment = parseAmount(raw.ExistingMortgagePayment)
	}

	multiplier := 1.0
	if p.IncomeNeedsAveraging {
		multiplier = IncomeAveragingFactor
	}
	netRental := p.RentalIncome*RentalIncomeFactor - p.RentalMortgagePayments

	p.GrossMonthlyIncome = (p.AnnualIncome*multiplier)/12 + p.OtherMonthlyIncome*multiplier + p.CoBorrowerIncome
	p.TotalMonthlyDebt = p.MonthlyDebts + p.StudentLoanPayment + p.ChildSupportPayment + p.ExistingMortgagePayment
	if netRental > 0 {
		p.GrossMonthlyIncome += netRental
	} else {
		p.TotalMonthlyDebt -= netRental
	}

	p.GrossMonthlyIncome = finiteOrZero(p.GrossMonthlyIncome)
	p.TotalMonthlyDebt = finiteOrZero(p.TotalMonthlyDebt)
	p.DTIRatio = debtToIncome(p.TotalMonthlyDebt, p.GrossMonthlyIncome)

	return p
}
