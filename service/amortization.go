package service

import "math"

// MonthlyPayment is the fixed principal-and-interest payment for a loan.
// With a zero rate the loan is paid off linearly.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	return paymentForMonths(principal, annualRatePercent, termYears*12)
}

func paymentForMonths(principal, annualRatePercent float64, months int) float64 {
	n := float64(months)
	if n <= 0 || principal <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return principal / n
	}
	factor := math.Pow(1+r, n)
	return principal * (r * factor) / (factor - 1)
}

// PrincipalFromPayment is the inverse of MonthlyPayment: the loan amount a
// given monthly P&I payment can carry.
func PrincipalFromPayment(payment, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * 12)
	if n <= 0 || payment <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return payment * n
	}
	factor := math.Pow(1+r, n)
	return payment * (factor - 1) / (r * factor)
}

func MonthlyTax(price, annualTaxRate float64) float64 {
	return price * annualTaxRate / 12
}

func MonthlyInsurance(price, annualInsuranceRate float64) float64 {
	return price * annualInsuranceRate / 12
}

// MonthlyPMI is charged only when loan-to-value exceeds 80%.
func MonthlyPMI(loanAmount, price float64) float64 {
	if price <= 0 {
		return 0
	}
	if loanAmount/price > PMILoanToValueTrigger {
		return loanAmount * PMIAnnualRate / 12
	}
	return 0
}

// HousingCost breaks a monthly housing payment into its PITI components.
type HousingCost struct {
	PrincipalInterest float64
	Tax               float64
	Insurance         float64
	HOA               float64
	PMI               float64
}

func (c HousingCost) Total() float64 {
	return c.PrincipalInterest + c.Tax + c.Insurance + c.HOA + c.PMI
}

// escrow returns everything but principal and interest for a price/loan pair.
func escrow(price, loan, taxRate, insuranceRate, hoa float64) HousingCost {
	return HousingCost{
		Tax:       MonthlyTax(price, taxRate),
		Insurance: MonthlyInsurance(price, insuranceRate),
		HOA:       hoa,
		PMI:       MonthlyPMI(loan, price),
	}
}
