package service

import "mortgage-power/domain"

// exampleRaw is a $90k salaried borrower with $400/month of debts, top
// credit, 10% down and no adverse history.
func exampleRaw() domain.RawProfile {
	return domain.RawProfile{
		Occupancy:         "primary",
		PropertyType:      "single-family",
		PurchaseIntent:    "max",
		AnnualIncome:      "90000",
		EmploymentType:    "w2",
		MonthlyDebts:      "400",
		CreditScore:       "720+",
		Citizenship:       "us-citizen",
		DownPayment:       "10",
		DownPaymentType:   "percent",
		DownPaymentSource: "own",
		LoanTermYears:     "30",
		PropertyTaxRate:   "1.2",
		InsuranceRate:     "0.5",
		HOAMonthly:        "0",
	}
}

func exampleProfile() domain.FinancialProfile {
	return NormalizeProfile(exampleRaw())
}
