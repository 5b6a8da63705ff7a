package domain

// RawProfile carries the borrower form exactly as it was submitted.
type RawProfile struct {
	ZipCode string `json:"zipCode"`
	State   string `json:"state"`
	County  string `json:"county"`

	Occupancy    string `json:"occupancy"`
	PropertyType string `json:"propertyType"`

	PurchaseIntent      string `json:"purchaseIntent"`
	TargetPurchasePrice Field  `json:"targetPurchasePrice"`
	UnderContract       bool   `json:"underContract"`
	PurchaseTimeline    string `json:"purchaseTimeline"`

	AnnualIncome         Field  `json:"annualIncome"`
	OtherMonthlyIncome   Field  `json:"otherMonthlyIncome"`
	EmploymentType       string `json:"employmentType"`
	EmploymentYears      Field  `json:"employmentYears"`
	IncomeNeedsAveraging bool   `json:"incomeNeedsAveraging"`
	EmploymentGaps       bool   `json:"employmentGaps"`

	CoBorrower              bool   `json:"coBorrower"`
	CoBorrowerAnnualIncome  Field  `json:"coBorrowerAnnualIncome"`
	CoBorrowerMonthlyIncome Field  `json:"coBorrowerMonthlyIncome"`
	CoBorrowerCreditScore   string `json:"coBorrowerCreditScore"`

	MonthlyDebts            Field `json:"monthlyDebts"`
	StudentLoansIncluded    bool  `json:"studentLoansIncluded"`
	StudentLoanPayment      Field `json:"studentLoanPayment"`
	ChildSupportPayment     Field `json:"childSupportPayment"`
	KeepingCurrentHome      bool  `json:"keepingCurrentHome"`
	ExistingMortgagePayment Field `json:"existingMortgagePayment"`

	CreditScore  string `json:"creditScore"`
	Bankruptcy   bool   `json:"bankruptcy"`
	LatePayments bool   `json:"latePayments"`
	Collections  bool   `json:"collections"`

	Citizenship string `json:"citizenship"`

	DownPayment       Field  `json:"downPayment"`
	DownPaymentType   string `json:"downPaymentType"`
	DownPaymentSource string `json:"downPaymentSource"`
	GiftLetter        bool   `json:"giftLetter"`
	ReservesMonths    Field  `json:"reservesMonths"`

	FirstTimeHomebuyer bool `json:"firstTimeHomebuyer"`
	VeteranEligible    bool `json:"veteranEligible"`

	InterestRate    Field `json:"interestRate"`
	LoanTermYears   Field `json:"loanTermYears"`
	PropertyTaxRate Field `json:"propertyTaxRate"`
	InsuranceRate   Field `json:"insuranceRate"`
	HOAMonthly      Field `json:"hoaMonthly"`

	PropertiesOwned        Field `json:"propertiesOwned"`
	RentalIncome           Field `json:"rentalIncome"`
	RentalMortgagePayments Field `json:"rentalMortgagePayments"`
}

// DownPaymentKind says how FinancialProfile.DownPayment is expressed.
type DownPaymentKind string

const (
	DownPaymentPercent DownPaymentKind = "percent"
	DownPaymentDollars DownPaymentKind = "dollars"
)

// FinancialProfile is the normalized borrower snapshot. Every float field is
// finite and non-negative.
type FinancialProfile struct {
	State        string `json:"state"`
	County       string `json:"county"`
	Occupancy    string `json:"occupancy"`
	PropertyType string `json:"propertyType"`

	SpecificPrice    bool    `json:"specificPrice"`
	TargetPrice      float64 `json:"targetPrice"`
	UnderContract    bool    `json:"underContract"`
	PurchaseTimeline string  `json:"purchaseTimeline"`

	AnnualIncome         float64 `json:"annualIncome"`
	OtherMonthlyIncome   float64 `json:"otherMonthlyIncome"`
	CoBorrower           bool    `json:"coBorrower"`
	CoBorrowerIncome     float64 `json:"coBorrowerIncome"`
	RentalIncome         float64 `json:"rentalIncome"`
	SelfEmployed         bool    `json:"selfEmployed"`
	EmploymentYears      float64 `json:"employmentYears"`
	IncomeNeedsAveraging bool    `json:"incomeNeedsAveraging"`
	EmploymentGaps       bool    `json:"employmentGaps"`

	MonthlyDebts            float64 `json:"monthlyDebts"`
	StudentLoanPayment      float64 `json:"studentLoanPayment"`
	ChildSupportPayment     float64 `json:"childSupportPayment"`
	ExistingMortgagePayment float64 `json:"existingMortgagePayment"`
	RentalMortgagePayments  float64 `json:"rentalMortgagePayments"`
	PropertiesOwned         int     `json:"propertiesOwned"`

	CreditBucket           string `json:"creditBucket"`
	CoBorrowerCreditBucket string `json:"coBorrowerCreditBucket"`
	Bankruptcy             bool   `json:"bankruptcy"`
	LatePayments           bool   `json:"latePayments"`
	Collections            bool   `json:"collections"`
	Citizenship            string `json:"citizenship"`

	DownPayment       float64         `json:"downPayment"`
	DownPaymentKind   DownPaymentKind `json:"downPaymentKind"`
	DownPaymentSource string          `json:"downPaymentSource"`
	GiftLetter        bool            `json:"giftLetter"`
	ReservesMonths    float64         `json:"reservesMonths"`

	FirstTimeHomebuyer bool `json:"firstTimeHomebuyer"`
	VeteranEligible    bool `json:"veteranEligible"`

	// RateOverride is nil when the borrower did not supply a usable rate.
	RateOverride    *float64 `json:"rateOverride,omitempty"`
	LoanTermYears   int      `json:"loanTermYears"`
	PropertyTaxRate float64  `json:"propertyTaxRate"`
	InsuranceRate   float64  `json:"insuranceRate"`
	HOAMonthly      float64  `json:"hoaMonthly"`

	GrossMonthlyIncome float64 `json:"grossMonthlyIncome"`
	TotalMonthlyDebt   float64 `json:"totalMonthlyDebt"`
	DTIRatio           float64 `json:"dtiRatio"`
}

// DownPaymentFraction returns the percent down payment as a fraction, or
// ok=false for a flat dollar amount.
func (p FinancialProfile) DownPaymentFraction() (float64, bool) {
	if p.DownPaymentKind == DownPaymentPercent {
		return p.DownPayment / 100, true
	}
	return 0, false
}

// GiftFunded reports whether part of the down payment comes from a gift.
func (p FinancialProfile) GiftFunded() bool {
	return p.DownPaymentSource == "gift" || p.DownPaymentSource == "combo"
}

// NonPermanentResident is true for borrowers who are neither citizens nor
// permanent residents.
func (p FinancialProfile) NonPermanentResident() bool {
	switch p.Citizenship {
	case "", "us-citizen", "permanent-resident":
		return false
	}
	return true
}
