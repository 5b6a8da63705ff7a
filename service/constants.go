package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
	MaxTermMonths   = 600    // 50 years
	MinTermMonths   = 1

	// Parsed amounts are capped so derived sums stay finite.
	MaxInputAmount = 1_000_000_000_000.0
	// Debt-to-income ratios are reported up to 1000%.
	MaxDTIRatio = 10.0

	// Rate override bounds, annual percent
	MinRateOverride = 3.0
	MaxRateOverride = 10.0

	DefaultLoanTermYears   = 30
	IncomeAveragingFactor  = 0.85
	RentalIncomeFactor     = 0.75
	IncomeBenchmarkMonthly = 5000.0

	// Solver
	SolverSeedLoan        = 300_000.0
	SolverTolerance       = 1000.0
	SolverMaxIterations   = 10
	MinPriceDivisor       = 0.01
	PMIAnnualRate         = 0.005
	PMILoanToValueTrigger = 0.80

	// Target-home check threshold
	TargetDTIThreshold = 0.43

	// Conventional / Non-QM DTI gate
	QualifiedDTILimit = 0.45

	DefaultConformingLimit  = 766_550.0
	HighCostConformingLimit = 1_149_825.0

	MaxRecommendations = 8
)

// Score weights (points)
const (
	IncomeWeight = 30.0
	DebtWeight   = 25.0
	CreditWeight = 25.0
	CashWeight   = 20.0

	DebtRatioCeiling = 0.5
)

// Score adjustments
const (
	BankruptcyPenalty       = 15
	LatePaymentPenalty      = 10
	CollectionsPenalty      = 8
	IncomeAveragingPenalty  = 5
	ShortTenurePenalty      = 5
	LongTenureBonus         = 3
	GiftShortfallPenalty    = 3
	GiftLetterBonus         = 2
	LowReservesPenalty      = 5
	StrongReservesBonus     = 5
	FirstTimeLowDownPenalty = 5
	VeteranBonus            = 3
	CoBorrowerBonus         = 3
	ResidencyPenalty        = 3
	UnderContractBonus      = 2
	NearTermTimelineBonus   = 2
)

// Scenario names and their DTI ceilings
const (
	ScenarioSafe    = "Safe"
	ScenarioTarget  = "Target"
	ScenarioStretch = "Stretch"
)

var dtiScenarios = []struct {
	name    string
	ceiling float64
}{
	{ScenarioSafe, 0.36},
	{ScenarioTarget, 0.43},
	{ScenarioStretch, 0.50},
}
