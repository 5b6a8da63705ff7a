package domain

type Scenario struct {
	Name                     string  `json:"name"`
	DTICeiling               float64 `json:"dtiCeiling"`
	MaxPurchasePrice         float64 `json:"maxPrice"`
	MaxLoanAmount            float64 `json:"maxLoan"`
	MaxMonthlyHousingPayment float64 `json:"monthlyPayment"`
}

// ScoreBreakdown holds each sub-score as a 0-100 percentage of its cap.
type ScoreBreakdown struct {
	Income int `json:"income"`
	Debt   int `json:"debt"`
	Credit int `json:"credit"`
	Cash   int `json:"cash"`
}

type TrackStatus string

const (
	StatusLikely   TrackStatus = "likely"
	StatusPossible TrackStatus = "possible"
	StatusUnlikely TrackStatus = "unlikely"
)

type LoanTrack struct {
	Program                string      `json:"name"`
	Status                 TrackStatus `json:"status"`
	Reason                 string      `json:"reason"`
	RankingScore           int         `json:"rankingScore"`
	Badge                  string      `json:"badge,omitempty"`
	MinDownPayment         float64     `json:"minDownPayment"`
	EstimatedRatePercent   float64     `json:"estimatedRate"`
	PMIRequired            bool        `json:"pmiRequired"`
	MonthlyPaymentEstimate *float64    `json:"monthlyPaymentEst"`
	Pros                   []string    `json:"pros"`
	Cons                   []string    `json:"cons"`
	BestFor                string      `json:"bestFor"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	Category      string   `json:"category"`
	Issue         string   `json:"issue"`
	Action        string   `json:"action"`
	PotentialGain int      `json:"potentialGain"`
	Priority      Priority `json:"priority"`
}

type TargetCheckResult struct {
	TargetPrice           float64 `json:"targetPrice"`
	DownPayment           float64 `json:"downPayment"`
	LoanAmount            float64 `json:"loanAmount"`
	MonthlyPrincipalInt   float64 `json:"monthlyPrincipalInterest"`
	MonthlyHousingPayment float64 `json:"targetHousingPayment"`
	ResultingDTI          float64 `json:"targetDTI"`
	WithinTargetDTI       bool    `json:"withinTargetDTI"`
	Guidance              string  `json:"guidance"`
}

type AffordabilityResult struct {
	PPScore                int                `json:"ppScore"`
	Scenarios              []Scenario         `json:"scenarios"`
	Breakdown              ScoreBreakdown     `json:"breakdown"`
	CreditTier             CreditTierInfo     `json:"creditTier"`
	EstimatedRatePercent   float64            `json:"estimatedRate"`
	LoanTermYears          int                `json:"loanTermYears"`
	PropertyTaxRatePercent float64            `json:"propertyTaxRate"`
	InsuranceRatePercent   float64            `json:"insuranceRate"`
	HOAMonthly             float64            `json:"hoaMonthly"`
	LoanTracks             []LoanTrack        `json:"loanTracks"`
	TargetCheck            *TargetCheckResult `json:"targetCheck"`
	Recommendations        []Recommendation   `json:"recommendations"`
}

// Scenario returns the named scenario, or the zero value when absent.
func (r AffordabilityResult) Scenario(name string) Scenario {
	for _, s := range r.Scenarios {
		if s.Name == name {
			return s
		}
	}
	return Scenario{}
}
