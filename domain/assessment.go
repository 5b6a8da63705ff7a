package domain

import "time"

// AssessmentRecord is what gets persisted when a borrower saves a calculation.
type AssessmentRecord struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"createdAt"`
	Profile      FinancialProfile `json:"profile"`
	PPScore      int              `json:"ppScore"`
	SafePrice    float64          `json:"safePrice"`
	TargetPrice  float64          `json:"targetPrice"`
	StretchPrice float64          `json:"stretchPrice"`
}
