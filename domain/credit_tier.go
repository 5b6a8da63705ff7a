package domain

type CreditTierInfo struct {
	Bucket       string  `json:"bucket"`
	RatePercent  float64 `json:"ratePercent"`
	ScorePoints  float64 `json:"scorePoints"`
	Label        string  `json:"label"`
	NumericFloor int     `json:"numericFloor"`
}
