package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-power/domain"
)

func TestComputeAffordability_Example(t *testing.T) {
	result := ComputeAffordability(exampleProfile())

	assert.Equal(t, 86, result.PPScore)
	assert.Equal(t, "720+", result.CreditTier.Bucket)
	assert.Equal(t, 6.5, result.EstimatedRatePercent)
	assert.Equal(t, 30, result.LoanTermYears)
	assert.InDelta(t, 1.2, result.PropertyTaxRatePercent, 1e-9)
	assert.InDelta(t, 0.5, result.InsuranceRatePercent, 1e-9)

	require.Len(t, result.Scenarios, 3)
	assert.InDelta(t, 377_797.09, result.Scenario(ScenarioTarget).MaxPurchasePrice, 0.5)

	assert.Equal(t, []string{"Conventional", "FHA"}, programs(result.LoanTracks))
	assert.Nil(t, result.TargetCheck)
	assert.Len(t, result.Recommendations, 4)
}

func TestComputeAffordability_Idempotent(t *testing.T) {
	raw := exampleRaw()
	raw.PurchaseIntent = "specific"
	raw.TargetPurchasePrice = "450000"
	raw.VeteranEligible = true
	p := NormalizeProfile(raw)

	first, err := json.Marshal(ComputeAffordability(p))
	require.NoError(t, err)
	second, err := json.Marshal(ComputeAffordability(p))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestComputeAffordability_Options(t *testing.T) {
	result := ComputeAffordability(exampleProfile(), WithoutLoanTracks(), WithoutRecommendations())

	assert.NotNil(t, result.LoanTracks)
	assert.Empty(t, result.LoanTracks)
	assert.NotNil(t, result.Recommendations)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 86, result.PPScore)
}

func TestComputeAffordability_EmptyProfile(t *testing.T) {
	result := ComputeAffordability(NormalizeProfile(domain.RawProfile{}))

	for _, s := range result.Scenarios {
		assert.Zero(t, s.MaxLoanAmount, s.Name)
		assert.Zero(t, s.MaxPurchasePrice, s.Name)
	}
	assert.Equal(t, "<600", result.CreditTier.Bucket)
	assert.GreaterOrEqual(t, result.PPScore, 0)
	assert.LessOrEqual(t, result.PPScore, 100)
	assert.NotNil(t, result.Recommendations)
}

func TestComputeAffordability_CoBorrowerLowersTier(t *testing.T) {
	raw := exampleRaw()
	raw.CoBorrower = true
	raw.CoBorrowerCreditScore = "<600"

	result := ComputeAffordability(NormalizeProfile(raw))

	assert.Equal(t, "<600", result.CreditTier.Bucket)
	assert.Equal(t, 9.0, result.EstimatedRatePercent)
}

func TestComputeAffordability_RateOverride(t *testing.T) {
	raw := exampleRaw()
	raw.InterestRate = "5.25"

	result := ComputeAffordability(NormalizeProfile(raw))

	assert.Equal(t, 5.25, result.EstimatedRatePercent)
	for _, track := range result.LoanTracks {
		assert.GreaterOrEqual(t, track.EstimatedRatePercent, 5.0)
	}
	assert.Greater(t, result.Scenario(ScenarioTarget).MaxLoanAmount, 340_017.38)
}

func TestComputeAffordability_HugeInputsEncode(t *testing.T) {
	raw := exampleRaw()
	raw.AnnualIncome = "0.000001"
	raw.MonthlyDebts = "1e305"
	raw.ChildSupportPayment = "1e308"
	raw.PurchaseIntent = "specific"
	raw.TargetPurchasePrice = "1e308"

	_, err := json.Marshal(ComputeAffordability(NormalizeProfile(raw)))
	assert.NoError(t, err)
}

func TestComputeAffordability_ResultsDoNotShareRuleSlices(t *testing.T) {
	first := ComputeAffordability(exampleProfile())
	require.NotEmpty(t, first.LoanTracks)
	want := first.LoanTracks[0].Pros[0]

	first.LoanTracks[0].Pros[0] = "edited by caller"
	first.LoanTracks[0].Cons = append(first.LoanTracks[0].Cons[:0], "edited by caller")

	second := ComputeAffordability(exampleProfile())
	assert.Equal(t, want, second.LoanTracks[0].Pros[0])
	assert.NotEqual(t, "edited by caller", second.LoanTracks[0].Cons[0])
}
