package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	// $100K at 6% for 30 years is about $599.55.
	assert.InDelta(t, 599.55, MonthlyPayment(100_000, 6, 30), 0.01)
}

func TestMonthlyPayment_ZeroRateIsLinear(t *testing.T) {
	assert.Equal(t, 100.0, MonthlyPayment(1200, 0, 1))
	assert.Equal(t, 12_000.0, PrincipalFromPayment(1000, 0, 1))
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.Zero(t, MonthlyPayment(0, 6, 30))
	assert.Zero(t, MonthlyPayment(100_000, 6, 0))
	assert.Zero(t, PrincipalFromPayment(-5, 6, 30))
	assert.Zero(t, PrincipalFromPayment(500, 6, 0))
}

func TestPrincipalFromPayment_InvertsMonthlyPayment(t *testing.T) {
	for _, rate := range []float64{0, 3, 6.5, 10} {
		for _, years := range []int{10, 15, 30} {
			payment := MonthlyPayment(250_000, rate, years)
			assert.InDelta(t, 250_000, PrincipalFromPayment(payment, rate, years), 0.01,
				"rate=%v years=%v", rate, years)
		}
	}
}

func TestEscrowHelpers(t *testing.T) {
	assert.InDelta(t, 300.0, MonthlyTax(300_000, 0.012), 1e-9)
	assert.InDelta(t, 125.0, MonthlyInsurance(300_000, 0.005), 1e-9)
}

func TestMonthlyPMI(t *testing.T) {
	tests := []struct {
		name  string
		loan  float64
		price float64
		want  float64
	}{
		{"ltv above 80%", 270_000, 300_000, 270_000 * 0.005 / 12},
		{"ltv exactly 80%", 240_000, 300_000, 0},
		{"ltv below 80%", 200_000, 300_000, 0},
		{"zero price", 100_000, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MonthlyPMI(tt.loan, tt.price), 1e-9)
		})
	}
}

func TestHousingCost_Total(t *testing.T) {
	c := HousingCost{PrincipalInterest: 1000, Tax: 200, Insurance: 100, HOA: 50, PMI: 25}
	assert.Equal(t, 1375.0, c.Total())
}
