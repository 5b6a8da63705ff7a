package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mortgage-power/repository"
	"mortgage-power/service"
)

const exampleProfileJSON = `{
	"occupancy": "primary",
	"annualIncome": 90000,
	"monthlyDebts": "400",
	"creditScore": "720+",
	"citizenship": "us-citizen",
	"downPayment": 10,
	"downPaymentType": "percent",
	"loanTermYears": 30,
	"propertyTaxRate": 1.2,
	"insuranceRate": "0.5",
	"hoaMonthly": null,
	"bankruptcy": false
}`

func newTestAffordabilityHandler(t *testing.T) *AffordabilityHandler {
	t.Helper()
	svc := service.NewAffordabilityService(
		repository.NewMemoryCache(),
		repository.NewAssessmentRepositoryMemory(),
		zap.NewNop(),
		time.Minute,
	)
	h, err := NewAffordabilityHandler(svc, zap.NewNop())
	require.NoError(t, err)
	return h
}

func newTestLoanHandler() *LoanHandler {
	return NewLoanHandler(service.NewLoanService(zap.NewNop()), zap.NewNop())
}

func newTestTermHandler() *TermRecommendationHandler {
	svc := service.NewTermRecommendationService(service.NewLoanService(zap.NewNop()), zap.NewNop())
	return NewTermRecommendationHandler(svc, zap.NewNop())
}

func newTestLimiter(t *testing.T, capacity int) (*RateLimiter, func()) {
	t.Helper()
	limiter := NewRateLimiter(capacity, time.Minute)
	return limiter, limiter.Stop
}
