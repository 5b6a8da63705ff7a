package service

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"mortgage-power/domain"
)

// roundTo2Decimals rounds to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// LoanService quotes the payment on a plain amortizing loan.
type LoanService struct {
	logger *zap.Logger
}

func NewLoanService(logger *zap.Logger) *LoanService {
	return &LoanService{logger: logger}
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if input.Amount <= 0 {
		return domain.LoanResult{}, errors.New("invalid loan amount")
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("loan amount exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.LoanResult{}, errors.New("invalid interest rate")
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return domain.LoanResult{}, errors.New("invalid term")
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}

	payment := paymentForMonths(input.Amount, input.InterestRate, input.TermMonths)
	total := payment * float64(input.TermMonths)

	result := domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Amount),
	}

	s.logger.Debug("loan quote calculated",
		zap.Float64("amount", input.Amount),
		zap.Int("termMonths", input.TermMonths),
		zap.Float64("monthlyPayment", result.MonthlyPayment),
	)

	return result, nil
}
