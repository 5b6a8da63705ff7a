package service

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"mortgage-power/domain"
)

// standardTerms are the mortgage terms lenders commonly offer, in years.
var standardTerms = []int{10, 15, 20, 25, 30}

type termWeights struct {
	interest float64
	payment  float64
	term     float64
}

var preferenceWeights = map[string]termWeights{
	"minimize_interest": {interest: 0.7, payment: 0.1, term: 0.2},
	"minimize_payment":  {interest: 0.1, payment: 0.8, term: 0.1},
	"balanced":          {interest: 0.4, payment: 0.4, term: 0.2},
}

var preferenceReasons = map[string]string{
	"minimize_interest": "Term chosen to minimize total interest paid",
	"minimize_payment":  "Term chosen to minimize the monthly payment",
	"balanced":          "Best balance between monthly payment and total cost",
}

// TermRecommendationService compares standard mortgage terms for one loan.
type TermRecommendationService struct {
	loanService *LoanService
	logger      *zap.Logger
}

func NewTermRecommendationService(loanService *LoanService, logger *zap.Logger) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
		logger:      logger,
	}
}

// CompareTerms quotes every standard term that fits under the payment
// ceiling and ranks them by the borrower's preference.
func (s *TermRecommendationService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.LoanAmount <= 0 {
		return domain.TermComparisonResult{}, errors.New("invalid loan amount")
	}
	if input.InterestRate < 0 {
		return domain.TermComparisonResult{}, errors.New("invalid interest rate")
	}
	if input.MaxMonthlyPayment <= 0 {
		return domain.TermComparisonResult{}, errors.New("invalid maximum monthly payment")
	}
	weights, ok := preferenceWeights[input.Preference]
	if !ok {
		return domain.TermComparisonResult{}, fmt.Errorf("invalid preference %q", input.Preference)
	}

	options := make([]domain.TermOption, 0, len(standardTerms))
	for _, years := range standardTerms {
		quote, err := s.loanService.CalculateLoan(domain.LoanInput{
			Amount:       input.LoanAmount,
			InterestRate: input.InterestRate,
			TermMonths:   years * 12,
		})
		if err != nil {
			s.logger.Warn("failed to quote term", zap.Int("termYears", years), zap.Error(err))
			continue
		}

		if quote.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      years,
			MonthlyPayment: quote.MonthlyPayment,
			TotalInterest:  quote.TotalInterest,
			Reason:         preferenceReasons[input.Preference],
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, errors.New("no standard term fits the maximum monthly payment")
	}

	scoreTerms(options, weights)

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TermComparisonResult{
		RecommendedTermYears: options[0].TermYears,
		Options:              options,
	}, nil
}

// scoreTerms rates each option 0-10. Interest and payment are scaled
// against the best and worst candidate; shorter terms score higher on term.
func scoreTerms(options []domain.TermOption, w termWeights) {
	minInterest, maxInterest := options[0].TotalInterest, options[0].TotalInterest
	minPayment, maxPayment := options[0].MonthlyPayment, options[0].MonthlyPayment
	for _, o := range options[1:] {
		minInterest = min(minInterest, o.TotalInterest)
		maxInterest = max(maxInterest, o.TotalInterest)
		minPayment = min(minPayment, o.MonthlyPayment)
		maxPayment = max(maxPayment, o.MonthlyPayment)
	}

	shortest, longest := standardTerms[0], standardTerms[len(standardTerms)-1]
	for i := range options {
		o := &options[i]
		interestScore := scaledScore(maxInterest-o.TotalInterest, maxInterest-minInterest)
		paymentScore := scaledScore(maxPayment-o.MonthlyPayment, maxPayment-minPayment)
		termScore := 10 * (1 - float64(o.TermYears-shortest)/float64(longest-shortest))

		o.Score = roundTo2Decimals(w.interest*interestScore + w.payment*paymentScore + w.term*termScore)
	}
}

// scaledScore maps gain/spread onto 0-10. With no spread every candidate is
// equally good.
func scaledScore(gain, spread float64) float64 {
	if spread <= 0 {
		return 10
	}
	return 10 * gain / spread
}
