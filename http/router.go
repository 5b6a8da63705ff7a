package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter registers every endpoint. Calculation routes go through the
// rate limiter; health and metrics do not.
func NewRouter(
	limiter *RateLimiter,
	affordability *AffordabilityHandler,
	loan *LoanHandler,
	term *TermRecommendationHandler,
) *http.ServeMux {
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/mortgage/affordability", limited(affordability.Assess))
	mux.Handle("/mortgage/score", limited(affordability.Score))
	mux.Handle("/mortgage/assessments/{id}", limited(affordability.GetAssessment))
	mux.Handle("/mortgage/term", limited(term.CompareTerms))
	mux.Handle("/loan/calculate", limited(loan.CalculateLoan))

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}
