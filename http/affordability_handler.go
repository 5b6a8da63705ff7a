package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"mortgage-power/domain"
	"mortgage-power/repository"
	"mortgage-power/service"
)

const maxBodyBytes = 1 << 20

type AffordabilityHandler struct {
	service *service.AffordabilityService
	logger  *zap.Logger
	schema  *gojsonschema.Schema
}

func NewAffordabilityHandler(service *service.AffordabilityService, logger *zap.Logger) (*AffordabilityHandler, error) {
	schema, err := compileProfileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}
	return &AffordabilityHandler{service: service, logger: logger, schema: schema}, nil
}

// Assess runs the full affordability assessment. ?save=true persists a summary.
func (h *AffordabilityHandler) Assess(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, service.AssessRequest{Save: r.URL.Query().Get("save") == "true"})
}

// Score returns only the score, scenarios and breakdown.
func (h *AffordabilityHandler) Score(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, service.AssessRequest{
		Options: []service.Option{service.WithoutRecommendations(), service.WithoutLoanTracks()},
		Variant: "score",
	})
}

func (h *AffordabilityHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	record, err := h.service.Find(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrAssessmentNotFound) {
		http.Error(w, "assessment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("error loading assessment", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, record)
}

func (h *AffordabilityHandler) handle(w http.ResponseWriter, r *http.Request, req service.AssessRequest) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profile, err := h.decodeProfile(w, r)
	if err != nil {
		h.logger.Debug("rejected request body", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Profile = profile

	result, err := h.service.Assess(r.Context(), req)
	if err != nil {
		h.logger.Error("error computing assessment", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// decodeProfile checks the body's shape against the profile schema before
// decoding it.
func (h *AffordabilityHandler) decodeProfile(w http.ResponseWriter, r *http.Request) (domain.RawProfile, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return domain.RawProfile{}, errors.New("invalid request body")
	}

	validation, err := h.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return domain.RawProfile{}, errors.New("invalid request body")
	}
	if !validation.Valid() {
		msgs := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.RawProfile{}, fmt.Errorf("invalid request body: %s", strings.Join(msgs, "; "))
	}

	var profile domain.RawProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return domain.RawProfile{}, errors.New("invalid request body")
	}
	return profile, nil
}
