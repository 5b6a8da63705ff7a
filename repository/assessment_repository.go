package repository

import (
	"context"
	"errors"

	"mortgage-power/domain"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentRepository interface {
	Save(ctx context.Context, record domain.AssessmentRecord) error
	FindByID(ctx context.Context, id string) (domain.AssessmentRecord, error)
}
