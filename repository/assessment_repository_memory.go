package repository

import (
	"context"
	"sync"

	"mortgage-power/domain"
)

// AssessmentRepositoryMemory is an in-memory implementation of AssessmentRepository.
type AssessmentRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.AssessmentRecord
}

// NewAssessmentRepositoryMemory creates a new in-memory assessment repository.
func NewAssessmentRepositoryMemory() *AssessmentRepositoryMemory {
	return &AssessmentRepositoryMemory{
		data: make(map[string]domain.AssessmentRecord),
	}
}

// Save stores the assessment summary in memory.
func (r *AssessmentRepositoryMemory) Save(_ context.Context, record domain.AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.ID] = record
	return nil
}

func (r *AssessmentRepositoryMemory) FindByID(_ context.Context, id string) (domain.AssessmentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[id]
	if !ok {
		return domain.AssessmentRecord{}, ErrAssessmentNotFound
	}
	return record, nil
}
