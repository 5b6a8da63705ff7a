package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"mortgage-power/domain"
)

const (
	createAssessmentsTable = `CREATE TABLE IF NOT EXISTS mortgage_assessments (
	id            UUID PRIMARY KEY,
	created_at    TIMESTAMPTZ NOT NULL,
	profile       JSONB NOT NULL,
	pp_score      INTEGER NOT NULL,
	safe_price    NUMERIC(14,2) NOT NULL,
	target_price  NUMERIC(14,2) NOT NULL,
	stretch_price NUMERIC(14,2) NOT NULL
)`

	insertAssessment = `INSERT INTO mortgage_assessments
	(id, created_at, profile, pp_score, safe_price, target_price, stretch_price)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectAssessment = `SELECT id, created_at, profile, pp_score, safe_price, target_price, stretch_price
	FROM mortgage_assessments WHERE id = $1`
)

// PostgresAssessmentRepository persists assessment summaries in PostgreSQL.
type PostgresAssessmentRepository struct {
	db *sql.DB
}

func NewPostgresAssessmentRepository(db *sql.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

// EnsureSchema creates the assessments table when it does not exist yet.
func (r *PostgresAssessmentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAssessmentsTable); err != nil {
		return fmt.Errorf("create mortgage_assessments: %w", err)
	}
	return nil
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func (r *PostgresAssessmentRepository) Save(ctx context.Context, record domain.AssessmentRecord) error {
	profile, err := json.Marshal(record.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertAssessment,
		record.ID,
		record.CreatedAt,
		profile,
		record.PPScore,
		money(record.SafePrice),
		money(record.TargetPrice),
		money(record.StretchPrice),
	)
	if err != nil {
		return fmt.Errorf("insert assessment %s: %w", record.ID, err)
	}
	return nil
}

func (r *PostgresAssessmentRepository) FindByID(ctx context.Context, id string) (domain.AssessmentRecord, error) {
	var (
		record                domain.AssessmentRecord
		profile               []byte
		safe, target, stretch decimal.Decimal
	)
	err := r.db.QueryRowContext(ctx, selectAssessment, id).Scan(
		&record.ID, &record.CreatedAt, &profile, &record.PPScore, &safe, &target, &stretch,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AssessmentRecord{}, ErrAssessmentNotFound
	}
	if err != nil {
		return domain.AssessmentRecord{}, fmt.Errorf("select assessment %s: %w", id, err)
	}
	if err := json.Unmarshal(profile, &record.Profile); err != nil {
		return domain.AssessmentRecord{}, fmt.Errorf("decode profile for %s: %w", id, err)
	}

	record.SafePrice = safe.InexactFloat64()
	record.TargetPrice = target.InexactFloat64()
	record.StretchPrice = stretch.InexactFloat64()
	return record, nil
}
