package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"civic-feedback/internal/domain"
)

// FeedbackRepository persiste una fila por sesión completada.
type FeedbackRepository interface {
	SaveDistrict(ctx context.Context, record domain.DistrictFeedback) error
	SaveJustice(ctx context.Context, record domain.JusticeFeedback) error
	ListDistrict(ctx context.Context) ([]domain.DistrictFeedback, error)
	ListJustice(ctx context.Context) ([]domain.JusticeFeedback, error)
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) SaveDistrict(ctx context.Context, record domain.DistrictFeedback) error {
	const query = `
		INSERT INTO district_feedback (
			id, district, trust_score, responsiveness_score, infrastructure_score,
			public_services_score, safety_score, environment_score, transport_score,
			community_score, economic_score, governance_score, justice_score,
			justice_sentiment, overall_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.District,
		record.TrustScore,
		record.ResponsivenessScore,
		record.InfrastructureScore,
		record.PublicServicesScore,
		record.SafetyScore,
		record.EnvironmentScore,
		record.TransportScore,
		record.CommunityScore,
		record.EconomicScore,
		record.GovernanceScore,
		record.JusticeScore,
		record.JusticeSentiment,
		record.OverallScore,
	)
	return err
}

func (r *PgFeedbackRepository) SaveJustice(ctx context.Context, record domain.JusticeFeedback) error {
	const query = `
		INSERT INTO justice_feedback (
			id, district, trust_score, responsiveness_score, fairness_score,
			accessibility_score, corruption_score, community_justice_score,
			suggestions, justice_sentiment, overall_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.District,
		record.TrustScore,
		record.ResponsivenessScore,
		record.FairnessScore,
		record.AccessibilityScore,
		record.CorruptionScore,
		record.CommunityJusticeScore,
		record.Suggestions,
		record.JusticeSentiment,
		record.OverallScore,
	)
	return err
}

func (r *PgFeedbackRepository) ListDistrict(ctx context.Context) ([]domain.DistrictFeedback, error) {
	const query = `
		SELECT id, district, trust_score, responsiveness_score, infrastructure_score,
			public_services_score, safety_score, environment_score, transport_score,
			community_score, economic_score, governance_score, justice_score,
			justice_sentiment, overall_score, created_at
		FROM district_feedback
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DistrictFeedback
	for rows.Next() {
		var rec domain.DistrictFeedback
		if err := rows.Scan(
			&rec.ID,
			&rec.District,
			&rec.TrustScore,
			&rec.ResponsivenessScore,
			&rec.InfrastructureScore,
			&rec.PublicServicesScore,
			&rec.SafetyScore,
			&rec.EnvironmentScore,
			&rec.TransportScore,
			&rec.CommunityScore,
			&rec.EconomicScore,
			&rec.GovernanceScore,
			&rec.JusticeScore,
			&rec.JusticeSentiment,
			&rec.OverallScore,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PgFeedbackRepository) ListJustice(ctx context.Context) ([]domain.JusticeFeedback, error) {
	const query = `
		SELECT id, district, trust_score, responsiveness_score, fairness_score,
			accessibility_score, corruption_score, community_justice_score,
			suggestions, justice_sentiment, overall_score, created_at
		FROM justice_feedback
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.JusticeFeedback
	for rows.Next() {
		var rec domain.JusticeFeedback
		if err := rows.Scan(
			&rec.ID,
			&rec.District,
			&rec.TrustScore,
			&rec.ResponsivenessScore,
			&rec.FairnessScore,
			&rec.AccessibilityScore,
			&rec.CorruptionScore,
			&rec.CommunityJusticeScore,
			&rec.Suggestions,
			&rec.JusticeSentiment,
			&rec.OverallScore,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
