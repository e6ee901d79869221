package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

type MetricRepository interface {
	Create(ctx context.Context, s *domain.MetricSnapshot) (int64, error)
	// ListByUser returns snapshots oldest first, the order a trend chart plots them.
	ListByUser(ctx context.Context, userID string) ([]domain.MetricSnapshot, error)
}

// MetricService keeps the BMI / body fat history next to the pure engine.
type MetricService struct {
	repo   MetricRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewMetricService(repo MetricRepository, logger *zap.Logger) *MetricService {
	return &MetricService{repo: repo, now: time.Now, logger: logger}
}

func (s *MetricService) Record(ctx context.Context, userID string, p domain.HealthProfile) (domain.MetricsResult, domain.MetricSnapshot, error) {
	if userID == "" {
		return domain.MetricsResult{}, domain.MetricSnapshot{}, domain.ErrUnauthenticated
	}

	result, err := ComputeMetrics(p)
	if err != nil {
		return domain.MetricsResult{}, domain.MetricSnapshot{}, err
	}

	snap := domain.MetricSnapshot{
		UserID:     userID,
		WeightKg:   p.WeightKg,
		BMI:        result.BMI,
		BFP:        result.BFP,
		ComputedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	id, err := s.repo.Create(ctx, &snap)
	if err != nil {
		s.logger.Error("failed to record metrics", zap.String("user_id", userID), zap.Error(err))
		return domain.MetricsResult{}, domain.MetricSnapshot{}, err
	}
	snap.ID = id
	return result, snap, nil
}

func (s *MetricService) History(ctx context.Context, userID string) ([]domain.MetricSnapshot, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	history, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.MetricSnapshot{}
	}
	return history, nil
}
