package repository

import (
	"context"
	"database/sql"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

type MetricRepository struct {
	db *sql.DB
}

func NewMetricRepository(db *sql.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

func (r *MetricRepository) Create(ctx context.Context, m *domain.MetricSnapshot) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO metric_snapshots (user_id, weight_kg, bmi, bfp, computed_at)
		 VALUES (?, ?, ?, ?, ?)`,
		m.UserID, m.WeightKg, m.BMI, m.BFP, m.ComputedAt,
	)
	if err != nil {
		return 0, domain.NewStorageError("create metric snapshot", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, domain.NewStorageError("create metric snapshot", err)
	}
	return id, nil
}

func (r *MetricRepository) ListByUser(ctx context.Context, userID string) ([]domain.MetricSnapshot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, weight_kg, bmi, bfp, computed_at
		 FROM metric_snapshots
		 WHERE user_id = ?
		 ORDER BY computed_at ASC, id ASC`, userID,
	)
	if err != nil {
		return nil, domain.NewStorageError("list metric snapshots", err)
	}
	defer rows.Close()

	var snapshots []domain.MetricSnapshot
	for rows.Next() {
		var m domain.MetricSnapshot
		if err := rows.Scan(&m.ID, &m.UserID, &m.WeightKg, &m.BMI, &m.BFP, &m.ComputedAt); err != nil {
			return nil, domain.NewStorageError("scan metric snapshot", err)
		}
		snapshots = append(snapshots, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list metric snapshots", err)
	}
	return snapshots, nil
}
