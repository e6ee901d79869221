package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

// PreferenceRepository keeps one JSON document per user in MySQL.
type PreferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Get(ctx context.Context, userID string) (*domain.StoredPreferences, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM user_preferences WHERE user_id = ?`, userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get preferences", err)
	}

	var prefs domain.StoredPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, domain.NewStorageError("decode preferences", err)
	}
	return &prefs, nil
}

func (r *PreferenceRepository) Replace(ctx context.Context, userID string, prefs domain.PreferenceSet) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return domain.NewStorageError("encode preferences", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, data) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE data = VALUES(data)`,
		userID, data,
	)
	if err != nil {
		return domain.NewStorageError("save preferences", err)
	}
	return nil
}
