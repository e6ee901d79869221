package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

// appendAttempts bounds retries when two first entries of a user race on the
// (user_id, created_at) unique key.
const appendAttempts = 3

type CheckInRepository struct {
	db *sql.DB
}

func NewCheckInRepository(db *sql.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Append(ctx context.Context, e domain.CheckInEntry) (domain.CheckInEntry, error) {
	symptoms, err := json.Marshal(e.Symptoms)
	if err != nil {
		return domain.CheckInEntry{}, domain.NewStorageError("encode symptoms", err)
	}

	for attempt := 1; ; attempt++ {
		stored, err := r.appendOnce(ctx, e, symptoms)
		if err == nil {
			return stored, nil
		}
		if !isDuplicate(err) || attempt == appendAttempts {
			return domain.CheckInEntry{}, domain.NewStorageError("append check-in", err)
		}
	}
}

// appendOnce locks the user's newest row so created_at can be moved strictly
// past it, then inserts inside the same transaction.
func (r *CheckInRepository) appendOnce(ctx context.Context, e domain.CheckInEntry, symptoms []byte) (domain.CheckInEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CheckInEntry{}, err
	}

	var last time.Time
	err = tx.QueryRowContext(ctx,
		`SELECT created_at FROM check_ins
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1
		 FOR UPDATE`, e.UserID,
	).Scan(&last)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return domain.CheckInEntry{}, rollback(tx, err)
	case !e.CreatedAt.After(last):
		e.CreatedAt = last.Add(time.Microsecond)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO check_ins (uuid, user_id, mood, symptoms, journal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Mood, symptoms, e.Journal, e.CreatedAt,
	); err != nil {
		return domain.CheckInEntry{}, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.CheckInEntry{}, err
	}
	return e, nil
}

func (r *CheckInRepository) ListByUser(ctx context.Context, userID string) ([]domain.CheckInEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uuid, user_id, mood, symptoms, journal, created_at
		 FROM check_ins
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, domain.NewStorageError("list check-ins", err)
	}
	defer rows.Close()

	var entries []domain.CheckInEntry
	for rows.Next() {
		var (
			e        domain.CheckInEntry
			symptoms []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Mood, &symptoms, &e.Journal, &e.CreatedAt); err != nil {
			return nil, domain.NewStorageError("scan check-in", err)
		}
		if err := json.Unmarshal(symptoms, &e.Symptoms); err != nil {
			return nil, domain.NewStorageError("decode symptoms", err)
		}
		if e.Symptoms == nil {
			e.Symptoms = []string{}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list check-ins", err)
	}
	return entries, nil
}
