package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

type CheckInRepository interface {
	// Append stores the entry and returns it with the created_at actually
	// persisted, which is strictly after every earlier entry of the user.
	Append(ctx context.Context, entry domain.CheckInEntry) (domain.CheckInEntry, error)
	// ListByUser returns the user's entries newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.CheckInEntry, error)
}

type CheckInService struct {
	repo   CheckInRepository
	now    func() time.Time
	logger *zap.Logger
}

func NewCheckInService(repo CheckInRepository, logger *zap.Logger) *CheckInService {
	return &CheckInService{repo: repo, now: time.Now, logger: logger}
}

func (s *CheckInService) Append(ctx context.Context, userID string, draft domain.CheckInDraft) (domain.CheckInEntry, error) {
	if userID == "" {
		return domain.CheckInEntry{}, domain.ErrUnauthenticated
	}

	mood, symptoms, err := normalizeDraft(draft)
	if err != nil {
		return domain.CheckInEntry{}, err
	}

	entry := domain.CheckInEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mood:      mood,
		Symptoms:  symptoms,
		Journal:   draft.Journal,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	stored, err := s.repo.Append(ctx, entry)
	if err != nil {
		s.logger.Error("failed to append check-in",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return domain.CheckInEntry{}, err
	}

	s.logger.Info("check-in appended",
		zap.String("user_id", userID),
		zap.String("check_in_id", stored.ID),
		zap.Time("created_at", stored.CreatedAt),
	)
	return stored, nil
}

func (s *CheckInService) List(ctx context.Context, userID string) ([]domain.CheckInEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list check-ins",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	if entries == nil {
		entries = []domain.CheckInEntry{}
	}
	return entries, nil
}

func normalizeDraft(draft domain.CheckInDraft) (string, []string, error) {
	// Moods are stored exactly as sent, so padded values are rejected rather than trimmed.
	mood := draft.Mood
	if strings.TrimSpace(mood) == "" {
		return "", nil, domain.NewValidationError("mood", "is required")
	}
	if !contains(domain.Moods, mood) {
		return "", nil, domain.NewValidationError("mood", "must be one of "+strings.Join(domain.Moods, ", "))
	}

	symptoms := make([]string, 0, len(draft.Symptoms))
	seen := make(map[string]bool, len(draft.Symptoms))
	for _, sym := range draft.Symptoms {
		if !contains(domain.CheckInSymptoms, sym) {
			return "", nil, domain.NewValidationError("symptoms", "unknown symptom "+sym)
		}
		if seen[sym] {
			continue
		}
		seen[sym] = true
		symptoms = append(symptoms, sym)
	}
	return mood, symptoms, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
