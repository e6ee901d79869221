package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

var errStoreDown = domain.NewStorageError("reach store", errors.New("connection refused"))

// memoryCheckIns mimics the SQL repository: created_at is bumped past the
// user's newest entry and listing is newest first with insertion order as tie break.
type memoryCheckIns struct {
	mu      sync.Mutex
	entries []domain.CheckInEntry
	fail    bool
}

func (m *memoryCheckIns) Append(_ context.Context, e domain.CheckInEntry) (domain.CheckInEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return domain.CheckInEntry{}, errStoreDown
	}
	for _, prev := range m.entries {
		if prev.UserID == e.UserID && !e.CreatedAt.After(prev.CreatedAt) {
			e.CreatedAt = prev.CreatedAt.Add(time.Microsecond)
		}
	}
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memoryCheckIns) ListByUser(_ context.Context, userID string) ([]domain.CheckInEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errStoreDown
	}
	var out []domain.CheckInEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			out = append(out, m.entries[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memoryPreferences struct {
	docs     map[string]*domain.StoredPreferences
	replaced int
	fail     bool
}

func newMemoryPreferences() *memoryPreferences {
	return &memoryPreferences{docs: map[string]*domain.StoredPreferences{}}
}

func (m *memoryPreferences) Get(_ context.Context, userID string) (*domain.StoredPreferences, error) {
	if m.fail {
		return nil, errStoreDown
	}
	return m.docs[userID], nil
}

func (m *memoryPreferences) Replace(_ context.Context, userID string, p domain.PreferenceSet) error {
	if m.fail {
		return errStoreDown
	}
	m.replaced++
	fontSize := string(p.FontSize)
	m.docs[userID] = &domain.StoredPreferences{
		DarkMode:         &p.DarkMode,
		MetricUnits:      &p.MetricUnits,
		Notifications:    &p.Notifications,
		Language:         &p.Language,
		SmartDevice:      &p.SmartDevice,
		FontSize:         &fontSize,
		AccentColor:      &p.AccentColor,
		AutoSync:         &p.AutoSync,
		LocationServices: &p.LocationServices,
	}
	return nil
}

type stubCapabilities struct {
	notificationCalls int
	locateCalls       int
	grant             bool
	notifyErr         error
	locateErr         error
}

func (s *stubCapabilities) RequestNotificationPermission(context.Context, string) (bool, error) {
	s.notificationCalls++
	return s.grant, s.notifyErr
}

func (s *stubCapabilities) LocateDevice(context.Context, string) error {
	s.locateCalls++
	return s.locateErr
}

type memoryMetrics struct {
	snapshots []domain.MetricSnapshot
}

func (m *memoryMetrics) Create(_ context.Context, s *domain.MetricSnapshot) (int64, error) {
	m.snapshots = append(m.snapshots, *s)
	return int64(len(m.snapshots)), nil
}

func (m *memoryMetrics) ListByUser(_ context.Context, userID string) ([]domain.MetricSnapshot, error) {
	var out []domain.MetricSnapshot
	for _, s := range m.snapshots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
