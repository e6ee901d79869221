package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

func TestMetricService_RecordAndHistory(t *testing.T) {
	repo := &memoryMetrics{}
	svc := NewMetricService(repo, zap.NewNop())
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }
	ctx := context.Background()

	result, snap, err := svc.Record(ctx, "user-1", maleProfile())
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.ID)
	assert.Equal(t, result.BMI, snap.BMI)
	assert.Equal(t, result.BFP, snap.BFP)
	assert.Equal(t, at, snap.ComputedAt)

	history, err := svc.History(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 70.0, history[0].WeightKg)

	empty, err := svc.History(ctx, "user-2")
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestMetricService_RecordRejectsInvalidProfile(t *testing.T) {
	repo := &memoryMetrics{}
	svc := NewMetricService(repo, zap.NewNop())

	p := maleProfile()
	p.HeightM = 0
	_, _, err := svc.Record(context.Background(), "user-1", p)

	var verr *domain.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Empty(t, repo.snapshots)

	_, _, err = svc.Record(context.Background(), "", maleProfile())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
