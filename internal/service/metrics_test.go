package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func maleProfile() domain.HealthProfile {
	return domain.HealthProfile{
		WeightKg:       70,
		HeightM:        1.75,
		WaistCm:        80,
		Gender:         domain.GenderMale,
		ActivityFactor: 1.375,
		BoneDensity:    1.1,
		SleepHours:     8,
		WaterIntakeL:   3,
		Age:            22,
	}
}

func TestComputeMetrics_MaleReference(t *testing.T) {
	res, err := ComputeMetrics(maleProfile())
	require.NoError(t, err)

	assert.InDelta(t, 22.857, res.BMI, 0.001)
	assert.InDelta(t, 1.2*22.857142857+0.23*22-16.2, res.BFP, 1e-6)
	assert.InDelta(t, 1688.75, res.BMR, 1e-9)
	assert.InDelta(t, 1688.75*1.375, res.TDEE, 1e-9)
	assert.InDelta(t, 0.457, res.WHtR, 0.001)
	assert.Equal(t, domain.RiskLow, res.RiskLevel)
	assert.InDelta(t, 50+2.3*(175/2.54-60), res.IdealWeightKg, 1e-9)
	assert.InDelta(t, 70*(1-res.BFP/100), res.LBM, 1e-9)
	assert.InDelta(t, 1688.75/1500*22, res.MetabolicAge, 1e-9)
	assert.InDelta(t, -1.0, res.BoneTScore, 1e-9)
	assert.InDelta(t, res.TDEE-500, res.WeightLossTargetKcal, 1e-9)
	assert.InDelta(t, 154.0, res.ProteinG, 1e-9)
	assert.InDelta(t, res.TDEE*0.5/4, res.CarbsG, 1e-9)
	assert.InDelta(t, res.TDEE*0.3/9, res.FatsG, 1e-9)
	assert.Equal(t, domain.HydrationAdequate, res.HydrationStatus)
	assert.Equal(t, domain.SleepGood, res.SleepStatus)
}

func TestComputeMetrics_BMRAndTDEEAtAge23(t *testing.T) {
	p := maleProfile()
	p.Age = 23

	res, err := ComputeMetrics(p)
	require.NoError(t, err)

	assert.InDelta(t, 1683.75, res.BMR, 1e-9)
	assert.InDelta(t, 2315.16, res.TDEE, 0.01)
}

func TestComputeMetrics_Female(t *testing.T) {
	p := maleProfile()
	p.Gender = domain.GenderFemale
	p.HipCm = floatPtr(95)
	p.WaistCm = 90
	p.WaterIntakeL = 1.5
	p.SleepHours = 6

	res, err := ComputeMetrics(p)
	require.NoError(t, err)

	assert.InDelta(t, 1.2*res.BMI+0.23*22-5.4, res.BFP, 1e-9)
	assert.InDelta(t, 700+1093.75-110-161, res.BMR, 1e-9)
	assert.InDelta(t, 45.5+2.3*(175/2.54-60), res.IdealWeightKg, 1e-9)
	assert.Equal(t, domain.RiskHigh, res.RiskLevel)
	assert.Equal(t, domain.HydrationLow, res.HydrationStatus)
	assert.Equal(t, domain.SleepNeedsImprovement, res.SleepStatus)
}

func TestComputeMetrics_Thresholds(t *testing.T) {
	p := maleProfile()
	p.WaistCm = 87.5 // whtr exactly 0.5
	p.WaterIntakeL = 2.7
	p.SleepHours = 7

	res, err := ComputeMetrics(p)
	require.NoError(t, err)

	assert.Equal(t, domain.RiskHigh, res.RiskLevel)
	assert.Equal(t, domain.HydrationAdequate, res.HydrationStatus)
	assert.Equal(t, domain.SleepGood, res.SleepStatus)
}

func TestComputeMetrics_Deterministic(t *testing.T) {
	p := maleProfile()
	first, err := ComputeMetrics(p)
	require.NoError(t, err)
	second, err := ComputeMetrics(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeMetrics_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.HealthProfile)
		field  string
	}{
		{"zero height", func(p *domain.HealthProfile) { p.HeightM = 0 }, "height_m"},
		{"zero weight", func(p *domain.HealthProfile) { p.WeightKg = 0 }, "weight_kg"},
		{"negative weight", func(p *domain.HealthProfile) { p.WeightKg = -3 }, "weight_kg"},
		{"age zero", func(p *domain.HealthProfile) { p.Age = 0 }, "age"},
		{"age too high", func(p *domain.HealthProfile) { p.Age = 121 }, "age"},
		{"activity factor", func(p *domain.HealthProfile) { p.ActivityFactor = 1.9 }, "activity_factor"},
		{"female without hip", func(p *domain.HealthProfile) { p.Gender = domain.GenderFemale }, "hip_cm"},
		{"unknown gender", func(p *domain.HealthProfile) { p.Gender = "Other" }, "gender"},
		{"missing waist", func(p *domain.HealthProfile) { p.WaistCm = 0 }, "waist_cm"},
		{"sleep over a day", func(p *domain.HealthProfile) { p.SleepHours = 25 }, "sleep_hours"},
		{"negative water", func(p *domain.HealthProfile) { p.WaterIntakeL = -1 }, "water_intake_l"},
		{"nan weight", func(p *domain.HealthProfile) { p.WeightKg = math.NaN() }, "weight_kg"},
		{"infinite height", func(p *domain.HealthProfile) { p.HeightM = math.Inf(1) }, "height_m"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := maleProfile()
			tc.mutate(&p)

			res, err := ComputeMetrics(p)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, domain.MetricsResult{}, res)
		})
	}
}

func TestComputeMetrics_OverflowIsRejected(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.HealthProfile)
		field  string
	}{
		{"near zero height", func(p *domain.HealthProfile) { p.HeightM = 1e-160 }, "bmi"},
		{"huge weight", func(p *domain.HealthProfile) { p.WeightKg = 1e308 }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := maleProfile()
			tc.mutate(&p)

			res, err := ComputeMetrics(p)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, "out of range", verr.Message)
			if tc.field != "" {
				assert.Equal(t, tc.field, verr.Field)
			}
			assert.Equal(t, domain.MetricsResult{}, res)
		})
	}
}

func TestComputeMetrics_FiniteOutputs(t *testing.T) {
	p := maleProfile()
	p.Gender = domain.GenderFemale
	p.HipCm = floatPtr(100)
	for _, factor := range domain.ActivityFactors {
		p.ActivityFactor = factor
		res, err := ComputeMetrics(p)
		require.NoError(t, err)
		for _, v := range []float64{res.BMI, res.BFP, res.LBM, res.BMR, res.TDEE, res.WHtR,
			res.IdealWeightKg, res.MetabolicAge, res.BoneTScore, res.WeightLossTargetKcal,
			res.ProteinG, res.CarbsG, res.FatsG} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}
}
