package service

import (
	"math"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

const (
	whtrRiskThreshold   = 0.5
	hydrationTargetL    = 2.7
	sleepTargetHours    = 7
	weightLossDeficit   = 500
	boneReferenceMean   = 1.2
	boneReferenceStdDev = 0.1
	metabolicReference  = 1500
)

// ComputeMetrics derives the full metrics set from a profile. It does no I/O
// and returns the same result for the same profile.
func ComputeMetrics(p domain.HealthProfile) (domain.MetricsResult, error) {
	if err := validateProfile(p); err != nil {
		return domain.MetricsResult{}, err
	}

	heightCm := p.HeightM * 100
	age := float64(p.Age)
	male := p.Gender == domain.GenderMale

	bmi := p.WeightKg / (p.HeightM * p.HeightM)

	bfp := 1.20*bmi + 0.23*age
	if male {
		bfp -= 16.2
	} else {
		bfp -= 5.4
	}

	// Mifflin-St Jeor
	bmr := 10*p.WeightKg + 6.25*heightCm - 5*age
	if male {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * p.ActivityFactor

	whtr := p.WaistCm / heightCm
	risk := domain.RiskLow
	if whtr >= whtrRiskThreshold {
		risk = domain.RiskHigh
	}

	// Devine, height in inches over five feet
	base := 45.5
	if male {
		base = 50
	}
	ideal := base + 2.3*(heightCm/2.54-60)

	hydration := domain.HydrationLow
	if p.WaterIntakeL >= hydrationTargetL {
		hydration = domain.HydrationAdequate
	}
	sleep := domain.SleepNeedsImprovement
	if p.SleepHours >= sleepTargetHours {
		sleep = domain.SleepGood
	}

	result := domain.MetricsResult{
		BMI:                  bmi,
		BFP:                  bfp,
		LBM:                  p.WeightKg * (1 - bfp/100),
		BMR:                  bmr,
		TDEE:                 tdee,
		WHtR:                 whtr,
		RiskLevel:            risk,
		IdealWeightKg:        ideal,
		MetabolicAge:         bmr / metabolicReference * age,
		BoneTScore:           (p.BoneDensity - boneReferenceMean) / boneReferenceStdDev,
		WeightLossTargetKcal: tdee - weightLossDeficit,
		ProteinG:             p.WeightKg * 2.2,
		CarbsG:               tdee * 0.5 / 4,
		FatsG:                tdee * 0.3 / 9,
		HydrationStatus:      hydration,
		SleepStatus:          sleep,
	}
	if err := checkFinite(result); err != nil {
		return domain.MetricsResult{}, err
	}
	return result, nil
}

// checkFinite rejects profiles whose values are individually valid but
// overflow a derived metric, such as a near-zero height.
func checkFinite(r domain.MetricsResult) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"bmi", r.BMI},
		{"bfp", r.BFP},
		{"lbm", r.LBM},
		{"bmr", r.BMR},
		{"tdee", r.TDEE},
		{"whtr", r.WHtR},
		{"ideal_weight_kg", r.IdealWeightKg},
		{"metabolic_age", r.MetabolicAge},
		{"bone_t_score", r.BoneTScore},
		{"weight_loss_target_kcal", r.WeightLossTargetKcal},
		{"protein_g", r.ProteinG},
		{"carbs_g", r.CarbsG},
		{"fats_g", r.FatsG},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return domain.NewValidationError(f.name, "out of range")
		}
	}
	return nil
}

func validateProfile(p domain.HealthProfile) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"weight_kg", p.WeightKg},
		{"height_m", p.HeightM},
		{"waist_cm", p.WaistCm},
		{"activity_factor", p.ActivityFactor},
		{"bone_density", p.BoneDensity},
		{"sleep_hours", p.SleepHours},
		{"water_intake_l", p.WaterIntakeL},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return domain.NewValidationError(f.name, "must be a finite number")
		}
	}

	switch {
	case p.WeightKg <= 0:
		return domain.NewValidationError("weight_kg", "must be greater than 0")
	case p.HeightM <= 0:
		return domain.NewValidationError("height_m", "must be greater than 0")
	case p.WaistCm <= 0:
		return domain.NewValidationError("waist_cm", "must be greater than 0")
	case p.Age < 1 || p.Age > 120:
		return domain.NewValidationError("age", "must be between 1 and 120")
	case p.SleepHours < 0 || p.SleepHours > 24:
		return domain.NewValidationError("sleep_hours", "must be between 0 and 24")
	case p.WaterIntakeL < 0:
		return domain.NewValidationError("water_intake_l", "must not be negative")
	}

	if p.Gender != domain.GenderMale && p.Gender != domain.GenderFemale {
		return domain.NewValidationError("gender", "must be Male or Female")
	}
	if !validActivityFactor(p.ActivityFactor) {
		return domain.NewValidationError("activity_factor", "must be one of 1.2, 1.375, 1.55, 1.725")
	}
	if p.Gender == domain.GenderFemale {
		if p.HipCm == nil {
			return domain.NewValidationError("hip_cm", "is required for Female")
		}
		if *p.HipCm <= 0 || math.IsNaN(*p.HipCm) || math.IsInf(*p.HipCm, 0) {
			return domain.NewValidationError("hip_cm", "must be greater than 0")
		}
	}
	return nil
}

func validActivityFactor(f float64) bool {
	for _, allowed := range domain.ActivityFactors {
		if f == allowed {
			return true
		}
	}
	return false
}
