package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type RiskLevel string

const (
	RiskLow  RiskLevel = "Low"
	RiskHigh RiskLevel = "High"
)

type HydrationStatus string

const (
	HydrationAdequate HydrationStatus = "Adequate"
	HydrationLow      HydrationStatus = "Low"
)

type SleepStatus string

const (
	SleepGood             SleepStatus = "Good"
	SleepNeedsImprovement SleepStatus = "NeedsImprovement"
)

// ActivityFactors are the accepted TDEE multipliers, sedentary through very active.
var ActivityFactors = []float64{1.2, 1.375, 1.55, 1.725}

type HealthProfile struct {
	WeightKg       float64  `json:"weight_kg"`
	HeightM        float64  `json:"height_m"`
	WaistCm        float64  `json:"waist_cm"`
	NeckCm         *float64 `json:"neck_cm,omitempty"`
	HipCm          *float64 `json:"hip_cm,omitempty"`
	Gender         Gender   `json:"gender"`
	ActivityFactor float64  `json:"activity_factor"`
	BoneDensity    float64  `json:"bone_density"`
	SleepHours     float64  `json:"sleep_hours"`
	WaterIntakeL   float64  `json:"water_intake_l"`
	Age            int      `json:"age"`
}

type MetricsResult struct {
	BMI                  float64         `json:"bmi"`
	BFP                  float64         `json:"bfp"`
	LBM                  float64         `json:"lbm"`
	BMR                  float64         `json:"bmr"`
	TDEE                 float64         `json:"tdee"`
	WHtR                 float64         `json:"whtr"`
	RiskLevel            RiskLevel       `json:"risk_level"`
	IdealWeightKg        float64         `json:"ideal_weight_kg"`
	MetabolicAge         float64         `json:"metabolic_age"`
	BoneTScore           float64         `json:"bone_t_score"`
	WeightLossTargetKcal float64         `json:"weight_loss_target_kcal"`
	ProteinG             float64         `json:"protein_g"`
	CarbsG               float64         `json:"carbs_g"`
	FatsG                float64         `json:"fats_g"`
	HydrationStatus      HydrationStatus `json:"hydration_status"`
	SleepStatus          SleepStatus     `json:"sleep_status"`
}

// MetricSnapshot is one point of the BMI / body fat trend.
type MetricSnapshot struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	WeightKg   float64   `json:"weight_kg"`
	BMI        float64   `json:"bmi"`
	BFP        float64   `json:"bfp"`
	ComputedAt time.Time `json:"computed_at"`
}
