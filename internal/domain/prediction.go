package domain

// SymptomVocabulary is the canonical feature order of the disease classifier.
var SymptomVocabulary = []string{
	"itching", "skin_rash", "nodal_skin_eruptions", "continuous_sneezing", "chills", "joint_pain",
	"stomach_pain", "vomiting", "fatigue", "weight_loss", "anxiety", "high_fever", "headache",
	"nausea", "loss_of_appetite", "pain_behind_the_eyes", "back_pain", "constipation",
	"abdominal_pain", "diarrhoea", "yellow_urine", "yellowing_of_eyes", "acute_liver_failure",
	"swelling_of_stomach", "malaise", "blurred_and_distorted_vision", "phlegm", "throat_irritation",
	"sinus_pressure", "runny_nose", "chest_pain", "weakness_in_limbs", "pain_during_bowel_movements",
	"neck_pain", "dizziness", "cramps", "obesity", "puffy_face_and_eyes", "enlarged_thyroid",
	"brittle_nails", "excessive_hunger", "drying_and_tingling_lips", "slurred_speech", "muscle_weakness",
	"stiff_neck", "loss_of_balance", "unsteadiness", "weakness_of_one_body_side", "loss_of_smell",
	"bladder_discomfort", "continuous_feel_of_urine", "internal_itching", "toxic_look_(typhos)",
	"depression", "irritability", "altered_sensorium", "red_spots_over_body", "belly_pain",
	"increased_appetite", "lack_of_concentration", "visual_disturbances",
}

type PredictionRequest struct {
	Symptoms []string `json:"symptoms"`
}

// PredictionResult maps model name to the label it predicted.
type PredictionResult struct {
	Labels map[string]string `json:"labels"`
}

var SleepDurations = []string{
	"Less than 5 hours", "5-6 hours", "6-7 hours", "7-8 hours",
	"8-9 hours", "9-11 hours", "More than 8 hours",
}

type DepressionForm struct {
	Gender                       string `json:"Gender"`
	Age                          int    `json:"Age"`
	SleepDuration                string `json:"Sleep_Duration"`
	WorkStudyHours               int    `json:"Work_Study_Hours"`
	FinancialStress              int    `json:"Financial_Stress"`
	AcademicWorkPressure         int    `json:"Academic_Work_Pressure"`
	JobStudySatisfaction         int    `json:"Job_Study_Satisfaction"`
	FamilyHistoryOfMentalIllness string `json:"Family_History_of_Mental_Illness"`
	SuicidalThoughts             string `json:"Suicidal_Thoughts"`
}

type DepressionAssessment struct {
	Prediction int     `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

func (a DepressionAssessment) HighLikelihood() bool {
	return a.Prediction == 1
}
