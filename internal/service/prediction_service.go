package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

const (
	EncodingNames  = "names"
	EncodingVector = "vector"
)

// SymptomEncoder shapes a symptom selection into the classifier's request body.
type SymptomEncoder interface {
	Path() string
	Encode(symptoms []string) any
}

type nameListEncoder struct{}

func (nameListEncoder) Path() string { return "/predict" }

func (nameListEncoder) Encode(symptoms []string) any {
	return map[string][]string{"symptoms": symptoms}
}

type binaryVectorEncoder struct{}

func (binaryVectorEncoder) Path() string { return "/predict-disease" }

func (binaryVectorEncoder) Encode(symptoms []string) any {
	return map[string][]int{"inputs": SymptomVector(symptoms)}
}

func NewSymptomEncoder(encoding string) (SymptomEncoder, error) {
	switch encoding {
	case EncodingNames, "":
		return nameListEncoder{}, nil
	case EncodingVector:
		return binaryVectorEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown symptom encoding %q", encoding)
	}
}

// SymptomVector marks each vocabulary position with 1 when selected.
func SymptomVector(symptoms []string) []int {
	selected := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		selected[s] = true
	}
	vec := make([]int, len(domain.SymptomVocabulary))
	for i, s := range domain.SymptomVocabulary {
		if selected[s] {
			vec[i] = 1
		}
	}
	return vec
}

type PredictionService struct {
	httpClient *resty.Client
	encoder    SymptomEncoder
	logger     *zap.Logger
}

// NewPredictionService builds a client for the remote classifier. Requests
// are never retried; the timeout bounds every call.
func NewPredictionService(baseURL string, timeout time.Duration, encoder SymptomEncoder, logger *zap.Logger) *PredictionService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &PredictionService{
		httpClient: client,
		encoder:    encoder,
		logger:     logger,
	}
}

func (s *PredictionService) Predict(ctx context.Context, symptoms []string) (domain.PredictionResult, error) {
	selection, err := normalizeSelection(symptoms)
	if err != nil {
		return domain.PredictionResult{}, err
	}

	s.logger.Info("calling symptom classifier",
		zap.String("path", s.encoder.Path()),
		zap.Int("symptom_count", len(selection)),
	)

	body, err := s.post(ctx, s.encoder.Path(), s.encoder.Encode(selection))
	if err != nil {
		return domain.PredictionResult{}, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.PredictionResult{}, &domain.PredictionError{Reason: "malformed classifier response"}
	}

	labels := make(map[string]string, len(raw))
	for model, v := range raw {
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			labels[model] = str
			continue
		}
		labels[model] = string(v)
	}
	if len(labels) == 0 {
		return domain.PredictionResult{}, &domain.PredictionError{Reason: "classifier returned no labels"}
	}

	s.logger.Info("symptom classifier answered", zap.Int("model_count", len(labels)))
	return domain.PredictionResult{Labels: labels}, nil
}

func (s *PredictionService) AssessDepression(ctx context.Context, form domain.DepressionForm) (domain.DepressionAssessment, error) {
	if err := validateDepressionForm(form); err != nil {
		return domain.DepressionAssessment{}, err
	}

	body, err := s.post(ctx, "/predict_depression", form)
	if err != nil {
		return domain.DepressionAssessment{}, err
	}

	var assessment domain.DepressionAssessment
	if err := json.Unmarshal(body, &assessment); err != nil {
		return domain.DepressionAssessment{}, &domain.PredictionError{Reason: "malformed classifier response"}
	}
	return assessment, nil
}

func (s *PredictionService) post(ctx context.Context, path string, payload any) ([]byte, error) {
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		s.logger.Error("classifier call failed", zap.String("path", path), zap.Error(err))
		return nil, &domain.PredictionError{Reason: err.Error()}
	}

	if !resp.IsSuccess() {
		reason := errorDetail(resp.Body())
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		s.logger.Error("classifier returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("reason", reason),
		)
		return nil, &domain.PredictionError{Reason: reason, StatusCode: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// errorDetail extracts a FastAPI style {"detail": "..."} message.
func errorDetail(body []byte) string {
	var payload struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if s, ok := payload.Detail.(string); ok {
		return s
	}
	return ""
}

func normalizeSelection(symptoms []string) ([]string, error) {
	if len(symptoms) == 0 {
		return nil, domain.ErrEmptySelection
	}
	out := make([]string, 0, len(symptoms))
	seen := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		if !contains(domain.SymptomVocabulary, s) {
			return nil, domain.NewValidationError("symptoms", "unknown symptom "+s)
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

func validateDepressionForm(f domain.DepressionForm) error {
	yesNo := []string{"Yes", "No"}
	switch {
	case f.Gender != "Male" && f.Gender != "Female":
		return domain.NewValidationError("Gender", "must be Male or Female")
	case f.Age < 10 || f.Age > 100:
		return domain.NewValidationError("Age", "must be between 10 and 100")
	case !contains(domain.SleepDurations, f.SleepDuration):
		return domain.NewValidationError("Sleep_Duration", "unknown sleep duration")
	case f.WorkStudyHours < 0 || f.WorkStudyHours > 24:
		return domain.NewValidationError("Work_Study_Hours", "must be between 0 and 24")
	case f.FinancialStress < 0 || f.FinancialStress > 10:
		return domain.NewValidationError("Financial_Stress", "must be between 0 and 10")
	case f.AcademicWorkPressure < 0 || f.AcademicWorkPressure > 10:
		return domain.NewValidationError("Academic_Work_Pressure", "must be between 0 and 10")
	case f.JobStudySatisfaction < 0 || f.JobStudySatisfaction > 10:
		return domain.NewValidationError("Job_Study_Satisfaction", "must be between 0 and 10")
	case !contains(yesNo, f.FamilyHistoryOfMentalIllness):
		return domain.NewValidationError("Family_History_of_Mental_Illness", "must be Yes or No")
	case !contains(yesNo, f.SuicidalThoughts):
		return domain.NewValidationError("Suicidal_Thoughts", "must be Yes or No")
	}
	return nil
}
