package handler

import (
	"net/http"

	"github.com/yusufkecer/wellness-backend/internal/domain"
	"github.com/yusufkecer/wellness-backend/internal/service"
)

type PredictionHandler struct {
	svc *service.PredictionService
}

func NewPredictionHandler(svc *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{svc: svc}
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req domain.PredictionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Predict(r.Context(), req.Symptoms)
	if err != nil {
		writeServiceError(w, err, "prediction failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *PredictionHandler) Depression(w http.ResponseWriter, r *http.Request) {
	var form domain.DepressionForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.svc.AssessDepression(r.Context(), form)
	if err != nil {
		writeServiceError(w, err, "depression prediction failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prediction":      assessment.Prediction,
		"confidence":      assessment.Confidence,
		"high_likelihood": assessment.HighLikelihood(),
	})
}

func SymptomVocabulary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"symptoms":          domain.SymptomVocabulary,
		"check_in_symptoms": domain.CheckInSymptoms,
		"moods":             domain.Moods,
	})
}
