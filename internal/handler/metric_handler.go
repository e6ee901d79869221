package handler

import (
	"net/http"

	"github.com/yusufkecer/wellness-backend/internal/domain"
	"github.com/yusufkecer/wellness-backend/internal/middleware"
	"github.com/yusufkecer/wellness-backend/internal/service"
)

type MetricHandler struct {
	svc *service.MetricService
}

func NewMetricHandler(svc *service.MetricService) *MetricHandler {
	return &MetricHandler{svc: svc}
}

func (h *MetricHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var profile domain.HealthProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := service.ComputeMetrics(profile)
	if err != nil {
		writeServiceError(w, err, "failed to compute metrics")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *MetricHandler) Record(w http.ResponseWriter, r *http.Request) {
	var profile domain.HealthProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, snapshot, err := h.svc.Record(r.Context(), middleware.UserIDFromContext(r.Context()), profile)
	if err != nil {
		writeServiceError(w, err, "failed to record metrics")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"metrics":  result,
		"snapshot": snapshot,
	})
}

func (h *MetricHandler) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.History(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "failed to list metrics")
		return
	}
	writeJSON(w, http.StatusOK, history)
}
