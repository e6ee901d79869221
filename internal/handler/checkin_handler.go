package handler

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/yusufkecer/wellness-backend/internal/domain"
	"github.com/yusufkecer/wellness-backend/internal/middleware"
	"github.com/yusufkecer/wellness-backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CheckInHandler struct {
	svc    *service.CheckInService
	logger *zap.Logger
}

func NewCheckInHandler(svc *service.CheckInService, logger *zap.Logger) *CheckInHandler {
	return &CheckInHandler{svc: svc, logger: logger}
}

func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft domain.CheckInDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Append(r.Context(), middleware.UserIDFromContext(r.Context()), draft)
	if err != nil {
		writeServiceError(w, err, "failed to save check-in")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "failed to load check-ins")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *CheckInHandler) Export(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "failed to load check-ins")
		return
	}

	var buf bytes.Buffer
	if err := service.WriteCheckInWorkbook(&buf, entries); err != nil {
		h.logger.Error("failed to build check-in export", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to export check-ins")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="check-ins.xlsx"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *CheckInHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"prompt": service.NextJournalPrompt(r.URL.Query().Get("after")),
	})
}
