package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yusufkecer/wellness-backend/internal/domain"
	"github.com/yusufkecer/wellness-backend/internal/middleware"
	"github.com/yusufkecer/wellness-backend/internal/service"
)

type SettingsHandler struct {
	svc *service.SettingsService
}

func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Load(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "failed to load settings")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Save replaces the whole set. Fields missing from the body take their
// defaults; present values are validated as sent.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var raw domain.StoredPreferences
	if err := decodeJSON(r, &raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Save(r.Context(), middleware.UserIDFromContext(r.Context()), service.FillDefaults(&raw))
	if err != nil {
		writeServiceError(w, err, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *SettingsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	prefs, err := h.svc.Load(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to load settings")
		return
	}

	prefs, err = service.Toggle(prefs, mux.Vars(r)["field"])
	if err != nil {
		writeServiceError(w, err, "failed to toggle setting")
		return
	}

	result, err := h.svc.Save(r.Context(), userID, prefs)
	if err != nil {
		writeServiceError(w, err, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
