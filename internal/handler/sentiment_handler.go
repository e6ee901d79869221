package handler

import (
	"net/http"
	"strings"

	"github.com/yusufkecer/wellness-backend/internal/service"
)

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	Sentiment     string `json:"sentiment"`
	PositiveCount int    `json:"positive_count"`
	NegativeCount int    `json:"negative_count"`
	Message       string `json:"message"`
}

func AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "please write something first")
		return
	}

	verdict := service.ClassifySentiment(req.Text)
	writeJSON(w, http.StatusOK, sentimentResponse{
		Sentiment:     string(verdict.Sentiment),
		PositiveCount: verdict.PositiveCount,
		NegativeCount: verdict.NegativeCount,
		Message:       verdict.Message(),
	})
}
