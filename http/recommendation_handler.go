package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"lender-match/domain"
	"lender-match/service"

	"go.uber.org/zap"
)

type RecommendationHandler struct {
	service *service.RecommendationService
	logger  *zap.Logger
}

func NewRecommendationHandler(service *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{service: service, logger: logger}
}

// Recommend handles POST /recommendations: form inputs in, ranked products out.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.FormInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid recommendation request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ranked, err := h.service.Recommend(r.Context(), input)
	if err != nil {
		h.logger.Error("recommendation failed", zap.Error(err))
		http.Error(w, "failed to load lender products", http.StatusBadGateway)
		return
	}

	// Encode into a buffer first so a failure never follows a 200 header.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(ranked); err != nil {
		h.logger.Error("failed to encode recommendations", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}
