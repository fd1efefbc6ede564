package handler

import (
	"contacts-web-server/internal/model/requestresponse"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	db      HealthChecker
	timeout time.Duration
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Index godoc
// @Summary Корень
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Router / [get]
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Contacts Application"})
}

// HealthChecker godoc
// @Summary Проверка БД
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/healthchecker [get]
func (h *HealthHandler) HealthChecker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		zap.L().Error("БД недоступна", zap.Error(err))
		sendErrorResponse(w, http.StatusInternalServerError, "Error connecting to the database")
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Contacts Application is healthy"})
}
