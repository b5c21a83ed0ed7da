// Package handler is the thin HTTP layer for user registration. It delegates
// to the user service without embedding business logic so transport concerns
// remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"signup/internal/platform/metrics"
	"signup/internal/platform/middleware"
	"signup/internal/user/models"
	dErrors "signup/pkg/domain-errors"
	"signup/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/user-mocks.go -package=mocks UserService

// UserService defines the interface for user registration operations.
type UserService interface {
	Register(ctx context.Context, req *models.RegistrationRequest) (*models.UserView, error)
}

// Handler handles the registration endpoints.
type Handler struct {
	logger  *slog.Logger
	users   UserService
	metrics *metrics.Metrics
}

// New creates a new user Handler.
func New(users UserService, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		users:   users,
		metrics: m,
	}
}

// Register registers the user routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/users/", h.handleCreateUser)
	r.Get("/validation-rules/", h.handleValidationRules)
	r.Get("/", h.handleRoot)
}

// handleCreateUser validates a registration payload, stores the accepted
// record, and returns its password-free view with 201 Created. The first
// failing field validator aborts the request with 422.
func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create user request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	view, err := h.users.Register(ctx, &req)
	if err != nil {
		var de *dErrors.Error
		if errors.As(err, &de) && de.Code == dErrors.CodeValidation {
			h.logger.WarnContext(ctx, "registration rejected",
				"request_id", requestID,
				"field", de.Field,
				"error", de.Message,
			)
			h.metrics.IncrementValidationFailure(de.Field)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to create user"))
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, view)
}

// handleValidationRules serves the static mirror of the validator constants.
func (h *Handler) handleValidationRules(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.ValidationRules())
}

// handleRoot serves the service description.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.DescribeService())
}
