// Package service orchestrates user registration: validate, materialize the
// record, append it to storage, and project the response view.
package service

import (
	"context"
	"log/slog"
	"time"

	"signup/internal/platform/metrics"
	"signup/internal/user/models"
	"signup/internal/user/store"
)

// Service implements the create-user operation. The clock is injectable so
// tests can pin the join date.
type Service struct {
	store   store.UserStore
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(userStore store.UserStore, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   userStore,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// WithClock overrides the wall clock used for join dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Register validates the request, stores the accepted record, and returns its
// password-free projection. The first failing field validator aborts the
// whole operation; nothing is stored on rejection.
func (s *Service) Register(ctx context.Context, req *models.RegistrationRequest) (*models.UserView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := models.UserRecord{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		FullName:         req.FullName,
		JoinDate:         s.now().Format(time.RFC3339),
		ValidationStatus: models.ValidationStatusPassed,
	}

	id, err := s.store.Append(ctx, record)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementUsersCreated()
	s.logger.InfoContext(ctx, "user registered",
		"user_id", id,
		"username", record.Username,
	)

	return record.View(), nil
}
