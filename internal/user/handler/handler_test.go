package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"signup/internal/platform/metrics"
	"signup/internal/user/handler/mocks"
	"signup/internal/user/models"
	"signup/internal/user/service"
	"signup/internal/user/store"
	dErrors "signup/pkg/domain-errors"
	"signup/pkg/testutil"
)

type UserHandlerSuite struct {
	suite.Suite
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) newHandler(t *testing.T) (*mocks.MockUserService, *chi.Mux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	mockService := mocks.NewMockUserService(ctrl)
	h := New(mockService, logger, metrics.New(prometheus.NewRegistry()))
	r := chi.NewRouter()
	h.Register(r)
	return mockService, r
}

func (s *UserHandlerSuite) TestHandler_CreateUser() {
	fullName := "Alice A."
	validRequest := &models.RegistrationRequest{
		Username: "alice1",
		Email:    "alice@example.com",
		Password: "Str0ng!Pass",
		FullName: &fullName,
	}

	s.T().Run("valid registration - 201", func(t *testing.T) {
		mockService, router := s.newHandler(t)
		expected := &models.UserView{
			Username:         validRequest.Username,
			Email:            validRequest.Email,
			FullName:         validRequest.FullName,
			JoinDate:         time.Now().Format(time.RFC3339),
			ValidationStatus: models.ValidationStatusPassed,
		}
		mockService.EXPECT().Register(gomock.Any(), validRequest).Return(expected, nil)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/", validRequest))

		testutil.AssertStatus(t, rr, http.StatusCreated)
		got := testutil.UnmarshalResponse[models.UserView](t, rr)
		assert.Equal(t, expected.Username, got.Username)
		assert.Equal(t, expected.ValidationStatus, got.ValidationStatus)
	})

	s.T().Run("malformed json - 400", func(t *testing.T) {
		mockService, router := s.newHandler(t)
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/users/", "{bad-json"))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		errBody := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, string(dErrors.CodeBadRequest), errBody["error"])
	})

	s.T().Run("validation failure - 422 with field", func(t *testing.T) {
		mockService, router := s.newHandler(t)
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.NewField(dErrors.CodeValidation, "password", "password must contain at least one number"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/", validRequest))

		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
		errBody := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, string(dErrors.CodeValidation), errBody["error"])
		assert.Equal(t, "password", errBody["field"])
		assert.Contains(t, errBody["error_description"], "one number")
	})

	s.T().Run("service failure - 500 without detail", func(t *testing.T) {
		mockService, router := s.newHandler(t)
		mockService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/", validRequest))

		testutil.AssertStatus(t, rr, http.StatusInternalServerError)
		errBody := testutil.UnmarshalErrorResponse(t, rr)
		assert.Equal(t, string(dErrors.CodeInternal), errBody["error"])
		assert.Empty(t, errBody["error_description"])
	})
}

func (s *UserHandlerSuite) TestHandler_StaticEndpoints() {
	s.T().Run("validation rules match validator constants", func(t *testing.T) {
		_, router := s.newHandler(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/validation-rules/", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		rules := testutil.UnmarshalResponse[models.RulesDescription](t, rr)
		assert.Equal(t, models.PasswordMinLength, rules.PasswordRules.MinLength)
		assert.Equal(t, models.UsernameMaxLength, rules.UsernameRules.MaxLength)
		assert.True(t, rules.FullNameRules.Optional)
	})

	s.T().Run("root lists available endpoints", func(t *testing.T) {
		_, router := s.newHandler(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/", nil))

		testutil.AssertStatus(t, rr, http.StatusOK)
		desc := testutil.UnmarshalResponse[models.ServiceDescription](t, rr)
		assert.Equal(t, "POST /users/", desc.Endpoints["create_user"])
		assert.Equal(t, "GET /validation-rules/", desc.Endpoints["validation_rules"])
	})

	s.T().Run("read-only endpoints return byte-identical bodies", func(t *testing.T) {
		_, router := s.newHandler(t)

		for _, path := range []string{"/validation-rules/", "/"} {
			first := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, path, nil))
			second := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, path, nil))
			assert.Equal(t, first.Body.Bytes(), second.Body.Bytes(), "body changed between calls to %s", path)
		}
	})
}

// End-to-end flow against the real service and store, no mocks.
func TestCreateUserEndToEnd(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	userStore := store.New()
	svc := service.New(userStore, logger, m)
	h := New(svc, logger, m)
	router := chi.NewRouter()
	h.Register(router)

	payload := map[string]any{
		"username":  "alice1",
		"email":     "alice@example.com",
		"password":  "Str0ng!Pass",
		"full_name": "Alice A.",
	}

	t.Run("valid payload creates user", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/", payload))

		testutil.AssertStatus(t, rr, http.StatusCreated)
		testutil.AssertJSONMissingKey(t, rr, "password")

		view := testutil.UnmarshalResponse[models.UserView](t, rr)
		assert.Equal(t, "alice1", view.Username)
		assert.Equal(t, "passed", view.ValidationStatus)
		_, err := time.Parse(time.RFC3339, view.JoinDate)
		assert.NoError(t, err)
	})

	t.Run("weak password rejected and not stored", func(t *testing.T) {
		weak := map[string]any{}
		for k, v := range payload {
			weak[k] = v
		}
		weak["password"] = "weak"

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/users/", weak))

		testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)

		records, err := userStore.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, records, 1, "only the accepted registration should be stored")
	})
}
