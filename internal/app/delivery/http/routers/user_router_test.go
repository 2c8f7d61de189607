package routers

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/delivery/http/controllers"
	"docportal-service/internal/app/delivery/http/middlewares"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	args := m.Called(ctx, email, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.UpsertUser), args.Error(1)
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserUsecase) PromoteAdmin(ctx context.Context, email string) (*responses.PromoteAdmin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PromoteAdmin), args.Error(1)
}

func (m *MockUserUsecase) CheckAdmin(ctx context.Context, email string) (*responses.AdminCheck, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AdminCheck), args.Error(1)
}

func newUserTestRouter(userUsecase *MockUserUsecase, roleAuthority *MockRoleAuthority) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{RequestTimeoutInSecond: 5},
		JWT: config.JWT{Secret: testJWTSecret},
	}

	userController := controllers.NewUserController(logger, userUsecase, internalConfig)
	middlewareInstance := middlewares.NewMiddlewares(logger, roleAuthority, internalConfig)

	router := chi.NewRouter()
	attachUserRoutes(router, middlewareInstance, userController)
	return router
}

func TestUserRouter_PromoteAdmin(t *testing.T) {

	t.Run("Admin Promotes Another User", func(t *testing.T) {
		roleAuthority := new(MockRoleAuthority)
		roleAuthority.On("ResolveRole", mock.Anything, "admin@example.com").Return(constvars.RoleAdmin, true, nil)

		userUsecase := new(MockUserUsecase)
		userUsecase.On("PromoteAdmin", mock.Anything, "bob@example.com").
			Return(&responses.PromoteAdmin{MatchedCount: 1, ModifiedCount: 1}, nil)

		router := newUserTestRouter(userUsecase, roleAuthority)

		req := httptest.NewRequest("PUT", "/user/admin/bob@example.com", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "admin@example.com"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		userUsecase.AssertExpectations(t)
	})

	t.Run("Non-Admin Cannot Promote", func(t *testing.T) {
		roleAuthority := new(MockRoleAuthority)
		roleAuthority.On("ResolveRole", mock.Anything, "alice@example.com").Return("", true, nil)

		userUsecase := new(MockUserUsecase)

		router := newUserTestRouter(userUsecase, roleAuthority)

		req := httptest.NewRequest("PUT", "/user/admin/bob@example.com", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "alice@example.com"))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		userUsecase.AssertNotCalled(t, "PromoteAdmin", mock.Anything, mock.Anything)
	})

	t.Run("Anonymous Cannot Promote", func(t *testing.T) {
		router := newUserTestRouter(new(MockUserUsecase), new(MockRoleAuthority))

		req := httptest.NewRequest("PUT", "/user/admin/bob@example.com", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUserRouter_CheckAdmin(t *testing.T) {

	t.Run("Probe Is Public", func(t *testing.T) {
		userUsecase := new(MockUserUsecase)
		userUsecase.On("CheckAdmin", mock.Anything, "bob@example.com").
			Return(&responses.AdminCheck{Admin: false}, nil)

		router := newUserTestRouter(userUsecase, new(MockRoleAuthority))

		req := httptest.NewRequest("GET", "/admin/bob@example.com", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.True(t, body.Success)
	})
}
