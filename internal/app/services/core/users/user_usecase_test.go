package users

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/utils"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, email string, user *models.User) (int64, int64, string, error) {
	args := m.Called(ctx, email, user)
	return args.Get(0).(int64), args.Get(1).(int64), args.String(2), args.Error(3)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email, role string) (int64, int64, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-jwt-secret-12345",
			ExpTimeInHour: 12,
		},
	}
}

func TestUserUsecase_UpsertUser(t *testing.T) {
	ctx := context.Background()
	email := "alice@example.com"
	request := &requests.UpsertUser{Name: "Alice", Phone: "555-0100"}

	t.Run("First Login Creates And Issues Token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("UpsertByEmail", ctx, email, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == email && u.Name == "Alice" && u.Role == ""
		})).Return(int64(0), int64(0), "628236f3b87f5f746ab0b6a1", nil)

		usecase := NewUserUsecase(userRepo, new(MockRedisRepository), newTestInternalConfig())

		result, err := usecase.UpsertUser(ctx, email, request)
		assert.NoError(t, err)
		assert.Equal(t, "628236f3b87f5f746ab0b6a1", result.UpsertedID)
		assert.NotEmpty(t, result.Token)

		claimed, err := utils.ParseJWT(result.Token, "test-jwt-secret-12345")
		assert.NoError(t, err)
		assert.Equal(t, email, claimed, "issued token must carry the login email")
	})

	t.Run("Repeat Login Updates And Reissues Token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("UpsertByEmail", ctx, email, mock.AnythingOfType("*models.User")).Return(int64(1), int64(1), "", nil)

		usecase := NewUserUsecase(userRepo, new(MockRedisRepository), newTestInternalConfig())

		result, err := usecase.UpsertUser(ctx, email, request)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.MatchedCount)
		assert.Empty(t, result.UpsertedID)
		assert.NotEmpty(t, result.Token)
	})
}

func TestUserUsecase_PromoteAdmin(t *testing.T) {
	ctx := context.Background()
	email := "bob@example.com"

	t.Run("Sets Role And Invalidates Cache", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("SetRole", ctx, email, constvars.RoleAdmin).Return(int64(1), int64(1), nil)

		redisRepo := new(MockRedisRepository)
		redisRepo.On("Delete", ctx, fmt.Sprintf(constvars.RedisKeyUserRoleFormat, email)).Return(nil)

		usecase := NewUserUsecase(userRepo, redisRepo, newTestInternalConfig())

		result, err := usecase.PromoteAdmin(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
		redisRepo.AssertExpectations(t)
	})
}

func TestUserUsecase_CheckAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin User", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "admin@example.com").Return(&models.User{Email: "admin@example.com", Role: constvars.RoleAdmin}, nil)

		usecase := NewUserUsecase(userRepo, new(MockRedisRepository), newTestInternalConfig())

		result, err := usecase.CheckAdmin(ctx, "admin@example.com")
		assert.NoError(t, err)
		assert.True(t, result.Admin)
	})

	t.Run("Plain User", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "alice@example.com").Return(&models.User{Email: "alice@example.com"}, nil)

		usecase := NewUserUsecase(userRepo, new(MockRedisRepository), newTestInternalConfig())

		result, err := usecase.CheckAdmin(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.False(t, result.Admin)
	})

	t.Run("Unknown Email Is Simply Not Admin", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		usecase := NewUserUsecase(userRepo, new(MockRedisRepository), newTestInternalConfig())

		result, err := usecase.CheckAdmin(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.False(t, result.Admin, "probing an unregistered email must not error")
	})
}
