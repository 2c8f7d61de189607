package contracts

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	// UpsertByEmail creates the user on first login and updates the
	// profile fields afterwards. It never touches the role field.
	UpsertByEmail(ctx context.Context, email string, user *models.User) (matched, modified int64, upsertedID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	SetRole(ctx context.Context, email, role string) (matched, modified int64, err error)
}

type UserUsecase interface {
	UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	PromoteAdmin(ctx context.Context, email string) (*responses.PromoteAdmin, error)
	CheckAdmin(ctx context.Context, email string) (*responses.AdminCheck, error)
}
