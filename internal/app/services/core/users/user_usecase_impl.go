package users

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
	"docportal-service/internal/pkg/utils"
	"fmt"
	"time"
)

type userUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// UpsertUser saves the profile fields on first or repeat login and issues a
// fresh bearer token for the claimed email.
func (uc *userUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	userModel := &models.User{
		Email: email,
		Name:  request.Name,
		Photo: request.Photo,
		Phone: request.Phone,
	}

	matched, modified, upsertedID, err := uc.UserRepository.UpsertByEmail(ctx, email, userModel)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.UpsertUser{
		MatchedCount:  matched,
		ModifiedCount: modified,
		UpsertedID:    upsertedID,
		Token:         token,
	}, nil
}

func (uc *userUsecase) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) PromoteAdmin(ctx context.Context, email string) (*responses.PromoteAdmin, error) {
	matched, modified, err := uc.UserRepository.SetRole(ctx, email, constvars.RoleAdmin)
	if err != nil {
		return nil, err
	}

	// The promoted user's cached role is now stale.
	cacheKey := fmt.Sprintf(constvars.RedisKeyUserRoleFormat, email)
	uc.RedisRepository.Delete(ctx, cacheKey)

	return &responses.PromoteAdmin{
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

// CheckAdmin answers the public admin probe. A missing user is not an
// error here, it simply is not an admin.
func (uc *userUsecase) CheckAdmin(ctx context.Context, email string) (*responses.AdminCheck, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &responses.AdminCheck{Admin: user.IsAdmin()}, nil
}
