package roles

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/pkg/constvars"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// roleNone is cached for users that exist without a role, so repeated
// probes do not hammer the user collection.
const roleNone = "none"

type roleAuthority struct {
	Log             *zap.Logger
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
}

func NewRoleAuthority(
	log *zap.Logger,
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.RoleAuthority {
	return &roleAuthority{
		Log:             log,
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		CacheTTL:        time.Duration(internalConfig.App.RoleCacheTTLInSecond) * time.Second,
	}
}

func (a *roleAuthority) ResolveRole(ctx context.Context, email string) (string, bool, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyUserRoleFormat, email)

	if cached, err := a.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		if cached == roleNone {
			return "", true, nil
		}
		return cached, true, nil
	} else if err != nil {
		// Cache trouble must not block authorization, fall through to the
		// user collection.
		a.Log.Warn("role cache read failed", zap.Error(err))
	}

	user, err := a.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}

	role := user.Role
	cached := role
	if cached == "" {
		cached = roleNone
	}
	if err := a.RedisRepository.Set(ctx, cacheKey, cached, a.CacheTTL); err != nil {
		a.Log.Warn("role cache write failed", zap.Error(err))
	}

	return role, true, nil
}

func (a *roleAuthority) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, found, err := a.ResolveRole(ctx, email)
	if err != nil {
		return false, err
	}
	return found && role == constvars.RoleAdmin, nil
}
