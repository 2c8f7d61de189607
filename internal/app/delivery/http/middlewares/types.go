package middlewares

import (
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	RoleAuthority  contracts.RoleAuthority
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, roleAuthority contracts.RoleAuthority, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		RoleAuthority:  roleAuthority,
		InternalConfig: internalConfig,
	}
}
