package contracts

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/responses"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
}

type CatalogUsecase interface {
	GetServices(ctx context.Context) ([]responses.ServiceSummary, error)
}
