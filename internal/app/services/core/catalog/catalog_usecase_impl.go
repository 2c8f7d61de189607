package catalog

import (
	"context"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/pkg/dto/responses"
)

type catalogUsecase struct {
	ServiceRepository contracts.ServiceRepository
}

func NewCatalogUsecase(serviceRepository contracts.ServiceRepository) contracts.CatalogUsecase {
	return &catalogUsecase{
		ServiceRepository: serviceRepository,
	}
}

func (uc *catalogUsecase) GetServices(ctx context.Context) ([]responses.ServiceSummary, error) {
	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.ServiceSummary, 0, len(services))
	for _, service := range services {
		summaries = append(summaries, responses.ServiceSummary{
			ID:    service.ID,
			Name:  service.Name,
			Slots: service.Slots,
			Price: service.Price,
		})
	}
	return summaries, nil
}
