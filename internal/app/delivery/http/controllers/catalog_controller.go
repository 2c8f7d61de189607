package controllers

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/exceptions"
	"docportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewCatalogController(
	log *zap.Logger,
	catalogUsecase contracts.CatalogUsecase,
	bookingUsecase contracts.BookingUsecase,
	internalConfig *config.InternalConfig,
) *CatalogController {
	return &CatalogController{
		Log:            log,
		CatalogUsecase: catalogUsecase,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CatalogController) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.CatalogUsecase.GetServices(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServicesSuccessMessage, result)
}

func (ctrl *CatalogController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(constvars.StatusBadRequest, "date query parameter is required", constvars.ErrDevInvalidInput))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.GetAvailability(ctx, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}
