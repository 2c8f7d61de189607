package controllers

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/delivery/http/middlewares"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/exceptions"
	"docportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(log *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            log,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// A conflict is still HTTP 200; callers inspect success in the payload.
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreateBookingSuccessMessage, result)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	claimedEmail := middlewares.ClaimedEmail(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.GetBookingByID(ctx, claimedEmail, bookingID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, result)
}

func (ctrl *BookingController) GetBookingsByPatient(w http.ResponseWriter, r *http.Request) {
	patient := r.URL.Query().Get("patient")
	claimedEmail := middlewares.ClaimedEmail(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.GetBookingsByPatient(ctx, claimedEmail, patient)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, result)
}
