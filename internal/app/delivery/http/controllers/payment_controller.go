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

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	InternalConfig *config.InternalConfig
}

func NewPaymentController(log *zap.Logger, paymentUsecase contracts.PaymentUsecase, internalConfig *config.InternalConfig) *PaymentController {
	return &PaymentController{
		Log:            log,
		PaymentUsecase: paymentUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePaymentIntent)
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

	claimedEmail := middlewares.ClaimedEmail(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
	defer cancel()

	result, err := ctrl.PaymentUsecase.CreatePaymentIntent(ctx, claimedEmail, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CreatePaymentIntentSuccessMessage, result)
}

// ReconcilePayment accepts any authenticated caller, not only the booking
// owner, so webhook-style confirmations stay possible.
func (ctrl *PaymentController) ReconcilePayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	request := new(requests.ReconcilePayment)
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

	result, err := ctrl.PaymentUsecase.ReconcilePayment(ctx, bookingID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReconcilePaymentSuccessMessage, result)
}
