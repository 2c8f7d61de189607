package payment_gateway

import (
	"context"
	"docportal-service/internal/app/config"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type stripeService struct {
	BaseUrl   string
	SecretKey string
	Client    *http.Client
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &stripeService{
		BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
		SecretKey: internalConfig.PaymentGateway.SecretKey,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreatePaymentIntent calls the processor's payment-intents endpoint and
// returns the client secret the frontend needs to complete the card flow.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	endpoint := fmt.Sprintf("%s/v1/payment_intents", s.BaseUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrPaymentGatewayCreateIntent(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+s.SecretKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", exceptions.ErrPaymentGatewayCreateIntent(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", exceptions.ErrPaymentGatewayCreateIntent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", exceptions.ErrPaymentGatewayDecodeResponse(err)
	}
	return intent.ClientSecret, nil
}
