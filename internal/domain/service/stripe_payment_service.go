package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"rebuy/pkg/logger"
)

// StripePaymentService talks to the Stripe PaymentIntents REST API directly.
// Stripe's v1 API takes form-encoded bodies and amounts in the currency's
// smallest unit (cents).
type StripePaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type stripeErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a PaymentIntent for the given order. amount is in the
// major currency unit (rupees) and converted to cents here.
func (s *StripePaymentService) CreateIntent(ctx context.Context, orderID, orderNumber string, amount float64, currency string) (*PaymentIntent, error) {
	logger.Info("Creating Stripe payment intent for order %s, amount %.2f %s", orderNumber, amount, currency)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(amount*100), 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("metadata[order_id]", orderID)
	form.Set("metadata[order_number]", orderNumber)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building Stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading Stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var stripeErr stripeErrorResponse
		if err := json.Unmarshal(body, &stripeErr); err == nil && stripeErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe error (%s): %s", stripeErr.Error.Type, stripeErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe returned status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("decoding Stripe response: %w", err)
	}

	logger.Info("Stripe payment intent created: %s (%s)", intent.ID, intent.Status)
	return &intent, nil
}

// GetIntent fetches the current state of a PaymentIntent.
func (s *StripePaymentService) GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/payment_intents/"+intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("building Stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading Stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe returned status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("decoding Stripe response: %w", err)
	}

	return &intent, nil
}
