package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

// bookingRecord is the backend's wire shape for one booking; only the
// payment section is consumed here.
type bookingRecord struct {
	Payment domain.PaymentInfo `json:"payment"`
}

// BookingClient fetches booking records for payment-status queries.
type BookingClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	bulkhead   *resilience.Bulkhead
}

// NewBookingClient creates a new BookingClient.
func NewBookingClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *BookingClient {
	return &BookingClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		cfg:        cfg,
		bulkhead:   resilience.NewBulkhead(cfg.MaxConcurrency),
	}
}

// GetPaymentStatus fetches the payment record of a booking.
func (c *BookingClient) GetPaymentStatus(ctx context.Context, bookingID string) (*domain.PaymentInfo, error) {
	ctx, span := tracer.Start(ctx, "BookingClient.GetPaymentStatus")
	defer span.End()
	span.SetAttributes(attribute.String("booking.id", bookingID))

	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrExternalService{Service: "bookings", Err: err}
	}
	defer c.bulkhead.Release()

	var record bookingRecord

	result, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			url := fmt.Sprintf("%s/bookings/%s", c.baseURL, bookingID)
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return &domain.ErrNotFound{Resource: "booking", ID: bookingID}
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("booking API returned status %d", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&record)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return &record.Payment, nil
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "bookings", Err: err}
	}

	return result.(*domain.PaymentInfo), nil
}

// Ping reports whether the booking endpoint is reachable. Any HTTP
// response, including 404, counts as reachable.
func (c *BookingClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/bookings/000000000000000000000000", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
