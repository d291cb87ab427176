// Package client holds the HTTP clients for the QuickFix booking
// backend. Calls run through a shared circuit breaker; the retry budget
// is zero by configuration, so each turn makes a single attempt and
// degrades gracefully.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("client")

// technicianRecord is the backend's wire shape for one technician.
type technicianRecord struct {
	User struct {
		Name  string `json:"name"`
		Phone string `json:"phone,omitempty"`
	} `json:"user"`
	Rating   float64  `json:"rating"`
	Skills   []string `json:"skills"`
	Distance float64  `json:"distance,omitempty"`
}

// TechnicianClient fetches live technician availability.
type TechnicianClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	bulkhead   *resilience.Bulkhead
}

// NewTechnicianClient creates a new TechnicianClient.
func NewTechnicianClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *TechnicianClient {
	return &TechnicianClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		cfg:        cfg,
		bulkhead:   resilience.NewBulkhead(cfg.MaxConcurrency),
	}
}

// FindAvailable queries the backend for technicians with the given
// skill, optionally filtered by location. A non-200 response is an
// error here; the composer maps it to "no data".
func (c *TechnicianClient) FindAvailable(ctx context.Context, skill domain.ServiceType, location string) ([]domain.TechnicianSummary, error) {
	ctx, span := tracer.Start(ctx, "TechnicianClient.FindAvailable")
	defer span.End()
	span.SetAttributes(attribute.String("technician.skill", string(skill)))

	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrExternalService{Service: "technicians", Err: err}
	}
	defer c.bulkhead.Release()

	var records []technicianRecord

	result, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			q := url.Values{}
			q.Set("skill", string(skill))
			if location != "" {
				q.Set("location", location)
			}
			reqURL := fmt.Sprintf("%s/technicians/available?%s", c.baseURL, q.Encode())

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return err
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("technician API returned status %d", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&records)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return records, nil
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "technicians", Err: err}
	}

	out := make([]domain.TechnicianSummary, 0, len(result.([]technicianRecord)))
	for _, rec := range result.([]technicianRecord) {
		out = append(out, domain.TechnicianSummary{
			Name:       rec.User.Name,
			Phone:      rec.User.Phone,
			Rating:     rec.Rating,
			Skills:     rec.Skills,
			DistanceKm: rec.Distance,
		})
	}
	return out, nil
}

// Ping reports whether the technician endpoint is reachable. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *TechnicianClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/technicians/available?skill=plumbing", nil)
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
