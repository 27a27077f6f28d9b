package travelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"travelbuddy/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "travelbuddy/pkg/travelapi"
	maxErrorBody        = 4 << 10
)

// Client is the only component that knows the travel service's address and
// endpoint shapes. It holds no mutable state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
	tracer     trace.Tracer
	requests   metric.Int64Counter
	duration   metric.Float64Histogram
}

func NewClient(httpClient *http.Client, baseURL string, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	meter := otel.Meter(instrumentationName)
	requests, err := meter.Int64Counter("travelapi.requests",
		metric.WithDescription("Calls made to the travel service"))
	if err != nil {
		log.Warn("failed to create request counter", logger.Field{Key: "err", Value: err})
	}
	duration, err := meter.Float64Histogram("travelapi.request.duration",
		metric.WithDescription("Travel service call latency"),
		metric.WithUnit("ms"))
	if err != nil {
		log.Warn("failed to create duration histogram", logger.Field{Key: "err", Value: err})
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
		tracer:     otel.Tracer(instrumentationName),
		requests:   requests,
		duration:   duration,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListDestinations fetches the catalog. Unset filters are left out of the
// query entirely.
func (c *Client) ListDestinations(ctx context.Context, filter DestinationFilter) ([]Destination, error) {
	q := url.Values{}
	if filter.AgeGroup != "" {
		q.Set("ageGroup", string(filter.AgeGroup))
	}
	if filter.MaxBudget > 0 {
		q.Set("budget", strconv.FormatInt(filter.MaxBudget, 10))
	}

	endpoint := c.baseURL + "/destinations"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var out []Destination
	if err := c.do(ctx, "ListDestinations", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Destination{}
	}
	return out, nil
}

func (c *Client) GetDestination(ctx context.Context, id int64) (*DestinationDetail, error) {
	endpoint := fmt.Sprintf("%s/destinations/%d", c.baseURL, id)

	var out DestinationDetail
	if err := c.do(ctx, "GetDestination", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateItinerary(ctx context.Context, req ItineraryRequest) (*ItineraryResponse, error) {
	endpoint := c.baseURL + "/itinerary"

	var out ItineraryResponse
	if err := c.do(ctx, "CreateItinerary", http.MethodPost, endpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body any, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "travelapi."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", endpoint),
		))
	defer span.End()

	start := time.Now()
	status := 0
	defer func() {
		c.record(ctx, op, status, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			c.logger.Error("travel api call failed",
				logger.Field{Key: "op", Value: op},
				logger.Field{Key: "url", Value: endpoint},
				logger.Field{Key: "status", Value: status},
				logger.Field{Key: "err", Value: err},
			)
		}
	}()

	failure := func(cause error) *RequestFailure {
		return &RequestFailure{Op: op, Method: method, URL: endpoint, StatusCode: status, Err: cause}
	}

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return failure(fmt.Errorf("failed to marshal request: %w", mErr))
		}
		reader = bytes.NewReader(payload)
	}

	r, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return failure(fmt.Errorf("failed to build request: %w", err))
	}
	r.Header.Set("Accept", "application/json")
	r.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(r.Header))

	resp, err := c.httpClient.Do(r)
	if err != nil {
		return failure(fmt.Errorf("external api call failed: %w", err))
	}
	defer resp.Body.Close()

	status = resp.StatusCode
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	if status < 200 || status > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		f := failure(nil)
		f.Body = strings.TrimSpace(string(raw))
		return f
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure(fmt.Errorf("failed to decode json response: %w", err))
	}
	return nil
}

func (c *Client) record(ctx context.Context, op string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.Int("status", status),
	)
	if c.requests != nil {
		c.requests.Add(ctx, 1, attrs)
	}
	if c.duration != nil {
		c.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	}
}
