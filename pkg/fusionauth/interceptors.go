package fusionauth

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HeaderTenantID carries the tenant scope on every request.
const HeaderTenantID = "X-FusionAuth-TenantId"

// Request represents an HTTP request that can be intercepted.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Body     []byte
	Metadata map[string]interface{}
}

// Response represents an HTTP response that can be intercepted.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors in
// registration order, stopping at the first failure.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for index, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor %d failed: %w", index, err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in
// registration order, stopping at the first failure.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for index, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor %d failed: %w", index, err)
		}
	}

	return nil
}

// Built-in interceptors

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}

		if resp.Error != nil {
			logger.Error("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// ensureHeaders returns the request's header map, allocating it on first
// use.
func ensureHeaders(req *Request) http.Header {
	if req.Headers == nil {
		req.Headers = make(http.Header)
	}

	return req.Headers
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		target := ensureHeaders(req)
		for key, value := range headers {
			target.Set(key, value)
		}

		return nil
	}
}

// TenantInterceptor scopes every request to one tenant. An empty tenant ID
// leaves requests untouched.
func TenantInterceptor(tenantID string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if tenantID == "" {
			return nil
		}

		ensureHeaders(req).Set(HeaderTenantID, tenantID)

		return nil
	}
}

// AuthenticationInterceptor adds a bearer token to requests.
func AuthenticationInterceptor(tokenProvider func(context.Context) (string, error)) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		token, err := tokenProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authentication token: %w", err)
		}

		ensureHeaders(req).Set("Authorization", "Bearer "+token)

		return nil
	}
}

// Latency histograms record microseconds, up to one hour per request.
const (
	histogramMinValue     = 1
	histogramMaxValue     = 3600000000
	histogramSigFigs      = 3
	metadataStartTime     = "start_time"
	percentileMedian      = 50.0
	percentileNinetyFifth = 95.0
	percentileNinetyNinth = 99.0
)

// EndpointMetrics is a point-in-time snapshot of one endpoint's request
// metrics.
type EndpointMetrics struct {
	TotalRequests   int64
	TotalErrors     int64
	MinLatency      time.Duration
	MaxLatency      time.Duration
	MeanLatency     time.Duration
	P50Latency      time.Duration
	P95Latency      time.Duration
	P99Latency      time.Duration
	LastRequestTime time.Time
}

// endpointRecorder accumulates latency samples for one endpoint.
// hdrhistogram recording is not safe for concurrent use, so the collector
// mutex guards it.
type endpointRecorder struct {
	histogram *hdrhistogram.Histogram
	requests  int64
	errors    int64
	lastSeen  time.Time
}

// MetricsCollector aggregates request latency per endpoint. It is safe for
// concurrent use.
type MetricsCollector struct {
	mu        sync.Mutex
	endpoints map[string]*endpointRecorder
	onChange  func(endpoint string, metrics *EndpointMetrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		endpoints: make(map[string]*endpointRecorder),
	}
}

// SetOnChange sets a callback invoked with a fresh snapshot after every
// recorded request.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics *EndpointMetrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// Record adds one request observation for an endpoint.
func (m *MetricsCollector) Record(endpoint string, latency time.Duration, failed bool) {
	m.mu.Lock()

	recorder, ok := m.endpoints[endpoint]
	if !ok {
		recorder = &endpointRecorder{
			histogram: hdrhistogram.New(histogramMinValue, histogramMaxValue, histogramSigFigs),
		}
		m.endpoints[endpoint] = recorder
	}

	recorder.requests++
	recorder.lastSeen = time.Now()

	if failed {
		recorder.errors++
	}

	micros := latency.Microseconds()
	if micros < histogramMinValue {
		micros = histogramMinValue
	}

	_ = recorder.histogram.RecordValue(micros)

	onChange := m.onChange
	snapshot := recorder.snapshot()
	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, snapshot)
	}
}

// Snapshot returns the metrics recorded for an endpoint, or nil when the
// endpoint has never been seen.
func (m *MetricsCollector) Snapshot(endpoint string) *EndpointMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	recorder, ok := m.endpoints[endpoint]
	if !ok {
		return nil
	}

	return recorder.snapshot()
}

// Endpoints returns the endpoints with recorded metrics, sorted by name.
func (m *MetricsCollector) Endpoints() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.endpoints))
	for name := range m.endpoints {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Reset discards all recorded metrics.
func (m *MetricsCollector) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.endpoints = make(map[string]*endpointRecorder)
}

func (r *endpointRecorder) snapshot() *EndpointMetrics {
	snapshot := &EndpointMetrics{
		TotalRequests:   r.requests,
		TotalErrors:     r.errors,
		LastRequestTime: r.lastSeen,
	}

	if r.histogram.TotalCount() > 0 {
		snapshot.MinLatency = time.Duration(r.histogram.Min()) * time.Microsecond
		snapshot.MaxLatency = time.Duration(r.histogram.Max()) * time.Microsecond
		snapshot.MeanLatency = time.Duration(r.histogram.Mean()) * time.Microsecond
		snapshot.P50Latency = time.Duration(r.histogram.ValueAtQuantile(percentileMedian)) * time.Microsecond
		snapshot.P95Latency = time.Duration(r.histogram.ValueAtQuantile(percentileNinetyFifth)) * time.Microsecond
		snapshot.P99Latency = time.Duration(r.histogram.ValueAtQuantile(percentileNinetyNinth)) * time.Microsecond
	}

	return snapshot
}

// MetricsRequestInterceptor records the request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records latency and error counts per endpoint.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := fmt.Sprintf("%s %s", req.Method, req.Path)

		var latency time.Duration

		if req.Metadata != nil {
			if startTime, ok := req.Metadata[metadataStartTime].(time.Time); ok {
				latency = time.Since(startTime)
			}
		}

		failed := resp.Error != nil || resp.StatusCode >= http.StatusBadRequest
		collector.Record(endpoint, latency, failed)

		return nil
	}
}
