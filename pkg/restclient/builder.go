// Package restclient implements the HTTP core of the FusionAuth client:
// a fluent request builder, pluggable body encoders, schema-free JSON
// documents, and a response envelope that keeps HTTP failures separate
// from transport failures.
//
// A builder describes exactly one exchange. Execute performs a single
// round trip per call: HTTP error statuses are reported inside the
// envelope and never as Go errors, while failures below the protocol
// layer are captured in the envelope with StatusTransportError.
package restclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Header names the builder manages itself.
const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
)

// Default timeouts applied to new builders.
const (
	// DefaultConnectTimeout bounds connection establishment.
	DefaultConnectTimeout = 2 * time.Second

	// DefaultReadTimeout bounds the full exchange including reading the
	// response body.
	DefaultReadTimeout = 2 * time.Second
)

// RequestBuilder accumulates the parts of a single HTTP request. All
// mutators modify the builder in place and return it for chaining. A
// builder describes one request: build it, execute it, and discard it.
// It is not safe for concurrent use.
type RequestBuilder struct {
	baseURL        string
	method         Method
	headers        map[string]string
	params         url.Values
	bodyEncoder    BodyEncoder
	connectTimeout time.Duration
	readTimeout    time.Duration
	clientCert     *tls.Certificate
	proxyURL       string
	skipTLSVerify  bool
	logger         Logger
	debug          bool
}

// New returns a builder with default timeouts and nothing else set.
func New() *RequestBuilder {
	return &RequestBuilder{
		headers:        make(map[string]string),
		params:         url.Values{},
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
	}
}

// WithBaseURL sets the request URL. The URL may already carry a query
// string; parameters added on the builder are appended to it.
func (b *RequestBuilder) WithBaseURL(baseURL string) *RequestBuilder {
	b.baseURL = baseURL

	return b
}

// WithMethod sets the request method.
func (b *RequestBuilder) WithMethod(method Method) *RequestBuilder {
	b.method = method

	return b
}

// WithURISegment appends one path segment to the URL. Empty segments
// are skipped so optional path parts can be passed through unchecked.
// Exactly one slash separates the URL from the appended segment.
func (b *RequestBuilder) WithURISegment(segment string) *RequestBuilder {
	if segment == "" {
		return b
	}

	if !strings.HasSuffix(b.baseURL, "/") {
		b.baseURL += "/"
	}

	b.baseURL += segment

	return b
}

// WithParameter appends one value to the named query parameter. An
// empty value is skipped so optional parameters can be passed through
// unchecked. Repeated calls for the same name accumulate values in
// call order.
func (b *RequestBuilder) WithParameter(name, value string) *RequestBuilder {
	if value == "" {
		return b
	}

	b.params.Add(name, value)

	return b
}

// WithParameters replaces all values of the named query parameter with
// the given slice, preserving its order. A nil slice is skipped.
func (b *RequestBuilder) WithParameters(name string, values []string) *RequestBuilder {
	if values == nil {
		return b
	}

	b.params[name] = values

	return b
}

// WithHeader sets a request header, replacing any existing value.
func (b *RequestBuilder) WithHeader(name, value string) *RequestBuilder {
	b.headers[name] = value

	return b
}

// WithHeaders merges headers into the request, replacing existing
// values for the same names.
func (b *RequestBuilder) WithHeaders(headers map[string]string) *RequestBuilder {
	for name, value := range headers {
		b.headers[name] = value
	}

	return b
}

// WithAuthorization sets the Authorization header to the given value
// verbatim. An empty value is skipped.
func (b *RequestBuilder) WithAuthorization(value string) *RequestBuilder {
	if value == "" {
		return b
	}

	b.headers[headerAuthorization] = value

	return b
}

// WithBasicAuthorization sets the Authorization header from username
// and password using the Basic scheme. The header is set only when both
// values are non-empty; otherwise the call is a no-op.
func (b *RequestBuilder) WithBasicAuthorization(username, password string) *RequestBuilder {
	if username == "" || password == "" {
		return b
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	b.headers[headerAuthorization] = "Basic " + credentials

	return b
}

// WithBodyEncoder sets the encoder that produces the request body.
func (b *RequestBuilder) WithBodyEncoder(encoder BodyEncoder) *RequestBuilder {
	b.bodyEncoder = encoder

	return b
}

// WithJSONBody sends body marshaled as JSON.
func (b *RequestBuilder) WithJSONBody(body interface{}) *RequestBuilder {
	return b.WithBodyEncoder(NewJSONBodyEncoder(body))
}

// WithFormData sends fields as an application/x-www-form-urlencoded
// body. Fields with nil values are omitted.
func (b *RequestBuilder) WithFormData(fields map[string]*string) *RequestBuilder {
	return b.WithBodyEncoder(NewFormDataBodyEncoder(fields))
}

// WithConnectTimeout overrides the connection establishment timeout.
func (b *RequestBuilder) WithConnectTimeout(timeout time.Duration) *RequestBuilder {
	b.connectTimeout = timeout

	return b
}

// WithReadTimeout overrides the timeout for the full exchange.
func (b *RequestBuilder) WithReadTimeout(timeout time.Duration) *RequestBuilder {
	b.readTimeout = timeout

	return b
}

// WithClientCertificate presents cert during the TLS handshake. A nil
// certificate is skipped.
func (b *RequestBuilder) WithClientCertificate(cert *tls.Certificate) *RequestBuilder {
	b.clientCert = cert

	return b
}

// WithProxy routes the request through the given proxy URL.
func (b *RequestBuilder) WithProxy(proxyURL string) *RequestBuilder {
	b.proxyURL = proxyURL

	return b
}

// WithSkipTLSVerification disables server certificate verification.
func (b *RequestBuilder) WithSkipTLSVerification(skip bool) *RequestBuilder {
	b.skipTLSVerify = skip

	return b
}

// WithLogger sets the logger used for debug output.
func (b *RequestBuilder) WithLogger(logger Logger) *RequestBuilder {
	b.logger = logger

	return b
}

// WithDebug enables request and response logging through the logger.
func (b *RequestBuilder) WithDebug(debug bool) *RequestBuilder {
	b.debug = debug

	return b
}

// Execute performs exactly one round trip and returns the outcome as a
// ClientResponse envelope.
//
// Configuration problems fail before any network activity: a missing
// URL or method, an unsupported method, a body that cannot be encoded,
// or a proxy URL that cannot be parsed all return an error and no
// envelope. After that point nothing is an error in the Go sense
// except one case below: transport failures produce an envelope with
// StatusTransportError and TransportError set, and HTTP error statuses
// produce a normal envelope carrying the status and ErrorBody.
//
// The exception is a response body that is present but not valid JSON.
// The envelope is then returned together with an error wrapping
// ErrInvalidJSONBody; StatusCode and Body are still populated and both
// documents are nil.
func (b *RequestBuilder) Execute(ctx context.Context) (*ClientResponse, error) {
	if b.baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	if b.method == "" {
		return nil, ErrMethodRequired
	}

	if !b.method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(b.method))
	}

	var body []byte

	if b.bodyEncoder != nil {
		encoded, err := b.bodyEncoder.Encode()
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	httpClient, err := b.newHTTPClient()
	if err != nil {
		return nil, err
	}

	requestURL := b.buildURL()
	response := &ClientResponse{
		URL:         requestURL,
		Method:      b.method,
		RequestBody: body,
	}

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, string(b.method), requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for name, value := range b.headers {
		req.Header.Set(name, value)
	}

	if b.bodyEncoder != nil {
		req.Header.Set(headerContentType, b.bodyEncoder.ContentType())
		req.ContentLength = int64(len(body))
	}

	b.logRequest(req, body)

	res, err := httpClient.Do(req)
	if err != nil {
		response.StatusCode = StatusTransportError
		response.TransportError = err
		b.logTransportFailure(err)

		return response, nil
	}

	defer func() { _ = res.Body.Close() }()

	response.StatusCode = res.StatusCode

	data, err := io.ReadAll(res.Body)
	if err != nil {
		response.StatusCode = StatusTransportError
		response.TransportError = fmt.Errorf("reading response body: %w", err)
		b.logTransportFailure(response.TransportError)

		return response, nil
	}

	response.Body = data
	b.logResponse(res.StatusCode, len(data))

	if len(data) == 0 {
		return response, nil
	}

	document, err := ParseDocument(data)
	if err != nil {
		return response, fmt.Errorf("parsing response body: %w", err)
	}

	if response.WasSuccessful() {
		response.SuccessBody = document
	} else {
		response.ErrorBody = document
	}

	return response, nil
}

// buildURL assembles the final URL. The query separator is a "?" only
// when the URL does not already carry one.
func (b *RequestBuilder) buildURL() string {
	requestURL := b.baseURL
	if len(b.params) == 0 {
		return requestURL
	}

	if strings.Contains(requestURL, "?") {
		requestURL += "&"
	} else {
		requestURL += "?"
	}

	return requestURL + b.params.Encode()
}

func (b *RequestBuilder) logRequest(req *http.Request, body []byte) {
	if !b.debug || b.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	}
	if len(body) > 0 {
		fields["body_bytes"] = len(body)
	}

	b.logger.Debug("HTTP Request", fields)
}

func (b *RequestBuilder) logResponse(statusCode, bodyBytes int) {
	if !b.debug || b.logger == nil {
		return
	}

	b.logger.Debug("HTTP Response", map[string]interface{}{
		"status":     statusCode,
		"body_bytes": bodyBytes,
	})
}

func (b *RequestBuilder) logTransportFailure(err error) {
	if !b.debug || b.logger == nil {
		return
	}

	b.logger.Debug("HTTP Response", map[string]interface{}{
		"status": StatusTransportError,
		"error":  err.Error(),
	})
}
