package restclient

import "net/http"

// StatusTransportError is recorded as the status code when an exchange
// failed before an HTTP status line was received.
const StatusTransportError = -1

// ClientResponse captures the outcome of one executed request. At most
// one of SuccessBody and ErrorBody is set: SuccessBody when the status
// was 2xx and a body was present, ErrorBody when the status was outside
// 2xx and a body was present. Both are nil for empty bodies and for
// transport failures.
type ClientResponse struct {
	// URL is the fully assembled request URL including the query string.
	URL string

	// Method is the request method that was sent.
	Method Method

	// RequestBody holds the encoded request body, if any.
	RequestBody []byte

	// StatusCode is the HTTP status, or StatusTransportError when the
	// exchange failed below the protocol layer.
	StatusCode int

	// Body is the raw response body.
	Body []byte

	// SuccessBody is the parsed body of a 2xx response.
	SuccessBody *Document

	// ErrorBody is the parsed body of a non-2xx response.
	ErrorBody *Document

	// TransportError records the failure when StatusCode is
	// StatusTransportError, and is nil otherwise.
	TransportError error
}

// WasSuccessful reports whether the exchange completed with a 2xx
// status. Transport failures report false because StatusCode is
// StatusTransportError.
func (r *ClientResponse) WasSuccessful() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
