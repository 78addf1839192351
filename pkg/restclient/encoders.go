package restclient

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Media types declared by the built-in encoders.
const (
	// ContentTypeJSON is the media type for JSON request bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeFormURLEncoded is the media type for form bodies.
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// BodyEncoder serializes a request body and names the media type of the
// serialized bytes. Execute runs the encoder once while assembling the
// request, and the encoder's content type takes precedence over a
// Content-Type header set directly on the builder.
type BodyEncoder interface {
	// Encode returns the serialized request body.
	Encode() ([]byte, error)

	// ContentType returns the media type set on the request.
	ContentType() string
}

// JSONBodyEncoder marshals an arbitrary value as JSON.
type JSONBodyEncoder struct {
	body interface{}
}

// NewJSONBodyEncoder returns an encoder that marshals body as JSON.
func NewJSONBodyEncoder(body interface{}) *JSONBodyEncoder {
	return &JSONBodyEncoder{body: body}
}

// Encode returns the JSON serialization of the wrapped value.
func (e *JSONBodyEncoder) Encode() ([]byte, error) {
	data, err := json.Marshal(e.body)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON body: %w", err)
	}

	return data, nil
}

// ContentType returns ContentTypeJSON.
func (e *JSONBodyEncoder) ContentType() string {
	return ContentTypeJSON
}

// FormDataBodyEncoder serializes fields as
// application/x-www-form-urlencoded. Fields whose value is nil are
// omitted from the output entirely rather than sent empty.
type FormDataBodyEncoder struct {
	fields map[string]*string
}

// NewFormDataBodyEncoder returns an encoder over the given form fields.
func NewFormDataBodyEncoder(fields map[string]*string) *FormDataBodyEncoder {
	return &FormDataBodyEncoder{fields: fields}
}

// Encode returns the percent-encoded form serialization of the fields.
func (e *FormDataBodyEncoder) Encode() ([]byte, error) {
	values := url.Values{}

	for name, value := range e.fields {
		if value == nil {
			continue
		}

		values.Set(name, *value)
	}

	return []byte(values.Encode()), nil
}

// ContentType returns ContentTypeFormURLEncoded.
func (e *FormDataBodyEncoder) ContentType() string {
	return ContentTypeFormURLEncoded
}
