package api

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

// Encoding selects the request body format and the matching auth header.
type Encoding string

const (
	// EncodingJSON sends a JSON body with a bearer token.
	EncodingJSON Encoding = "json"
	// EncodingForm sends a URL-encoded form body with an x-api-key header.
	EncodingForm Encoding = "form"
)

// ParseEncoding converts a configuration string to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case "", EncodingJSON:
		return EncodingJSON, nil
	case EncodingForm:
		return EncodingForm, nil
	default:
		return "", fmt.Errorf("unknown encoding %q (want json or form)", s)
	}
}

// Encoder serializes request parameters.
type Encoder interface {
	ContentType() string
	Encode(v any) ([]byte, error)
}

type jsonEncoder struct{}

func (jsonEncoder) ContentType() string { return "application/json" }

func (jsonEncoder) Encode(v any) ([]byte, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

// formEncoder reuses the json tags so both encodings agree on wire names.
type formEncoder struct {
	enc *schema.Encoder
}

func newFormEncoder() *formEncoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	return &formEncoder{enc: enc}
}

func (f *formEncoder) ContentType() string { return "application/x-www-form-urlencoded" }

func (f *formEncoder) Encode(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	values := url.Values{}
	if err := f.enc.Encode(v, values); err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

func newEncoding(e Encoding, apiKey string) (Encoder, AuthStrategy) {
	if e == EncodingForm {
		return newFormEncoder(), &HeaderAuth{Header: APIKeyHeader, Key: apiKey}
	}
	return jsonEncoder{}, &BearerAuth{Token: apiKey}
}
