package api

import "net/http"

// APIKeyHeader carries the raw key for form-encoded requests.
const APIKeyHeader = "x-api-key"

// AuthStrategy applies the credential to an outgoing request.
type AuthStrategy interface {
	Apply(req *http.Request)
}

// BearerAuth sends the key as an Authorization bearer token.
type BearerAuth struct {
	Token string
}

func (a *BearerAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// HeaderAuth sends the key verbatim in a custom header.
type HeaderAuth struct {
	Header string
	Key    string
}

func (a *HeaderAuth) Apply(req *http.Request) {
	req.Header.Set(a.Header, a.Key)
}
