package api

import (
	"bytes"
	"encoding/json"

	"github.com/cufinder/cufinder-go/internal/apierrors"
)

const (
	envelopeDataKey = "data"
	envelopeMetaKey = "meta_data"
)

// unwrapEnvelope returns the payload carried by a response body. When the
// body is an object with a "data" key the payload is that value, with a
// sibling "meta_data" injected into it if the value is itself an object.
// Any other body is returned unchanged.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}

	if !isObject(raw) {
		return raw, nil
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}

	data, ok := top[envelopeDataKey]
	if !ok {
		return raw, nil
	}

	meta, ok := top[envelopeMetaKey]
	if !ok || !isObject(data) {
		return data, nil
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(data, &inner); err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}
	inner[envelopeMetaKey] = meta

	merged, err := json.Marshal(inner)
	if err != nil {
		return nil, &apierrors.DecodeError{Err: err}
	}
	return merged, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
