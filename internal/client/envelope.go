package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The backend wraps successful payloads inconsistently: most endpoints use
// {"data": ...}, the podcast list uses {"message": [...]}, the podcast
// get-by-id has been observed returning either, and mutation acknowledgments
// come back as {"message": "..."} or {"data": {"message": "..."}}. Each
// unwrap rule below is the contract of the endpoints that reference it -
// this is inherited technical debt, deliberately not normalized here.

// unwrapData decodes a {"data": T} envelope into v.
func unwrapData(res *http.Response, v any) error {
	defer res.Body.Close()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: missing data field", ErrInvalidFormat)
	}
	if err := json.Unmarshal(envelope.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// unwrapMessage decodes a {"message": T} envelope where the payload itself
// rides in the message field.
func unwrapMessage(res *http.Response, v any) error {
	defer res.Body.Close()

	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(envelope.Message) == 0 || string(envelope.Message) == "null" {
		return fmt.Errorf("%w: missing message field", ErrInvalidFormat)
	}
	if err := json.Unmarshal(envelope.Message, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// unwrapDataOrMessage prefers the data field and falls back to message.
func unwrapDataOrMessage(res *http.Response, v any) error {
	defer res.Body.Close()

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	payload := envelope.Data
	if len(payload) == 0 || string(payload) == "null" {
		payload = envelope.Message
	}
	if len(payload) == 0 || string(payload) == "null" {
		return fmt.Errorf("%w: missing data and message fields", ErrInvalidFormat)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

// unwrapAck extracts the acknowledgment text from a mutation response,
// accepting both {"message": "..."} and {"data": {"message": "..."}}.
// An empty body is treated as a bare acknowledgment, not an error.
func unwrapAck(res *http.Response) (string, error) {
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(body) == 0 {
		return "", nil
	}

	var envelope struct {
		Message string `json:"message"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if envelope.Message != "" {
		return envelope.Message, nil
	}
	return envelope.Data.Message, nil
}
