package api

import (
	"encoding/json"
	"errors"
)

// Envelope is the wrapper every backend response uses:
// {success, message?, data?}. The executor hands the whole envelope to the
// endpoint groups, which decode the data field themselves.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DecodeData unmarshals the envelope's data field into v, failing with a
// DecodeError when the field is absent or malformed.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 {
		return &DecodeError{Err: errors.New("response has no data field")}
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
