package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Envelope is the uniform shape every gateway response follows. The payload
// is either nested under "data" or flattened into the top-level object with
// legacy _UPPER field names; Raw keeps the full decoded object so extraction
// can handle both.
type Envelope struct {
	Code    string
	Message string
	Raw     map[string]any
}

// DecodeEnvelope parses a gateway response body. The legacy gateway is loose
// about types: code arrives as a JSON string or number depending on the
// endpoint, so both are normalized to the string form the policy tables use.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Envelope{}, fmt.Errorf("decode gateway response: %w", err)
	}

	code, ok := stringField(raw, "code")
	if !ok {
		return Envelope{}, fmt.Errorf("gateway response missing code field")
	}

	message, _ := stringField(raw, "message")

	return Envelope{
		Code:    code,
		Message: message,
		Raw:     raw,
	}, nil
}

func stringField(raw map[string]any, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		// JSON numbers decode to float64; codes are small integers.
		return strconv.FormatInt(int64(t), 10), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// IsSuccess reports whether the envelope carries a success code, including
// the success-but-empty variant.
func (e Envelope) IsSuccess() bool {
	return e.Code == CodeSuccess || e.Code == CodeSuccessEmpty
}
