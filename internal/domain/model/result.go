package model

// ActionResult is the only shape the core exposes across its boundary. The
// dashboard renders failures from Error/Code without exception handling.
type ActionResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Code    string         `json:"code,omitempty"`
}

// OK builds a successful result carrying the gateway payload.
func OK(data map[string]any) ActionResult {
	return ActionResult{Success: true, Data: data}
}

// Fail builds a failed result with a user-facing message and optional code.
func Fail(message, code string) ActionResult {
	return ActionResult{Success: false, Error: message, Code: code}
}
