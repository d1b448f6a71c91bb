package gateway

import (
	jmespath "github.com/jmespath-community/go-jmespath"
)

// Payload extraction normalizes the two envelope layouts the legacy gateway
// mixes: some endpoints nest the payload under "data", others flatten legacy
// _UPPER fields into the top-level object. Each endpoint gets a JMESPath
// expression locating its payload; endpoints without an entry use the
// default nested lookup with a flattened fallback.

const defaultPayloadExpr = "data"

// payloadExprs overrides the payload location for endpoints that deviate
// from the plain "data" nesting.
var payloadExprs = map[string]string{
	PathWithdrawalList:   "data || {list: list, total: total}",
	PathSearchWithdrawal: "data || {list: list, total: total}",
	PathDepositApplyList: "data || {list: list, total: total}",
	PathWithdrawalNotify: "data || {list: list, total: total}",
	PathDepositNotify:    "data || {list: list, total: total}",
}

// ExtractPayload returns the operation payload from a successful envelope.
// The result preserves the gateway's own field names unchanged; only the
// protocol fields (code, message) are stripped when falling back to a
// flattened layout.
func ExtractPayload(path string, env Envelope) (map[string]any, error) {
	expr, ok := payloadExprs[path]
	if !ok {
		expr = defaultPayloadExpr
	}

	result, err := jmespath.Search(expr, env.Raw)
	if err != nil {
		return nil, err
	}

	switch v := result.(type) {
	case map[string]any:
		if compact := dropNils(v); len(compact) > 0 || hasNestedData(env.Raw) {
			return compact, nil
		}
	case []any:
		return map[string]any{"list": v}, nil
	}

	return flattenedPayload(env.Raw), nil
}

func hasNestedData(raw map[string]any) bool {
	_, ok := raw["data"].(map[string]any)
	return ok
}

// dropNils removes keys an OR-expression resolved to null, so a missing
// optional field does not shadow the flattened fallback.
func dropNils(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// flattenedPayload copies the top-level object minus the protocol fields.
func flattenedPayload(raw map[string]any) map[string]any {
	payload := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "code" || k == "message" {
			continue
		}
		payload[k] = v
	}
	return payload
}

// ValidatePayloadExprs compiles every configured expression; called from
// tests to catch typos in the table.
func ValidatePayloadExprs() error {
	for _, expr := range payloadExprs {
		if _, err := jmespath.Compile(expr); err != nil {
			return err
		}
	}
	_, err := jmespath.Compile(defaultPayloadExpr)
	return err
}
