package gateway

import (
	"context"
	"fmt"
	"sync"
)

// FixtureTransport substitutes local canned envelopes for the network call
// while preserving the exact envelope shape, so the dispatcher and retry
// logic are exercised identically against fixtures and the live gateway.
// It is used both for the development "use fixture data" mode and as the
// scripted transport in tests.
type FixtureTransport struct {
	mu       sync.Mutex
	scripted map[string][]Envelope
	defaults map[string]Envelope
	calls    []FixtureCall
	failures map[string]error
}

// FixtureCall records one request the fixture served.
type FixtureCall struct {
	Path   string
	Params map[string]string
}

// NewFixtureTransport creates a fixture transport with the built-in default
// envelopes for every endpoint.
func NewFixtureTransport() *FixtureTransport {
	return &FixtureTransport{
		scripted: make(map[string][]Envelope),
		defaults: defaultFixtures(),
		failures: make(map[string]error),
	}
}

// Stub queues scripted envelopes for a path. Queued envelopes are consumed
// in order before the path's default applies again.
func (f *FixtureTransport) Stub(path string, envelopes ...Envelope) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripted[path] = append(f.scripted[path], envelopes...)
}

// StubDefault replaces the standing envelope for a path.
func (f *FixtureTransport) StubDefault(path string, env Envelope) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.defaults[path] = env
}

// FailWith makes a path return a transport-level error.
func (f *FixtureTransport) FailWith(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = err
}

// RoundTrip serves the next canned envelope for the path.
func (f *FixtureTransport) RoundTrip(ctx context.Context, path string, params map[string]string) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}
	f.calls = append(f.calls, FixtureCall{Path: path, Params: copied})

	if err, ok := f.failures[path]; ok {
		return Envelope{}, err
	}

	if queue := f.scripted[path]; len(queue) > 0 {
		env := queue[0]
		f.scripted[path] = queue[1:]
		return env, nil
	}

	if env, ok := f.defaults[path]; ok {
		return env, nil
	}
	return Envelope{}, fmt.Errorf("no fixture for path %s", path)
}

// Calls returns every request the fixture has served.
func (f *FixtureTransport) Calls() []FixtureCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FixtureCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many requests hit the given path.
func (f *FixtureTransport) CallCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Path == path {
			n++
		}
	}
	return n
}

var _ Transport = (*FixtureTransport)(nil)

// SuccessEnvelope builds a code "1" envelope whose payload is flattened into
// the top-level object, matching the legacy layout most endpoints use.
func SuccessEnvelope(payload map[string]any) Envelope {
	raw := map[string]any{"code": CodeSuccess, "message": "success"}
	for k, v := range payload {
		raw[k] = v
	}
	return Envelope{Code: CodeSuccess, Message: "success", Raw: raw}
}

// CodeEnvelope builds an envelope with the given code and message and no
// payload.
func CodeEnvelope(code, message string) Envelope {
	return Envelope{
		Code:    code,
		Message: message,
		Raw:     map[string]any{"code": code, "message": message},
	}
}

// defaultFixtures are the canned development responses, one per endpoint.
func defaultFixtures() map[string]Envelope {
	emptyList := map[string]any{"list": []any{}, "total": "0"}
	return map[string]Envelope{
		PathLogin: SuccessEnvelope(map[string]any{
			"_CONNID": "fixture-conn-0001",
			"_NAME":   "fixture-operator",
			"_CLASS":  "1",
		}),
		PathBalance: SuccessEnvelope(map[string]any{
			"_MONEY":     "1000000",
			"_APROVALUE": "12",
		}),
		PathWithdrawalLimits: SuccessEnvelope(map[string]any{
			"_MIN_MONEY":   "10000",
			"_MAX_MONEY":   "3000000",
			"_DAILY_LIMIT": "10000000",
		}),
		PathDepositApplyList:  SuccessEnvelope(emptyList),
		PathWithdrawalNotify:  SuccessEnvelope(emptyList),
		PathDepositNotify:     SuccessEnvelope(emptyList),
		PathWithdrawalList:    SuccessEnvelope(emptyList),
		PathSearchWithdrawal:  SuccessEnvelope(emptyList),
		PathSubmitWithdrawal:  SuccessEnvelope(map[string]any{"_IDX": "fixture-wd-0001"}),
		PathApproveWithdrawal: SuccessEnvelope(map[string]any{"_IDX": "fixture-wd-0001"}),
		PathCancelWithdrawal:  SuccessEnvelope(map[string]any{"_IDX": "fixture-wd-0001"}),
	}
}
