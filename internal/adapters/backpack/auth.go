// Package backpack implements the Backpack exchange connector: request
// authentication for the private REST API plus the surrounding venue
// plumbing (endpoint tables, URL builders, error mapping).
package backpack

import (
	"strconv"

	"github.com/driftline/bpxconnect/internal/observability"
	"github.com/driftline/bpxconnect/internal/timesync"
)

// Auth signs private REST requests for the venue. Instances are safe
// for concurrent use: credentials and the instruction table are
// immutable, and each call derives its own timestamp.
type Auth struct {
	creds *Credentials
	clock timesync.TimeSource
}

// NewAuth binds provisioned credentials to a time source.
func NewAuth(creds *Credentials, clock timesync.TimeSource) *Auth {
	if clock == nil {
		clock = timesync.Wall{}
	}
	return &Auth{creds: creds, clock: clock}
}

// RESTAuthenticate returns the request with the four authentication
// headers merged over any caller-set headers. Only same-named keys are
// overwritten; every other request field passes through unchanged.
func (a *Auth) RESTAuthenticate(req *RESTRequest) *RESTRequest {
	headers := make(map[string]string, len(req.Headers)+4)
	for k, v := range req.Headers {
		headers[k] = v
	}
	for k, v := range a.authHeaders(req) {
		headers[k] = v
	}
	req.Headers = headers
	return req
}

// WSAuthenticate passes websocket requests through unsigned. Private
// stream authentication is an extension point, not part of the REST
// signing contract.
func (a *Auth) WSAuthenticate(req *WSRequest) *WSRequest {
	return req
}

func (a *Auth) authHeaders(req *RESTRequest) map[string]string {
	signature, timestamp, window := a.signPayload(req)
	return map[string]string{
		headerTimestamp: strconv.FormatInt(timestamp, 10),
		headerWindow:    strconv.FormatInt(window, 10),
		headerAPIKey:    a.creds.APIKey(),
		headerSignature: signature,
	}
}

// signPayload composes the canonical message for req and signs it. The
// timestamp is read once and reused verbatim in the emitted header so
// the header can never disagree with the signed message.
func (a *Auth) signPayload(req *RESTRequest) (signature string, timestamp, window int64) {
	instruction := instructionFor(req.Method, req.Path())
	params := mergeParams(req.Params, req.Data)
	timestamp = a.clock.TimeMillis()
	window = windowFor(req.Headers)

	message := composeMessage(instruction, params, timestamp, window)
	signature = a.creds.signer.Sign([]byte(message))

	observability.Telemetry().IncCounter(observability.MetricSignCount, 1, map[string]string{
		"instruction": instruction,
		"scheme":      string(a.creds.Scheme()),
	})
	observability.Log().Debug("signed request",
		observability.Field{Key: "instruction", Value: instruction},
		observability.Field{Key: "scheme", Value: string(a.creds.Scheme())},
		observability.Field{Key: "timestamp", Value: timestamp},
		observability.Field{Key: "window", Value: window},
	)
	return signature, timestamp, window
}

// windowFor honours a caller-set X-Window header when it parses as a
// positive integer, falling back to the venue default.
func windowFor(headers map[string]string) int64 {
	raw, ok := headers[headerWindow]
	if !ok {
		return DefaultWindowMillis
	}
	window, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || window <= 0 {
		return DefaultWindowMillis
	}
	return window
}
