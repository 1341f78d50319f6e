package backpack

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/driftline/bpxconnect/errs"
	"github.com/driftline/bpxconnect/internal/observability"
)

type venueError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MapHTTPError converts a non-2xx venue response into a structured
// error. Authentication rejections (401/403) are classified so the
// trading layer can tell them apart from transient transport faults;
// the signer itself cannot validate venue-side acceptance.
func MapHTTPError(status int, body []byte) *errs.E {
	var payload venueError
	_ = json.Unmarshal(body, &payload)

	opts := []errs.Option{errs.WithHTTP(status)}
	if payload.Code != "" {
		opts = append(opts, errs.WithRawCode(payload.Code))
	}
	if msg := strings.TrimSpace(payload.Message); msg != "" {
		opts = append(opts, errs.WithRawMessage(msg))
	}

	code := errs.CodeExchange
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = errs.CodeAuth
		observability.Telemetry().IncCounter(observability.MetricAuthRejects, 1, map[string]string{
			"status": http.StatusText(status),
		})
	case status == http.StatusTooManyRequests:
		code = errs.CodeRateLimited
	case status >= 500:
		code = errs.CodeUnavailable
	case status >= 400:
		code = errs.CodeInvalid
	}

	return errs.New(defaultVenueName, code, opts...)
}
