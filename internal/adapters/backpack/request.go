package backpack

import (
	"net/url"
	"strings"
)

// RESTMethod enumerates the HTTP verbs used against the venue API.
type RESTMethod string

const (
	// MethodGet issues an HTTP GET.
	MethodGet RESTMethod = "GET"
	// MethodPost issues an HTTP POST.
	MethodPost RESTMethod = "POST"
	// MethodPut issues an HTTP PUT.
	MethodPut RESTMethod = "PUT"
	// MethodDelete issues an HTTP DELETE.
	MethodDelete RESTMethod = "DELETE"
)

// RESTRequest describes one outbound REST call before dispatch. The
// signing path reads it and returns a request with merged headers;
// every other field passes through untouched.
type RESTRequest struct {
	Method  RESTMethod
	URL     string
	Params  map[string]any
	Data    map[string]any
	Headers map[string]string
}

// Path returns the request path with any query string and trailing
// slash removed, so endpoint lookups are unambiguous.
func (r *RESTRequest) Path() string {
	raw := strings.TrimSpace(r.URL)
	if raw == "" {
		return ""
	}
	path := raw
	if parsed, err := url.Parse(raw); err == nil {
		path = parsed.Path
	} else if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		path = raw[:idx]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// WSRequest describes one outbound websocket payload. Websocket
// requests currently pass through authentication unsigned.
type WSRequest struct {
	Payload map[string]any
}
