package httpclient

import (
	"maps"
	"strings"
	"time"
)

// RequestOption customises a single request.
type RequestOption func(*request)

type request struct {
	headers map[string]string
	form    map[string]string
	json    any
	hasJSON bool
	timeout time.Duration
}

// WithHeaders adds headers to the request. Later calls overwrite earlier
// values of the same header.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *request) {
		if r.headers == nil {
			r.headers = make(map[string]string, len(headers))
		}
		maps.Copy(r.headers, headers)
	}
}

// WithForm sends form as an application/x-www-form-urlencoded body.
func WithForm(form map[string]string) RequestOption {
	return func(r *request) {
		r.form = form
	}
}

// WithJSON sends body encoded as JSON.
func WithJSON(body any) RequestOption {
	return func(r *request) {
		r.json = body
		r.hasJSON = true
	}
}

// WithTimeout overrides the per-attempt timeout. Non-positive values keep
// the client default.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(r *request) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

func newRequest(defaultTimeout time.Duration, opts ...RequestOption) *request {
	r := &request{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *request) validate(url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	if r.form != nil && r.hasJSON {
		return ErrAmbiguousBody
	}

	return nil
}
