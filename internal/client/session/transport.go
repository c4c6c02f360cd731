package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type anonymousKey struct{}

// Anonymous marks ctx so requests made with it carry no token and a 401 on
// them does not end the session. Login uses it for the credential exchange.
func Anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// Transport returns a RoundTripper that adds the bearer token to every request
// and logs the session out on any 401 response.
func (m *Manager) Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{base: base, m: m}
}

type transport struct {
	base http.RoundTripper
	m    *Manager
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	anon := isAnonymous(req.Context())

	if !anon {
		if token := t.m.Token(); token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusUnauthorized && !anon {
		t.m.log.Info("received 401, ending session",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
		)
		t.m.Logout()
	}
	return res, nil
}
