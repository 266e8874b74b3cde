// Package middleware holds the HTTP middleware wrapped around every route.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/unrolled/secure"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the request id stored in ctx, or "-" if there is none.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return "-"
}

// WithRequestID tags each request with the incoming X-Request-ID, or a new
// UUID, and echoes it on the response.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecureHeaders sets conservative browser security headers. STS is sent on
// plain HTTP too since TLS is usually terminated in front of the backend.
func SecureHeaders() *secure.Secure {
	return secure.New(secure.Options{
		ContentSecurityPolicy:     "default-src 'self'; frame-ancestors 'self'; object-src 'none'",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
		ReferrerPolicy:            "no-referrer",
		STSSeconds:                15552000,
		STSIncludeSubdomains:      true,
		ForceSTSHeader:            true,
		ContentTypeNosniff:        true,
		XDNSPrefetchControl:       "off",
		CustomFrameOptionsValue:   "SAMEORIGIN",
	})
}

// Recover turns a panic in next into a call to onPanic.
func Recover(onPanic func(http.ResponseWriter, *http.Request, any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					onPanic(w, r, rec)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
