package accessor

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uakit/pkg/logger"
)

type contextKey struct{}

// WithContext stores the user agent string in ctx.
func WithContext(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, contextKey{}, ua)
}

// FromContext returns the user agent string stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ua, _ := ctx.Value(contextKey{}).(string)
	return ua
}

// ContextProvider reads the user agent stored in ctx on every call.
func ContextProvider(ctx context.Context) Provider {
	return ProviderFunc(func() string { return FromContext(ctx) })
}

// Middleware copies the request's User-Agent header into the request context,
// making it the ambient value for everything rendered while handling the request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor returns a ContextExtractor that adds the user agent stored in context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ua := FromContext(ctx); ua != "" {
			return logger.UserAgent(ua), true
		}
		return slog.Attr{}, false
	}
}
