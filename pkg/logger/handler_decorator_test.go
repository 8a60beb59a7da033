package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uakit/pkg/logger"
)

type uaKey struct{}

func uaExtractor(ctx context.Context) (slog.Attr, bool) {
	ua, ok := ctx.Value(uaKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.UserAgent(ua), true
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(logger.NewLogHandlerDecorator(base, nil, uaExtractor))
	ctx := context.WithValue(context.Background(), uaKey{}, "ctx-agent")

	t.Run("adds context attributes", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(ctx, "hello")
		assert.Contains(t, buf.String(), "user_agent=ctx-agent")
	})

	t.Run("explicit attribute wins", func(t *testing.T) {
		buf.Reset()
		log.InfoContext(ctx, "hello", logger.UserAgent("explicit"))
		out := buf.String()
		assert.Contains(t, out, "user_agent=explicit")
		assert.Equal(t, 1, strings.Count(out, "user_agent="))
	})

	t.Run("filtered records skip extraction", func(t *testing.T) {
		buf.Reset()
		log.DebugContext(ctx, "hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		buf.Reset()
		log.With(logger.Component("header")).WithGroup("req").InfoContext(ctx, "grouped")
		out := buf.String()
		assert.Contains(t, out, "component=header")
		assert.Contains(t, out, "req.user_agent=ctx-agent")
	})
}
