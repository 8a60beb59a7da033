// Package logger builds *slog.Logger instances through functional options
// and injects context-scoped values, such as the current user agent, into
// every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating. Helpers in attr.go keep
// attribute keys consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "storefront"),
//	    logger.WithContextExtractors(accessor.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "user agent changed",
//	    logger.Component("accessor"),
//	    logger.UserAgent(raw),
//	)
package logger
