// Package logger builds context-aware slog loggers from functional options
// and provides attribute helpers so key names stay consistent.
//
// New picks a text or JSON handler and wraps it in LogHandlerDecorator,
// which adds attributes pulled from the context of each log call through
// registered ContextExtractor callbacks.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "emailcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "checked addresses",
//	    logger.Count(n),
//	    logger.Strict(true),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check. Group drops empty attributes, which pairs well
// with OptionalInt.
package logger
