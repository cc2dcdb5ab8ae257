// Package environment carries the deployment environment (development,
// staging or production) through context.Context and into structured logs.
//
// Parse normalizes the value read from configuration, WithContext and
// FromContext move it through a context, and LoggerExtractor exposes it to
// the logger package:
//
//	env := environment.Parse(cfg.Env)
//	ctx := environment.WithContext(ctx, env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // env=production
package environment
