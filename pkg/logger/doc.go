// Package logger provides the structured logging setup shared by formkit
// components: a slog factory configured with functional options, a handler
// decorator that injects values stored in context.Context, and attribute
// helpers that keep key names consistent.
//
// Every formkit component accepts a *slog.Logger and falls back to Nop, so a
// library user who never configures logging gets no output. Diagnostics such
// as "rule is not registered" or "field must be added first" are emitted at
// Warn level with the Component, Field and Rule attributes.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("form", ctxKeyForm),
//	)
//
//	v, err := formkit.New(doc, formkit.WithLogger(log))
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel / WithLevelName set the minimum level.
//   - WithOutput sets the destination writer.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors / WithContextValue inject attributes from context.
//   - WithDevelopment is a shortcut for text output at debug level.
//
// Error and the other helpers in attr.go return an empty slog.Attr for nil
// input, so call sites do not need nil checks.
package logger
