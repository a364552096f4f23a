// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New picks a text or JSON handler, attaches static attributes, and wraps the
// handler with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record so request-scoped values (for example a chi
// request id) show up without threading them through every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "todoform"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "validation pass applied",
//	    logger.Form("todolistform"),
//	    logger.Revision(rev),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
