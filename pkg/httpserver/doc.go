// Package httpserver runs an http.Server with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func(ctx context.Context) error {
//			return ctrl.Wait(ctx)
//		}),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns when ctx is cancelled (typically by signal.NotifyContext) or
// Shutdown is called. Listen and serve failures wrap ErrStart; shutdown
// failures wrap ErrShutdown. HealthCheckHandler serves liveness and readiness
// probes.
package httpserver
