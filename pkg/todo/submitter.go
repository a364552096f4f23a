package todo

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formstate/pkg/form"
	"github.com/dmitrymomot/formstate/pkg/logger"
)

// DefaultSubmitDelay simulates a slow backend.
const DefaultSubmitDelay = 3 * time.Second

// Submitter is the todo form's submit action. It waits Delay and then logs
// the submitted values.
type Submitter struct {
	Delay  time.Duration
	Logger *slog.Logger
}

// Submit implements form.SubmitFunc.
func (s Submitter) Submit(ctx context.Context, values form.Values) error {
	delay := s.Delay
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	log.InfoContext(ctx, "todo submitted",
		logger.Form(FormName),
		slog.Any("values", map[string]any(values)),
	)
	return nil
}
