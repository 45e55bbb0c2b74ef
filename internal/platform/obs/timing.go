package obs

import (
	"context"
	"time"
	"train-consist-service/internal/platform/logging"

	"go.uber.org/zap"
)

// Time starts timing op. Call the returned func with a pointer to the named
// error result to log the duration and record the outcome:
//
//	defer obs.Time(ctx, m, "train.board")(&err)
//
// m may be nil when metrics are disabled.
func Time(ctx context.Context, m *Metrics, op string) func(errp *error) {
	start := time.Now()
	logger := logging.FromContext(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		var err error
		if errp != nil {
			err = *errp
		}
		m.ObserveOperation(op, dur, err)

		if err != nil {
			logger.Warn("operation failed", zap.String("op", op), zap.Int64("dur_ms", dur.Milliseconds()), zap.Error(err))
			return
		}
		logger.Debug("operation done", zap.String("op", op), zap.Int64("dur_ms", dur.Milliseconds()))
	}
}
