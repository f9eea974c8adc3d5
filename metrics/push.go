package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends the default registry to a push gateway once. Short lived commands use it
// instead of serving /metrics.
func Push(ctx context.Context, cfg Config, grouping map[string]string) error {
	if cfg.PushURL == "" {
		return nil
	}
	pusher := push.New(cfg.PushURL, cfg.PushJob).Gatherer(prometheus.DefaultGatherer)
	for k, v := range grouping {
		pusher = pusher.Grouping(k, v)
	}
	if err := pusher.AddContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", cfg.PushURL, err)
	}
	return nil
}
