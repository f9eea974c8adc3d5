package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushSkippedWithoutURL(t *testing.T) {
	require.NoError(t, Push(context.Background(), DefaultConfig(), nil))
}

func TestPushSendsRegistry(t *testing.T) {
	var path string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	counter := NewCounter("push_probe_total", "test", "probe", []string{"kind"})
	counter.WithLabelValues("x").Inc()

	cfg := DefaultConfig()
	cfg.PushURL = srv.URL
	require.NoError(t, Push(context.Background(), cfg, map[string]string{"command": "vote"}))
	require.Equal(t, "/metrics/job/sponsorvote/command/vote", path)
	require.NotEmpty(t, body)
}
