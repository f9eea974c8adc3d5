package sponsor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	metricsProm "github.com/slok/go-http-metrics/metrics/prometheus"
	metricsMiddleware "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/metrics"
)

const maxBodySize = 1 << 20

var httpMetrics = sync.OnceValue(func() metricsMiddleware.Middleware {
	return metricsMiddleware.New(metricsMiddleware.Config{
		Recorder: metricsProm.NewRecorder(metricsProm.Config{Prefix: metrics.Namespace}),
	})
})

type ServerOpt func(*Server)

func WithServerLogger(logger *zap.Logger) ServerOpt {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server is the HTTP surface voters call instead of the sponsorship API.
type Server struct {
	logger  *zap.Logger
	svc     *Service
	schemas *schemas
	handler http.Handler
	origins []string
}

// NewServer wires the routes of svc.
func NewServer(svc *Service, cfg Config, opts ...ServerOpt) (*Server, error) {
	sch, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	s := &Server{
		logger:  zap.NewNop(),
		svc:     svc,
		schemas: sch,
		origins: cfg.AllowedOrigins,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /sponsor/transaction", std.Handler("/sponsor/transaction", httpMetrics(),
		http.HandlerFunc(s.sponsorTransaction)))
	mux.Handle("POST /sponsor/execute", std.Handler("/sponsor/execute", httpMetrics(),
		http.HandlerFunc(s.executeTransaction)))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})
	s.handler = s.withRequestID(corsHandler.Handler(mux))
	return s, nil
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on lis until ctx is canceled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("sponsor service listening", zap.Stringer("address", lis.Addr()))
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(lis) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("sponsor service shutdown", zap.Error(err))
		}
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(log.WithRequestID(r.Context(), id)))
		s.logger.Debug("request served",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) sponsorTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := s.read(r, s.schemas.transaction, &req); err != nil {
		s.fail(w, r, phaseSponsor, msgSponsorFailed, err)
		return
	}
	kind, err := base64.StdEncoding.DecodeString(req.TransactionKindBytes)
	if err != nil {
		s.fail(w, r, phaseSponsor, msgSponsorFailed, errors.Join(ErrMalformedRequest, err))
		return
	}
	sender, err := types.StringToAddress(req.Sender)
	if err != nil {
		s.fail(w, r, phaseSponsor, msgSponsorFailed, errors.Join(ErrMalformedRequest, err))
		return
	}
	sponsored, err := s.svc.Sponsor(r.Context(), kind, sender)
	if err != nil {
		s.fail(w, r, phaseSponsor, msgSponsorFailed, err)
		return
	}
	s.respond(w, http.StatusOK, transactionResponse{
		Bytes:  base64.StdEncoding.EncodeToString(sponsored.Bytes),
		Digest: sponsored.Digest.String(),
	})
}

func (s *Server) executeTransaction(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := s.read(r, s.schemas.execute, &req); err != nil {
		s.fail(w, r, phaseExecute, msgExecuteFailed, err)
		return
	}
	sig, err := types.ParseSignature(req.Signature)
	if err != nil {
		s.fail(w, r, phaseExecute, msgExecuteFailed, errors.Join(ErrMalformedRequest, err))
		return
	}
	result, err := s.svc.Execute(r.Context(), types.Digest(req.Digest), sig)
	if err != nil {
		s.fail(w, r, phaseExecute, msgExecuteFailed, err)
		return
	}
	res := executeResponse{Digest: result.Digest.String()}
	res.Effects = effectsOf(result)
	s.respond(w, http.StatusOK, res)
}

func (s *Server) read(r *http.Request, sch *jsonschema.Schema, dst any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return errors.Join(ErrMalformedRequest, err)
	}
	return decode(sch, data, dst)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, phase, msg string, err error) {
	status, code := http.StatusInternalServerError, CodeUpstreamFailure
	switch {
	case errors.Is(err, ErrMalformedRequest):
		status, code = http.StatusBadRequest, CodeMalformedRequest
	case errors.Is(err, ErrRateLimited):
		status, code = http.StatusTooManyRequests, CodeRateLimited
	case errors.Is(err, ErrReplayedDigest):
		status, code = http.StatusConflict, CodeReplayedDigest
	}
	s.logger.Warn("request failed",
		log.ZContext(r.Context()),
		zap.String("phase", phase),
		zap.String("code", code),
		zap.Error(err),
	)
	s.respond(w, status, errorResponse{Error: msg, Phase: phase, Code: code})
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Debug("write response", zap.Error(err))
	}
}
