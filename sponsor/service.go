// Package sponsor forwards sponsorship and execution requests of voters to the hosted
// sponsorship API, and hosts the client voters use to reach it.
package sponsor

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
)

var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrRateLimited      = errors.New("too many sponsorship requests")
	ErrReplayedDigest   = errors.New("transaction already submitted")
	ErrUpstream         = errors.New("upstream failure")
	ErrNoAllowedTarget  = errors.New("allowed target not configured")
)

type ServiceOpt func(*Service)

func WithServiceLogger(logger *zap.Logger) ServiceOpt {
	return func(s *Service) {
		s.logger = logger
	}
}

func withClock(clock clockwork.Clock) ServiceOpt {
	return func(s *Service) {
		s.clock = clock
	}
}

// Service restricts what gets sponsored and remembers submitted digests.
type Service struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	upstream upstream

	allowedTargets []string
	limit          rate.Limit
	burst          int
	limiters       *lru.Cache[types.Address, *rate.Limiter]
	executed       *lru.Cache[types.Digest, struct{}]
}

// NewService creates a service forwarding to upstream.
func NewService(upstream upstream, cfg Config, opts ...ServiceOpt) (*Service, error) {
	s := &Service{
		logger:   zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		upstream: upstream,
		limit:    rate.Limit(cfg.RateLimit),
		burst:    cfg.RateBurst,
	}
	if cfg.AllowedTarget == "" {
		return nil, ErrNoAllowedTarget
	}
	target, err := types.ParseMoveCallTarget(cfg.AllowedTarget)
	if err != nil {
		return nil, fmt.Errorf("allowed target: %w", err)
	}
	s.allowedTargets = []string{target.String()}
	size := max(cfg.ReplayCacheSize, 1)
	if s.limiters, err = lru.New[types.Address, *rate.Limiter](size); err != nil {
		return nil, fmt.Errorf("create limiter cache: %w", err)
	}
	if s.executed, err = lru.New[types.Digest, struct{}](size); err != nil {
		return nil, fmt.Errorf("create replay cache: %w", err)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) allow(sender types.Address) bool {
	if s.limit <= 0 {
		return true
	}
	limiter, ok := s.limiters.Get(sender)
	if !ok {
		limiter = rate.NewLimiter(s.limit, max(s.burst, 1))
		if prev, found, _ := s.limiters.PeekOrAdd(sender, limiter); found {
			limiter = prev
		}
	}
	return limiter.AllowN(s.clock.Now(), 1)
}

// Sponsor asks upstream to pay for kind bytes sent by sender. Only sender may sign the
// result and only the allowed target may be called.
func (s *Service) Sponsor(ctx context.Context, kind []byte, sender types.Address) (types.SponsoredBallot, error) {
	if len(kind) == 0 {
		return types.SponsoredBallot{}, fmt.Errorf("%w: empty transaction kind", ErrMalformedRequest)
	}
	if sender.IsEmpty() {
		return types.SponsoredBallot{}, fmt.Errorf("%w: empty sender", ErrMalformedRequest)
	}
	if !s.allow(sender) {
		sponsorRequests.WithLabelValues(phaseSponsor, outcomeLimited).Inc()
		return types.SponsoredBallot{}, fmt.Errorf("%w: %s", ErrRateLimited, sender.ShortString())
	}

	res, err := s.upstream.CreateSponsoredTransaction(ctx, enokiSponsorRequest(kind, sender, s.allowedTargets))
	if err != nil {
		sponsorRequests.WithLabelValues(phaseSponsor, outcomeFailed).Inc()
		s.logger.Error("failed to sponsor transaction",
			log.ZContext(ctx),
			zap.Stringer("sender", sender),
			zap.Error(err),
		)
		return types.SponsoredBallot{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	raw, err := base64.StdEncoding.DecodeString(res.Bytes)
	if err != nil || len(raw) == 0 || res.Digest == "" {
		sponsorRequests.WithLabelValues(phaseSponsor, outcomeFailed).Inc()
		return types.SponsoredBallot{}, fmt.Errorf("%w: malformed sponsorship for %s", ErrUpstream, sender.ShortString())
	}
	sponsored := types.SponsoredBallot{Bytes: raw, Digest: types.Digest(res.Digest)}
	sponsorRequests.WithLabelValues(phaseSponsor, outcomeOK).Inc()
	s.logger.Info("transaction sponsored",
		log.ZContext(ctx),
		zap.Stringer("sender", sender),
		zap.Inline(sponsored),
	)
	return sponsored, nil
}

// Execute submits the sender signature for a sponsored digest. Each digest is forwarded once.
func (s *Service) Execute(ctx context.Context, digest types.Digest, sig types.Signature) (types.ExecutionResult, error) {
	if digest.IsEmpty() {
		return types.ExecutionResult{}, fmt.Errorf("%w: empty digest", ErrMalformedRequest)
	}
	if found, _ := s.executed.ContainsOrAdd(digest, struct{}{}); found {
		sponsorRequests.WithLabelValues(phaseExecute, outcomeReplayed).Inc()
		return types.ExecutionResult{}, fmt.Errorf("%w: %s", ErrReplayedDigest, digest.ShortString())
	}

	res, err := s.upstream.ExecuteSponsoredTransaction(ctx, digest.String(), sig.String())
	if err != nil {
		s.executed.Remove(digest)
		sponsorRequests.WithLabelValues(phaseExecute, outcomeFailed).Inc()
		s.logger.Error("failed to execute transaction",
			log.ZContext(ctx),
			log.ZShortStringer("digest", digest),
			zap.Error(err),
		)
		return types.ExecutionResult{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	result := types.ExecutionResult{Digest: types.Digest(res.Digest), Status: types.ExecutionSuccess}
	if result.Digest.IsEmpty() {
		result.Digest = digest
	}
	if res.Effects != nil && res.Effects.Status.Status == string(types.ExecutionFailure) {
		result.Status = types.ExecutionFailure
		result.Error = res.Effects.Status.Error
	}
	sponsorRequests.WithLabelValues(phaseExecute, outcomeOK).Inc()
	s.logger.Info("transaction executed",
		log.ZContext(ctx),
		log.ZShortStringer("digest", result.Digest),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}
