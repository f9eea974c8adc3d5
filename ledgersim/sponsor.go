package ledgersim

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/codec"
	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/signing"
)

var (
	ErrUnauthorized   = errors.New("invalid api key")
	ErrInvalidRequest = errors.New("invalid sponsorship request")
	ErrNotAllowed     = errors.New("not allowed")
	ErrUnknownDigest  = errors.New("no pending sponsorship for digest")
	ErrExpired        = errors.New("sponsorship expired")
	ErrBadSignature   = errors.New("invalid signature")
)

// SponsorConfig of the simulated sponsorship API.
type SponsorConfig struct {
	APIKey    string        `mapstructure:"api-key"`
	Network   string        `mapstructure:"network"`
	Expiry    time.Duration `mapstructure:"expiry"`
	GasBudget uint64        `mapstructure:"gas-budget"`
}

func DefaultSponsorConfig() SponsorConfig {
	return SponsorConfig{
		APIKey:    "devnet",
		Network:   "devnet",
		Expiry:    5 * time.Minute,
		GasBudget: 50_000_000,
	}
}

type pending struct {
	data    types.TransactionData
	raw     []byte
	expires time.Time
}

type SponsorOpt func(*Sponsor)

func WithSponsorLogger(logger *zap.Logger) SponsorOpt {
	return func(s *Sponsor) {
		s.logger = logger
	}
}

// WithGasOwner sets the key that pays for sponsored transactions.
func WithGasOwner(signer *signing.EdSigner) SponsorOpt {
	return func(s *Sponsor) {
		s.gasOwner = signer
	}
}

func withClock(clock clockwork.Clock) SponsorOpt {
	return func(s *Sponsor) {
		s.clock = clock
	}
}

// Sponsor pays for vote transactions and executes them once the sender signed.
type Sponsor struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	cfg      SponsorConfig
	ledger   *Ledger
	verifier *signing.EdVerifier
	gasOwner *signing.EdSigner

	mu      sync.Mutex
	pending map[types.Digest]*pending
}

func NewSponsor(ledger *Ledger, cfg SponsorConfig, opts ...SponsorOpt) (*Sponsor, error) {
	verifier, err := signing.NewEdVerifier()
	if err != nil {
		return nil, err
	}
	s := &Sponsor{
		logger:   zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		cfg:      cfg,
		ledger:   ledger,
		verifier: verifier,
		pending:  make(map[types.Digest]*pending),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gasOwner == nil {
		s.gasOwner, err = signing.NewEdSigner(signing.WithKeyFromRand(rand.Reader))
		if err != nil {
			return nil, fmt.Errorf("gas owner key: %w", err)
		}
	}
	return s, nil
}

// Authorized checks the api key of a request.
func (s *Sponsor) Authorized(key string) bool {
	return s.cfg.APIKey == "" || key == s.cfg.APIKey
}

// Pending returns the number of sponsorships awaiting a signature.
func (s *Sponsor) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Create wraps transaction kind bytes into a transaction paid by the gas owner.
func (s *Sponsor) Create(req enoki.SponsorRequest) (*enoki.SponsoredTransaction, error) {
	if s.cfg.Network != "" && req.Network != s.cfg.Network {
		return nil, fmt.Errorf("%w: network %q", ErrInvalidRequest, req.Network)
	}
	sender, err := types.StringToAddress(req.Sender)
	if err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidRequest, err)
	}
	raw, err := base64.StdEncoding.DecodeString(req.TransactionBlockKindBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: kind bytes: %w", ErrInvalidRequest, err)
	}
	kind, err := ballot.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: kind bytes: %w", ErrInvalidRequest, err)
	}
	if err := checkAllowed(sender, kind, req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	p := &pending{
		data: types.TransactionData{
			Kind:       kind,
			Sender:     sender,
			GasOwner:   s.gasOwner.Address(),
			GasBudget:  s.cfg.GasBudget,
			Expiration: uint64(now.Add(s.cfg.Expiry).Unix()),
		},
		expires: now.Add(s.cfg.Expiry),
	}
	p.raw, err = codec.Encode(&p.data)
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}
	digest := types.ComputeDigest(p.raw)

	s.mu.Lock()
	s.sweep(now)
	s.pending[digest] = p
	s.mu.Unlock()

	s.logger.Debug("transaction sponsored",
		log.ZShortStringer("sender", sender),
		log.ZShortStringer("digest", digest),
	)
	return &enoki.SponsoredTransaction{
		Bytes:  base64.StdEncoding.EncodeToString(p.raw),
		Digest: digest.String(),
	}, nil
}

func checkAllowed(sender types.Address, kind types.TransactionKind, req enoki.SponsorRequest) error {
	if len(req.AllowedAddresses) > 0 {
		found := false
		for _, a := range req.AllowedAddresses {
			if addr, err := types.StringToAddress(a); err == nil && addr == sender {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: sender %s", ErrNotAllowed, sender.ShortString())
		}
	}
	if len(req.AllowedMoveCallTargets) > 0 {
		for _, call := range kind.Calls {
			found := false
			for _, t := range req.AllowedMoveCallTargets {
				if target, err := types.ParseMoveCallTarget(t); err == nil && target == call.Target {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: target %s", ErrNotAllowed, call.Target)
			}
		}
	}
	return nil
}

// sweep drops expired sponsorships. s.mu must be held.
func (s *Sponsor) sweep(now time.Time) {
	for digest, p := range s.pending {
		if now.After(p.expires) {
			delete(s.pending, digest)
		}
	}
}

// Execute applies a sponsored transaction signed by its sender. A digest is consumed by the
// first call carrying a valid signature, whether or not the vote itself aborts.
func (s *Sponsor) Execute(digest, signature string) (*enoki.ExecutedTransaction, error) {
	sig, err := types.ParseSignature(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	s.mu.Lock()
	p, ok := s.pending[types.Digest(digest)]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownDigest, digest)
	}
	if s.clock.Now().After(p.expires) {
		delete(s.pending, types.Digest(digest))
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrExpired, digest)
	}
	signer, valid := s.verifier.VerifyTransaction(p.raw, sig)
	if !valid || signer != p.data.Sender {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: not signed by sender %s", ErrBadSignature, p.data.Sender.ShortString())
	}
	delete(s.pending, types.Digest(digest))
	s.mu.Unlock()

	res := &enoki.ExecutedTransaction{
		Digest:  digest,
		Effects: &enoki.Effects{Status: enoki.ExecutionStatus{Status: string(types.ExecutionSuccess)}},
	}
	if err := s.ledger.Apply(p.data.Sender, p.data.Kind); err != nil {
		var abort *AbortError
		if !errors.As(err, &abort) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		res.Effects.Status = enoki.ExecutionStatus{
			Status: string(types.ExecutionFailure),
			Error:  abort.Error(),
		}
	}
	s.logger.Info("transaction executed",
		log.ZShortStringer("sender", p.data.Sender),
		zap.String("digest", digest),
		zap.String("status", res.Effects.Status.Status),
	)
	return res, nil
}
