// Package pollsync keeps a poll snapshot and the status of the connected voter fresh.
package pollsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/voting"
)

// DefaultInterval between two refreshes.
const DefaultInterval = 5 * time.Second

// Update is the state published after every successful refresh.
type Update struct {
	Snapshot *types.PollSnapshot
	Status   types.VoterStatus
}

type Opt func(*Syncer)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Syncer) {
		s.logger = logger
	}
}

func WithInterval(interval time.Duration) Opt {
	return func(s *Syncer) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithUpdateHandler is called from the sync goroutine after each successful refresh.
func WithUpdateHandler(handler func(Update)) Opt {
	return func(s *Syncer) {
		s.onUpdate = handler
	}
}

func withClock(clock clockwork.Clock) Opt {
	return func(s *Syncer) {
		s.clock = clock
	}
}

// Syncer polls the ledger on a fixed interval and on demand.
type Syncer struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	interval time.Duration
	pollID   types.ObjectID
	reader   pollReader
	onUpdate func(Update)
	trigger  chan struct{}

	mu       sync.Mutex
	snapshot *types.PollSnapshot
	address  types.Address
	status   types.VoterStatus
	// version changes whenever status is replaced outside of a refresh. A refresh that
	// started before such a change does not overwrite status.
	version uint64

	runMu  sync.Mutex
	eg     errgroup.Group
	cancel context.CancelFunc
}

func New(pollID types.ObjectID, reader pollReader, opts ...Opt) *Syncer {
	s := &Syncer{
		logger:   zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
		pollID:   pollID,
		reader:   reader,
		trigger:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the sync loop. The first refresh happens immediately.
func (s *Syncer) Start(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.eg.Go(func() error {
		s.run(ctx)
		return nil
	})
}

// Stop cancels the sync loop and waits for it to exit. No refresh starts after Stop returns.
func (s *Syncer) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.eg.Wait()
	s.cancel = nil
}

func (s *Syncer) run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Debug("refresh failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
		case <-s.trigger:
			ticker.Reset(s.interval)
		}
	}
}

// Trigger requests a refresh without waiting for the next tick.
func (s *Syncer) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// SetAddress switches the connected account. The previous account status is dropped at once.
func (s *Syncer) SetAddress(addr types.Address) {
	s.mu.Lock()
	changed := s.address != addr
	s.address = addr
	if changed {
		s.status = types.VoterStatus{Address: addr}
		s.version++
	}
	s.mu.Unlock()
	if changed {
		s.logger.Debug("connected account changed", log.ZShortStringer("address", addr))
		s.Trigger()
	}
}

// MarkVoted records a vote of voter before the ledger reflects it.
func (s *Syncer) MarkVoted(voter types.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.address != voter {
		return
	}
	s.status = types.VoterStatus{Address: voter, HasVoted: true}
	s.version++
}

// Snapshot returns a copy of the last snapshot, nil before the first successful refresh.
func (s *Syncer) Snapshot() *types.PollSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// VoterStatus returns the status of the connected account.
func (s *Syncer) VoterStatus() types.VoterStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Refresh reads the poll and, when an account is connected, its vote status. A failed
// poll read keeps the previous snapshot. A failed status lookup reports not voted with
// Unknown set.
func (s *Syncer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	addr, version := s.address, s.version
	s.mu.Unlock()

	snapshot, registry, err := s.reader.ReadPoll(ctx, s.pollID)
	if err != nil {
		refreshes.WithLabelValues(outcomeFailed).Inc()
		if ctx.Err() == nil {
			s.logger.Warn("failed to read poll", log.ZShortStringer("poll", s.pollID), zap.Error(err))
		}
		return fmt.Errorf("%w: %w", voting.ErrRead, err)
	}

	status := types.VoterStatus{Address: addr}
	if !addr.IsEmpty() {
		voted, err := s.reader.HasVoted(ctx, registry, addr)
		if err != nil {
			statusUnknown.Inc()
			s.logger.Warn("failed to look up voter, assuming not voted",
				log.ZShortStringer("voter", addr),
				zap.Error(err),
			)
			status.Unknown = true
		} else {
			status.HasVoted = voted
		}
	}

	s.mu.Lock()
	s.snapshot = snapshot
	if version == s.version {
		s.status = status
	}
	update := Update{Snapshot: snapshot.Clone(), Status: s.status}
	s.mu.Unlock()

	refreshes.WithLabelValues(outcomeOK).Inc()
	if s.onUpdate != nil {
		s.onUpdate(update)
	}
	return nil
}
