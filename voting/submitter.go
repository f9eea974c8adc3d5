// Package voting drives a vote attempt through build, sponsorship, signing and execution.
package voting

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
)

// Attempt is the state of the current vote attempt.
type Attempt struct {
	Option int
	Voter  types.Address
	Phase  Phase
	Digest types.Digest
	Err    error
}

type Opt func(*Submitter)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Submitter) {
		s.logger = logger
	}
}

// WithAlreadyVotedCheck rejects attempts of accounts the last refresh reported as voted.
// Unknown statuses never block.
func WithAlreadyVotedCheck() Opt {
	return func(s *Submitter) {
		s.rejectVoted = true
	}
}

// Submitter runs one attempt at a time. Failed attempts are not retried, the caller starts
// a new one.
type Submitter struct {
	logger *zap.Logger
	pollID types.ObjectID

	builder   ballotBuilder
	sponsor   sponsorshipClient
	submitter executionSubmitter
	state     pollState

	rejectVoted bool

	mu      sync.Mutex
	attempt Attempt
}

func NewSubmitter(
	pollID types.ObjectID,
	builder ballotBuilder,
	sponsor sponsorshipClient,
	submitter executionSubmitter,
	state pollState,
	opts ...Opt,
) *Submitter {
	s := &Submitter{
		logger:    zap.NewNop(),
		pollID:    pollID,
		builder:   builder,
		sponsor:   sponsor,
		submitter: submitter,
		state:     state,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attempt returns the current attempt.
func (s *Submitter) Attempt() Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempt
}

// Dismiss returns a finished attempt to Idle. It has no effect on an active attempt.
func (s *Submitter) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt.Phase.Terminal() {
		s.attempt = Attempt{}
	}
}

// Vote casts option for account. Every stage runs once, in order, and the first failure
// ends the attempt. On success the voter is marked as voted and poll state is refreshed.
func (s *Submitter) Vote(ctx context.Context, account Account, option int) (types.ExecutionResult, error) {
	if account == nil || account.Address().IsEmpty() {
		return types.ExecutionResult{}, ErrNoAccount
	}
	voter := account.Address()

	s.mu.Lock()
	if s.attempt.Phase.Active() {
		s.mu.Unlock()
		return types.ExecutionResult{}, ErrAttemptInProgress
	}
	s.attempt = Attempt{Option: option, Voter: voter, Phase: Building}
	s.mu.Unlock()

	logger := s.logger.With(
		log.ZContext(ctx),
		log.ZShortStringer("voter", voter),
		zap.Int("option", option),
	)
	logger.Debug("vote attempt started")

	result, err := s.run(ctx, account, voter, option)
	if err != nil {
		logger.Warn("vote attempt failed", zap.Error(err))
		attempts.WithLabelValues(Failed.String(), s.Attempt().Phase.String()).Inc()
		s.finish(Failed, err)
		return result, err
	}
	logger.Info("vote executed", log.ZShortStringer("digest", result.Digest))
	attempts.WithLabelValues(Succeeded.String(), Executing.String()).Inc()
	s.finish(Succeeded, nil)
	s.state.MarkVoted(voter)
	s.state.Trigger()
	return result, nil
}

func (s *Submitter) run(ctx context.Context, account Account, voter types.Address, option int) (types.ExecutionResult, error) {
	snapshot := s.state.Snapshot()
	if snapshot == nil {
		return types.ExecutionResult{}, s.fail(Building, ErrPollNotLoaded)
	}
	if !snapshot.ValidOption(option) {
		return types.ExecutionResult{}, s.fail(Building, fmt.Errorf("%w: %d of %d", ErrInvalidOption, option, len(snapshot.Options)))
	}
	if s.rejectVoted {
		status := s.state.VoterStatus()
		if status.Address == voter && status.HasVoted && !status.Unknown {
			return types.ExecutionResult{}, s.fail(Building, ErrAlreadyVoted)
		}
	}
	ballot, err := s.builder.Build(s.pollID, option)
	if err != nil {
		return types.ExecutionResult{}, s.fail(Building, err)
	}

	s.advance(Sponsoring, "")
	sponsored, err := s.sponsor.Sponsor(ctx, ballot, voter)
	if err != nil {
		return types.ExecutionResult{}, s.fail(Sponsoring, err)
	}

	s.advance(AwaitingSignature, sponsored.Digest)
	sig, err := account.SignTransaction(ctx, sponsored.Bytes)
	if err != nil {
		return types.ExecutionResult{}, s.fail(AwaitingSignature, err)
	}

	s.advance(Executing, sponsored.Digest)
	result, err := s.submitter.Execute(ctx, sponsored.Digest, sig)
	if err != nil {
		return result, s.fail(Executing, err)
	}
	if result.Status == types.ExecutionFailure {
		return result, s.fail(Executing, fmt.Errorf("%w: %s", ErrTransactionFailed, result.Error))
	}
	return result, nil
}

func (s *Submitter) advance(phase Phase, digest types.Digest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt.Phase = phase
	if digest != "" {
		s.attempt.Digest = digest
	}
}

func (s *Submitter) fail(phase Phase, err error) error {
	return &PhaseError{Phase: phase, Kind: kindOf(phase), Err: err}
}

func (s *Submitter) finish(phase Phase, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt.Phase = phase
	s.attempt.Err = err
}
