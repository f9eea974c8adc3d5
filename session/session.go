// Package session binds a connected account to poll state and the vote pipeline and
// renders the result for a front end.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/tally"
	"github.com/votedapp/sponsorvote/voting"
)

var (
	ErrNotConnected = errors.New("wallet not connected")
	ErrNoSelection  = errors.New("no option selected")
)

// banner texts shown instead of the error chain.
var banners = []struct {
	err  error
	text string
}{
	{ErrNotConnected, "Please connect your wallet first"},
	{ErrNoSelection, "Please select an option"},
	{voting.ErrPollNotLoaded, "Failed to fetch poll data"},
	{voting.ErrAttemptInProgress, "A vote is already being submitted"},
	{voting.ErrSponsorship, "Failed to create transaction"},
	{voting.ErrSigning, "Transaction was not signed"},
}

func bannerText(err error) string {
	for _, b := range banners {
		if errors.Is(err, b.err) {
			return b.text
		}
	}
	return err.Error()
}

// NoSelection is the selected option before the voter picked one.
const NoSelection = -1

// View is everything a front end renders.
type View struct {
	Connected   bool
	Address     types.Address
	Loading     bool
	Question    string
	Options     []tally.Option
	Total       uint64
	Winner      int
	HasVoted    bool
	VoteUnknown bool
	Selected    int
	InProgress  bool
	Phase       voting.Phase
	Digest      types.Digest
	Error       string
}

// CanVote reports whether the vote button is enabled.
func (v View) CanVote() bool {
	return v.Connected && !v.Loading && !v.HasVoted && !v.InProgress && v.Selected != NoSelection
}

type Opt func(*Session)

func WithLogger(logger *zap.Logger) Opt {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session holds the state of a single front end.
type Session struct {
	logger    *zap.Logger
	syncer    pollSyncer
	submitter voteSubmitter

	mu       sync.Mutex
	account  voting.Account
	selected int
	err      error
}

func New(syncer pollSyncer, submitter voteSubmitter, opts ...Opt) *Session {
	s := &Session{
		logger:    zap.NewNop(),
		syncer:    syncer,
		submitter: submitter,
		selected:  NoSelection,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect switches to account. Status of the previous account is dropped.
func (s *Session) Connect(account voting.Account) error {
	if account == nil || account.Address().IsEmpty() {
		return ErrNotConnected
	}
	s.mu.Lock()
	s.account = account
	s.selected = NoSelection
	s.err = nil
	s.mu.Unlock()
	addr := account.Address()
	s.logger.Info("account connected", log.ZShortStringer("address", addr))
	s.syncer.SetAddress(addr)
	return nil
}

// Disconnect forgets the account.
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.account = nil
	s.selected = NoSelection
	s.mu.Unlock()
	s.syncer.SetAddress(types.Address{})
}

// Select marks option as the voter's choice.
func (s *Session) Select(option int) error {
	snapshot := s.syncer.Snapshot()
	if snapshot == nil {
		return voting.ErrPollNotLoaded
	}
	if !snapshot.ValidOption(option) {
		return voting.ErrInvalidOption
	}
	s.mu.Lock()
	s.selected = option
	s.mu.Unlock()
	return nil
}

// Vote casts the selected option.
func (s *Session) Vote(ctx context.Context) (types.ExecutionResult, error) {
	s.mu.Lock()
	account, option := s.account, s.selected
	s.mu.Unlock()

	if account == nil {
		s.setErr(ErrNotConnected)
		return types.ExecutionResult{}, ErrNotConnected
	}
	if option == NoSelection {
		s.setErr(ErrNoSelection)
		return types.ExecutionResult{}, ErrNoSelection
	}
	s.setErr(nil)
	result, err := s.submitter.Vote(ctx, account, option)
	if err != nil {
		s.setErr(err)
		return result, err
	}
	s.mu.Lock()
	s.selected = NoSelection
	s.mu.Unlock()
	return result, nil
}

// Refresh asks for fresh poll state.
func (s *Session) Refresh() {
	s.syncer.Trigger()
}

// DismissError clears the error banner and returns a finished attempt to idle.
func (s *Session) DismissError() {
	s.setErr(nil)
	s.submitter.Dismiss()
}

func (s *Session) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// View renders the current state.
func (s *Session) View() View {
	s.mu.Lock()
	account, selected, err := s.account, s.selected, s.err
	s.mu.Unlock()

	snapshot := s.syncer.Snapshot()
	result := tally.Compute(snapshot)
	attempt := s.submitter.Attempt()
	v := View{
		Connected:  account != nil,
		Loading:    snapshot == nil,
		Question:   result.Question,
		Options:    result.Options,
		Total:      result.Total,
		Winner:     result.Winner,
		Selected:   selected,
		InProgress: attempt.Phase.Active(),
		Phase:      attempt.Phase,
		Digest:     attempt.Digest,
	}
	if account != nil {
		v.Address = account.Address()
		status := s.syncer.VoterStatus()
		if status.Address == v.Address {
			v.HasVoted = status.HasVoted
			v.VoteUnknown = status.Unknown
		}
	}
	if err != nil {
		v.Error = bannerText(err)
	}
	return v
}
