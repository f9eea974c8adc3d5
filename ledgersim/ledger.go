// Package ledgersim is an in-memory ledger holding voting polls, fronted by the same
// sponsorship and read APIs as the hosted services. It backs end-to-end tests and the
// devnet command.
package ledgersim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/hash"
	"github.com/votedapp/sponsorvote/log"
)

// Abort codes of the voting module.
var (
	ErrAlreadyVoted  = errors.New("EAlreadyVoted")
	ErrInvalidOption = errors.New("EInvalidOption")
)

var (
	ErrUnknownObject   = errors.New("object does not exist")
	ErrUnknownFunction = errors.New("function does not exist")
	ErrEmptyPoll       = errors.New("poll needs at least one option")
)

// AbortError is a transaction that executed and aborted. Its effects are reported as failed.
type AbortError struct {
	Target types.MoveCallTarget
	Code   error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("MoveAbort in %s::%s: %v", e.Target.Module, e.Target.Function, e.Code)
}

func (e *AbortError) Unwrap() error {
	return e.Code
}

type poll struct {
	id       types.ObjectID
	registry types.ObjectID
	version  uint64
	question string
	options  []string
	counts   []uint64
	voters   map[types.Address]struct{}
}

type LedgerOpt func(*Ledger)

func WithLedgerLogger(logger *zap.Logger) LedgerOpt {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// Ledger stores polls published by a single voting package.
type Ledger struct {
	logger *zap.Logger
	pkg    types.ObjectID

	mu         sync.Mutex
	seq        uint64
	polls      map[types.ObjectID]*poll
	registries map[types.ObjectID]*poll
}

func NewLedger(pkg types.ObjectID, opts ...LedgerOpt) *Ledger {
	l := &Ledger{
		logger:     zap.NewNop(),
		pkg:        pkg,
		polls:      make(map[types.ObjectID]*poll),
		registries: make(map[types.ObjectID]*poll),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Package returns the id of the voting package.
func (l *Ledger) Package() types.ObjectID {
	return l.pkg
}

// VoteTarget is the entry point votes must call.
func (l *Ledger) VoteTarget() types.MoveCallTarget {
	return types.MoveCallTarget{Package: l.pkg, Module: ballot.DefaultModule, Function: ballot.DefaultFunction}
}

// PollType is the move type of poll objects.
func (l *Ledger) PollType() string {
	return l.pkg.String() + "::" + ballot.DefaultModule + "::Poll"
}

func (l *Ledger) newID() types.ObjectID {
	l.seq++
	return objectID(l.pkg, l.seq)
}

func objectID(pkg types.ObjectID, seq uint64) types.ObjectID {
	return hash.Sum(pkg[:], binary.BigEndian.AppendUint64(nil, seq))
}

// FirstPollID is the id of the first poll created on a fresh ledger of pkg.
func FirstPollID(pkg types.ObjectID) types.ObjectID {
	return objectID(pkg, 1)
}

// CreatePoll publishes a poll with zero votes per option.
func (l *Ledger) CreatePoll(question string, options []string) (types.ObjectID, error) {
	if len(options) == 0 {
		return types.ObjectID{}, ErrEmptyPoll
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p := &poll{
		id:       l.newID(),
		registry: l.newID(),
		version:  1,
		question: question,
		options:  slices.Clone(options),
		counts:   make([]uint64, len(options)),
		voters:   make(map[types.Address]struct{}),
	}
	l.polls[p.id] = p
	l.registries[p.registry] = p
	l.logger.Info("poll created",
		zap.Stringer("poll", p.id),
		zap.String("question", question),
		zap.Int("options", len(options)),
	)
	return p.id, nil
}

// Poll returns the state of a poll and the id of its voter registry.
func (l *Ledger) Poll(id types.ObjectID) (*types.PollSnapshot, types.ObjectID, uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.polls[id]
	if !ok {
		return nil, types.ObjectID{}, 0, fmt.Errorf("%w: %s", ErrUnknownObject, id)
	}
	return &types.PollSnapshot{
		Question:   p.question,
		Options:    slices.Clone(p.options),
		VoteCounts: slices.Clone(p.counts),
	}, p.registry, p.version, nil
}

// Voters returns the number of entries in a voter registry.
func (l *Ledger) Voters(registry types.ObjectID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.registries[registry]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownObject, registry)
	}
	return len(p.voters), nil
}

// HasVoted looks voter up in a registry.
func (l *Ledger) HasVoted(registry types.ObjectID, voter types.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.registries[registry]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownObject, registry)
	}
	_, voted := p.voters[voter]
	return voted, nil
}

// Apply executes a vote transaction of sender. It returns an *AbortError when the vote is
// rejected by the voting module, any other error means the transaction did not execute.
func (l *Ledger) Apply(sender types.Address, kind types.TransactionKind) error {
	target, pollID, option, err := ballot.ParseVote(kind)
	if err != nil {
		return err
	}
	if target != l.VoteTarget() {
		return fmt.Errorf("%w: %s", ErrUnknownFunction, target)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.polls[pollID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownObject, pollID)
	}
	if _, voted := p.voters[sender]; voted {
		return &AbortError{Target: target, Code: ErrAlreadyVoted}
	}
	if option >= uint64(len(p.options)) {
		return &AbortError{Target: target, Code: ErrInvalidOption}
	}
	p.voters[sender] = struct{}{}
	p.counts[option]++
	p.version++
	l.logger.Debug("vote applied",
		log.ZShortStringer("poll", pollID),
		log.ZShortStringer("voter", sender),
		zap.Uint64("option", option),
	)
	return nil
}

func fieldID(parent types.ObjectID, key types.Address) types.ObjectID {
	return hash.Sum(parent[:], key[:])
}
