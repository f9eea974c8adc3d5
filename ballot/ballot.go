// Package ballot builds the unsigned vote transaction for a poll.
package ballot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/codec"
	"github.com/votedapp/sponsorvote/common/types"
)

const (
	// DefaultModule is the module that owns the vote entry point.
	DefaultModule = "voting_dapp"
	// DefaultFunction is the vote entry point.
	DefaultFunction = "vote"
)

var (
	// ErrInvalidOption is returned for an option index that cannot be encoded.
	ErrInvalidOption = errors.New("invalid option index")
	// ErrNotAVote is returned when decoded transaction bytes are not a single vote call.
	ErrNotAVote = errors.New("transaction is not a vote")
)

type Opt func(*Builder)

func WithLogger(logger *zap.Logger) Opt {
	return func(b *Builder) {
		b.logger = logger
	}
}

// Builder encodes vote calls against a fixed entry point.
type Builder struct {
	logger *zap.Logger
	target types.MoveCallTarget
}

// NewBuilder creates a builder for the given vote entry point.
func NewBuilder(target types.MoveCallTarget, opts ...Opt) *Builder {
	b := &Builder{
		logger: zap.NewNop(),
		target: target,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Target returns the entry point the builder calls.
func (b *Builder) Target() types.MoveCallTarget {
	return b.target
}

// Build encodes a single vote(poll, option) call. The option range against the poll is
// the caller's concern, only values that cannot be encoded are rejected here.
func (b *Builder) Build(pollID types.ObjectID, option int) (types.UnsignedBallot, error) {
	if option < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	kind := Vote(b.target, pollID, uint64(option))
	buf, err := codec.Encode(&kind)
	if err != nil {
		return nil, fmt.Errorf("encode vote for poll %s: %w", pollID.ShortString(), err)
	}
	b.logger.Debug("built ballot",
		zap.Stringer("poll", pollID),
		zap.Int("option", option),
		zap.Int("size", len(buf)),
	)
	return buf, nil
}

// Vote returns the transaction kind of a vote call.
func Vote(target types.MoveCallTarget, pollID types.ObjectID, option uint64) types.TransactionKind {
	return types.TransactionKind{
		Calls: []types.MoveCall{{
			Target: target,
			Arguments: []types.CallArg{
				types.ObjectArgument(pollID),
				types.U64Argument(option),
			},
		}},
	}
}

// Decode parses encoded transaction kind bytes.
func Decode(buf []byte) (types.TransactionKind, error) {
	var kind types.TransactionKind
	if err := codec.Decode(buf, &kind); err != nil {
		return kind, err
	}
	return kind, nil
}

// ParseVote extracts poll and option from a transaction kind built by Vote.
func ParseVote(kind types.TransactionKind) (types.MoveCallTarget, types.ObjectID, uint64, error) {
	if len(kind.Calls) != 1 {
		return types.MoveCallTarget{}, types.ObjectID{}, 0, fmt.Errorf("%w: %d calls", ErrNotAVote, len(kind.Calls))
	}
	call := kind.Calls[0]
	if len(call.Arguments) != 2 || call.Arguments[0].Kind != types.ObjectArg {
		return types.MoveCallTarget{}, types.ObjectID{}, 0, fmt.Errorf("%w: bad arguments", ErrNotAVote)
	}
	option, ok := call.Arguments[1].U64()
	if !ok {
		return types.MoveCallTarget{}, types.ObjectID{}, 0, fmt.Errorf("%w: option is not u64", ErrNotAVote)
	}
	return call.Target, call.Arguments[0].Object, option, nil
}
