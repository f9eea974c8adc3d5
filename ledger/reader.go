package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
)

var (
	ErrPollNotFound = errors.New("poll not found")
	ErrNotAPoll     = errors.New("object is not a poll")
)

type ReaderOpt func(*Reader)

func WithReaderLogger(logger *zap.Logger) ReaderOpt {
	return func(r *Reader) {
		r.logger = logger
	}
}

// Reader reads polls and voter registries. It holds no state between calls.
type Reader struct {
	client *Client
	logger *zap.Logger
}

func NewReader(client *Client, opts ...ReaderOpt) *Reader {
	r := &Reader{
		client: client,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadPoll returns the current snapshot of a poll and the id of its voter registry.
func (r *Reader) ReadPoll(ctx context.Context, pollID types.ObjectID) (*types.PollSnapshot, types.ObjectID, error) {
	var res ObjectResponse
	params := []any{pollID.String(), ObjectOptions{ShowContent: true}}
	if err := r.client.Call(ctx, MethodGetObject, params, &res); err != nil {
		return nil, types.ObjectID{}, err
	}
	if res.Error != nil {
		if res.Error.Code == CodeNotExists {
			return nil, types.ObjectID{}, fmt.Errorf("%w: %s", ErrPollNotFound, pollID)
		}
		return nil, types.ObjectID{}, fmt.Errorf("get poll %s: %s", pollID, res.Error.Code)
	}
	if res.Data == nil || res.Data.Content == nil || res.Data.Content.DataType != DataTypeMoveObject {
		return nil, types.ObjectID{}, fmt.Errorf("%w: %s has no move content", ErrNotAPoll, pollID)
	}

	var fields PollFields
	if err := json.Unmarshal(res.Data.Content.Fields, &fields); err != nil {
		return nil, types.ObjectID{}, fmt.Errorf("%w: %w", ErrNotAPoll, err)
	}
	registry, err := types.StringToAddress(fields.Voters.Fields.ID.ID)
	if err != nil {
		return nil, types.ObjectID{}, fmt.Errorf("%w: voters table: %w", ErrNotAPoll, err)
	}

	snapshot := &types.PollSnapshot{
		Question:   fields.Question,
		Options:    fields.Options,
		VoteCounts: make([]uint64, len(fields.VoteCounts)),
	}
	for i, count := range fields.VoteCounts {
		snapshot.VoteCounts[i] = uint64(count)
	}
	if err := snapshot.Validate(); err != nil {
		return nil, types.ObjectID{}, err
	}
	r.logger.Debug("read poll",
		log.ZShortStringer("poll", pollID),
		zap.Object("snapshot", snapshot),
	)
	return snapshot, registry, nil
}

// HasVoted reports whether voter has an entry in the registry. A missing entry means not voted.
func (r *Reader) HasVoted(ctx context.Context, registry types.ObjectID, voter types.Address) (bool, error) {
	var res ObjectResponse
	params := []any{
		registry.String(),
		DynamicFieldName{Type: DynamicFieldTypeAddress, Value: voter.String()},
	}
	if err := r.client.Call(ctx, MethodGetDynamicFieldObject, params, &res); err != nil {
		return false, err
	}
	switch {
	case res.Data != nil:
		return true, nil
	case res.Error == nil, res.Error.Code == CodeDynamicFieldNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("voter lookup %s: %s", voter.ShortString(), res.Error.Code)
	}
}
