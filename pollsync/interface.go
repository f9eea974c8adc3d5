package pollsync

import (
	"context"

	"github.com/votedapp/sponsorvote/common/types"
)

//go:generate mockgen -typed -package=pollsync -destination=./mocks.go -source=./interface.go

type pollReader interface {
	ReadPoll(ctx context.Context, pollID types.ObjectID) (*types.PollSnapshot, types.ObjectID, error)
	HasVoted(ctx context.Context, registry types.ObjectID, voter types.Address) (bool, error)
}
