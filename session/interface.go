package session

import (
	"context"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/voting"
)

//go:generate mockgen -typed -package=session -destination=./mocks.go -source=./interface.go

type pollSyncer interface {
	Trigger()
	SetAddress(addr types.Address)
	Snapshot() *types.PollSnapshot
	VoterStatus() types.VoterStatus
}

type voteSubmitter interface {
	Vote(ctx context.Context, account voting.Account, option int) (types.ExecutionResult, error)
	Attempt() voting.Attempt
	Dismiss()
}
