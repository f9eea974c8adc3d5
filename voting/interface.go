package voting

import (
	"context"

	"github.com/votedapp/sponsorvote/common/types"
)

//go:generate mockgen -typed -package=voting -destination=./mocks.go -source=./interface.go

type ballotBuilder interface {
	Build(pollID types.ObjectID, option int) (types.UnsignedBallot, error)
}

type sponsorshipClient interface {
	Sponsor(ctx context.Context, ballot types.UnsignedBallot, sender types.Address) (types.SponsoredBallot, error)
}

type executionSubmitter interface {
	Execute(ctx context.Context, digest types.Digest, sig types.Signature) (types.ExecutionResult, error)
}

// Account signs on behalf of the voter.
type Account interface {
	Address() types.Address
	SignTransaction(ctx context.Context, tx []byte) (types.Signature, error)
}

type pollState interface {
	Snapshot() *types.PollSnapshot
	VoterStatus() types.VoterStatus
	MarkVoted(voter types.Address)
	Trigger()
}
