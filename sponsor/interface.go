package sponsor

import (
	"context"

	"github.com/votedapp/sponsorvote/enoki"
)

//go:generate mockgen -typed -package=sponsor -destination=./mocks.go -source=./interface.go

type upstream interface {
	CreateSponsoredTransaction(ctx context.Context, req enoki.SponsorRequest) (*enoki.SponsoredTransaction, error)
	ExecuteSponsoredTransaction(ctx context.Context, digest, signature string) (*enoki.ExecutedTransaction, error)
}
