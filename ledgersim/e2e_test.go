package ledgersim_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/enoki"
	"github.com/votedapp/sponsorvote/ledger"
	"github.com/votedapp/sponsorvote/ledgersim"
	"github.com/votedapp/sponsorvote/log/logtest"
	"github.com/votedapp/sponsorvote/pollsync"
	"github.com/votedapp/sponsorvote/signing"
	"github.com/votedapp/sponsorvote/sponsor"
	"github.com/votedapp/sponsorvote/voting"
	"github.com/votedapp/sponsorvote/wallet"
)

type pipeline struct {
	ledger    *ledgersim.Ledger
	sponsor   *ledgersim.Sponsor
	poll      types.ObjectID
	syncer    *pollsync.Syncer
	submitter *voting.Submitter
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	logger := logtest.New(t)
	p := &pipeline{ledger: ledgersim.NewLedger(types.MustStringToAddress("0x9942"))}

	var err error
	p.poll, err = p.ledger.CreatePoll("Best color?", []string{"A", "B"})
	require.NoError(t, err)
	simCfg := ledgersim.DefaultSponsorConfig()
	p.sponsor, err = ledgersim.NewSponsor(p.ledger, simCfg, ledgersim.WithSponsorLogger(logger.Named("sim")))
	require.NoError(t, err)
	sim := httptest.NewServer(ledgersim.NewServer(p.ledger, p.sponsor).Handler())
	t.Cleanup(sim.Close)

	cfg := sponsor.DefaultConfig()
	cfg.Upstream.URL = sim.URL
	cfg.Upstream.APIKey = simCfg.APIKey
	cfg.Upstream.Network = simCfg.Network
	cfg.AllowedTarget = p.ledger.VoteTarget().String()
	upstream, err := enoki.NewClient(cfg.Upstream, enoki.WithLogger(logger.Named("enoki")))
	require.NoError(t, err)
	svc, err := sponsor.NewService(upstream, cfg, sponsor.WithServiceLogger(logger.Named("sponsor")))
	require.NoError(t, err)
	srv, err := sponsor.NewServer(svc, cfg, sponsor.WithServerLogger(logger.Named("server")))
	require.NoError(t, err)
	front := httptest.NewServer(srv.Handler())
	t.Cleanup(front.Close)
	client, err := sponsor.NewClient(front.URL, sponsor.WithClientLogger(logger.Named("client")))
	require.NoError(t, err)

	node, err := ledger.NewClient(ledger.Config{URL: sim.URL}, ledger.WithLogger(logger.Named("ledger")))
	require.NoError(t, err)
	p.syncer = pollsync.New(p.poll, ledger.NewReader(node), pollsync.WithLogger(logger.Named("sync")))
	p.submitter = voting.NewSubmitter(
		p.poll,
		ballot.NewBuilder(p.ledger.VoteTarget()),
		client,
		client,
		p.syncer,
		voting.WithLogger(logger.Named("voting")),
	)
	return p
}

func newAccount(t *testing.T) *wallet.KeyWallet {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	return wallet.NewKeyWallet(signer)
}

func TestVoteEndToEnd(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	account := newAccount(t)

	p.syncer.SetAddress(account.Address())
	require.NoError(t, p.syncer.Refresh(ctx))
	require.Equal(t, []uint64{0, 0}, p.syncer.Snapshot().VoteCounts)
	require.False(t, p.syncer.VoterStatus().HasVoted)

	result, err := p.submitter.Vote(ctx, account, 1)
	require.NoError(t, err)
	require.Equal(t, types.ExecutionSuccess, result.Status)
	require.Equal(t, voting.Succeeded, p.submitter.Attempt().Phase)
	require.True(t, p.syncer.VoterStatus().HasVoted)

	require.NoError(t, p.syncer.Refresh(ctx))
	require.Equal(t, []uint64{0, 1}, p.syncer.Snapshot().VoteCounts)
	status := p.syncer.VoterStatus()
	require.True(t, status.HasVoted)
	require.False(t, status.Unknown)

	// the second vote executes and aborts on chain
	_, err = p.submitter.Vote(ctx, account, 0)
	require.ErrorIs(t, err, voting.ErrExecution)
	require.ErrorIs(t, err, voting.ErrTransactionFailed)
	require.Contains(t, err.Error(), "EAlreadyVoted")
	require.NoError(t, p.syncer.Refresh(ctx))
	require.Equal(t, []uint64{0, 1}, p.syncer.Snapshot().VoteCounts)
}

func TestOutOfRangeOptionIsNotSponsored(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	require.NoError(t, p.syncer.Refresh(ctx))

	_, err := p.submitter.Vote(ctx, newAccount(t), 2)
	require.ErrorIs(t, err, voting.ErrBuild)
	require.ErrorIs(t, err, voting.ErrInvalidOption)
	require.Zero(t, p.sponsor.Pending())
}

// impostor claims the address of one key and signs with another.
type impostor struct {
	claimed *wallet.KeyWallet
	signer  *wallet.KeyWallet
}

func (i impostor) Address() types.Address {
	return i.claimed.Address()
}

func (i impostor) SignTransaction(ctx context.Context, tx []byte) (types.Signature, error) {
	return i.signer.SignTransaction(ctx, tx)
}

func TestMismatchedSignatureFailsExecution(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	require.NoError(t, p.syncer.Refresh(ctx))

	account := impostor{claimed: newAccount(t), signer: newAccount(t)}
	_, err := p.submitter.Vote(ctx, account, 0)
	require.ErrorIs(t, err, voting.ErrExecution)
	require.Equal(t, voting.Failed, p.submitter.Attempt().Phase)

	require.NoError(t, p.syncer.Refresh(ctx))
	require.Equal(t, []uint64{0, 0}, p.syncer.Snapshot().VoteCounts)
}
