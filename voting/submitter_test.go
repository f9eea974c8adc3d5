package voting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/votedapp/sponsorvote/common/types"
)

var (
	testPoll  = types.MustStringToAddress("0x35a3")
	testVoter = types.MustStringToAddress("0xa1")
	testBytes = []byte("sponsored tx")
)

type testSubmitter struct {
	*Submitter
	builder   *MockballotBuilder
	sponsor   *MocksponsorshipClient
	submitter *MockexecutionSubmitter
	state     *MockpollState
	account   *MockAccount
}

func newTestSubmitter(t *testing.T, opts ...Opt) *testSubmitter {
	t.Helper()
	ctrl := gomock.NewController(t)
	ts := &testSubmitter{
		builder:   NewMockballotBuilder(ctrl),
		sponsor:   NewMocksponsorshipClient(ctrl),
		submitter: NewMockexecutionSubmitter(ctrl),
		state:     NewMockpollState(ctrl),
		account:   NewMockAccount(ctrl),
	}
	ts.account.EXPECT().Address().Return(testVoter).AnyTimes()
	opts = append(opts, WithLogger(zaptest.NewLogger(t)))
	ts.Submitter = NewSubmitter(testPoll, ts.builder, ts.sponsor, ts.submitter, ts.state, opts...)
	return ts
}

func twoOptions() *types.PollSnapshot {
	return &types.PollSnapshot{
		Question:   "Best color?",
		Options:    []string{"A", "B"},
		VoteCounts: []uint64{0, 0},
	}
}

func testSig() types.Signature {
	return types.Signature{Scheme: types.Ed25519Scheme, Sig: [64]byte{1}, PublicKey: [32]byte{2}}
}

func TestVoteSuccess(t *testing.T) {
	ts := newTestSubmitter(t)
	sponsored := types.SponsoredBallot{Bytes: testBytes, Digest: "d1"}
	sig := testSig()

	gomock.InOrder(
		ts.state.EXPECT().Snapshot().Return(twoOptions()),
		ts.builder.EXPECT().Build(testPoll, 1).Return(types.UnsignedBallot{1}, nil),
		ts.sponsor.EXPECT().Sponsor(gomock.Any(), types.UnsignedBallot{1}, testVoter).
			DoAndReturn(func(context.Context, types.UnsignedBallot, types.Address) (types.SponsoredBallot, error) {
				require.Equal(t, Sponsoring, ts.Attempt().Phase)
				return sponsored, nil
			}),
		ts.account.EXPECT().SignTransaction(gomock.Any(), testBytes).
			DoAndReturn(func(context.Context, []byte) (types.Signature, error) {
				require.Equal(t, AwaitingSignature, ts.Attempt().Phase)
				return sig, nil
			}),
		ts.submitter.EXPECT().Execute(gomock.Any(), types.Digest("d1"), sig).
			DoAndReturn(func(context.Context, types.Digest, types.Signature) (types.ExecutionResult, error) {
				require.Equal(t, Executing, ts.Attempt().Phase)
				return types.ExecutionResult{Digest: "d1", Status: types.ExecutionSuccess}, nil
			}),
		ts.state.EXPECT().MarkVoted(testVoter),
		ts.state.EXPECT().Trigger(),
	)

	result, err := ts.Vote(context.Background(), ts.account, 1)
	require.NoError(t, err)
	require.Equal(t, types.Digest("d1"), result.Digest)

	attempt := ts.Attempt()
	require.Equal(t, Succeeded, attempt.Phase)
	require.Equal(t, 1, attempt.Option)
	require.Equal(t, testVoter, attempt.Voter)
	require.Equal(t, types.Digest("d1"), attempt.Digest)
	require.NoError(t, attempt.Err)

	ts.Dismiss()
	require.Equal(t, Attempt{}, ts.Attempt())
}

func TestVoteRejectsOptionOutOfRange(t *testing.T) {
	for _, option := range []int{-1, 2, 5} {
		ts := newTestSubmitter(t)
		ts.state.EXPECT().Snapshot().Return(twoOptions())

		_, err := ts.Vote(context.Background(), ts.account, option)
		require.ErrorIs(t, err, ErrBuild)
		require.ErrorIs(t, err, ErrInvalidOption)
		var phaseErr *PhaseError
		require.ErrorAs(t, err, &phaseErr)
		require.Equal(t, Building, phaseErr.Phase)
		require.Equal(t, Failed, ts.Attempt().Phase)
	}
}

func TestVoteBeforePollLoaded(t *testing.T) {
	ts := newTestSubmitter(t)
	ts.state.EXPECT().Snapshot().Return(nil)
	_, err := ts.Vote(context.Background(), ts.account, 0)
	require.ErrorIs(t, err, ErrBuild)
	require.ErrorIs(t, err, ErrPollNotLoaded)
}

func TestVoteSponsorFailureSkipsSigning(t *testing.T) {
	ts := newTestSubmitter(t)
	cause := errors.New("sponsor down")
	ts.state.EXPECT().Snapshot().Return(twoOptions())
	ts.builder.EXPECT().Build(testPoll, 0).Return(types.UnsignedBallot{1}, nil)
	ts.sponsor.EXPECT().Sponsor(gomock.Any(), gomock.Any(), testVoter).Return(types.SponsoredBallot{}, cause)

	_, err := ts.Vote(context.Background(), ts.account, 0)
	require.ErrorIs(t, err, ErrSponsorship)
	require.ErrorIs(t, err, cause)
	attempt := ts.Attempt()
	require.Equal(t, Failed, attempt.Phase)
	require.ErrorIs(t, attempt.Err, ErrSponsorship)
}

func TestVoteSigningRejected(t *testing.T) {
	ts := newTestSubmitter(t)
	rejected := errors.New("user rejected")
	ts.state.EXPECT().Snapshot().Return(twoOptions())
	ts.builder.EXPECT().Build(testPoll, 0).Return(types.UnsignedBallot{1}, nil)
	ts.sponsor.EXPECT().Sponsor(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(types.SponsoredBallot{Bytes: testBytes, Digest: "d1"}, nil)
	ts.account.EXPECT().SignTransaction(gomock.Any(), testBytes).Return(types.Signature{}, rejected)

	_, err := ts.Vote(context.Background(), ts.account, 0)
	require.ErrorIs(t, err, ErrSigning)
	require.ErrorIs(t, err, rejected)
	require.Equal(t, types.Digest("d1"), ts.Attempt().Digest)
}

func TestVoteExecutionFailures(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		result types.ExecutionResult
		err    error
		cause  error
	}{
		{
			desc:  "mismatched digest and signature",
			err:   errors.New("invalid signature"),
			cause: nil,
		},
		{
			desc:   "aborted on chain",
			result: types.ExecutionResult{Digest: "d1", Status: types.ExecutionFailure, Error: "EAlreadyVoted"},
			cause:  ErrTransactionFailed,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			ts := newTestSubmitter(t)
			ts.state.EXPECT().Snapshot().Return(twoOptions())
			ts.builder.EXPECT().Build(testPoll, 0).Return(types.UnsignedBallot{1}, nil)
			ts.sponsor.EXPECT().Sponsor(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(types.SponsoredBallot{Bytes: testBytes, Digest: "d1"}, nil)
			ts.account.EXPECT().SignTransaction(gomock.Any(), gomock.Any()).Return(testSig(), nil)
			ts.submitter.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.result, tc.err)

			_, err := ts.Vote(context.Background(), ts.account, 0)
			require.ErrorIs(t, err, ErrExecution)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
			require.Equal(t, Failed, ts.Attempt().Phase)
		})
	}
}

func TestVoteRequiresAccount(t *testing.T) {
	ts := newTestSubmitter(t)
	_, err := ts.Vote(context.Background(), nil, 0)
	require.ErrorIs(t, err, ErrNoAccount)
	require.Equal(t, Idle, ts.Attempt().Phase)
}

func TestOneAttemptAtATime(t *testing.T) {
	ts := newTestSubmitter(t)
	signing := make(chan struct{})
	release := make(chan struct{})
	ts.state.EXPECT().Snapshot().Return(twoOptions())
	ts.builder.EXPECT().Build(testPoll, 0).Return(types.UnsignedBallot{1}, nil)
	ts.sponsor.EXPECT().Sponsor(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(types.SponsoredBallot{Bytes: testBytes, Digest: "d1"}, nil)
	ts.account.EXPECT().SignTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) (types.Signature, error) {
			close(signing)
			<-release
			return types.Signature{}, errors.New("rejected")
		})

	done := make(chan error, 1)
	go func() {
		_, err := ts.Vote(context.Background(), ts.account, 0)
		done <- err
	}()
	<-signing
	_, err := ts.Vote(context.Background(), ts.account, 1)
	require.ErrorIs(t, err, ErrAttemptInProgress)

	ts.Dismiss()
	require.Equal(t, AwaitingSignature, ts.Attempt().Phase)

	close(release)
	require.ErrorIs(t, <-done, ErrSigning)
	require.Equal(t, Failed, ts.Attempt().Phase)

	// a new vote after a failure acknowledges it
	ts.state.EXPECT().Snapshot().Return(twoOptions())
	_, err = ts.Vote(context.Background(), ts.account, 7)
	require.ErrorIs(t, err, ErrInvalidOption)
	require.Equal(t, 7, ts.Attempt().Option)
}

func TestAlreadyVotedCheck(t *testing.T) {
	t.Run("known voted", func(t *testing.T) {
		ts := newTestSubmitter(t, WithAlreadyVotedCheck())
		ts.state.EXPECT().Snapshot().Return(twoOptions())
		ts.state.EXPECT().VoterStatus().Return(types.VoterStatus{Address: testVoter, HasVoted: true})
		_, err := ts.Vote(context.Background(), ts.account, 0)
		require.ErrorIs(t, err, ErrAlreadyVoted)
	})
	t.Run("unknown does not block", func(t *testing.T) {
		ts := newTestSubmitter(t, WithAlreadyVotedCheck())
		ts.state.EXPECT().Snapshot().Return(twoOptions())
		ts.state.EXPECT().VoterStatus().Return(types.VoterStatus{Address: testVoter, Unknown: true})
		ts.builder.EXPECT().Build(testPoll, 0).Return(nil, errors.New("encode"))
		_, err := ts.Vote(context.Background(), ts.account, 0)
		require.ErrorIs(t, err, ErrBuild)
		require.NotErrorIs(t, err, ErrAlreadyVoted)
	})
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "awaiting_signature", AwaitingSignature.String())
	require.True(t, Executing.Active())
	require.False(t, Failed.Active())
	require.True(t, Failed.Terminal())
}
