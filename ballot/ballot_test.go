package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/votedapp/sponsorvote/common/types"
)

var (
	testTarget = types.MoveCallTarget{
		Package:  types.MustStringToAddress("0x994298cc21abfa191b0c90b87c9bef756ff69740726999f49d8e98d76cc092db"),
		Module:   DefaultModule,
		Function: DefaultFunction,
	}
	testPoll = types.MustStringToAddress("0x35a323cf92fa13bb220ba03171da218861b1dc632badbd9cea8952df132d5471")
)

func TestBuild(t *testing.T) {
	b := NewBuilder(testTarget, WithLogger(zaptest.NewLogger(t)))

	buf, err := b.Build(testPoll, 1)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	kind, err := Decode(buf)
	require.NoError(t, err)
	target, poll, option, err := ParseVote(kind)
	require.NoError(t, err)
	require.Equal(t, testTarget, target)
	require.Equal(t, testPoll, poll)
	require.EqualValues(t, 1, option)
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(testTarget)
	first, err := b.Build(testPoll, 0)
	require.NoError(t, err)
	second, err := b.Build(testPoll, 0)
	require.NoError(t, err)
	require.Equal(t, first, second)

	other, err := b.Build(testPoll, 2)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestBuildRejectsNegativeOption(t *testing.T) {
	_, err := NewBuilder(testTarget).Build(testPoll, -1)
	require.ErrorIs(t, err, ErrInvalidOption)
}

func TestParseVote(t *testing.T) {
	_, _, _, err := ParseVote(types.TransactionKind{})
	require.ErrorIs(t, err, ErrNotAVote)

	kind := Vote(testTarget, testPoll, 3)
	kind.Calls[0].Arguments[1] = types.ObjectArgument(testPoll)
	_, _, _, err = ParseVote(kind)
	require.ErrorIs(t, err, ErrNotAVote)

	kind = Vote(testTarget, testPoll, 3)
	kind.Calls = append(kind.Calls, kind.Calls[0])
	_, _, _, err = ParseVote(kind)
	require.ErrorIs(t, err, ErrNotAVote)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}
