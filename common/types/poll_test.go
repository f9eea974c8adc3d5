package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPollSnapshotValidate(t *testing.T) {
	ok := PollSnapshot{Question: "Pick", Options: []string{"A", "B"}, VoteCounts: []uint64{0, 0}}
	require.NoError(t, ok.Validate())

	bad := PollSnapshot{Question: "Pick", Options: []string{"A", "B"}, VoteCounts: []uint64{0}}
	require.ErrorIs(t, bad.Validate(), ErrMalformedPoll)
}

func TestPollSnapshotValidOption(t *testing.T) {
	p := PollSnapshot{Options: []string{"A", "B"}, VoteCounts: []uint64{0, 0}}
	require.True(t, p.ValidOption(0))
	require.True(t, p.ValidOption(1))
	require.False(t, p.ValidOption(2))
	require.False(t, p.ValidOption(-1))
}

func TestPollSnapshotCloneIsDeep(t *testing.T) {
	p := &PollSnapshot{Question: "Pick", Options: []string{"A"}, VoteCounts: []uint64{1}}
	c := p.Clone()
	c.VoteCounts[0] = 5
	c.Options[0] = "Z"
	require.Equal(t, uint64(1), p.VoteCounts[0])
	require.Equal(t, "A", p.Options[0])
	require.Nil(t, (*PollSnapshot)(nil).Clone())
}
