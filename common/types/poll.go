package types

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap/zapcore"
)

// ErrMalformedPoll is returned when options and counts disagree in length.
var ErrMalformedPoll = errors.New("malformed poll")

// PollSnapshot is the ledger view of a poll at the time of the last refresh.
// The index of an option is its ballot id.
type PollSnapshot struct {
	Question   string
	Options    []string
	VoteCounts []uint64
}

// Validate checks that every option has a vote count.
func (p *PollSnapshot) Validate() error {
	if len(p.Options) != len(p.VoteCounts) {
		return fmt.Errorf("%w: %d options, %d counts", ErrMalformedPoll, len(p.Options), len(p.VoteCounts))
	}
	return nil
}

// ValidOption reports whether option is an index into Options.
func (p *PollSnapshot) ValidOption(option int) bool {
	return option >= 0 && option < len(p.Options)
}

// Clone returns a deep copy.
func (p *PollSnapshot) Clone() *PollSnapshot {
	if p == nil {
		return nil
	}
	return &PollSnapshot{
		Question:   p.Question,
		Options:    slices.Clone(p.Options),
		VoteCounts: slices.Clone(p.VoteCounts),
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p *PollSnapshot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("question", p.Question)
	enc.AddInt("options", len(p.Options))
	var total uint64
	for _, c := range p.VoteCounts {
		total += c
	}
	enc.AddUint64("total", total)
	return nil
}

// VoterStatus is derived for the connected address on every refresh.
type VoterStatus struct {
	Address  Address
	HasVoted bool
	// Unknown is set when the registry lookup failed and HasVoted fell back to false.
	Unknown bool
}
