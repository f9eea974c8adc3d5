package voting

import (
	"errors"
	"fmt"
)

// Phase of a vote attempt. Phases only move forward.
type Phase int

const (
	Idle Phase = iota
	Building
	Sponsoring
	AwaitingSignature
	Executing
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Building:
		return "building"
	case Sponsoring:
		return "sponsoring"
	case AwaitingSignature:
		return "awaiting_signature"
	case Executing:
		return "executing"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Active is true while an attempt is in flight.
func (p Phase) Active() bool {
	return p >= Building && p <= Executing
}

// Terminal is true for phases an attempt ends in.
func (p Phase) Terminal() bool {
	return p == Succeeded || p == Failed
}

// Error kinds of a failed attempt, one per pipeline stage.
var (
	ErrBuild       = errors.New("build failed")
	ErrSponsorship = errors.New("sponsorship failed")
	ErrSigning     = errors.New("signing failed")
	ErrExecution   = errors.New("execution failed")
	ErrRead        = errors.New("read failed")
)

var (
	ErrNoAccount         = errors.New("no account connected")
	ErrAttemptInProgress = errors.New("vote attempt in progress")
	ErrInvalidOption     = errors.New("option is not in the poll")
	ErrPollNotLoaded     = errors.New("poll not loaded yet")
	ErrAlreadyVoted      = errors.New("account already voted")
	ErrTransactionFailed = errors.New("transaction failed on chain")
)

// PhaseError tells which phase of an attempt failed. It matches both its kind and its cause.
type PhaseError struct {
	Phase Phase
	Kind  error
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%v while %s: %v", e.Kind, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func kindOf(p Phase) error {
	switch p {
	case Building:
		return ErrBuild
	case Sponsoring:
		return ErrSponsorship
	case AwaitingSignature:
		return ErrSigning
	case Executing:
		return ErrExecution
	default:
		return ErrRead
	}
}
