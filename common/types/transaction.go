package types

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/votedapp/sponsorvote/hash"
)

//go:generate scalegen -types MoveCallTarget,CallArg,MoveCall,TransactionKind,TransactionData

// ErrMalformedTarget is returned when a move call target is not pkg::module::function.
var ErrMalformedTarget = errors.New("malformed move call target")

// MoveCallTarget names a program entry point.
type MoveCallTarget struct {
	Package  ObjectID
	Module   string `scale:"max=128"`
	Function string `scale:"max=128"`
}

// ParseMoveCallTarget parses "0xpkg::module::function".
func ParseMoveCallTarget(s string) (MoveCallTarget, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return MoveCallTarget{}, fmt.Errorf("%w: %q", ErrMalformedTarget, s)
	}
	pkg, err := StringToAddress(parts[0])
	if err != nil {
		return MoveCallTarget{}, fmt.Errorf("%w: package: %w", ErrMalformedTarget, err)
	}
	return MoveCallTarget{Package: pkg, Module: parts[1], Function: parts[2]}, nil
}

// String returns "0xpkg::module::function".
func (t MoveCallTarget) String() string {
	return t.Package.String() + "::" + t.Module + "::" + t.Function
}

// ArgKind tells how a call argument is resolved by the ledger.
type ArgKind uint8

const (
	// PureArg is a plain serialized value.
	PureArg ArgKind = iota
	// ObjectArg references a shared ledger object by id.
	ObjectArg
)

// CallArg is a single move call argument.
type CallArg struct {
	Kind   ArgKind
	Object ObjectID
	Pure   []byte `scale:"max=256"`
}

// ObjectArgument references an object.
func ObjectArgument(id ObjectID) CallArg {
	return CallArg{Kind: ObjectArg, Object: id}
}

// U64Argument is a pure little-endian u64 argument.
func U64Argument(v uint64) CallArg {
	return CallArg{Kind: PureArg, Pure: binary.LittleEndian.AppendUint64(nil, v)}
}

// U64 decodes a pure u64 argument.
func (a CallArg) U64() (uint64, bool) {
	if a.Kind != PureArg || len(a.Pure) != 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(a.Pure), true
}

// MoveCall is a call of a program entry point.
type MoveCall struct {
	Target    MoveCallTarget
	Arguments []CallArg `scale:"max=16"`
}

// TransactionKind is the gasless part of a transaction: what the sender wants executed.
type TransactionKind struct {
	Calls []MoveCall `scale:"max=16"`
}

// TransactionData is a complete transaction as assembled by a sponsor.
type TransactionData struct {
	Kind       TransactionKind
	Sender     Address
	GasOwner   Address
	GasBudget  uint64
	Expiration uint64
}

// UnsignedBallot is the encoded transaction kind of a single vote attempt.
type UnsignedBallot []byte

// SponsoredBallot is a sponsor co-signed transaction awaiting the voter's signature.
type SponsoredBallot struct {
	Bytes  []byte
	Digest Digest
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (b SponsoredBallot) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("digest", b.Digest.String())
	enc.AddInt("size", len(b.Bytes))
	return nil
}

// ExecutionStatus is the outcome reported by the ledger.
type ExecutionStatus string

const (
	// ExecutionSuccess is reported for applied transactions.
	ExecutionSuccess ExecutionStatus = "success"
	// ExecutionFailure is reported when the transaction aborted on chain.
	ExecutionFailure ExecutionStatus = "failure"
)

// ExecutionResult is returned after a sponsored transaction was submitted.
type ExecutionResult struct {
	Digest Digest
	Status ExecutionStatus
	Error  string
}

// Digest identifies a single transaction instance.
type Digest string

// DigestSize is the size of a digest computed by ComputeDigest.
const DigestSize = hash.Size

var digestDomain = []byte("TransactionData::")

// ComputeDigest returns the digest of encoded TransactionData.
func ComputeDigest(txBytes []byte) Digest {
	sum := hash.Sum(digestDomain, txBytes)
	return Digest(hex.EncodeToString(sum[:]))
}

// String returns the digest as issued.
func (d Digest) String() string {
	return string(d)
}

// ShortString returns the first 10 characters of the digest, for logging purposes.
func (d Digest) ShortString() string {
	if len(d) <= 10 {
		return string(d)
	}
	return string(d[:10])
}

// IsEmpty is true when no digest is set.
func (d Digest) IsEmpty() bool {
	return d == ""
}
