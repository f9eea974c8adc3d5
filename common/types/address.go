package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"

	"github.com/votedapp/sponsorvote/hash"
)

// AddressLength is the length of an account address and of an object id.
const AddressLength = 32

var (
	// ErrWrongAddressLength is returned when the hex form is longer than AddressLength bytes.
	ErrWrongAddressLength = errors.New("wrong address length")
	// ErrMissingPrefix is returned when the hex form does not start with 0x.
	ErrMissingPrefix = errors.New("address must start with 0x")
)

// Address is a ledger account address.
type Address [AddressLength]byte

// ObjectID identifies a ledger object. It shares the address format.
type ObjectID = Address

// EmptyAddress is the zero value, used to signal that no account is connected.
var EmptyAddress = Address{}

// StringToAddress parses a 0x-prefixed hex address. Short forms such as 0x2 are left padded.
func StringToAddress(src string) (Address, error) {
	var addr Address
	if !strings.HasPrefix(src, "0x") && !strings.HasPrefix(src, "0X") {
		return addr, fmt.Errorf("%w: %q", ErrMissingPrefix, src)
	}
	body := src[2:]
	if len(body) == 0 {
		return addr, fmt.Errorf("%w: empty", ErrWrongAddressLength)
	}
	if len(body) > 2*AddressLength {
		return addr, fmt.Errorf("%w: %d hex chars", ErrWrongAddressLength, len(body))
	}
	if len(body)%2 == 1 {
		body = "0" + body
	}
	raw, err := hex.DecodeString(body)
	if err != nil {
		return addr, fmt.Errorf("decode hex address %q: %w", src, err)
	}
	copy(addr[AddressLength-len(raw):], raw)
	return addr, nil
}

// MustStringToAddress is StringToAddress for constants and tests.
func MustStringToAddress(src string) Address {
	addr, err := StringToAddress(src)
	if err != nil {
		panic(err)
	}
	return addr
}

// PublicKeyToAddress derives the account address for a public key of the given signature scheme.
func PublicKeyToAddress(scheme SignatureScheme, pub []byte) Address {
	return hash.Sum([]byte{byte(scheme)}, pub)
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsEmpty is true for the zero address.
func (a Address) IsEmpty() bool {
	return a == EmptyAddress
}

// String returns the full 0x-prefixed hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns the first 5 bytes in hex, for logging purposes.
func (a Address) ShortString() string {
	return "0x" + hex.EncodeToString(a[:5])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := StringToAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (a Address) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("address", a.String())
	return nil
}

// EncodeScale implements scale codec interface.
func (a *Address) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, a[:])
}

// DecodeScale implements scale codec interface.
func (a *Address) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, a[:])
}
