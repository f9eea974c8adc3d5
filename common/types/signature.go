package types

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// SignatureScheme is the flag byte that prefixes a serialized signature.
type SignatureScheme byte

const (
	// Ed25519Scheme is the only scheme produced by this module's wallets.
	Ed25519Scheme SignatureScheme = 0x00

	// EdSignatureSize is the size of a raw ed25519 signature.
	EdSignatureSize = 64
	// EdPublicKeySize is the size of an ed25519 public key.
	EdPublicKeySize = 32
	// SignatureSize is the serialized size: scheme flag, signature and public key.
	SignatureSize = 1 + EdSignatureSize + EdPublicKeySize
)

// ErrInvalidSignature is returned when a serialized signature cannot be parsed.
var ErrInvalidSignature = errors.New("invalid signature encoding")

// Signature is a user signature over transaction bytes, carrying the signer's public key.
type Signature struct {
	Scheme    SignatureScheme
	Sig       [EdSignatureSize]byte
	PublicKey [EdPublicKeySize]byte
}

// Bytes returns the serialized form: flag || sig || pubkey.
func (s Signature) Bytes() []byte {
	buf := make([]byte, 0, SignatureSize)
	buf = append(buf, byte(s.Scheme))
	buf = append(buf, s.Sig[:]...)
	return append(buf, s.PublicKey[:]...)
}

// String returns the base64 form used on the wire.
func (s Signature) String() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// Signer returns the address of the account that produced the signature.
func (s Signature) Signer() Address {
	return PublicKeyToAddress(s.Scheme, s.PublicKey[:])
}

// SignatureFromBytes parses the serialized form.
func SignatureFromBytes(raw []byte) (Signature, error) {
	var sig Signature
	if len(raw) != SignatureSize {
		return sig, fmt.Errorf("%w: size %d", ErrInvalidSignature, len(raw))
	}
	if SignatureScheme(raw[0]) != Ed25519Scheme {
		return sig, fmt.Errorf("%w: unknown scheme %d", ErrInvalidSignature, raw[0])
	}
	sig.Scheme = SignatureScheme(raw[0])
	copy(sig.Sig[:], raw[1:1+EdSignatureSize])
	copy(sig.PublicKey[:], raw[1+EdSignatureSize:])
	return sig, nil
}

// ParseSignature parses the base64 wire form.
func ParseSignature(s string) (Signature, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return SignatureFromBytes(raw)
}

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
