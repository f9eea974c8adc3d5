package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/votedapp/sponsorvote/common/types"
)

type edVerifierOption struct {
	prefix []byte
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption) error

// WithVerifierPrefix sets the prefix used by EdVerifier. This usually is the network name.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) error {
		opts.prefix = prefix
		return nil
	}
}

// EdVerifier checks ed25519 signatures produced by EdSigner.
type EdVerifier struct {
	prefix []byte
}

func NewEdVerifier(opts ...VerifierOptionFunc) (*EdVerifier, error) {
	cfg := &edVerifierOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &EdVerifier{prefix: cfg.prefix}, nil
}

// Verify verifies that a signature matches public key and message.
func (es *EdVerifier) Verify(d Domain, pub []byte, m []byte, sig [types.EdSignatureSize]byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message(es.prefix, d, m), sig[:])
}

// VerifyTransaction checks a user signature over transaction bytes and returns the signer address.
func (es *EdVerifier) VerifyTransaction(tx []byte, sig types.Signature) (types.Address, bool) {
	if sig.Scheme != types.Ed25519Scheme {
		return types.EmptyAddress, false
	}
	if !es.Verify(TRANSACTION, sig.PublicKey[:], tx, sig.Sig) {
		return types.EmptyAddress, false
	}
	return sig.Signer(), true
}
