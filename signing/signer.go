package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/spf13/afero"

	"github.com/votedapp/sponsorvote/common/types"
)

type Domain byte

const TRANSACTION Domain = 0

// String returns the string representation of a domain.
func (d Domain) String() string {
	switch d {
	case TRANSACTION:
		return "TRANSACTION"
	default:
		return "UNKNOWN"
	}
}

type edSignerOption struct {
	priv   PrivateKey
	file   string
	prefix []byte
	rand   io.Reader
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrefix sets the prefix used by EdSigner. This usually is the network name.
func WithPrefix(prefix []byte) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.prefix = prefix
		return nil
	}
}

// ToFile writes the hex encoded private key to a file after creation.
// The file must not exist yet.
func ToFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// FromFile loads the private key from a hex encoded key file.
func FromFile(fsys afero.Fs, path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromFile: private key already set")
		}

		if opt.file != "" {
			return errors.New("invalid option FromFile: file already set")
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("failed to open key file at %s: %w", path, err)
		}
		data = bytes.TrimSpace(data)

		if n := hex.DecodedLen(len(data)); n != PrivateKeySize {
			return fmt.Errorf("invalid key size %d/%d for %s", n, PrivateKeySize, filepath.Base(path))
		}

		dst := make([]byte, PrivateKeySize)
		n, err := hex.Decode(dst, data)
		if err != nil || n != PrivateKeySize {
			return fmt.Errorf("decoding private key in %s: %w", filepath.Base(path), err)
		}

		priv := PrivateKey(dst)
		if err := checkKeyPair(priv); err != nil {
			return err
		}

		opt.priv = priv
		opt.file = path
		return nil
	}
}

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}

		if len(priv) != ed25519.PrivateKeySize {
			return errors.New("could not create EdSigner: invalid key length")
		}
		if err := checkKeyPair(priv); err != nil {
			return err
		}

		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand generates the key from a predictable randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.rand = rand
		return nil
	}
}

func checkKeyPair(priv PrivateKey) error {
	keyPair := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	if !bytes.Equal(keyPair[ed25519.SeedSize:], priv.Public().(ed25519.PublicKey)) {
		return errors.New("private and public do not match")
	}
	return nil
}

// EdSigner represents an ED25519 signer.
type EdSigner struct {
	priv PrivateKey
	file string

	prefix []byte
}

// NewEdSigner returns an ed signer. Without a key option a new key is generated.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(cfg.rand)
		if err != nil {
			return nil, fmt.Errorf("could not generate key pair: %w", err)
		}
		cfg.priv = priv

		if cfg.file != "" {
			if err := writeKeyFile(cfg.file, cfg.priv); err != nil {
				return nil, err
			}
		}
	}
	return &EdSigner{
		priv:   cfg.priv,
		prefix: cfg.prefix,
		file:   cfg.file,
	}, nil
}

func writeKeyFile(path string, priv PrivateKey) error {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	// continue
	case err != nil:
		return fmt.Errorf("stat key file %s: %w", filepath.Base(path), err)
	default: // err == nil
		return fmt.Errorf("save key file %s: %w", filepath.Base(path), fs.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	dst := make([]byte, hex.EncodedLen(len(priv)))
	hex.Encode(dst, priv)
	if err := atomic.WriteFile(path, bytes.NewReader(dst)); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restrict key file: %w", err)
	}
	return nil
}

// Sign signs the provided message.
func (es *EdSigner) Sign(d Domain, m []byte) [types.EdSignatureSize]byte {
	return *(*[types.EdSignatureSize]byte)(ed25519.Sign(es.priv, message(es.prefix, d, m)))
}

// SignTransaction signs transaction bytes and returns the serialized user signature.
func (es *EdSigner) SignTransaction(tx []byte) types.Signature {
	sig := types.Signature{
		Scheme: types.Ed25519Scheme,
		Sig:    es.Sign(TRANSACTION, tx),
	}
	copy(sig.PublicKey[:], es.PublicKey().Bytes())
	return sig
}

// Address returns the ledger address controlled by the key.
func (es *EdSigner) Address() types.Address {
	return types.PublicKeyToAddress(types.Ed25519Scheme, es.PublicKey().Bytes())
}

// PublicKey returns the public key of the signer.
func (es *EdSigner) PublicKey() *PublicKey {
	return NewPublicKey(es.priv.Public().(ed25519.PublicKey))
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

// Name returns the name of the signer. This is the filename of the key file.
func (es *EdSigner) Name() string {
	if es.file == "" {
		return ""
	}
	return filepath.Base(es.file)
}

func (es *EdSigner) Prefix() []byte {
	return es.prefix
}

// Matches implements the gomock.Matcher interface for testing.
func (es *EdSigner) Matches(x any) bool {
	if other, ok := x.(*EdSigner); ok {
		return bytes.Equal(es.priv, other.priv)
	}
	return false
}

func (es *EdSigner) String() string {
	return es.Address().ShortString()
}

func message(prefix []byte, d Domain, m []byte) []byte {
	msg := make([]byte, 0, len(prefix)+1+len(m))
	msg = append(msg, prefix...)
	msg = append(msg, byte(d))
	return append(msg, m...)
}
