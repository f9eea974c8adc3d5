package signing

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/votedapp/sponsorvote/common/types"
)

func TestNewEdSignerFromBuffer(t *testing.T) {
	b := []byte{1, 2, 3}
	_, err := NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "invalid key length")

	b = make([]byte, 64)
	_, err = NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Sign(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	m := make([]byte, 4)
	rand.Read(m)
	sig := ed.Sign(TRANSACTION, m)
	signed := make([]byte, len(m)+1)
	signed[0] = byte(TRANSACTION)
	copy(signed[1:], m)

	ok := ed25519.Verify(ed.PublicKey().Bytes(), signed, sig[:])
	require.Truef(t, ok, "failed to verify message %x with sig %x", m, sig)
}

func TestEdSigner_WithPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	ed2, err := NewEdSigner(WithPrivateKey(ed.PrivateKey()))
	require.NoError(t, err)
	require.Equal(t, ed.priv, ed2.priv)
	require.Equal(t, ed.PublicKey(), ed2.PublicKey())
	require.Equal(t, ed.Address(), ed2.Address())
}

func TestEdSigner_KeyFromRand(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	ed1, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	ed2, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.True(t, ed1.Matches(ed2))
}

func TestEdSigner_FromFile(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	path := "/keys/voter.key"
	require.NoError(t, afero.WriteFile(fsys, path, []byte(hex.EncodeToString(ed.PrivateKey())+"\n"), 0o600))

	loaded, err := NewEdSigner(FromFile(fsys, path))
	require.NoError(t, err)
	require.True(t, ed.Matches(loaded))
	require.Equal(t, "voter.key", loaded.Name())

	require.NoError(t, afero.WriteFile(fsys, "/keys/short.key", []byte("abcd"), 0o600))
	_, err = NewEdSigner(FromFile(fsys, "/keys/short.key"))
	require.ErrorContains(t, err, "invalid key size")

	_, err = NewEdSigner(FromFile(fsys, "/keys/missing.key"))
	require.Error(t, err)
}

func TestEdSigner_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "voter.key")
	ed, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := NewEdSigner(FromFile(afero.NewOsFs(), path))
	require.NoError(t, err)
	require.True(t, ed.Matches(loaded))

	_, err = NewEdSigner(ToFile(path))
	require.ErrorIs(t, err, os.ErrExist)
}

func TestVerifyTransaction(t *testing.T) {
	prefix := []byte("testnet")
	ed, err := NewEdSigner(WithPrefix(prefix))
	require.NoError(t, err)
	tx := []byte("transaction bytes")
	sig := ed.SignTransaction(tx)
	require.Equal(t, types.Ed25519Scheme, sig.Scheme)

	verifier, err := NewEdVerifier(WithVerifierPrefix(prefix))
	require.NoError(t, err)
	signer, ok := verifier.VerifyTransaction(tx, sig)
	require.True(t, ok)
	require.Equal(t, ed.Address(), signer)

	_, ok = verifier.VerifyTransaction([]byte("other bytes"), sig)
	require.False(t, ok)

	other, err := NewEdVerifier(WithVerifierPrefix([]byte("mainnet")))
	require.NoError(t, err)
	_, ok = other.VerifyTransaction(tx, sig)
	require.False(t, ok)
}

func TestPublicKey_ShortString(t *testing.T) {
	pub := NewPublicKey([]byte{1, 2, 3})
	require.Equal(t, "010203", pub.String())
	require.Equal(t, "01020", pub.ShortString())

	pub = NewPublicKey([]byte{1, 2})
	require.Equal(t, pub.String(), pub.ShortString())
}
