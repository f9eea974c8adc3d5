package wallet

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/votedapp/sponsorvote/signing"
)

func newKeyWallet(t *testing.T) *KeyWallet {
	t.Helper()
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	return NewKeyWallet(signer)
}

func TestKeyWallet(t *testing.T) {
	w := newKeyWallet(t)
	tx := []byte("sponsored transaction")
	sig, err := w.SignTransaction(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, w.Address(), sig.Signer())

	verifier, err := signing.NewEdVerifier()
	require.NoError(t, err)
	signer, ok := verifier.VerifyTransaction(tx, sig)
	require.True(t, ok)
	require.Equal(t, w.Address(), signer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = w.SignTransaction(ctx, tx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPromptWallet(t *testing.T) {
	for _, tc := range []struct {
		answer string
		signed bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	} {
		t.Run(strings.TrimSpace(tc.answer), func(t *testing.T) {
			var out bytes.Buffer
			inner := newKeyWallet(t)
			w := NewPromptWallet(inner, strings.NewReader(tc.answer), &out,
				WithLogger(zaptest.NewLogger(t)),
				WithDescriber(func([]byte) string { return "vote for option B" }),
			)
			require.Equal(t, inner.Address(), w.Address())

			sig, err := w.SignTransaction(context.Background(), []byte("tx"))
			if tc.signed {
				require.NoError(t, err)
				require.Equal(t, inner.Address(), sig.Signer())
			} else {
				require.ErrorIs(t, err, ErrRejected)
			}
			require.Contains(t, out.String(), "vote for option B")
			require.Contains(t, out.String(), inner.Address().String())
		})
	}
}

func TestPromptWalletHonoursContext(t *testing.T) {
	in, _ := io.Pipe()
	w := NewPromptWallet(newKeyWallet(t), in, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := w.SignTransaction(ctx, []byte("tx"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
