// Package wallet holds the accounts that sign sponsored transactions.
package wallet

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/common/types"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/signing"
)

// ErrRejected is returned when the account holder declines to sign.
var ErrRejected = errors.New("signature request rejected")

// Account is a connected account able to sign transactions.
type Account interface {
	Address() types.Address
	SignTransaction(ctx context.Context, tx []byte) (types.Signature, error)
}

// KeyWallet signs with a local ed25519 key without asking.
type KeyWallet struct {
	signer *signing.EdSigner
}

func NewKeyWallet(signer *signing.EdSigner) *KeyWallet {
	return &KeyWallet{signer: signer}
}

func (w *KeyWallet) Address() types.Address {
	return w.signer.Address()
}

// SignTransaction signs tx. It fails only when ctx is already done.
func (w *KeyWallet) SignTransaction(ctx context.Context, tx []byte) (types.Signature, error) {
	if err := ctx.Err(); err != nil {
		return types.Signature{}, err
	}
	return w.signer.SignTransaction(tx), nil
}

type PromptOpt func(*PromptWallet)

func WithLogger(logger *zap.Logger) PromptOpt {
	return func(w *PromptWallet) {
		w.logger = logger
	}
}

// WithDescriber renders a human readable summary of transaction bytes in the prompt.
func WithDescriber(describe func([]byte) string) PromptOpt {
	return func(w *PromptWallet) {
		w.describe = describe
	}
}

// PromptWallet asks the account holder on a terminal before delegating to inner.
// There is no timeout: the request waits for an answer or for ctx.
type PromptWallet struct {
	inner    Account
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
	describe func([]byte) string
}

func NewPromptWallet(inner Account, in io.Reader, out io.Writer, opts ...PromptOpt) *PromptWallet {
	w := &PromptWallet{
		inner:  inner,
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *PromptWallet) Address() types.Address {
	return w.inner.Address()
}

func (w *PromptWallet) SignTransaction(ctx context.Context, tx []byte) (types.Signature, error) {
	digest := types.ComputeDigest(tx)
	fmt.Fprintf(w.out, "Sign transaction %s from %s?\n", digest, w.inner.Address())
	if w.describe != nil {
		fmt.Fprintf(w.out, "  %s\n", w.describe(tx))
	}
	fmt.Fprint(w.out, "Approve [y/N]: ")

	answer := make(chan string, 1)
	errc := make(chan error, 1)
	go func() {
		line, err := w.in.ReadString('\n')
		if err != nil && line == "" {
			errc <- err
			return
		}
		answer <- strings.TrimSpace(strings.ToLower(line))
	}()

	select {
	case <-ctx.Done():
		return types.Signature{}, ctx.Err()
	case err := <-errc:
		return types.Signature{}, fmt.Errorf("%w: read answer: %w", ErrRejected, err)
	case a := <-answer:
		if a != "y" && a != "yes" {
			w.logger.Info("signature rejected", log.ZShortStringer("digest", digest))
			return types.Signature{}, ErrRejected
		}
	}
	return w.inner.SignTransaction(ctx, tx)
}
