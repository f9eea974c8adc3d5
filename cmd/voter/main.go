// voter casts sponsored votes and shows poll results from a terminal.
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/votedapp/sponsorvote/ballot"
	"github.com/votedapp/sponsorvote/cmd"
	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/ledger"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/metrics"
	"github.com/votedapp/sponsorvote/pollsync"
	"github.com/votedapp/sponsorvote/session"
	"github.com/votedapp/sponsorvote/signing"
	"github.com/votedapp/sponsorvote/sponsor"
	"github.com/votedapp/sponsorvote/tally"
	"github.com/votedapp/sponsorvote/voting"
	"github.com/votedapp/sponsorvote/wallet"
)

func main() {
	if err := getCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	conf       config.Config
	configPath *string
	fs         afero.Fs
	logger     *zap.Logger
}

func getCommand() *cobra.Command {
	a := &app{conf: config.DefaultConfig(), fs: afero.NewOsFs()}
	c := &cobra.Command{
		Use:          "voter",
		Short:        "vote on a poll without paying fees",
		Version:      cmd.VersionString(),
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := cmd.LoadConfig(a.fs, c.Flags(), &a.conf, *a.configPath); err != nil {
				return err
			}
			logger, err := cmd.NewLogger("voter", &a.conf)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}
	a.configPath = cmd.AddFlags(c.PersistentFlags(), &a.conf)
	cmd.AddVoterFlags(c.PersistentFlags(), &a.conf)

	c.AddCommand(
		&cobra.Command{
			Use:   "keygen",
			Short: "generate a voter key",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				signer, err := signing.NewEdSigner(
					signing.WithKeyFromRand(rand.Reader),
					signing.ToFile(a.conf.Voter.KeyFile),
				)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "key written to %s\naddress %s\n", a.conf.Voter.KeyFile, signer.Address())
				return nil
			},
		},
		&cobra.Command{
			Use:   "address",
			Short: "print the address of the voter key",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				signer, err := a.signer()
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), signer.Address())
				return nil
			},
		},
		&cobra.Command{
			Use:   "results",
			Short: "print the current results of the poll",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				return a.results(c)
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "print results whenever they change, until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				return a.watch(c)
			},
		},
		&cobra.Command{
			Use:   "vote <option>",
			Short: "cast a sponsored vote; option is a letter, an index or a label",
			Args:  cobra.ExactArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.vote(c, args[0])
			},
		},
	)
	return c
}

func (a *app) signer() (*signing.EdSigner, error) {
	signer, err := signing.NewEdSigner(signing.FromFile(a.fs, a.conf.Voter.KeyFile))
	if err != nil {
		return nil, log.ErrRetrieveIdentity(err)
	}
	return signer, nil
}

func (a *app) reader() (*ledger.Reader, error) {
	if err := a.conf.Validate(); err != nil {
		return nil, log.ErrBadFlags(err)
	}
	client, err := ledger.NewClient(a.conf.Ledger, ledger.WithLogger(a.logger.Named("ledger")))
	if err != nil {
		return nil, log.ErrMalformedConfig(err)
	}
	return ledger.NewReader(client, ledger.WithReaderLogger(a.logger.Named("reader"))), nil
}

func (a *app) syncer(opts ...pollsync.Opt) (*pollsync.Syncer, error) {
	reader, err := a.reader()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		pollsync.WithLogger(a.logger.Named("sync")),
		pollsync.WithInterval(a.conf.Poll.SyncInterval),
	)
	return pollsync.New(a.conf.Poll.PollID, reader, opts...), nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (a *app) results(c *cobra.Command) error {
	reader, err := a.reader()
	if err != nil {
		return cmd.Fail(a.logger, err)
	}
	ctx, cancel := signalContext(c.Context())
	defer cancel()
	snapshot, _, err := reader.ReadPoll(ctx, a.conf.Poll.PollID)
	if err != nil {
		return err
	}
	printResults(c.OutOrStdout(), tally.Compute(snapshot))
	return nil
}

func (a *app) watch(c *cobra.Command) error {
	var last string
	out := c.OutOrStdout()
	syncer, err := a.syncer(pollsync.WithUpdateHandler(func(u pollsync.Update) {
		res := tally.Compute(u.Snapshot)
		key := fmt.Sprint(res.Options, u.Status)
		if key == last {
			return
		}
		last = key
		printResults(out, res)
		if !u.Status.Address.IsEmpty() {
			fmt.Fprintf(out, "%s voted: %v\n\n", u.Status.Address.ShortString(), u.Status.HasVoted)
		}
	}))
	if err != nil {
		return cmd.Fail(a.logger, err)
	}
	if signer, err := a.signer(); err == nil {
		syncer.SetAddress(signer.Address())
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cmd.Fail(a.logger, err)
	}

	ctx, cancel := signalContext(c.Context())
	defer cancel()
	syncer.Start(ctx)
	<-ctx.Done()
	syncer.Stop()
	return nil
}

func (a *app) vote(c *cobra.Command, arg string) error {
	signer, err := a.signer()
	if err != nil {
		return cmd.Fail(a.logger, err)
	}
	syncer, err := a.syncer()
	if err != nil {
		return cmd.Fail(a.logger, err)
	}
	client, err := sponsor.NewClient(a.conf.Voter.SponsorURL, sponsor.WithClientLogger(a.logger.Named("sponsor")))
	if err != nil {
		return cmd.Fail(a.logger, log.ErrMalformedConfig(err))
	}
	builder := ballot.NewBuilder(a.conf.Poll.Target(), ballot.WithLogger(a.logger.Named("ballot")))
	submitter := voting.NewSubmitter(a.conf.Poll.PollID, builder, client, client, syncer,
		voting.WithLogger(a.logger.Named("voting")),
		voting.WithAlreadyVotedCheck(),
	)
	sess := session.New(syncer, submitter, session.WithLogger(a.logger.Named("session")))

	ctx, cancel := signalContext(c.Context())
	defer cancel()

	var account voting.Account = wallet.NewKeyWallet(signer)
	if a.conf.Voter.Confirm {
		account = wallet.NewPromptWallet(account, c.InOrStdin(), c.OutOrStdout(),
			wallet.WithLogger(a.logger.Named("wallet")),
			wallet.WithDescriber(describer(syncer.Snapshot)),
		)
	}
	if err := sess.Connect(account); err != nil {
		return err
	}
	if err := syncer.Refresh(ctx); err != nil {
		return err
	}
	option, err := parseOption(arg, syncer.Snapshot())
	if err != nil {
		return err
	}
	if err := sess.Select(option); err != nil {
		return err
	}

	result, voteErr := sess.Vote(ctx)
	if voteErr == nil {
		fmt.Fprintf(c.OutOrStdout(), "vote executed in %s\n\n", result.Digest)
		if err := syncer.Refresh(ctx); err != nil {
			a.logger.Warn("refresh after vote failed", zap.Error(err))
		}
	}
	printView(c.OutOrStdout(), sess.View())
	if err := metrics.Push(ctx, a.conf.Metrics, map[string]string{"command": "vote"}); err != nil {
		a.logger.Warn("push metrics", zap.Error(err))
	}
	return voteErr
}
