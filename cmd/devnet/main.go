// devnet runs the in-memory ledger and sponsorship simulator with a seeded poll.
package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/votedapp/sponsorvote/cmd"
	"github.com/votedapp/sponsorvote/config"
	"github.com/votedapp/sponsorvote/config/presets"
	"github.com/votedapp/sponsorvote/ledgersim"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/metrics"
)

func main() {
	if err := getCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getCommand() *cobra.Command {
	conf := config.DefaultConfig()
	conf.Preset = "devnet"
	var configPath *string
	c := &cobra.Command{
		Use:          "devnet",
		Short:        "run a local ledger and sponsorship simulator",
		Version:      cmd.VersionString(),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := cmd.LoadConfig(afero.NewOsFs(), c.Flags(), &conf, *configPath); err != nil {
				return err
			}
			logger, err := cmd.NewLogger("devnet", &conf)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return cmd.Fail(logger, run(ctx, c.OutOrStdout(), logger, &conf))
		},
	}
	configPath = cmd.AddFlags(c.PersistentFlags(), &conf)
	cmd.AddDevnetFlags(c.Flags(), &conf)
	return c
}

func run(ctx context.Context, out io.Writer, logger *zap.Logger, conf *config.Config) error {
	pkg := conf.Poll.PackageID
	if pkg.IsEmpty() {
		pkg = presets.DevnetPackage
	}
	ledger := ledgersim.NewLedger(pkg, ledgersim.WithLedgerLogger(logger.Named("ledger")))
	pollID, err := ledger.CreatePoll(conf.Devnet.Question, conf.Devnet.Options)
	if err != nil {
		return log.ErrBadFlags(err)
	}
	sponsor, err := ledgersim.NewSponsor(ledger, conf.Devnet.Sponsor,
		ledgersim.WithSponsorLogger(logger.Named("sponsor")))
	if err != nil {
		return log.ErrMalformedConfig(err)
	}
	srv := ledgersim.NewServer(ledger, sponsor, ledgersim.WithServerLogger(logger.Named("server")))

	lis, err := net.Listen("tcp", conf.Devnet.Listen)
	if err != nil {
		return log.ErrStartServer(err)
	}
	fmt.Fprintf(out, "listening on %s\npackage %s\npoll    %s\ntarget  %s\napi key %s\n",
		lis.Addr(), pkg, pollID, ledger.VoteTarget(), conf.Devnet.Sponsor.APIKey)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return srv.Serve(ctx, lis)
	})
	if conf.Metrics.Enabled {
		eg.Go(func() error {
			return metrics.NewServer(conf.Metrics.Listen, logger.Named("metrics")).Serve(ctx)
		})
	}
	return eg.Wait()
}
