// sponsord forwards vote transactions of voters to the hosted sponsorship API, holding the
// private api key on their behalf.
package main

import (
	"context"
	"fmt"
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
	"github.com/votedapp/sponsorvote/enoki"
	"github.com/votedapp/sponsorvote/log"
	"github.com/votedapp/sponsorvote/metrics"
	"github.com/votedapp/sponsorvote/sponsor"
)

func main() {
	if err := getCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var configPath *string
	c := &cobra.Command{
		Use:          "sponsord",
		Short:        "start the sponsorship forwarding service",
		Version:      cmd.VersionString(),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := cmd.LoadConfig(afero.NewOsFs(), c.Flags(), &conf, *configPath); err != nil {
				return err
			}
			logger, err := cmd.NewLogger("sponsord", &conf)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return cmd.Fail(logger, run(ctx, logger, &conf))
		},
	}
	configPath = cmd.AddFlags(c.PersistentFlags(), &conf)
	cmd.AddSponsorFlags(c.Flags(), &conf)
	return c
}

func run(ctx context.Context, logger *zap.Logger, conf *config.Config) error {
	if conf.Sponsor.Upstream.APIKey == "" {
		return log.ErrMissingAPIKey(enoki.APIKeyEnv)
	}
	if conf.Sponsor.AllowedTarget == "" && !conf.Poll.PackageID.IsEmpty() {
		conf.Sponsor.AllowedTarget = conf.Poll.Target().String()
	}
	upstream, err := enoki.NewClient(conf.Sponsor.Upstream, enoki.WithLogger(logger.Named("enoki")))
	if err != nil {
		return log.ErrMalformedConfig(err)
	}
	svc, err := sponsor.NewService(upstream, conf.Sponsor, sponsor.WithServiceLogger(logger.Named("service")))
	if err != nil {
		return log.ErrMalformedConfig(err)
	}
	srv, err := sponsor.NewServer(svc, conf.Sponsor, sponsor.WithServerLogger(logger.Named("server")))
	if err != nil {
		return log.ErrStartServer(err)
	}
	lis, err := net.Listen("tcp", conf.Sponsor.Listen)
	if err != nil {
		return log.ErrStartServer(err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return srv.Serve(ctx, lis)
	})
	if conf.Metrics.Enabled {
		eg.Go(func() error {
			return metrics.NewServer(conf.Metrics.Listen, logger.Named("metrics")).Serve(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	logger.Info("sponsor service stopped")
	return nil
}
