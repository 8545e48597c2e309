package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drivestat/drivestat"
	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/jessevdk/go-flags"
)

func main() {
	if err := execute(); err != nil {
		log.Fatalf("Unhandled error: %s", err)
	}
}

type Options struct {
	Config       flags.Filename `short:"c" long:"config" description:"collector configuration file"`
	Machine      string         `short:"m" long:"machine" description:"machine identifier, defaults to $COMPUTERNAME or the hostname"`
	Every        time.Duration  `long:"every" description:"collect periodically instead of once"`
	DryRun       bool           `short:"n" long:"dry-run" description:"print the updated file on stdout instead of writing it"`
	OtelEndpoint string         `long:"otel-endpoint" description:"Open telemetry endpoint to use" env:"DRIVESTAT_OTEL_ENDPOINT"`
	Version      bool           `short:"V" long:"version" description:"Print version and exits"`
	Verbose      []bool         `short:"v" long:"verbose" description:"Enable more verbose output (can be set multiple times)"`
}

func (o *Options) CollectorConfig() (*internal.CollectorConfig, error) {
	path := string(o.Config)
	if len(path) == 0 {
		path = internal.DefaultConfigPath(drivestat.DefaultConfig.CollectorFile)
	}
	res, err := internal.ReadCollectorConfig(path)
	if err != nil {
		return nil, err
	}
	if len(o.Machine) > 0 {
		res.Machine = o.Machine
	}
	return res, nil
}

func setUpLogger(opts *Options) {
	if len(opts.OtelEndpoint) > 0 {
		tm.SetUpTelemetry(tm.OtelProviderArgs{
			CollectorURL:   opts.OtelEndpoint,
			ServiceName:    "drivestat-collector",
			ServiceVersion: drivestat.DRIVESTAT_VERSION,
			Level:          tm.VerboseLevel(len(opts.Verbose)),
		})
	} else {
		tm.SetUpLocal(tm.VerboseLevel(len(opts.Verbose)))
	}
}

func execute() error {
	opts := &Options{}
	_, err := flags.Parse(opts)
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	if opts.Version {
		fmt.Printf("drivestat-collector %s\n", drivestat.DRIVESTAT_VERSION)
		return nil
	}

	setUpLogger(opts)
	defer tm.Shutdown(context.Background())

	config, err := opts.CollectorConfig()
	if err != nil {
		return err
	}

	collector := NewCollector(*config, internal.NewDriveQuerier())
	collector.dryRun = opts.DryRun

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Every > 0 {
		return collector.Run(ctx, opts.Every)
	}
	return collector.Collect(ctx)
}
