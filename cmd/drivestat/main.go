package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/drivestat/drivestat"
	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/jessevdk/go-flags"
)

type Options struct {
	Config       flags.Filename `short:"c" long:"config" description:"viewer configuration file"`
	LocalFile    flags.Filename `short:"l" long:"local-file" description:"local copy of the shared file, overrides the configuration"`
	OtelEndpoint string         `long:"otel-endpoint" description:"Open telemetry endpoint to use" env:"DRIVESTAT_OTEL_ENDPOINT"`
	Verbose      []bool         `short:"v" long:"verbose" description:"Enable more verbose output (can be set multiple times)"`

	RenderOptions
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.Default)

func (o *Options) ViewerConfig() (*internal.ViewerConfig, error) {
	path := string(o.Config)
	if len(path) == 0 {
		path = internal.DefaultConfigPath(drivestat.DefaultConfig.ViewerFile)
	}
	res, err := internal.ReadViewerConfig(path)
	if err != nil {
		return nil, err
	}
	if len(o.LocalFile) > 0 {
		res.LocalFile = string(o.LocalFile)
	}
	return res, nil
}

func setUpLogger() {
	if len(opts.OtelEndpoint) > 0 {
		tm.SetUpTelemetry(tm.OtelProviderArgs{
			CollectorURL:   opts.OtelEndpoint,
			ServiceName:    "drivestat",
			ServiceVersion: drivestat.DRIVESTAT_VERSION,
			Level:          tm.VerboseLevel(len(opts.Verbose)),
		})
	} else {
		tm.SetUpLocal(tm.VerboseLevel(len(opts.Verbose)))
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func Execute() error {
	defer tm.Shutdown(context.Background())

	executed := false
	parser.SubcommandsOptional = true
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		executed = true
		setUpLogger()
		return cmd.Execute(args)
	}

	_, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}
	if executed == true {
		return nil
	}

	setUpLogger()
	return viewCommand.Execute(nil)
}

func main() {
	if err := Execute(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			os.Exit(2)
		}
		log.Fatalf("drivestat: %s", err)
	}
}
