package main

import (
	"context"

	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/formicidae-tracker/olympus/pkg/tm"
)

type FetchCommand struct{}

var fetchCommand = &FetchCommand{}

var dialer internal.Dialer = internal.FTPDialer{}

func fetch(ctx context.Context, config *internal.ViewerConfig) error {
	downloader := &internal.Downloader{
		Dialer: dialer,
		Config: config.FTP,
		Logger: tm.NewLogger("fetch").WithContext(ctx),
	}
	return downloader.Download(ctx, config.LocalFile)
}

func (c *FetchCommand) Execute([]string) error {
	config, err := opts.ViewerConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()
	return fetch(ctx, config)
}

func init() {
	parser.AddCommand("fetch",
		"downloads the shared file",
		"Downloads the shared file from the FTP server to the local file",
		fetchCommand)
}
