package main

import (
	"time"
)

type ViewCommand struct{}

var viewCommand = &ViewCommand{}

func (c *ViewCommand) Execute([]string) error {
	config, err := opts.ViewerConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	if err := fetch(ctx, config); err != nil {
		return err
	}
	return opts.Render(config.LocalFile, time.Now())
}

func init() {
	parser.AddCommand("view",
		"downloads and displays the shared file",
		"Downloads the shared file and displays it. This is the default command",
		viewCommand)
}
