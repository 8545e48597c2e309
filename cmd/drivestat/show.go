package main

import (
	"time"

	"github.com/jessevdk/go-flags"
)

type ShowCommand struct {
	Args struct {
		File flags.Filename `description:"file to display, defaults to the local file"`
	} `positional-args:"yes"`
}

var showCommand = &ShowCommand{}

func (c *ShowCommand) Execute([]string) error {
	path := string(c.Args.File)
	if len(path) == 0 {
		config, err := opts.ViewerConfig()
		if err != nil {
			return err
		}
		path = config.LocalFile
	}
	return opts.Render(path, time.Now())
}

func init() {
	parser.AddCommand("show",
		"displays the local copy of the shared file",
		"Displays the local copy of the shared file, without downloading it",
		showCommand)
}
