package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type WatchCommand struct {
	Refresh time.Duration `short:"r" long:"refresh" description:"downloads the shared file again with this period"`
}

var watchCommand = &WatchCommand{}

const clearScreen = "\033[H\033[2J"

// watchFile calls render each time path is created or written. If
// period is positive, refresh is called with that period. It returns
// on the first error, or when ctx is done.
func watchFile(ctx context.Context, path string, period time.Duration,
	refresh func(context.Context) error, render func() error) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// files are replaced by rename, so the parent directory is watched
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("could not watch '%s': %w", filepath.Dir(path), err)
	}

	var ticks <-chan time.Time
	if period > 0 {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		ticks = ticker.C
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			if err := refresh(ctx); err != nil {
				return err
			}
		case event, ok := <-watcher.Events:
			if ok == false {
				return nil
			}
			if filepath.Clean(event.Name) != target ||
				event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if err := render(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if ok == false {
				return nil
			}
			return err
		}
	}
}

func (c *WatchCommand) Execute([]string) error {
	config, err := opts.ViewerConfig()
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	render := func() error {
		fmt.Print(clearScreen)
		return opts.Render(config.LocalFile, time.Now())
	}

	if err := fetch(ctx, config); err != nil {
		return err
	}
	if err := render(); err != nil {
		return err
	}

	return watchFile(ctx, config.LocalFile, c.Refresh,
		func(ctx context.Context) error { return fetch(ctx, config) },
		render)
}

func init() {
	parser.AddCommand("watch",
		"displays the shared file and refreshes it on changes",
		"Downloads and displays the shared file, then displays it again each time the local copy changes",
		watchCommand)
}
