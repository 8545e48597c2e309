package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/drivestat/drivestat"
	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/sirupsen/logrus"
)

// A Collector polls the configured drives and merges their capacity
// in the shared file.
type Collector struct {
	config  internal.CollectorConfig
	querier internal.DriveQuerier
	store   *internal.Store
	machine string

	dryRun bool
	out    io.Writer

	now    func() time.Time
	logger *logrus.Entry
}

func NewCollector(config internal.CollectorConfig, querier internal.DriveQuerier) *Collector {
	return &Collector{
		config:  config,
		querier: querier,
		store:   internal.NewStore(config.CSVPath),
		machine: config.Machine,
		out:     os.Stdout,
		now:     time.Now,
		logger:  tm.NewLogger("collector"),
	}
}

func (c *Collector) machineIdentifier(ctx context.Context) string {
	if len(c.machine) == 0 {
		c.machine = internal.MachineIdentifier(ctx)
	}
	return c.machine
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Query returns a record for every configured drive which exists,
// in configuration order. A failing query aborts the whole pass.
func (c *Collector) Query(ctx context.Context) ([]drivestat.DriveRecord, error) {
	machine := c.machineIdentifier(ctx)
	now := c.now()

	res := make([]drivestat.DriveRecord, 0, len(c.config.Drives))
	for _, drive := range c.config.Drives {
		if isDirectory(drive) == false {
			c.logger.WithField("drive", drive).Warn("drive path does not exist")
			continue
		}
		usage, err := c.querier.Query(ctx, drive)
		if err != nil {
			return nil, &drivestat.DriveQueryError{Drive: drive, Err: err}
		}
		res = append(res, internal.NewDriveRecord(machine, drive, usage, now))
	}

	if len(res) == 0 {
		return nil, drivestat.ErrNoDriveCollected
	}
	return res, nil
}

// Collect performs a single collection pass.
func (c *Collector) Collect(ctx context.Context) error {
	if err := c.config.CheckOutputDirectory(); err != nil {
		return &drivestat.ConfigError{Path: c.config.CSVPath, Err: err}
	}

	records, err := c.Query(ctx)
	if err != nil {
		return err
	}

	if c.dryRun == true {
		return c.store.Preview(c.out, records)
	}

	if err := c.store.Update(records); err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"file":    c.store.Path(),
		"machine": records[0].Machine,
		"rows":    len(records),
	}).Info("drive information updated")
	return nil
}

// Run collects every period until ctx is done or a pass fails.
func (c *Collector) Run(ctx context.Context, period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("invalid period %s", period)
	}

	if err := c.Collect(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			if err := c.Collect(ctx); err != nil {
				return err
			}
		}
	}
}
