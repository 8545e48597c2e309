package drivestat

//go:generate mockgen -destination=mock_drivestat/mock_drivestat.go github.com/drivestat/drivestat/internal/drivestat DriveQuerier,TransferSession,Dialer

import (
	"context"
	"math"
	"os"
	"time"

	"github.com/drivestat/drivestat"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
)

// Usage is the capacity of a drive, in bytes.
type Usage struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

type DriveQuerier interface {
	Query(ctx context.Context, path string) (Usage, error)
}

type diskQuerier struct{}

// NewDriveQuerier returns a DriveQuerier asking the operating system
// for the capacity of the filesystem holding a path.
func NewDriveQuerier() DriveQuerier {
	return diskQuerier{}
}

func (diskQuerier) Query(ctx context.Context, path string) (Usage, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return Usage{}, err
	}
	return Usage{
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// MachineIdentifier returns the name used to identify this machine
// rows in the shared file: $COMPUTERNAME if set, the host name
// otherwise, and "N/A" if everything fails.
func MachineIdentifier(ctx context.Context) string {
	if name := os.Getenv("COMPUTERNAME"); len(name) > 0 {
		return name
	}
	if info, err := host.InfoWithContext(ctx); err == nil && len(info.Hostname) > 0 {
		return info.Hostname
	}
	if name, err := os.Hostname(); err == nil && len(name) > 0 {
		return name
	}
	return "N/A"
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// NewDriveRecord converts a drive usage to a record. Capacities are
// expressed in GiB, the percentage is rounded to one decimal.
func NewDriveRecord(machine, drive string, usage Usage, now time.Time) drivestat.DriveRecord {
	return drivestat.DriveRecord{
		Machine:      machine,
		Drive:        drive,
		TotalGB:      float64(usage.Total) / drivestat.GiB,
		UsedGB:       float64(usage.Used) / drivestat.GiB,
		FreeGB:       float64(usage.Free) / drivestat.GiB,
		UsagePercent: roundTo(usage.UsedPercent, 1),
		CollectedAt:  now.Format(drivestat.TimeLayout),
	}
}
