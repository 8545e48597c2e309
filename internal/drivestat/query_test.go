package drivestat

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/drivestat/drivestat"
	. "gopkg.in/check.v1"
)

type QuerySuite struct{}

var _ = Suite(&QuerySuite{})

func (s *QuerySuite) TestQueriesExistingDrive(c *C) {
	usage, err := NewDriveQuerier().Query(context.Background(), c.MkDir())
	c.Assert(err, IsNil)
	c.Check(usage.Total >= usage.Free, Equals, true)
	c.Check(usage.UsedPercent >= 0 && usage.UsedPercent <= 100, Equals, true)

	_, err = NewDriveQuerier().Query(context.Background(), filepath.Join(c.MkDir(), "do-not-exist"))
	c.Check(err, NotNil)
}

func (s *QuerySuite) TestBuildsRecord(c *C) {
	usage := Usage{
		Total:       500 * drivestat.GiB,
		Used:        125 * drivestat.GiB,
		Free:        375 * drivestat.GiB,
		UsedPercent: 25.04999,
	}
	now := time.Date(2024, 5, 1, 9, 3, 7, 0, time.Local)
	c.Check(NewDriveRecord("athens", "/data", usage, now), DeepEquals, drivestat.DriveRecord{
		Machine:      "athens",
		Drive:        "/data",
		TotalGB:      500,
		UsedGB:       125,
		FreeGB:       375,
		UsagePercent: 25.0,
		CollectedAt:  "2024-05-01 09:03:07",
	})
}

func (s *QuerySuite) TestMachineIdentifier(c *C) {
	saved, ok := os.LookupEnv("COMPUTERNAME")
	defer func() {
		if ok == true {
			os.Setenv("COMPUTERNAME", saved)
		} else {
			os.Unsetenv("COMPUTERNAME")
		}
	}()

	os.Setenv("COMPUTERNAME", "DESKTOP-42")
	c.Check(MachineIdentifier(context.Background()), Equals, "DESKTOP-42")

	os.Unsetenv("COMPUTERNAME")
	c.Check(MachineIdentifier(context.Background()), Not(Equals), "")
}
