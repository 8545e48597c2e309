package drivestat

import "time"

const DRIVESTAT_VERSION = "v0.1.0"

type Config struct {
	FTPPort       int
	FTPTimeout    time.Duration
	BarWidth      int
	CollectorFile string
	ViewerFile    string
	LocalFile     string
}

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		FTPPort:       21,
		FTPTimeout:    30 * time.Second,
		BarWidth:      20,
		CollectorFile: "collector.yaml",
		ViewerFile:    "viewer.yaml",
		LocalFile:     "drives.csv",
	}
}
