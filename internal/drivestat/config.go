package drivestat

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/drivestat/drivestat"
	"gopkg.in/yaml.v2"
)

// CollectorConfig names the drives to poll and the shared file to
// update.
type CollectorConfig struct {
	CSVPath string   `yaml:"csv-path"`
	Machine string   `yaml:"machine,omitempty"`
	Drives  []string `yaml:"drives"`
}

type FTPConfig struct {
	Server     string        `yaml:"server"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	RemoteFile string        `yaml:"remote-file"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

// ViewerConfig names where to fetch the shared file from, and where
// to store it locally.
type ViewerConfig struct {
	FTP       FTPConfig `yaml:"ftp"`
	LocalFile string    `yaml:"local-file,omitempty"`
}

// Address returns the dial address of the server, using the default
// FTP port if none is specified.
func (c FTPConfig) Address() string {
	if _, _, err := net.SplitHostPort(c.Server); err == nil {
		return c.Server
	}
	return net.JoinHostPort(c.Server, strconv.Itoa(drivestat.DefaultConfig.FTPPort))
}

func readYAML(path string, out interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &drivestat.ConfigError{Path: path, Err: err}
	}
	if err := yaml.UnmarshalStrict(content, out); err != nil {
		return &drivestat.ConfigError{Path: path, Err: err}
	}
	return nil
}

func ReadCollectorConfig(path string) (*CollectorConfig, error) {
	res := &CollectorConfig{}
	if err := readYAML(path, res); err != nil {
		return nil, err
	}
	if err := res.Check(); err != nil {
		return nil, &drivestat.ConfigError{Path: path, Err: err}
	}
	return res, nil
}

func (c *CollectorConfig) Check() error {
	if len(c.CSVPath) == 0 {
		return errors.New("missing 'csv-path'")
	}
	if len(c.Drives) == 0 {
		return errors.New("missing 'drives'")
	}
	return nil
}

// CheckOutputDirectory ensures the directory which will hold the
// shared file exists.
func (c *CollectorConfig) CheckOutputDirectory() error {
	dir := filepath.Dir(c.CSVPath)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("CSV file path does not exist: %s", c.CSVPath)
	}
	if info.IsDir() == false {
		return fmt.Errorf("'%s' is not a directory", dir)
	}
	return nil
}

func ReadViewerConfig(path string) (*ViewerConfig, error) {
	res := &ViewerConfig{}
	if err := readYAML(path, res); err != nil {
		return nil, err
	}
	res.setDefaults()
	if err := res.Check(); err != nil {
		return nil, &drivestat.ConfigError{Path: path, Err: err}
	}
	return res, nil
}

func (c *ViewerConfig) setDefaults() {
	if c.FTP.Timeout <= 0 {
		c.FTP.Timeout = drivestat.DefaultConfig.FTPTimeout
	}
	if len(c.FTP.Username) == 0 {
		c.FTP.Username = "anonymous"
	}
	if len(c.LocalFile) == 0 {
		c.LocalFile = filepath.Join(xdg.CacheHome, "drivestat", drivestat.DefaultConfig.LocalFile)
	}
}

func (c *ViewerConfig) Check() error {
	required := []struct {
		Name, Value string
	}{
		{"ftp.server", c.FTP.Server},
		{"ftp.remote-file", c.FTP.RemoteFile},
	}
	for _, r := range required {
		if len(r.Value) == 0 {
			return fmt.Errorf("missing '%s'", r.Name)
		}
	}
	return nil
}

// DefaultConfigPath looks up a configuration file next to the running
// executable first, then in $XDG_CONFIG_HOME/drivestat. If neither
// exists, the XDG location is returned.
func DefaultConfigPath(name string) string {
	if exe, err := os.Executable(); err == nil {
		local := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}
	return filepath.Join(xdg.ConfigHome, "drivestat", name)
}
