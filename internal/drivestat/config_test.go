package drivestat

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/drivestat/drivestat"
	. "gopkg.in/check.v1"
)

type ConfigSuite struct {
	dir string
}

var _ = Suite(&ConfigSuite{})

func (s *ConfigSuite) SetUpTest(c *C) {
	s.dir = c.MkDir()
}

func (s *ConfigSuite) write(c *C, name, content string) string {
	path := filepath.Join(s.dir, name)
	c.Assert(os.WriteFile(path, []byte(content), 0644), IsNil)
	return path
}

func (s *ConfigSuite) TestReadsCollectorConfig(c *C) {
	path := s.write(c, "collector.yaml", `
csv-path: /srv/share/drives.csv
drives:
  - "C:\\"
  - /data
`)
	config, err := ReadCollectorConfig(path)
	c.Assert(err, IsNil)
	c.Check(config, DeepEquals, &CollectorConfig{
		CSVPath: "/srv/share/drives.csv",
		Drives:  []string{"C:\\", "/data"},
	})
}

func (s *ConfigSuite) TestCollectorConfigErrors(c *C) {
	testdata := []struct {
		Content string
		Error   string
	}{
		{"drives: [/]\n", "invalid configuration '.*': missing 'csv-path'"},
		{"csv-path: out.csv\n", "invalid configuration '.*': missing 'drives'"},
		{"csv-path: out.csv\ndrives: [/]\ndrive: /\n", "(?s)invalid configuration '.*': .*field drive not found.*"},
		{"csv-path: [\n", "invalid configuration '.*': yaml: .*"},
	}

	for _, d := range testdata {
		_, err := ReadCollectorConfig(s.write(c, "collector.yaml", d.Content))
		c.Check(err, ErrorMatches, d.Error)
		var configErr *drivestat.ConfigError
		c.Check(errors.As(err, &configErr), Equals, true)
	}

	_, err := ReadCollectorConfig(filepath.Join(s.dir, "does-not-exist.yaml"))
	c.Check(errors.Is(err, os.ErrNotExist), Equals, true)
}

func (s *ConfigSuite) TestChecksOutputDirectory(c *C) {
	config := &CollectorConfig{CSVPath: filepath.Join(s.dir, "drives.csv")}
	c.Check(config.CheckOutputDirectory(), IsNil)
	config.CSVPath = filepath.Join(s.dir, "missing", "drives.csv")
	c.Check(config.CheckOutputDirectory(), ErrorMatches, "CSV file path does not exist: .*")
}

func (s *ConfigSuite) TestReadsViewerConfigWithDefaults(c *C) {
	path := s.write(c, "viewer.yaml", `
ftp:
  server: ftp.example.com
  remote-file: /pub/drives.csv
`)
	config, err := ReadViewerConfig(path)
	c.Assert(err, IsNil)
	c.Check(config.FTP.Username, Equals, "anonymous")
	c.Check(config.FTP.Timeout, Equals, drivestat.DefaultConfig.FTPTimeout)
	c.Check(config.FTP.Address(), Equals, "ftp.example.com:21")
	c.Check(config.LocalFile, Equals, filepath.Join(xdg.CacheHome, "drivestat", "drives.csv"))
}

func (s *ConfigSuite) TestReadsViewerConfig(c *C) {
	path := s.write(c, "viewer.yaml", `
ftp:
  server: 192.168.0.3:2121
  username: monitor
  password: secret
  remote-file: drives.csv
  timeout: 5s
local-file: /tmp/drives.csv
`)
	config, err := ReadViewerConfig(path)
	c.Assert(err, IsNil)
	c.Check(config, DeepEquals, &ViewerConfig{
		FTP: FTPConfig{
			Server:     "192.168.0.3:2121",
			Username:   "monitor",
			Password:   "secret",
			RemoteFile: "drives.csv",
			Timeout:    5 * time.Second,
		},
		LocalFile: "/tmp/drives.csv",
	})
	c.Check(config.FTP.Address(), Equals, "192.168.0.3:2121")

	_, err = ReadViewerConfig(s.write(c, "viewer.yaml", "ftp:\n  server: host\n"))
	c.Check(err, ErrorMatches, "invalid configuration '.*': missing 'ftp.remote-file'")
}

func (s *ConfigSuite) TestDefaultConfigPath(c *C) {
	c.Check(DefaultConfigPath("nothing-here.yaml"), Equals,
		filepath.Join(xdg.ConfigHome, "drivestat", "nothing-here.yaml"))
}
