package drivestat

import (
	"errors"
	"strings"

	"github.com/drivestat/drivestat"
	. "gopkg.in/check.v1"
)

type TableSuite struct{}

var _ = Suite(&TableSuite{})

var header = strings.Join(drivestat.Columns, ",")

func (s *TableSuite) TestSkipsByteOrderMark(c *C) {
	for _, prefix := range []string{"", "\xef\xbb\xbf"} {
		table, err := ReadTable(strings.NewReader(prefix + header + "\nathens,/,1,0.5,0.5,50,2024-05-01 10:00:00\n"))
		c.Assert(err, IsNil)
		idx, ok := table.Column(drivestat.ColumnMachine)
		c.Check(ok, Equals, true)
		c.Check(idx, Equals, 0)
		c.Check(table.Rows, HasLen, 1)
	}
}

func (s *TableSuite) TestRequiresHeader(c *C) {
	_, err := ReadTable(strings.NewReader(""))
	c.Check(err, ErrorMatches, "missing header line")
}

func (s *TableSuite) TestReportsMissingColumn(c *C) {
	columns := strings.Join(drivestat.Columns[:5], ",")
	table, err := ReadTable(strings.NewReader(columns + "\nathens,/,1,0.5,0.5\n"))
	c.Assert(err, IsNil)
	_, err = table.Records()
	var renderErr *drivestat.RenderError
	c.Assert(errors.As(err, &renderErr), Equals, true)
	c.Check(renderErr.Column, Equals, drivestat.ColumnPercent)
}

func (s *TableSuite) TestReportsFaultyCell(c *C) {
	table, err := ReadTable(strings.NewReader(header + "\n" +
		"athens,/,1,0.5,0.5,50,2024-05-01 10:00:00\n" +
		"sparta,/,1,half,0.5,50,2024-05-01 10:00:00\n"))
	c.Assert(err, IsNil)
	_, err = table.Records()
	c.Check(err, ErrorMatches, "could not render column '사용한 용량 \\(GB\\)' at row 2: .*invalid syntax")

	table, err = ReadTable(strings.NewReader(header + "\n" +
		"athens,/,1,0.5,0.5,50,yesterday\n"))
	c.Assert(err, IsNil)
	_, err = table.Records()
	c.Check(err, ErrorMatches, "could not render column '수집 시간' at row 1: unsupported time format 'yesterday'")
}

func (s *TableSuite) TestNormalizesTime(c *C) {
	testdata := []struct {
		Value, Expected string
	}{
		{"2024-05-01 10:00:00", "2024-05-01 10:00:00"},
		{"2024-05-01T10:00:00", "2024-05-01 10:00:00"},
		{"2024-05-01T10:00:00+09:00", "2024-05-01 10:00:00"},
		{"2024/05/01 10:00:00", "2024-05-01 10:00:00"},
		{" 2024-05-01 10:00 ", "2024-05-01 10:00:00"},
	}
	for _, d := range testdata {
		v, err := NormalizeTime(d.Value)
		c.Check(err, IsNil)
		c.Check(v, Equals, d.Expected, Commentf("value: '%s'", d.Value))
	}
}

func (s *TableSuite) TestReordersColumns(c *C) {
	table, err := ReadTable(strings.NewReader(
		"extra," + strings.Join(drivestat.Columns[1:], ",") + "," + drivestat.ColumnMachine + "\n" +
			"x,/,1,0.5,0.5,50,2024-05-01 10:00:00,athens\n"))
	c.Assert(err, IsNil)
	rows, err := table.Canonical()
	c.Assert(err, IsNil)
	c.Check(rows, DeepEquals, [][]string{{"athens", "/", "1", "0.5", "0.5", "50", "2024-05-01 10:00:00"}})
}
