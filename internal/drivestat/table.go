package drivestat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/drivestat/drivestat"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A Table is the raw content of a shared file: its header and rows
// of fields.
type Table struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// ReadTable parses CSV data with a mandatory header line. A leading
// UTF-8 byte order mark is skipped.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("missing header line")
	}
	res := &Table{
		Header: lines[0],
		Rows:   lines[1:],
		index:  make(map[string]int, len(lines[0])),
	}
	for i, name := range res.Header {
		res.index[strings.TrimSpace(name)] = i
	}
	return res, nil
}

func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTable(f)
}

// Column returns the index of a named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Canonical returns the rows with their fields reordered as
// drivestat.Columns. Extra columns are dropped.
func (t *Table) Canonical() ([][]string, error) {
	indexes, err := t.columnIndexes()
	if err != nil {
		return nil, err
	}
	res := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = make([]string, len(indexes))
		for j, idx := range indexes {
			res[i][j] = row[idx]
		}
	}
	return res, nil
}

func (t *Table) columnIndexes() ([]int, error) {
	res := make([]int, len(drivestat.Columns))
	for i, name := range drivestat.Columns {
		idx, ok := t.Column(name)
		if ok == false {
			return nil, &drivestat.RenderError{
				Column: name,
				Row:    -1,
				Err:    errors.New("missing column"),
			}
		}
		res[i] = idx
	}
	return res, nil
}

var timeLayouts = []string{
	drivestat.TimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04",
}

// NormalizeTime parses a timestamp in any of the accepted layouts and
// formats it as drivestat.TimeLayout.
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Format(drivestat.TimeLayout), nil
		}
	}
	return "", fmt.Errorf("unsupported time format '%s'", value)
}

// Records parses the table rows. Errors are *drivestat.RenderError
// naming the faulty column.
func (t *Table) Records() ([]drivestat.DriveRecord, error) {
	rows, err := t.Canonical()
	if err != nil {
		return nil, err
	}
	res := make([]drivestat.DriveRecord, len(rows))
	for i, row := range rows {
		if err := parseRecord(row, &res[i]); err != nil {
			err.Row = i + 1
			return nil, err
		}
	}
	return res, nil
}

func parseRecord(row []string, r *drivestat.DriveRecord) *drivestat.RenderError {
	r.Machine = row[0]
	r.Drive = row[1]

	floats := []struct {
		Column string
		Value  *float64
	}{
		{drivestat.ColumnTotal, &r.TotalGB},
		{drivestat.ColumnUsed, &r.UsedGB},
		{drivestat.ColumnFree, &r.FreeGB},
		{drivestat.ColumnPercent, &r.UsagePercent},
	}
	for i, f := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[2+i]), 64)
		if err != nil {
			return &drivestat.RenderError{Column: f.Column, Err: err}
		}
		*f.Value = v
	}

	var err error
	r.CollectedAt, err = NormalizeTime(row[6])
	if err != nil {
		return &drivestat.RenderError{Column: drivestat.ColumnCollected, Err: err}
	}
	return nil
}
