package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atuleu/go-humanize"
	"github.com/atuleu/go-tablifier"
	"github.com/drivestat/drivestat"
	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// A ProgressBar displays a usage percentage as a proportion of filled
// cells.
type ProgressBar struct {
	Value int
	Width int
}

func NewProgressBar(percent float64) ProgressBar {
	return ProgressBar{
		Value: clamp(int(percent), 0, 100),
		Width: drivestat.DefaultConfig.BarWidth,
	}
}

func (b ProgressBar) Filled() int {
	return b.Value * b.Width / 100
}

func (b ProgressBar) color() *color.Color {
	switch {
	case b.Value >= 90:
		return color.New(color.FgRed, color.Bold)
	case b.Value >= 66:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgBlue, color.Bold)
	}
}

func (b ProgressBar) String() string {
	filled := b.Filled()
	return fmt.Sprintf("%s%s %3d%%",
		b.color().Sprint(strings.Repeat("█", filled)),
		strings.Repeat("░", b.Width-filled),
		b.Value)
}

type TableLine struct {
	Machine   string `name:"컴퓨터 명"`
	Drive     string `name:"드라이브"`
	Total     string `name:"드라이브 용량 (GB)"`
	Used      string `name:"사용한 용량 (GB)"`
	Free      string `name:"남은 용량 (GB)"`
	Percent   string `name:"사용 비율 (%)"`
	Collected string `name:"수집 시간"`
	Ratio     string `name:"비율"`
}

type AgedTableLine struct {
	Machine   string `name:"컴퓨터 명"`
	Drive     string `name:"드라이브"`
	Total     string `name:"드라이브 용량 (GB)"`
	Used      string `name:"사용한 용량 (GB)"`
	Free      string `name:"남은 용량 (GB)"`
	Percent   string `name:"사용 비율 (%)"`
	Collected string `name:"수집 시간"`
	Age       string `name:"Age"`
	Ratio     string `name:"비율"`
}

func FormatCapacity(gb float64) string {
	return fmt.Sprintf("%.2f", gb)
}

func NewTableLine(r drivestat.DriveRecord) TableLine {
	return TableLine{
		Machine:   r.Machine,
		Drive:     r.Drive,
		Total:     FormatCapacity(r.TotalGB),
		Used:      FormatCapacity(r.UsedGB),
		Free:      FormatCapacity(r.FreeGB),
		Percent:   fmt.Sprintf("%.1f", r.UsagePercent),
		Collected: r.CollectedAt,
		Ratio:     NewProgressBar(r.UsagePercent).String(),
	}
}

func formatAge(collected string, now time.Time) string {
	t, err := time.ParseInLocation(drivestat.TimeLayout, collected, now.Location())
	if err != nil {
		return "?"
	}
	age := now.Sub(t).Round(time.Minute)
	if age < time.Minute {
		return "just now"
	}
	return humanize.Duration(age).String() + " ago"
}

func NewAgedTableLine(r drivestat.DriveRecord, now time.Time) AgedTableLine {
	l := NewTableLine(r)
	return AgedTableLine{
		Machine:   l.Machine,
		Drive:     l.Drive,
		Total:     l.Total,
		Used:      l.Used,
		Free:      l.Free,
		Percent:   l.Percent,
		Collected: l.Collected,
		Age:       formatAge(r.CollectedAt, now),
		Ratio:     l.Ratio,
	}
}

type RenderOptions struct {
	Age     bool   `short:"a" long:"age" description:"show how long ago each row was collected"`
	Machine string `short:"m" long:"machine" description:"only show the rows of this machine"`
}

// LoadRecords reads and parses the local copy of the shared file.
func (o *RenderOptions) LoadRecords(path string) ([]drivestat.DriveRecord, error) {
	table, err := internal.ReadTableFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", path, err)
	}
	records, err := table.Records()
	if err != nil {
		return nil, err
	}
	if len(o.Machine) == 0 {
		return records, nil
	}
	res := make([]drivestat.DriveRecord, 0, len(records))
	for _, r := range records {
		if r.Machine == o.Machine {
			res = append(res, r)
		}
	}
	return res, nil
}

// Render prints the shared file as a table on stdout. Rows are
// displayed in file order.
func (o *RenderOptions) Render(path string, now time.Time) error {
	records, err := o.LoadRecords(path)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no drive information")
		return nil
	}

	if o.Age == false {
		lines := make([]TableLine, len(records))
		for i, r := range records {
			lines[i] = NewTableLine(r)
		}
		tablifier.Tablify(lines)
		return nil
	}

	lines := make([]AgedTableLine, len(records))
	for i, r := range records {
		lines[i] = NewAgedTableLine(r, now)
	}
	tablifier.Tablify(lines)
	return nil
}
