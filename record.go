package drivestat

import "strconv"

// TimeLayout is the layout of the collection timestamp column.
const TimeLayout = "2006-01-02 15:04:05"

const GiB = 1024 * 1024 * 1024

// Column names of the shared CSV file, in file order. They are part of
// the file format shared with existing deployments and must not be
// translated.
const (
	ColumnMachine   = "컴퓨터 명"
	ColumnDrive     = "드라이브"
	ColumnTotal     = "드라이브 용량 (GB)"
	ColumnUsed      = "사용한 용량 (GB)"
	ColumnFree      = "남은 용량 (GB)"
	ColumnPercent   = "사용 비율 (%)"
	ColumnCollected = "수집 시간"

	// ColumnRatio is not stored, the viewer synthesizes it from
	// ColumnPercent.
	ColumnRatio = "비율"
)

var Columns = []string{
	ColumnMachine,
	ColumnDrive,
	ColumnTotal,
	ColumnUsed,
	ColumnFree,
	ColumnPercent,
	ColumnCollected,
}

// A DriveRecord is one row of the shared CSV file: the capacity of a
// single drive of a machine at collection time.
type DriveRecord struct {
	Machine      string
	Drive        string
	TotalGB      float64
	UsedGB       float64
	FreeGB       float64
	UsagePercent float64
	CollectedAt  string
}

// Fields returns the record as CSV fields, in Columns order.
func (r DriveRecord) Fields() []string {
	return []string{
		r.Machine,
		r.Drive,
		formatFloat(r.TotalGB),
		formatFloat(r.UsedGB),
		formatFloat(r.FreeGB),
		formatFloat(r.UsagePercent),
		r.CollectedAt,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
