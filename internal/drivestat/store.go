package drivestat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"
	"github.com/drivestat/drivestat"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// A Store is the shared CSV file. Update performs a locked
// read-merge-write: all previous rows of the updating machine are
// replaced by the new ones, which are appended at the end of the
// file. Rows of other machines are kept verbatim and in order.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) lockPath() string {
	return s.path + ".lock"
}

func (s *Store) storeError(err error) error {
	return &drivestat.StoreError{Path: s.path, Err: err}
}

// Update merges records in the shared file. All records must belong
// to the same machine. If the file exists but is not writable, it is
// left untouched and an error wrapping drivestat.ErrNotWritable is
// returned.
func (s *Store) Update(records []drivestat.DriveRecord) (retError error) {
	if len(records) == 0 {
		return drivestat.ErrNoDriveCollected
	}

	lock, err := filemutex.New(s.lockPath())
	if err != nil {
		return s.storeError(fmt.Errorf("could not create lock: %w", err))
	}
	defer lock.Close()

	if err := lock.Lock(); err != nil {
		return s.storeError(fmt.Errorf("could not lock: %w", err))
	}
	defer func() {
		err := lock.Unlock()
		if retError == nil && err != nil {
			retError = s.storeError(fmt.Errorf("could not unlock: %w", err))
		}
	}()

	if err := s.checkWritable(); err != nil {
		return s.storeError(err)
	}

	rows, err := s.merge(records)
	if err != nil {
		return s.storeError(err)
	}

	if err := s.write(rows); err != nil {
		return s.storeError(err)
	}
	return nil
}

// Preview writes to w, without a byte order mark, the content the
// shared file would have after Update(records).
func (s *Store) Preview(w io.Writer, records []drivestat.DriveRecord) error {
	if len(records) == 0 {
		return drivestat.ErrNoDriveCollected
	}
	rows, err := s.merge(records)
	if err != nil {
		return s.storeError(err)
	}
	return writeRows(w, rows)
}

// Read returns the records of the shared file.
func (s *Store) Read() ([]drivestat.DriveRecord, error) {
	table, err := ReadTableFile(s.path)
	if err != nil {
		return nil, &drivestat.StoreError{Path: s.path, Err: err}
	}
	res, err := table.Records()
	if err != nil {
		return nil, &drivestat.StoreError{Path: s.path, Err: err}
	}
	return res, nil
}

func (s *Store) checkWritable() error {
	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if isWritable(s.path) == false {
		return drivestat.ErrNotWritable
	}
	return nil
}

func (s *Store) readRows() ([][]string, error) {
	table, err := ReadTableFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return table.Canonical()
}

func (s *Store) merge(records []drivestat.DriveRecord) ([][]string, error) {
	existing, err := s.readRows()
	if err != nil {
		return nil, err
	}

	machine := records[0].Machine
	res := make([][]string, 0, len(existing)+len(records))
	for _, row := range existing {
		if row[0] == machine {
			continue
		}
		res = append(res, row)
	}
	for _, r := range records {
		if r.Machine != machine {
			return nil, fmt.Errorf("records mix machines '%s' and '%s'", machine, r.Machine)
		}
		res = append(res, r.Fields())
	}
	return res, nil
}

func writeRows(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(drivestat.Columns); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// write replaces the shared file through a temporary file in the same
// directory, so readers never see a partial file.
func (s *Store) write(rows [][]string) (retError error) {
	mode := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if retError != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bom := transform.NewWriter(tmp, unicode.UTF8BOM.NewEncoder())
	if err := writeRows(bom, rows); err != nil {
		return err
	}
	if err := bom.Close(); err != nil {
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
