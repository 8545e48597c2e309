package drivestat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDriveCollected is returned when a collection pass did not
	// produce any record.
	ErrNoDriveCollected = errors.New("no drive information to update")
	// ErrNotWritable is returned when the shared file exists but
	// cannot be written by the current process.
	ErrNotWritable = errors.New("no write permission")
)

// A ConfigError reports a configuration file that is missing,
// malformed or incomplete.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration '%s': %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// A DriveQueryError reports a failure of the operating system to
// report the capacity of an existing drive. It aborts a collection
// pass.
type DriveQueryError struct {
	Drive string
	Err   error
}

func (e *DriveQueryError) Error() string {
	return fmt.Sprintf("could not get drive information for '%s': %s", e.Drive, e.Err)
}

func (e *DriveQueryError) Unwrap() error { return e.Err }

// A StoreError reports a failure to read or update the shared file.
type StoreError struct {
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("could not update '%s': %s", e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// A TransferError reports which step of a file transfer session
// failed: connect, login, retrieve, write, quit or verify.
type TransferError struct {
	Step string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("file transfer failed at %s: %s", e.Step, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// A RenderError reports a column of the shared file that cannot be
// displayed.
type RenderError struct {
	Column string
	Row    int
	Err    error
}

func (e *RenderError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("could not render column '%s': %s", e.Column, e.Err)
	}
	return fmt.Sprintf("could not render column '%s' at row %d: %s", e.Column, e.Row, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
