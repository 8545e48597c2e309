package drivestat

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/drivestat/drivestat"
	"github.com/gabriel-vasile/mimetype"
	"github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus"
)

// A TransferSession is an authenticated file transfer connection.
type TransferSession interface {
	Login(user, password string) error
	Retrieve(path string) (io.ReadCloser, error)
	Quit() error
}

type Dialer interface {
	Dial(ctx context.Context, address string, timeout time.Duration) (TransferSession, error)
}

// FTPDialer opens FTP sessions.
type FTPDialer struct{}

type ftpSession struct {
	conn *ftp.ServerConn
}

func (FTPDialer) Dial(ctx context.Context, address string, timeout time.Duration) (TransferSession, error) {
	conn, err := ftp.Dial(address, ftp.DialWithContext(ctx), ftp.DialWithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	return ftpSession{conn: conn}, nil
}

func (s ftpSession) Login(user, password string) error {
	return s.conn.Login(user, password)
}

// Retrieve downloads path in binary mode, which the client selects at
// login.
func (s ftpSession) Retrieve(path string) (io.ReadCloser, error) {
	return s.conn.Retr(path)
}

func (s ftpSession) Quit() error {
	return s.conn.Quit()
}

// A Downloader fetches the shared file to a local path. The local
// file is only replaced once the whole transfer succeeded.
type Downloader struct {
	Dialer Dialer
	Config FTPConfig
	Logger *logrus.Entry
}

func transferError(step string, err error) error {
	return &drivestat.TransferError{Step: step, Err: err}
}

func (d *Downloader) Download(ctx context.Context, localPath string) (retError error) {
	address := d.Config.Address()
	session, err := d.Dialer.Dial(ctx, address, d.Config.Timeout)
	if err != nil {
		return transferError("connect", err)
	}
	quitted := false
	defer func() {
		if quitted == true {
			return
		}
		if err := session.Quit(); err != nil && d.Logger != nil {
			d.Logger.WithError(err).Warn("could not close session")
		}
	}()

	if err := session.Login(d.Config.Username, d.Config.Password); err != nil {
		return transferError("login", err)
	}

	tmpPath, err := d.retrieve(session, localPath)
	if err != nil {
		return err
	}
	defer func() {
		if retError != nil {
			os.Remove(tmpPath)
		}
	}()

	quitted = true
	if err := session.Quit(); err != nil {
		return transferError("quit", err)
	}

	if err := checkTextual(tmpPath); err != nil {
		return transferError("verify", err)
	}

	if err := os.Rename(tmpPath, localPath); err != nil {
		return transferError("write", err)
	}

	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{
			"server": address,
			"remote": d.Config.RemoteFile,
			"file":   localPath,
		}).Info("file downloaded")
	}
	return nil
}

func (d *Downloader) retrieve(session TransferSession, localPath string) (string, error) {
	dir := filepath.Dir(localPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", transferError("write", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(localPath)+".*")
	if err != nil {
		return "", transferError("write", err)
	}

	fail := func(step string, err error) (string, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", transferError(step, err)
	}

	body, err := session.Retrieve(d.Config.RemoteFile)
	if err != nil {
		return fail("retrieve", err)
	}

	_, err = io.Copy(tmp, body)
	if closeErr := body.Close(); err == nil && closeErr != nil {
		return fail("retrieve", closeErr)
	}
	if err != nil {
		return fail("retrieve", err)
	}

	if err := tmp.Close(); err != nil {
		return fail("write", err)
	}
	return tmp.Name(), nil
}

// checkTextual rejects downloaded content which is not text, such as
// an HTML error page or an archive.
func checkTextual(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}
	if mtype.Is("text/html") {
		return fmt.Errorf("unexpected content type %s", mtype.String())
	}
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("unexpected content type %s", mtype.String())
}
