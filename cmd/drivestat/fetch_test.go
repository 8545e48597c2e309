package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/drivestat/drivestat"
	internal "github.com/drivestat/drivestat/internal/drivestat"
	"github.com/drivestat/drivestat/internal/drivestat/mock_drivestat"
	"github.com/golang/mock/gomock"
	. "gopkg.in/check.v1"
)

type FetchSuite struct {
	ctrl    *gomock.Controller
	dialer  *mock_drivestat.MockDialer
	session *mock_drivestat.MockTransferSession
	config  *internal.ViewerConfig
}

var _ = Suite(&FetchSuite{})

func (s *FetchSuite) SetUpTest(c *C) {
	s.ctrl = gomock.NewController(c)
	s.dialer = mock_drivestat.NewMockDialer(s.ctrl)
	s.session = mock_drivestat.NewMockTransferSession(s.ctrl)
	dialer = s.dialer
	s.config = &internal.ViewerConfig{
		FTP: internal.FTPConfig{
			Server:     "10.0.0.2:2121",
			Username:   "anonymous",
			RemoteFile: "drives.csv",
			Timeout:    5 * time.Second,
		},
		LocalFile: filepath.Join(c.MkDir(), "drives.csv"),
	}
}

func (s *FetchSuite) TearDownTest(c *C) {
	dialer = internal.FTPDialer{}
	s.ctrl.Finish()
}

func (s *FetchSuite) TestFetchesThenRenders(c *C) {
	content := strings.Join(drivestat.Columns, ",") + "\n" +
		"athens,/,10,5,5,50.0,2024-05-01 10:00:00\n"
	gomock.InOrder(
		s.dialer.EXPECT().Dial(gomock.Any(), "10.0.0.2:2121", 5*time.Second).Return(s.session, nil),
		s.session.EXPECT().Login("anonymous", "").Return(nil),
		s.session.EXPECT().Retrieve("drives.csv").Return(io.NopCloser(strings.NewReader(content)), nil),
		s.session.EXPECT().Quit().Return(nil),
	)

	c.Assert(fetch(context.Background(), s.config), IsNil)
	records, err := (&RenderOptions{}).LoadRecords(s.config.LocalFile)
	c.Assert(err, IsNil)
	c.Check(records, HasLen, 1)
}

func (s *FetchSuite) TestFailedFetchLeavesNothingToRender(c *C) {
	gomock.InOrder(
		s.dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).Return(s.session, nil),
		s.session.EXPECT().Login(gomock.Any(), gomock.Any()).Return(errors.New("530 Login incorrect.")),
		s.session.EXPECT().Quit().Return(nil),
	)

	err := fetch(context.Background(), s.config)
	var transferErr *drivestat.TransferError
	c.Assert(errors.As(err, &transferErr), Equals, true)
	c.Check(transferErr.Step, Equals, "login")
	_, err = os.Stat(s.config.LocalFile)
	c.Check(errors.Is(err, os.ErrNotExist), Equals, true)
}
