package shared_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/Timofon/Smart-pointers/shared"
)

func TestLeakTracking(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	shared.SetLeakLogger(logger)
	shared.EnableLeakTracking()
	defer shared.DisableLeakTracking()

	p := shared.New("leaky")
	q := shared.FromPointer(new(int))

	require.Equal(2, shared.ReportLeaks())
	require.Contains(buf.String(), "live control block")

	q.Release()
	require.Equal(1, shared.ReportLeaks())

	p.Release()
	require.Equal(0, shared.ReportLeaks())
}

func TestLeakTrackingOffByDefault(t *testing.T) {
	require := require.New(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	shared.SetLeakLogger(logger)

	p := shared.New(1)
	defer p.Release()
	require.Equal(0, shared.ReportLeaks())
}
