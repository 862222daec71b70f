package combobox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/combobox/internal/logger"
)

type logBuffer struct {
	bytes.Buffer
	log *logger.Logger
}

func newLogBuffer(t *testing.T) *logBuffer {
	t.Helper()

	buf := &logBuffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf.Buffer})
	require.NoError(t, err)
	buf.log = log
	return buf
}
