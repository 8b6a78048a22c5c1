package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSink(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	ws, err := newSink("")
	require.NoError(t, err)
	require.NotNil(t, ws)

	ws, err = newSink(filepath.Join(dir, "missing", "lending.log"))
	require.Error(t, err)
	require.NotNil(t, ws)

	path := filepath.Join(dir, "lending.log")
	_, err = newSink(path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestNewLogger_BadSinkStillLogs(t *testing.T) {
	t.Parallel()
	log := NewLogger(Log{Sink: filepath.Join(t.TempDir(), "missing", "lending.log")}, "test")
	require.NotNil(t, log)
	require.Equal(t, "test", log.Name())
}
