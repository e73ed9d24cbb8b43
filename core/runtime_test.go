package core

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/encodeous/stp/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopology(t *testing.T, desc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, os.WriteFile(path, []byte(desc), 0600))
	return path
}

func TestRun_Text(t *testing.T) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	res, err := Run(RunCfg{
		TopologyPath: writeTopology(t, triangle),
		LogLevel:     slog.LevelDebug,
		Out:          out,
		LogOut:       logs,
	})
	require.NoError(t, err)
	assert.Equal(t, []state.SwitchId{1, 2, 3}, res.Order)
	assert.Contains(t, out.String(), "Switch 1 (ROOT):\n")
	assert.Contains(t, out.String(), "   Port 2 is BLOCKED. Total cost: 2\n")
	assert.Contains(t, logs.String(), "converged")
	assert.Contains(t, logs.String(), "root port elected")
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "stp.log")
	_, err := Run(RunCfg{
		TopologyPath: writeTopology(t, withIsland),
		LogPath:      logPath,
		LogLevel:     slog.LevelInfo,
		Format:       "yaml",
		Out:          &bytes.Buffer{},
		LogOut:       &bytes.Buffer{},
	})
	require.NoError(t, err)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "switches have no path to the root")
	assert.NotContains(t, string(data), "root port elected")
}

func TestRun_InvalidTopology(t *testing.T) {
	_, err := Run(RunCfg{
		TopologyPath: writeTopology(t, `{"switches": [{"id": 1}, {"id": 2}]}`),
		Out:          &bytes.Buffer{},
		LogOut:       &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, state.ErrMissingRoot)
}

func TestRun_BadFormat(t *testing.T) {
	_, err := Run(RunCfg{
		TopologyPath: writeTopology(t, linearChain),
		Format:       "toml",
		Out:          &bytes.Buffer{},
		LogOut:       &bytes.Buffer{},
	})
	assert.Error(t, err)
}
