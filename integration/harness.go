//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/encodeous/stp/core"
	"github.com/encodeous/stp/state"
)

// TopologyHarness drives a generated topology through the same file based
// path as the CLI: write the description, load it back, converge and report.
type TopologyHarness struct {
	Dir      string
	Cfg      *state.TopologyCfg
	Topology *state.Topology
	Result   *core.Result
	Output   bytes.Buffer
	Logs     bytes.Buffer
}

func (h *TopologyHarness) Generate(kind string, n int, cost uint32) error {
	var err error
	switch kind {
	case "line":
		h.Cfg, err = state.GenerateLine(n, cost)
	case "ring":
		h.Cfg, err = state.GenerateRing(n, cost)
	case "mesh":
		h.Cfg, err = state.GenerateMesh(n, cost)
	default:
		err = fmt.Errorf("unknown topology kind %s", kind)
	}
	return err
}

func (h *TopologyHarness) path() string {
	return filepath.Join(h.Dir, "topology.yaml")
}

// Run writes the description, runs the full pipeline and keeps a converged
// copy of the topology for assertions.
func (h *TopologyHarness) Run(format string) error {
	err := state.WriteTopologyConfig(h.path(), h.Cfg)
	if err != nil {
		return err
	}
	h.Result, err = core.Run(core.RunCfg{
		TopologyPath: h.path(),
		LogLevel:     slog.LevelDebug,
		Format:       format,
		Out:          &h.Output,
		LogOut:       &h.Logs,
	})
	if err != nil {
		return err
	}
	h.Topology, err = state.LoadTopology(h.path())
	if err != nil {
		return err
	}
	return core.RunConvergence(h.Topology)
}

func (h *TopologyHarness) Cost(id state.SwitchId) state.Cost {
	return h.Topology.Switches[id].TotalCost
}
