package core

import (
	"testing"

	"github.com/encodeous/stp/state"
	"github.com/stretchr/testify/require"
)

// MustTopology builds a topology from its YAML (or JSON) description.
func MustTopology(t *testing.T, desc string) *state.Topology {
	t.Helper()
	cfg, err := state.ParseTopologyConfig([]byte(desc))
	require.NoError(t, err)
	require.NoError(t, state.TopologyConfigValidator(cfg))
	tp, err := state.BuildTopology(cfg)
	require.NoError(t, err)
	return tp
}

func port(t *testing.T, tp *state.Topology, sw state.SwitchId, p state.PortId) *state.Port {
	t.Helper()
	res, err := tp.Port(state.PortRef{Switch: sw, Port: p})
	require.NoError(t, err)
	return res
}

func rootPort(t *testing.T, tp *state.Topology, sw state.SwitchId) state.PortId {
	t.Helper()
	s, err := tp.Switch(sw)
	require.NoError(t, err)
	require.NotNil(t, s.RootPort, "switch %d has no root port", sw)
	return *s.RootPort
}

const linearChain = `
switches:
  - {id: 1, root: true, ports: [{id: 1}]}
  - {id: 2, ports: [{id: 1}, {id: 2}]}
  - {id: 3, ports: [{id: 1}]}
links:
  - {switches: [1, 2], ports: [1, 1]}
  - {switches: [2, 3], ports: [2, 1]}
`

const parallelLinks = `
switches:
  - {id: 1, root: true, ports: [{id: 1}, {id: 2}]}
  - {id: 2, ports: [{id: 2}, {id: 1}]}
links:
  - {switches: [1, 2], ports: [2, 2]}
  - {switches: [1, 2], ports: [1, 1]}
`

const triangle = `{
  "switches": [
    {"id": 1, "root": true, "ports": [{"id": 1}, {"id": 2}]},
    {"id": 2, "ports": [{"id": 1}, {"id": 2}]},
    {"id": 3, "ports": [{"id": 1}, {"id": 2}]}
  ],
  "links": [
    {"switches": [1, 2], "ports": [1, 1]},
    {"switches": [1, 3], "ports": [2, 1]},
    {"switches": [2, 3], "ports": [2, 2]}
  ]
}`

const withIsland = `
switches:
  - {id: 1, root: true, ports: [{id: 1}]}
  - {id: 2, ports: [{id: 1}]}
  - {id: 3, ports: [{id: 1}]}
  - {id: 4, ports: [{id: 1}, {id: 2}]}
links:
  - {switches: [1, 2], ports: [1, 1]}
  - {switches: [3, 4], ports: [1, 1]}
`
