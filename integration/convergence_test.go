//go:build integration

package integration

import (
	"fmt"
	"testing"

	"github.com/encodeous/stp/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestLineConvergence(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := &TopologyHarness{Dir: t.TempDir()}
	require.NoError(t, h.Generate("line", 50, 2))
	require.NoError(t, h.Run("text"))

	assert.Len(t, h.Result.Order, 50)
	for i := 1; i <= 50; i++ {
		assert.Equal(t, state.Finite(uint64(2*(i-1))), h.Cost(state.SwitchId(i)))
	}
	assert.Contains(t, h.Output.String(), "Switch 50:\n   Port 1 is ROOT. Total cost: 98\n")
}

func TestRingConvergence(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 101
	h := &TopologyHarness{Dir: t.TempDir()}
	require.NoError(t, h.Generate("ring", n, 1))
	require.NoError(t, h.Run("yaml"))

	for i := 1; i <= n; i++ {
		want := uint64(min(i-1, n-i+1))
		assert.Equal(t, state.Finite(want), h.Cost(state.SwitchId(i)), "switch %d", i)
	}

	// exactly one link of the ring is cut
	blocked := 0
	for _, link := range h.Topology.Links() {
		a, _ := h.Topology.Port(link.V1)
		b, _ := h.Topology.Port(link.V2)
		if a.Role == state.Blocked || b.Role == state.Blocked {
			blocked++
		}
	}
	assert.Equal(t, 1, blocked)
	assert.Contains(t, h.Output.String(), "role: ROOT")
}

func TestMeshConvergence(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 20
	h := &TopologyHarness{Dir: t.TempDir()}
	require.NoError(t, h.Generate("mesh", n, 1))
	require.NoError(t, h.Run("json"))

	for i := 2; i <= n; i++ {
		sw := h.Topology.Switches[state.SwitchId(i)]
		require.NotNil(t, sw.RootPort)
		assert.Equal(t, state.PortId(1), *sw.RootPort, "switch %d", i)
		assert.Equal(t, state.Finite(1), sw.TotalCost)
	}
	// equal-cost disputes go to the switch processed later, the first to see both costs
	for i := 2; i <= n; i++ {
		for _, p := range h.Topology.Switches[state.SwitchId(i)].SortedPorts() {
			if p.Role == state.Root {
				continue
			}
			peer := h.Topology.Peer(p)
			if peer.Switch == 1 {
				continue
			}
			wantDesignated := p.Switch > peer.Switch
			assert.Equal(t, wantDesignated, p.Role == state.Designated, fmt.Sprintf("port %s", p.Ref()))
		}
	}
	assert.Contains(t, h.Logs.String(), "converged")
}
