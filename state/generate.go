package state

import "fmt"

// cfgBuilder hands out port ids in order as links are added to a generated topology.
type cfgBuilder struct {
	cfg      TopologyCfg
	index    map[SwitchId]int
	nextPort map[SwitchId]PortId
	cost     *uint32
}

func newCfgBuilder(n int, cost uint32) *cfgBuilder {
	b := &cfgBuilder{
		index:    make(map[SwitchId]int, n),
		nextPort: make(map[SwitchId]PortId, n),
	}
	if cost != 0 && cost != DefaultPortCost {
		b.cost = &cost
	}
	for i := range n {
		id := SwitchId(i + 1)
		b.index[id] = i
		b.nextPort[id] = 1
		b.cfg.Switches = append(b.cfg.Switches, SwitchCfg{Id: id, Root: i == 0})
	}
	return b
}

func (b *cfgBuilder) port(sw SwitchId) PortId {
	p := b.nextPort[sw]
	b.nextPort[sw]++
	sc := &b.cfg.Switches[b.index[sw]]
	sc.Ports = append(sc.Ports, PortCfg{Id: p, Cost: b.cost})
	return p
}

func (b *cfgBuilder) link(x, y SwitchId) {
	px, py := b.port(x), b.port(y)
	b.cfg.Links = append(b.cfg.Links, LinkCfg{
		Switches: []SwitchId{x, y},
		Ports:    []PortId{px, py},
	})
}

// GenerateLine builds switches 1..n joined in a chain, rooted at switch 1.
func GenerateLine(n int, cost uint32) (*TopologyCfg, error) {
	if n < 1 {
		return nil, fmt.Errorf("line needs at least 1 switch, got %d", n)
	}
	b := newCfgBuilder(n, cost)
	for i := 1; i < n; i++ {
		b.link(SwitchId(i), SwitchId(i+1))
	}
	return &b.cfg, nil
}

// GenerateRing builds a chain of n switches and closes it back to switch 1.
func GenerateRing(n int, cost uint32) (*TopologyCfg, error) {
	if n < 3 {
		return nil, fmt.Errorf("ring needs at least 3 switches, got %d", n)
	}
	b := newCfgBuilder(n, cost)
	for i := 1; i < n; i++ {
		b.link(SwitchId(i), SwitchId(i+1))
	}
	b.link(SwitchId(n), 1)
	return &b.cfg, nil
}

// GenerateMesh links every pair of the n switches.
func GenerateMesh(n int, cost uint32) (*TopologyCfg, error) {
	if n < 2 {
		return nil, fmt.Errorf("mesh needs at least 2 switches, got %d", n)
	}
	b := newCfgBuilder(n, cost)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			b.link(SwitchId(i), SwitchId(j))
		}
	}
	return &b.cfg, nil
}
