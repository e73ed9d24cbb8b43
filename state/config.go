package state

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type PortCfg struct {
	Id   PortId  `yaml:"id"`
	Cost *uint32 `yaml:"cost,omitempty" validate:"omitempty,min=1"` // falls back to Defaults.PortCost
}

type SwitchCfg struct {
	Id       SwitchId  `yaml:"id"`
	Root     bool      `yaml:"root,omitempty"`
	BridgeId *BridgeId `yaml:"bridge_id,omitempty"` // falls back to Defaults.BridgeId
	Ports    []PortCfg `yaml:"ports" validate:"dive"`
}

// LinkCfg joins Ports[0] on Switches[0] with Ports[1] on Switches[1].
type LinkCfg struct {
	Switches []SwitchId `yaml:"switches" validate:"len=2"`
	Ports    []PortId   `yaml:"ports" validate:"len=2"`
}

func (l LinkCfg) Refs() (PortRef, PortRef) {
	return PortRef{Switch: l.Switches[0], Port: l.Ports[0]},
		PortRef{Switch: l.Switches[1], Port: l.Ports[1]}
}

// TopologyCfg is the on-disk description of a network. JSON is accepted as
// well, since it is a subset of YAML.
type TopologyCfg struct {
	Defaults Defaults    `yaml:"defaults,omitempty"`
	Switches []SwitchCfg `yaml:"switches" validate:"required,min=1,dive"`
	Links    []LinkCfg   `yaml:"links,omitempty" validate:"dive"`
}

func ReadTopologyConfig(path string) (*TopologyCfg, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTopologyConfig(file)
}

func ParseTopologyConfig(data []byte) (*TopologyCfg, error) {
	var cfg TopologyCfg
	err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict())
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func WriteTopologyConfig(path string, cfg *TopologyCfg) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildTopology populates a Topology from its description: every switch, then
// every port, then every link.
func BuildTopology(cfg *TopologyCfg) (*Topology, error) {
	t := NewTopology(cfg.Defaults)
	for _, sc := range cfg.Switches {
		bid := t.Defaults.BridgeId
		if sc.BridgeId != nil {
			bid = *sc.BridgeId
		}
		if _, err := t.AddSwitchWithBridge(sc.Id, sc.Root, bid); err != nil {
			return nil, err
		}
	}
	for _, sc := range cfg.Switches {
		for _, pc := range sc.Ports {
			cost := t.Defaults.PortCost
			if pc.Cost != nil {
				cost = *pc.Cost
			}
			if _, err := t.AddPort(sc.Id, pc.Id, cost); err != nil {
				return nil, err
			}
		}
	}
	for i, lc := range cfg.Links {
		if len(lc.Switches) != 2 || len(lc.Ports) != 2 {
			return nil, fmt.Errorf("link %d: expected two switches and two ports", i)
		}
		a, b := lc.Refs()
		if err := t.Link(a, b); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}
	return t, nil
}

// LoadTopology reads, validates and builds the topology stored at path.
func LoadTopology(path string) (*Topology, error) {
	cfg, err := ReadTopologyConfig(path)
	if err != nil {
		return nil, err
	}
	err = TopologyConfigValidator(cfg)
	if err != nil {
		return nil, err
	}
	return BuildTopology(cfg)
}
