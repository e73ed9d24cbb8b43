package state

const (
	// DefaultPortCost is the administrative cost of a port when none is configured.
	DefaultPortCost = uint32(1)
	// DefaultBridgeId is shared by every switch; the root is designated, not elected.
	DefaultBridgeId = BridgeId(32768)
)

// Defaults holds the construction constants of a Topology. They are passed
// explicitly so that building a topology never depends on package state.
type Defaults struct {
	PortCost uint32   `yaml:"port_cost,omitempty" validate:"omitempty,min=1"`
	BridgeId BridgeId `yaml:"bridge_id,omitempty"`
}

func DefaultDefaults() Defaults {
	return Defaults{
		PortCost: DefaultPortCost,
		BridgeId: DefaultBridgeId,
	}
}

// orDefault fills zero fields from DefaultDefaults.
func (d Defaults) orDefault() Defaults {
	def := DefaultDefaults()
	if d.PortCost == 0 {
		d.PortCost = def.PortCost
	}
	if d.BridgeId == 0 {
		d.BridgeId = def.BridgeId
	}
	return d
}
