package state

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Sentinel errors for topology construction.
var (
	// ErrDuplicateRoot is returned when a second switch is flagged as root.
	ErrDuplicateRoot = errors.New("state: duplicate root switch")

	// ErrMissingRoot is returned when convergence is requested without a root switch.
	ErrMissingRoot = errors.New("state: no root switch")

	// ErrAlreadyLinked is returned when a link targets a port that already has a peer.
	ErrAlreadyLinked = errors.New("state: port already linked")

	// ErrUnknownReference is returned when a switch or port id is not in the topology.
	ErrUnknownReference = errors.New("state: unknown reference")

	// ErrDuplicateSwitch is returned when a switch id is registered twice.
	ErrDuplicateSwitch = errors.New("state: duplicate switch")

	// ErrDuplicatePort is returned when a port id is added twice to the same switch.
	ErrDuplicatePort = errors.New("state: duplicate port")

	// ErrSelfLink is returned when both ends of a link are on the same switch.
	ErrSelfLink = errors.New("state: link endpoints on the same switch")
)

type SwitchId int
type PortId int
type BridgeId uint16

// PortRef names a port by its owning switch. Peers and owners are stored as
// references and resolved through the Topology.
type PortRef struct {
	Switch SwitchId `yaml:"switch"`
	Port   PortId   `yaml:"port"`
}

func (r PortRef) String() string {
	return fmt.Sprintf("%d/%d", r.Switch, r.Port)
}

// Compare orders references by switch id, then port id.
func (r PortRef) Compare(o PortRef) int {
	if c := cmp.Compare(r.Switch, o.Switch); c != 0 {
		return c
	}
	return cmp.Compare(r.Port, o.Port)
}

type Port struct {
	Id     PortId
	Switch SwitchId
	Cost   uint32 // administrative cost of egressing this port
	Role   Role
	Peer   *PortRef // nil when unconnected
}

func (p *Port) Ref() PortRef {
	return PortRef{Switch: p.Switch, Port: p.Id}
}

func (p *Port) IsLinked() bool {
	return p.Peer != nil
}

// initialRole is DESIGNATED on the root switch and BLOCKED elsewhere.
func initialRole(isRoot bool) Role {
	if isRoot {
		return Designated
	}
	return Blocked
}

type Switch struct {
	Id        SwitchId
	BridgeId  BridgeId
	IsRoot    bool
	TotalCost Cost    // 0 on the root, Infinite until computed elsewhere
	RootPort  *PortId // nil on the root and on unreachable switches
	Ports     map[PortId]*Port
}

// SortedPorts returns the ports of the switch in ascending id order.
func (s *Switch) SortedPorts() []*Port {
	ports := make([]*Port, 0, len(s.Ports))
	for _, id := range slices.Sorted(maps.Keys(s.Ports)) {
		ports = append(ports, s.Ports[id])
	}
	return ports
}

func (s *Switch) HasRootPort() bool {
	return s.RootPort != nil
}

// Topology owns every switch and port of a network. It is built once, handed
// to the convergence engine for a single pass, and read-only afterwards.
// Topology is not safe for concurrent use.
type Topology struct {
	Defaults Defaults
	Switches map[SwitchId]*Switch
	Root     *Switch
}

func NewTopology(defaults Defaults) *Topology {
	return &Topology{
		Defaults: defaults.orDefault(),
		Switches: make(map[SwitchId]*Switch),
	}
}

// AddSwitch registers a switch carrying the default bridge id.
func (t *Topology) AddSwitch(id SwitchId, isRoot bool) (*Switch, error) {
	return t.AddSwitchWithBridge(id, isRoot, t.Defaults.BridgeId)
}

func (t *Topology) AddSwitchWithBridge(id SwitchId, isRoot bool, bid BridgeId) (*Switch, error) {
	if _, ok := t.Switches[id]; ok {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateSwitch, id)
	}
	if isRoot && t.Root != nil {
		return nil, fmt.Errorf("%w: %d is already root, cannot add %d", ErrDuplicateRoot, t.Root.Id, id)
	}
	sw := &Switch{
		Id:       id,
		BridgeId: bid,
		IsRoot:   isRoot,
		Ports:    make(map[PortId]*Port),
	}
	if isRoot {
		sw.TotalCost = Finite(0)
		t.Root = sw
	}
	t.Switches[id] = sw
	return sw, nil
}

// AddDefaultPort creates a port with the topology's default cost.
func (t *Topology) AddDefaultPort(switchId SwitchId, portId PortId) (*Port, error) {
	return t.AddPort(switchId, portId, t.Defaults.PortCost)
}

func (t *Topology) AddPort(switchId SwitchId, portId PortId, cost uint32) (*Port, error) {
	sw, ok := t.Switches[switchId]
	if !ok {
		return nil, fmt.Errorf("%w: switch %d", ErrUnknownReference, switchId)
	}
	if _, ok := sw.Ports[portId]; ok {
		return nil, fmt.Errorf("%w: %d on switch %d", ErrDuplicatePort, portId, switchId)
	}
	p := &Port{
		Id:     portId,
		Switch: switchId,
		Cost:   cost,
		Role:   initialRole(sw.IsRoot),
	}
	sw.Ports[portId] = p
	return p, nil
}

// Link connects two ports symmetrically. Neither side is modified unless both
// can be linked.
func (t *Topology) Link(a, b PortRef) error {
	pa, err := t.Port(a)
	if err != nil {
		return err
	}
	pb, err := t.Port(b)
	if err != nil {
		return err
	}
	if a.Switch == b.Switch {
		return fmt.Errorf("%w: %s and %s", ErrSelfLink, a, b)
	}
	if pa.IsLinked() {
		return fmt.Errorf("%w: %s is linked to %s", ErrAlreadyLinked, a, *pa.Peer)
	}
	if pb.IsLinked() {
		return fmt.Errorf("%w: %s is linked to %s", ErrAlreadyLinked, b, *pb.Peer)
	}
	pa.Peer = &b
	pb.Peer = &a
	return nil
}

func (t *Topology) Switch(id SwitchId) (*Switch, error) {
	sw, ok := t.Switches[id]
	if !ok {
		return nil, fmt.Errorf("%w: switch %d", ErrUnknownReference, id)
	}
	return sw, nil
}

func (t *Topology) Port(ref PortRef) (*Port, error) {
	sw, err := t.Switch(ref.Switch)
	if err != nil {
		return nil, err
	}
	p, ok := sw.Ports[ref.Port]
	if !ok {
		return nil, fmt.Errorf("%w: port %s", ErrUnknownReference, ref)
	}
	return p, nil
}

// Peer resolves the port on the other end of p's link, or nil when unlinked.
func (t *Topology) Peer(p *Port) *Port {
	if p.Peer == nil {
		return nil
	}
	sw, ok := t.Switches[p.Peer.Switch]
	if !ok {
		return nil
	}
	return sw.Ports[p.Peer.Port]
}

// PeerSwitch resolves the switch on the other end of p's link, or nil when unlinked.
func (t *Topology) PeerSwitch(p *Port) *Switch {
	if p.Peer == nil {
		return nil
	}
	return t.Switches[p.Peer.Switch]
}

// Neighbors returns the distinct switches one link away from id, ascending by id.
// Parallel links to the same switch count once.
func (t *Topology) Neighbors(id SwitchId) []*Switch {
	sw, ok := t.Switches[id]
	if !ok {
		return nil
	}
	found := make(map[SwitchId]*Switch)
	for _, p := range sw.Ports {
		if peer := t.PeerSwitch(p); peer != nil {
			found[peer.Id] = peer
		}
	}
	neighbors := make([]*Switch, 0, len(found))
	for _, nid := range slices.Sorted(maps.Keys(found)) {
		neighbors = append(neighbors, found[nid])
	}
	return neighbors
}

// TotalCost is the cost of reaching the root through p: its own cost plus the
// peer switch's total cost. Infinite when p is unlinked or the peer's cost is unknown.
func (t *Topology) TotalCost(p *Port) Cost {
	peer := t.PeerSwitch(p)
	if peer == nil {
		return Infinite
	}
	return peer.TotalCost.Add(p.Cost)
}

// SortedSwitches returns every switch in ascending id order.
func (t *Topology) SortedSwitches() []*Switch {
	switches := make([]*Switch, 0, len(t.Switches))
	for _, id := range slices.Sorted(maps.Keys(t.Switches)) {
		switches = append(switches, t.Switches[id])
	}
	return switches
}

// Links returns every link once. Each pair holds the lower port reference
// first and the list is sorted.
func (t *Topology) Links() []Pair[PortRef, PortRef] {
	links := make([]Pair[PortRef, PortRef], 0)
	for _, sw := range t.Switches {
		for _, p := range sw.Ports {
			if p.Peer == nil {
				continue
			}
			link := MakeSortedPairFunc(p.Ref(), *p.Peer, PortRef.Compare)
			if link.V1 == p.Ref() {
				links = append(links, link)
			}
		}
	}
	SortPairsFunc(links, PortRef.Compare, PortRef.Compare)
	return links
}

// Validate reports whether the topology can be converged.
func (t *Topology) Validate() error {
	if t.Root == nil {
		return ErrMissingRoot
	}
	return nil
}

// Reset restores every switch and port to its pre-convergence state.
func (t *Topology) Reset() {
	for _, sw := range t.Switches {
		sw.RootPort = nil
		if sw.IsRoot {
			sw.TotalCost = Finite(0)
		} else {
			sw.TotalCost = Infinite
		}
		for _, p := range sw.Ports {
			p.Role = initialRole(sw.IsRoot)
		}
	}
}
