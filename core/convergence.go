package core

import (
	"log/slog"
	"time"

	"github.com/encodeous/stp/perf"
	"github.com/encodeous/stp/state"
)

type EngineEvent int

const (
	RootPortElected EngineEvent = iota
	PortDesignated
	SwitchUnreachable
	SwitchIsolated // reachable in the graph, but no port had a finite cost
)

func (e EngineEvent) String() string {
	switch e {
	case RootPortElected:
		return "root port elected"
	case PortDesignated:
		return "port designated"
	case SwitchUnreachable:
		return "switch unreachable"
	case SwitchIsolated:
		return "switch isolated"
	default:
		return "unknown event"
	}
}

type Option func(*engine)

// WithLogger sends election events to log at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithVisitHook is called for every switch in BFS order, before it is processed.
func WithVisitHook(fn func(sw *state.Switch, depth int)) Option {
	return func(e *engine) {
		if fn != nil {
			e.onVisit = fn
		}
	}
}

// WithEventHook receives every engine event with its key/value arguments.
func WithEventHook(fn func(ev EngineEvent, args ...any)) Option {
	return func(e *engine) {
		e.onEvent = fn
	}
}

func withClock(now func() time.Time) Option {
	return func(e *engine) {
		e.now = now
	}
}

type engine struct {
	t       *state.Topology
	log     *slog.Logger
	now     func() time.Time
	onVisit func(sw *state.Switch, depth int)
	onEvent func(ev EngineEvent, args ...any)
}

func (e *engine) event(ev EngineEvent, args ...any) {
	e.log.Debug(ev.String(), args...)
	if e.onEvent != nil {
		e.onEvent(ev, args...)
	}
}

// Result describes one convergence pass. Roles and costs live on the Topology.
type Result struct {
	Order       []state.SwitchId
	Depth       map[state.SwitchId]int
	Unreachable []state.SwitchId
	Elapsed     time.Duration
}

// RunConvergence computes every switch's root port and every port's role in place.
func RunConvergence(t *state.Topology) error {
	_, err := Converge(t)
	return err
}

// Converge resets the topology's derived state and runs one breadth-first
// election pass from the root. The only error is state.ErrMissingRoot;
// unreachable switches are a normal outcome and are listed in the Result.
func Converge(t *state.Topology, opts ...Option) (*Result, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	e := &engine{
		t:       t,
		log:     slog.New(slog.DiscardHandler),
		now:     time.Now,
		onVisit: func(*state.Switch, int) {},
	}
	for _, opt := range opts {
		opt(e)
	}

	t.Reset()
	start := e.now()
	res := &Result{
		Order: make([]state.SwitchId, 0, len(t.Switches)),
		Depth: make(map[state.SwitchId]int, len(t.Switches)),
	}
	for v := range walk(t) {
		res.Order = append(res.Order, v.Id)
		res.Depth[v.Id] = v.Depth
		e.onVisit(v.Switch, v.Depth)
		if v.IsRoot {
			continue
		}
		if !e.findRootPort(v.Switch) {
			e.event(SwitchIsolated, "switch", v.Id)
		}
	}
	for _, sw := range t.SortedSwitches() {
		if _, ok := res.Depth[sw.Id]; !ok {
			res.Unreachable = append(res.Unreachable, sw.Id)
			e.event(SwitchUnreachable, "switch", sw.Id)
		}
	}
	res.Elapsed = e.now().Sub(start)

	perf.ConvergenceLatency.Add(float64(res.Elapsed.Microseconds()))
	perf.SwitchesVisited.Add(float64(len(res.Order)))
	perf.SwitchesUnreachable.Add(float64(len(res.Unreachable)))
	return res, nil
}

// FindRootPort elects the root port of a single non-root switch and settles
// the roles of its remaining links. It reports false, leaving everything
// untouched, when no port has a finite cost to the root.
func FindRootPort(t *state.Topology, sw *state.Switch) bool {
	e := &engine{t: t, log: slog.New(slog.DiscardHandler)}
	return e.findRootPort(sw)
}

func (e *engine) findRootPort(sw *state.Switch) bool {
	if sw.IsRoot {
		return false
	}

	// lowest total cost wins, then the lowest port id. Ports are scanned in
	// ascending id order, so the first port at the minimum is the winner.
	var elected *state.Port
	best := state.Infinite
	for _, p := range sw.SortedPorts() {
		cost := e.t.TotalCost(p)
		if cost.IsInfinite() {
			continue
		}
		if cost.Less(best) {
			best = cost
			elected = p
		}
	}
	if elected == nil {
		return false
	}

	id := elected.Id
	sw.RootPort = &id
	sw.TotalCost = best
	elected.Role = state.Root
	if peer := e.t.Peer(elected); peer != nil {
		peer.Role = state.Designated
	}
	e.event(RootPortElected, "switch", sw.Id, "port", elected.Id, "cost", best)

	for _, p := range sw.SortedPorts() {
		if p == elected || e.t.TotalCost(p).IsInfinite() {
			continue
		}
		peer := e.t.Peer(p)
		if p.Role != state.Blocked || peer.Role != state.Blocked {
			continue
		}
		// equal costs favour the switch being processed
		peerSw := e.t.PeerSwitch(p)
		if sw.TotalCost.Compare(peerSw.TotalCost) <= 0 {
			p.Role = state.Designated
			e.event(PortDesignated, "port", p.Ref(), "over", peer.Ref())
		} else {
			peer.Role = state.Designated
			e.event(PortDesignated, "port", peer.Ref(), "over", p.Ref())
		}
	}
	return true
}
