package state

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Role is the forwarding role of a port once the spanning tree has converged.
type Role uint8

const (
	Blocked Role = iota
	Root
	Designated
)

func (r Role) String() string {
	switch r {
	case Blocked:
		return "BLOCKED"
	case Root:
		return "ROOT"
	case Designated:
		return "DESIGNATED"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

func (r Role) MarshalYAML() (any, error) {
	return r.String(), nil
}

// Cost is a path cost toward the root bridge. The zero value is Infinite,
// meaning no path is known yet. Port costs are uint32, path costs are summed
// in 64 bits.
type Cost struct {
	Value uint64
	Valid bool
}

// Infinite is the cost of a port or switch with no known path to the root.
var Infinite = Cost{}

func Finite(v uint64) Cost {
	return Cost{Value: v, Valid: true}
}

func (c Cost) IsInfinite() bool {
	return !c.Valid
}

// Add returns c extended by a port cost. Infinite stays infinite and a sum
// past math.MaxUint64 saturates there instead of wrapping.
func (c Cost) Add(v uint32) Cost {
	if !c.Valid {
		return Infinite
	}
	if c.Value > math.MaxUint64-uint64(v) {
		return Finite(math.MaxUint64)
	}
	return Finite(c.Value + uint64(v))
}

// Compare orders finite costs by value and every finite cost before Infinite.
func (c Cost) Compare(o Cost) int {
	switch {
	case c.Valid && o.Valid:
		return cmp.Compare(c.Value, o.Value)
	case c.Valid:
		return -1
	case o.Valid:
		return 1
	default:
		return 0
	}
}

func (c Cost) Less(o Cost) bool {
	return c.Compare(o) < 0
}

func (c Cost) String() string {
	if !c.Valid {
		return "inf"
	}
	return strconv.FormatUint(c.Value, 10)
}

func (c Cost) MarshalYAML() (any, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.Value, nil
}
