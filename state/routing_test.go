package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleString(t *testing.T) {
	assert.Equal(t, "BLOCKED", Blocked.String())
	assert.Equal(t, "ROOT", Root.String())
	assert.Equal(t, "DESIGNATED", Designated.String())
	assert.Equal(t, "Role(7)", Role(7).String())
	assert.Equal(t, Blocked, Role(0), "zero value must be BLOCKED")
}

func TestCost_Infinite(t *testing.T) {
	var c Cost
	assert.True(t, c.IsInfinite())
	assert.Equal(t, Infinite, c)
	assert.Equal(t, "inf", c.String())
	assert.Equal(t, Infinite, c.Add(5))
}

func TestCost_Add(t *testing.T) {
	c := Finite(0).Add(1).Add(4)
	assert.Equal(t, Finite(5), c)
	assert.Equal(t, "5", c.String())
}

func TestCost_AddBeyondUint32(t *testing.T) {
	c := Finite(0).Add(math.MaxUint32).Add(math.MaxUint32)
	assert.Equal(t, Finite(2*math.MaxUint32), c)
	assert.True(t, Finite(math.MaxUint32).Less(c))
}

func TestCost_AddSaturates(t *testing.T) {
	assert.Equal(t, Finite(math.MaxUint64), Finite(math.MaxUint64-1).Add(2))
	assert.Equal(t, Finite(math.MaxUint64), Finite(math.MaxUint64).Add(math.MaxUint32))
}

func TestCost_Compare(t *testing.T) {
	assert.True(t, Finite(1).Less(Finite(2)))
	assert.False(t, Finite(2).Less(Finite(2)))
	assert.True(t, Finite(1000).Less(Infinite))
	assert.False(t, Infinite.Less(Finite(0)))
	assert.Equal(t, 0, Infinite.Compare(Infinite))
	assert.Equal(t, 1, Finite(3).Compare(Finite(2)))
}
