package command

import (
	"math"
	"testing"

	"github.com/adammck/arm/ik"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromState(t *testing.T) {
	type eg struct {
		in  ik.ArmState
		exp [6]int
	}

	examples := []eg{
		{ik.ArmState{}, [6]int{0, 0, 0, 0, 0, 0}},
		{ik.ArmState{Rotunda: math.Pi / 2, Shoulder: -math.Pi / 4}, [6]int{90, -45, 0, 0, 0, 0}},

		// Floored, not rounded or truncated.
		{ik.ArmState{Elbow: 0.0174, WristPitch: -0.0174}, [6]int{0, 0, 0, -1, 0, 0}},
		{ik.ArmState{WristRoll: math.Pi, EffectorPosition: 1}, [6]int{0, 0, 0, 0, 180, 57}},
	}

	for i, x := range examples {
		c, err := FromState(x.in, 3)
		require.NoError(t, err)
		assert.Equal(t, x.exp, c.Angles, "example %d", i+1)
		assert.Equal(t, 3, c.HeartbeatCount)
		assert.Equal(t, 1, c.IsOperational)
		assert.Equal(t, 1, c.Speed)
	}
}

func TestFromStateNaN(t *testing.T) {
	_, err := FromState(ik.ArmState{Elbow: math.NaN()}, 0)
	assert.EqualError(t, err, "can't encode elbow angle NaN")
}

func TestEncode(t *testing.T) {
	c := Command{
		HeartbeatCount: 7,
		IsOperational:  1,
		Speed:          1,
		Angles:         [6]int{10, -36, 65, -29, 0, 12},
	}

	b, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"heartbeat_count":7,"is_operational":1,"speed":1,"angles":[10,-36,65,-29,0,12]}`, string(b))
}
