// Package command encodes joint angles into the command record which the arm
// controller accepts.
package command

import (
	"encoding/json"
	"math"

	"github.com/adammck/arm/ik"
	"github.com/adammck/arm/utils"
	"github.com/pkg/errors"
)

// Command is a single instruction to the arm controller. Angles are whole
// degrees, in the order of ik.Joints.
type Command struct {
	HeartbeatCount int    `json:"heartbeat_count"`
	IsOperational  int    `json:"is_operational"`
	Speed          int    `json:"speed"`
	Angles         [6]int `json:"angles"`
}

// FromState returns an operational command to move to the given angles. The
// angles are floored to whole degrees. The effector position is treated as an
// angle too, since that's what the controller expects. An error is returned
// if any joint has no solution, since NaN can't be sent.
func FromState(a ik.ArmState, heartbeat int) (Command, error) {
	c := Command{
		HeartbeatCount: heartbeat,
		IsOperational:  1,
		Speed:          1,
	}

	for i, j := range ik.Joints {
		v := a.Angle(j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Command{}, errors.Errorf("can't encode %s angle %v", j, v)
		}

		c.Angles[i] = int(math.Floor(utils.Deg(v)))
	}

	return c, nil
}

// Encode returns the JSON form of the command, as sent over the wire.
func (c Command) Encode() ([]byte, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encoding arm command")
	}

	return b, nil
}
