// Package sender writes the current joint angles to the arm controller as a
// stream of JSON commands, one per line.
package sender

import (
	"io"
	"time"

	"github.com/adammck/arm"
	"github.com/adammck/arm/command"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "sender",
})

type Sender struct {
	w io.Writer

	// The minimum time between commands. The loop usually runs faster than
	// the controller wants to hear from us.
	interval time.Duration

	t         time.Time
	heartbeat int

	// The last command which was written.
	last *command.Command
}

func New(w io.Writer, interval time.Duration) *Sender {
	return &Sender{
		w:        w,
		interval: interval,
	}
}

func (s *Sender) Boot() error {
	return nil
}

func (s *Sender) Tick(now time.Time, state *arm.State) error {

	// Always tell the controller that we're stopping, even if we only just
	// sent a command.
	if state.Shutdown {
		log.Info("sending final command")
		return s.stop(now, state)
	}

	if !s.needsSend(now) {
		return nil
	}

	s.t = now
	cmd, err := command.FromState(state.Angles, s.heartbeat)
	if err != nil {
		return err
	}

	return s.write(cmd)
}

// needsSend returns true if it's been at least one interval since the last
// command was sent.
func (s *Sender) needsSend(now time.Time) bool {
	return s.t.IsZero() || now.Sub(s.t) >= s.interval
}

// stop sends a non-operational command. If the current angles can't be
// encoded, the angles of the last command sent are repeated instead, so the
// controller still hears that we're stopping.
func (s *Sender) stop(now time.Time, state *arm.State) error {
	s.t = now

	cmd, err := command.FromState(state.Angles, s.heartbeat)
	if err != nil {
		if s.last == nil {
			return errors.Wrap(err, "no command to stop with")
		}

		log.Warnf("%s, stopping at last sent angles", err)
		cmd = *s.last
		cmd.HeartbeatCount = s.heartbeat
	}

	cmd.IsOperational = 0
	return s.write(cmd)
}

func (s *Sender) write(cmd command.Command) error {
	b, err := cmd.Encode()
	if err != nil {
		return err
	}

	_, err = s.w.Write(append(b, '\n'))
	if err != nil {
		return errors.Wrap(err, "writing arm command")
	}

	log.Debugf("sent: %s", b)
	s.last = &cmd
	s.heartbeat++
	return nil
}
