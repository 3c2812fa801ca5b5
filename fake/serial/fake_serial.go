// Package serial provides an in-memory stand-in for a serial port, which
// records everything written to it.
package serial

import (
	"bytes"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/serial",
})

type FakeSerial struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func New() *FakeSerial {
	return &FakeSerial{}
}

// Read never returns anything; the arm controller doesn't talk back.
func (s *FakeSerial) Read(p []byte) (n int, err error) {
	log.Debugf("read %d bytes", len(p))
	return 0, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Debugf("write: %s", bytes.TrimSpace(p))
	return s.buf.Write(p)
}

func (s *FakeSerial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Debug("close")
	s.closed = true
	return nil
}

// Closed returns true if Close has been called.
func (s *FakeSerial) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Lines returns every complete line written so far, without newlines.
func (s *FakeSerial) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	str := s.buf.String()
	i := strings.LastIndexByte(str, '\n')
	if i < 0 {
		return []string{}
	}

	return strings.Split(str[:i], "\n")
}
