// Package state wraps the game lifecycle in a four state machine and drives the
// registered systems once per frame.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/victormf2/gameioc/events"
)

type State int

const (
	Initializing State = iota
	Running
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

var ErrInvalidTransition = errors.New("invalid state transition")

// StateChanged is published on the event queue after every transition.
type StateChanged struct {
	From State
	To   State
	At   time.Time
}

// System is anything updated once per frame while the game is Running.
type System interface {
	Update(dt time.Duration) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(dt time.Duration) error

func (f SystemFunc) Update(dt time.Duration) error {
	return f(dt)
}

type Manager struct {
	queue   *events.Queue
	logger  *logrus.Entry
	current State
	frame   uint64
	systems []System
	now     func() time.Time
}

func NewManager(queue *events.Queue, logger *logrus.Entry) *Manager {
	return &Manager{
		queue:   queue,
		logger:  logger.WithField("component", "state"),
		current: Initializing,
		now:     time.Now,
	}
}

func (m *Manager) Current() State {
	return m.current
}

// Frame returns the number of frames updated while Running.
func (m *Manager) Frame() uint64 {
	return m.frame
}

// AddSystem appends s to the systems updated every Running frame, in insertion order.
func (m *Manager) AddSystem(s System) {
	m.systems = append(m.systems, s)
}

func (m *Manager) Start() error {
	return m.transition(Running, Initializing)
}

func (m *Manager) Pause() error {
	return m.transition(Paused, Running)
}

func (m *Manager) Resume() error {
	return m.transition(Running, Paused)
}

func (m *Manager) Stop() error {
	return m.transition(Stopped, Initializing, Running, Paused)
}

func (m *Manager) transition(to State, allowedFrom ...State) error {
	from := m.current
	allowed := false
	for _, candidate := range allowedFrom {
		if candidate == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, from, to)
	}

	m.current = to
	m.logger.WithFields(logrus.Fields{
		"from":  from.String(),
		"to":    to.String(),
		"frame": m.frame,
	}).Info("state changed")

	err := m.queue.Publish(StateChanged{From: from, To: to, At: m.now()})
	if err != nil {
		m.logger.WithError(err).Warn("state change not published")
	}
	return nil
}

// Update runs one frame: while Running every system is updated in order, then in any
// state the event queue is dispatched once. The first system error skips the remaining
// systems of the frame. The queue is still dispatched before the error is returned.
func (m *Manager) Update(dt time.Duration) error {
	err := m.updateSystems(dt)
	m.queue.Dispatch()
	return err
}

func (m *Manager) updateSystems(dt time.Duration) error {
	if m.current != Running {
		return nil
	}
	m.frame++
	for index, system := range m.systems {
		if err := system.Update(dt); err != nil {
			return fmt.Errorf("system %d (%T) failed on frame %d: %w", index, system, m.frame, err)
		}
	}
	return nil
}
