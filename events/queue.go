// Package events implements a bounded FIFO event queue with subscribers keyed by the
// dynamic type of the event.
//
// Events are published during a frame and delivered in bulk by Dispatch, usually once per
// frame from the update loop. Like the container, a Queue is meant for a single goroutine.
package events

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultCapacity = 256

var (
	ErrQueueFull = errors.New("event queue is full")
	ErrNilEvent  = errors.New("event is nil")
)

type QueueConfig struct {
	// Maximum number of pending events. Zero or less means DefaultCapacity.
	Capacity int
}

// Subscription identifies a handler registered with Subscribe.
type Subscription struct {
	ID        string
	EventType reflect.Type
}

type subscription struct {
	id      string
	deliver func(event any)
}

type Queue struct {
	logger      *logrus.Entry
	capacity    int
	pending     []any
	subscribers map[reflect.Type][]subscription
}

func NewQueue(config QueueConfig, logger *logrus.Entry) *Queue {
	capacity := config.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		logger:      logger.WithField("component", "events"),
		capacity:    capacity,
		pending:     make([]any, 0, capacity),
		subscribers: map[reflect.Type][]subscription{},
	}
}

// NewDefaultQueue creates a queue with DefaultCapacity and the standard logrus logger.
func NewDefaultQueue() *Queue {
	return NewQueue(QueueConfig{}, logrus.NewEntry(logrus.StandardLogger()))
}

// Subscribe registers handler for events whose dynamic type is exactly E.
// Handlers of the same type are called in subscription order.
func Subscribe[E any](q *Queue, handler func(event E)) Subscription {
	eventType := reflect.TypeFor[E]()
	id := uuid.NewString()

	q.subscribers[eventType] = append(q.subscribers[eventType], subscription{
		id: id,
		deliver: func(event any) {
			handler(event.(E))
		},
	})
	q.logger.WithFields(logrus.Fields{
		"event_type":      eventType.String(),
		"subscription_id": id,
	}).Debug("subscribed")

	return Subscription{ID: id, EventType: eventType}
}

// Unsubscribe removes a subscription. It reports whether the subscription was found.
func (q *Queue) Unsubscribe(s Subscription) bool {
	subscriptions := q.subscribers[s.EventType]
	index := slices.IndexFunc(subscriptions, func(candidate subscription) bool {
		return candidate.id == s.ID
	})
	if index < 0 {
		return false
	}

	subscriptions = slices.Delete(slices.Clone(subscriptions), index, index+1)
	if len(subscriptions) == 0 {
		delete(q.subscribers, s.EventType)
	} else {
		q.subscribers[s.EventType] = subscriptions
	}
	return true
}

// Publish appends event to the queue. It is delivered by the next Dispatch.
func (q *Queue) Publish(event any) error {
	if isNil(event) {
		return ErrNilEvent
	}
	if len(q.pending) >= q.capacity {
		q.logger.WithField("event_type", fmt.Sprintf("%T", event)).Warn("dropping event, queue is full")
		return fmt.Errorf("%w: capacity %d reached publishing %T", ErrQueueFull, q.capacity, event)
	}

	q.pending = append(q.pending, event)
	return nil
}

// Dispatch delivers the events pending at call time in FIFO order and returns how many
// were delivered. Events published by handlers wait for the next Dispatch.
func (q *Queue) Dispatch() int {
	batch := q.pending
	q.pending = make([]any, 0, q.capacity)

	for _, event := range batch {
		q.deliver(event)
	}
	return len(batch)
}

// Emit delivers event to its subscribers right away, bypassing the queue.
func (q *Queue) Emit(event any) error {
	if isNil(event) {
		return ErrNilEvent
	}
	q.deliver(event)
	return nil
}

func (q *Queue) deliver(event any) {
	eventType := reflect.TypeOf(event)
	// Handlers may subscribe or unsubscribe while being called. The slice header is
	// copied here and Unsubscribe never mutates the backing array in place.
	subscriptions := q.subscribers[eventType]
	if len(subscriptions) == 0 {
		q.logger.WithField("event_type", eventType.String()).Trace("no subscribers")
		return
	}
	for _, s := range subscriptions {
		s.deliver(event)
	}
}

// Typed nil pointers, maps, slices, funcs and channels count as nil events too.
func isNil(event any) bool {
	if event == nil {
		return true
	}
	v := reflect.ValueOf(event)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}

func (q *Queue) Capacity() int {
	return q.capacity
}

// Clear drops every pending event without delivering it.
func (q *Queue) Clear() {
	clear(q.pending)
	q.pending = q.pending[:0]
}
