// Package event is a small synchronous publish-subscribe bus for model
// change notifications.
//
// Notifications are delivered one at a time in arrival order. A listener that
// publishes while being notified does not interrupt the current delivery: the
// new notification is queued and delivered after every listener has seen the
// current one.
package event

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Topic tags a notification with the part of the model that changed.
type Topic string

// Model parts that change during an anonymization session.
const (
	TopicSelectedAttribute Topic = "selected-attribute"
	TopicAttributeType     Topic = "attribute-type"
	TopicMetric            Topic = "metric"
	TopicMaxOutliers       Topic = "max-outliers"
	TopicDataType          Topic = "data-type"
	TopicCriterion         Topic = "criterion"
	// TopicModel announces a replaced model. The payload is the new *model.Model.
	TopicModel        Topic = "model"
	TopicInput        Topic = "input"
	TopicOutput       Topic = "output"
	TopicResult       Topic = "result"
	TopicSelectedNode Topic = "selected-node"
)

var knownTopics = map[Topic]bool{
	TopicSelectedAttribute: true,
	TopicAttributeType:     true,
	TopicMetric:            true,
	TopicMaxOutliers:       true,
	TopicDataType:          true,
	TopicCriterion:         true,
	TopicModel:             true,
	TopicInput:             true,
	TopicOutput:            true,
	TopicResult:            true,
	TopicSelectedNode:      true,
}

// ParseTopic validates a topic name.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !knownTopics[t] {
		return "", fmt.Errorf("unknown topic %q (available: %s)", s, topicNames())
	}
	return t, nil
}

func topicNames() string {
	names := make([]string, 0, len(knownTopics))
	for t := range knownTopics {
		names = append(names, string(t))
	}
	sort.Strings(names)
	result := ""
	for i, n := range names {
		if i > 0 {
			result += ", "
		}
		result += n
	}
	return result
}

// Event is a single notification.
type Event struct {
	Topic Topic
	// Source identifies the publisher. It may be nil.
	Source any
	// Data is the optional payload.
	Data any
}

// Listener receives notifications.
type Listener func(Event)

// Subscription is the handle returned by Subscribe. Pass it to Unsubscribe
// to stop receiving notifications.
type Subscription struct {
	ID    uuid.UUID
	Topic Topic
}

type entry struct {
	id       uuid.UUID
	listener Listener
	removed  bool
}

// Bus dispatches events to the listeners subscribed to their topic.
type Bus struct {
	mu          sync.Mutex
	subs        map[Topic][]*entry
	queue       []Event
	dispatching bool
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]*entry)}
}

// Subscribe registers l for notifications on topic.
func (b *Bus) Subscribe(topic Topic, l Listener) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := &entry{id: uuid.New(), listener: l}
	b.subs[topic] = append(b.subs[topic], e)
	return Subscription{ID: e.id, Topic: topic}
}

// Unsubscribe removes the subscription. It reports whether the subscription
// was still active. A listener removed during a delivery is not called for
// the remainder of that delivery.
func (b *Bus) Unsubscribe(s Subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.subs[s.Topic]
	for i, e := range entries {
		if e.id == s.ID {
			e.removed = true
			b.subs[s.Topic] = append(entries[:i:i], entries[i+1:]...)
			if len(b.subs[s.Topic]) == 0 {
				delete(b.subs, s.Topic)
			}
			return true
		}
	}
	return false
}

// Subscribers returns the number of active listeners on topic.
func (b *Bus) Subscribers(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

// Publish delivers ev to every listener of its topic, in subscription order.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	b.queue = append(b.queue, ev)
	if b.dispatching {
		b.mu.Unlock()
		return
	}
	b.dispatching = true
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		listeners := append([]*entry(nil), b.subs[next.Topic]...)
		b.mu.Unlock()

		for _, e := range listeners {
			if b.isRemoved(e) {
				continue
			}
			e.listener(next)
		}

		b.mu.Lock()
	}
	b.dispatching = false
	b.mu.Unlock()
}

func (b *Bus) isRemoved(e *entry) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return e.removed
}
