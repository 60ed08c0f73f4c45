package dnd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"nestdnd/internal/model"

	"gopkg.in/yaml.v3"
)

type EventType string

const (
	EventStart  EventType = "start"
	EventOver   EventType = "over"
	EventEnd    EventType = "end"
	EventCancel EventType = "cancel"
)

// Event is one drag lifecycle notification as delivered by a drag source.
type Event struct {
	Type   EventType `json:"type" yaml:"type"`
	Active model.ID  `json:"active" yaml:"active,omitempty"`
	Over   model.ID  `json:"over" yaml:"over,omitempty"`
}

func (e Event) String() string {
	switch e.Type {
	case EventStart:
		return fmt.Sprintf("start(%s)", e.Active)
	case EventCancel:
		return "cancel"
	default:
		return fmt.Sprintf("%s(%s -> %s)", e.Type, e.Active, e.Over)
	}
}

// DecodeScript reads a list of events. JSON arrays are accepted as well since
// they are valid YAML.
func DecodeScript(r io.Reader) ([]Event, error) {
	var events []Event
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&events); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i := range events {
		events[i].Type = EventType(strings.ToLower(strings.TrimSpace(string(events[i].Type))))
		if err := validateEvent(events[i]); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return events, nil
}

func validateEvent(e Event) error {
	switch e.Type {
	case EventStart:
		if e.Active.IsZero() {
			return errors.New("start requires active")
		}
	case EventOver, EventEnd:
		if e.Active.IsZero() {
			return fmt.Errorf("%s requires active", e.Type)
		}
	case EventCancel:
	default:
		return fmt.Errorf("unknown event type: %q", e.Type)
	}
	return nil
}
