package htmx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Stage is the point in the client's response lifecycle at which a trigger
// event fires.
type Stage int

const (
	// StageStandard fires the event as soon as the response is received.
	StageStandard Stage = iota
	// StageAfterSwap fires the event after the content swap.
	StageAfterSwap
	// StageAfterSettle fires the event after the settle phase.
	StageAfterSettle

	stageCount
)

// Header returns the response header name that carries triggers for the stage.
func (s Stage) Header() string {
	switch s {
	case StageStandard:
		return HeaderHXTrigger
	case StageAfterSwap:
		return HeaderHXTriggerAfterSwap
	case StageAfterSettle:
		return HeaderHXTriggerAfterSettle
	}
	return ""
}

func (s Stage) valid() bool {
	return s >= StageStandard && s < stageCount
}

// ErrEmptyEventName is returned by TriggerEvent when the event name is empty.
var ErrEmptyEventName = errors.New("htmx: trigger event name must not be empty")

// ErrInvalidStage is returned by TriggerEvent for stages outside the closed set.
var ErrInvalidStage = errors.New("htmx: invalid trigger stage")

// triggerSet accumulates the events registered for one stage. Entries are
// unique by name; order records first registration.
type triggerSet struct {
	order    []string
	payloads map[string]json.RawMessage
}

// add registers an event, merging into the existing entry when the name was
// seen before. A nil payload marks a bare event with no data.
func (ts *triggerSet) add(name string, payload json.RawMessage) {
	if ts.payloads == nil {
		ts.payloads = make(map[string]json.RawMessage)
	}
	if _, seen := ts.payloads[name]; !seen {
		ts.order = append(ts.order, name)
	}
	ts.payloads[name] = payload
}

func (ts *triggerSet) empty() bool {
	return len(ts.order) == 0
}

// headerValue serializes the set into a single header value: the bare event
// name when the set holds exactly one payload-free entry, otherwise a JSON
// object mapping names to payloads (null for payload-free entries) in first
// registration order.
func (ts *triggerSet) headerValue() string {
	if len(ts.order) == 1 && ts.payloads[ts.order[0]] == nil {
		return ts.order[0]
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range ts.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		if payload := ts.payloads[name]; payload != nil {
			buf.Write(payload)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
	return buf.String()
}

// encodePayload validates a trigger or location payload by marshaling it
// immediately, so unserializable values fail at the call site rather than at
// flush time.
func encodePayload(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("htmx: encode payload: %w", err)
	}
	return raw, nil
}
