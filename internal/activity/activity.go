// Package activity carries the admin activity log: page handlers publish
// events onto a redis stream and the activity worker writes them to Postgres.
package activity

import (
	"encoding/json"
	"errors"
	"fmt"

	"adminconsole/internal/models"
)

const (
	TypeRecord = "record"
	TypePrune  = "prune"
)

var ErrBadPayload = errors.New("bad activity payload")

func encodeRecord(event models.ActivityEvent) (map[string]any, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return map[string]any{"type": TypeRecord, "event": string(raw)}, nil
}

func decodeRecord(values map[string]any) (models.ActivityEvent, error) {
	raw, ok := values["event"].(string)
	if !ok || raw == "" {
		return models.ActivityEvent{}, fmt.Errorf("%w: missing event", ErrBadPayload)
	}
	var event models.ActivityEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return models.ActivityEvent{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if event.ID == "" {
		return models.ActivityEvent{}, fmt.Errorf("%w: missing id", ErrBadPayload)
	}
	return event, nil
}
