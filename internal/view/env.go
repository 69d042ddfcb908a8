package view

import (
	"context"
	"strconv"
	"time"

	"adminconsole/internal/ids"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
)

// Recorder receives an entry for every mutation attempted from a page.
type Recorder interface {
	Record(ctx context.Context, event models.ActivityEvent)
}

// Env carries the per-request collaborators of a page controller.
type Env struct {
	Token    string
	Admin    string
	Notifier notify.Notifier
	Recorder Recorder
}

func (e Env) notify(n models.Notification) {
	if e.Notifier != nil {
		e.Notifier.Notify(n)
	}
}

func (e Env) record(ctx context.Context, action, resource string, id int64, err error) {
	if e.Recorder == nil {
		return
	}
	event := models.ActivityEvent{
		ID:       ids.New(),
		Admin:    e.Admin,
		Action:   action,
		Resource: resource,
		Outcome:  models.ActivitySucceeded,
		At:       time.Now().UTC(),
	}
	if id != 0 {
		event.ResourceID = strconv.FormatInt(id, 10)
	}
	if err != nil {
		event.Outcome = models.ActivityFailed
		event.Detail = err.Error()
	}
	e.Recorder.Record(ctx, event)
}
