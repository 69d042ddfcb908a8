package notify

import (
	"sync"

	"adminconsole/internal/models"
)

type Notifier interface {
	Notify(n models.Notification)
}

// Collector gathers the notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	items []models.Notification
}

func NewCollector(initial ...models.Notification) *Collector {
	return &Collector{items: append([]models.Notification(nil), initial...)}
}

func (c *Collector) Notify(n models.Notification) {
	if n.Variant == "" {
		n.Variant = models.VariantDefault
	}
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
}

func (c *Collector) Items() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Notification{}, c.items...)
}

func Success(title, description string) models.Notification {
	return models.Notification{Title: title, Description: description, Variant: models.VariantDefault}
}

func Failure(title string, err error) models.Notification {
	n := models.Notification{Title: title, Variant: models.VariantDestructive}
	if err != nil {
		n.Description = err.Error()
	}
	return n
}
