// Package api wraps the REST backend per resource and owns the translation
// between backend DTOs and the console's UI models.
package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"adminconsole/internal/backend"
	"adminconsole/internal/config"
)

// Set groups the resource modules sharing one backend client.
type Set struct {
	Auth      *Auth
	Users     *Users
	Products  *Products
	Orders    *Orders
	Dashboard *Dashboard
}

func New(client *backend.Client, cfg config.BackendConfig) Set {
	base := resource{client: client, prefix: strings.TrimSuffix(cfg.PathPrefix, "/")}

	nameField := cfg.UserNameField
	if nameField == "" {
		nameField = "fullName"
	}

	return Set{
		Auth:      &Auth{resource: base},
		Users:     &Users{resource: base, nameField: nameField},
		Products:  &Products{resource: base},
		Orders:    &Orders{resource: base},
		Dashboard: &Dashboard{resource: base},
	}
}

type resource struct {
	client *backend.Client
	prefix string
}

func (r resource) path(format string, args ...any) string {
	return r.prefix + fmt.Sprintf(format, args...)
}

// timestamp accepts either a JSON string or a number (epoch millis) and keeps
// the textual form.
type timestamp string

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = timestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = timestamp(n.String())
	return nil
}

func firstNonEmpty(values ...timestamp) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
