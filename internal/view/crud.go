package view

import (
	"context"
	"errors"
	"fmt"

	"adminconsole/internal/dialog"
	"adminconsole/internal/notify"
)

// ListView is the rendered state of a table page.
type ListView[T any, F any] struct {
	Items    []T               `json:"items"`
	Total    int               `json:"total"`
	Search   string            `json:"search"`
	Dialog   *dialog.Dialog[F] `json:"dialog,omitempty"`
	Selected *T                `json:"selected,omitempty"`
}

// crud is the state shared by the users and products pages. Deletes are
// optimistic with rollback; creates and updates reload the list afterwards.
type crud[T any, F any] struct {
	env      Env
	label    string
	list     *Collection[T]
	search   string
	dialog   *dialog.Dialog[F]
	selected *T

	fetch  func(ctx context.Context) ([]T, error)
	remove func(ctx context.Context, id int64) error
	toForm func(item *T) F
}

func (c *crud[T, F]) Mount(ctx context.Context) error {
	items, err := c.fetch(ctx)
	if err != nil {
		c.env.notify(notify.Failure(fmt.Sprintf("Could not load %ss", c.label), err))
		return err
	}
	c.list.Set(items)
	return nil
}

func (c *crud[T, F]) SetSearch(query string) {
	c.search = query
}

func (c *crud[T, F]) Visible() []T {
	return c.list.Filter(c.search)
}

func (c *crud[T, F]) Items() []T {
	return c.list.Items()
}

func (c *crud[T, F]) OpenCreate() *dialog.Dialog[F] {
	c.selected = nil
	c.dialog = dialog.Open(dialog.ModeCreate, c.toForm(nil))
	return c.dialog
}

func (c *crud[T, F]) OpenEdit(id int64) (*dialog.Dialog[F], bool) {
	return c.openExisting(id, dialog.ModeEdit)
}

func (c *crud[T, F]) openExisting(id int64, mode dialog.Mode) (*dialog.Dialog[F], bool) {
	item, ok := c.list.Find(id)
	if !ok {
		c.env.notify(notify.Failure(fmt.Sprintf("%s #%d not found", titleCase(c.label), id), nil))
		return nil, false
	}
	c.selected = &item
	c.dialog = dialog.Open(mode, c.toForm(&item))
	return c.dialog, true
}

func (c *crud[T, F]) Dialog() *dialog.Dialog[F] {
	return c.dialog
}

func (c *crud[T, F]) Selected() *T {
	return c.selected
}

// Delete removes the item locally first and puts the list back if the backend
// refuses.
func (c *crud[T, F]) Delete(ctx context.Context, id int64) error {
	prev := c.list.Remove(id)
	err := c.remove(ctx, id)
	c.env.record(ctx, "delete", c.label, id, err)
	if err != nil {
		c.list.Restore(prev)
		c.env.notify(notify.Failure(fmt.Sprintf("Could not delete %s", c.label), err))
		return err
	}
	c.env.notify(notify.Success(fmt.Sprintf("%s deleted", titleCase(c.label)), fmt.Sprintf("%s #%d was deleted.", titleCase(c.label), id)))
	return nil
}

// submit runs the open dialog through save, then reloads on success.
func (c *crud[T, F]) submit(ctx context.Context, id int64, save func(ctx context.Context, form F) (string, error)) error {
	if c.dialog == nil {
		return dialog.ErrClosed
	}

	action := "create"
	if c.dialog.Mode == dialog.ModeEdit {
		action = "update"
	}

	var message string
	err := c.dialog.Submit(ctx, func(ctx context.Context, form F) error {
		var err error
		message, err = save(ctx, form)
		return err
	})
	switch {
	case errors.Is(err, dialog.ErrInvalid), errors.Is(err, dialog.ErrReadOnly), errors.Is(err, dialog.ErrClosed):
		c.env.notify(notify.Failure(fmt.Sprintf("Could not save %s", c.label), err))
		return err
	case err != nil:
		c.env.record(ctx, action, c.label, id, err)
		c.env.notify(notify.Failure(fmt.Sprintf("Could not save %s", c.label), err))
		return err
	}

	c.env.record(ctx, action, c.label, id, nil)
	title := fmt.Sprintf("%s created", titleCase(c.label))
	if action == "update" {
		title = fmt.Sprintf("%s updated", titleCase(c.label))
	}
	c.env.notify(notify.Success(title, message))
	c.selected = nil
	// A failed reload is already reported by Mount; the save itself succeeded.
	_ = c.Mount(ctx)
	return nil
}

func (c *crud[T, F]) View() ListView[T, F] {
	items := c.Visible()
	return ListView[T, F]{
		Items:    items,
		Total:    c.list.Len(),
		Search:   c.search,
		Dialog:   c.dialog,
		Selected: c.selected,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
