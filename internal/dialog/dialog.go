// Package dialog models the create/edit/view modal forms of the console.
package dialog

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

var (
	ErrReadOnly = errors.New("dialog is read-only")
	ErrClosed   = errors.New("dialog is closed")
	ErrInvalid  = errors.New("form is invalid")
)

// Dialog is an open/closed modal holding form state F.
type Dialog[F any] struct {
	Open bool `json:"open"`
	Mode Mode `json:"mode"`
	Form F    `json:"form"`
}

func Open[F any](mode Mode, form F) *Dialog[F] {
	return &Dialog[F]{Open: true, Mode: mode, Form: form}
}

func (d *Dialog[F]) Close() {
	d.Open = false
}

// Submit validates the form and hands it to save. The dialog closes once save
// returns, whatever the outcome; reporting save errors is the caller's job.
// An invalid form leaves the dialog open and save uncalled.
func (d *Dialog[F]) Submit(ctx context.Context, save func(context.Context, F) error) error {
	if !d.Open {
		return ErrClosed
	}
	if d.Mode == ModeView {
		return ErrReadOnly
	}
	if err := binding.Validator.ValidateStruct(d.Form); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	err := save(ctx, d.Form)
	d.Close()
	return err
}
