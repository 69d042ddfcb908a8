package view

import (
	"context"

	"adminconsole/internal/api"
	"adminconsole/internal/dialog"
	"adminconsole/internal/models"
)

type UserAPI interface {
	List(ctx context.Context, token string) ([]models.User, error)
	Create(ctx context.Context, token string, in api.UserInput) (api.UserResult, error)
	Update(ctx context.Context, token string, id int64, in api.UserInput) (api.UserResult, error)
	Remove(ctx context.Context, token string, id int64) error
}

type UsersPage struct {
	crud[models.User, dialog.UserForm]
	users UserAPI
}

func NewUsersPage(users UserAPI, env Env) *UsersPage {
	p := &UsersPage{users: users}
	p.crud = crud[models.User, dialog.UserForm]{
		env:   env,
		label: "user",
		list: NewCollection(
			func(u models.User) int64 { return u.ID },
			func(u models.User) []string { return []string{u.FullName, u.Email} },
		),
		fetch: func(ctx context.Context) ([]models.User, error) {
			return users.List(ctx, env.Token)
		},
		remove: func(ctx context.Context, id int64) error {
			return users.Remove(ctx, env.Token, id)
		},
		toForm: dialog.NewUserForm,
	}
	return p
}

// Save replaces the open dialog's form with form and submits it.
func (p *UsersPage) Save(ctx context.Context, form dialog.UserForm) error {
	if p.dialog == nil {
		return dialog.ErrClosed
	}
	p.dialog.Form = form
	return p.Submit(ctx)
}

// Submit sends the dialog's form: create when it was opened with OpenCreate,
// update of the selected user otherwise.
func (p *UsersPage) Submit(ctx context.Context) error {
	if p.dialog == nil {
		return dialog.ErrClosed
	}

	var id int64
	if p.dialog.Mode == dialog.ModeEdit && p.selected != nil {
		id = p.selected.ID
	}

	return p.submit(ctx, id, func(ctx context.Context, form dialog.UserForm) (string, error) {
		var (
			res api.UserResult
			err error
		)
		if id != 0 {
			res, err = p.users.Update(ctx, p.env.Token, id, form.Input())
		} else {
			res, err = p.users.Create(ctx, p.env.Token, form.Input())
		}
		if err != nil {
			return "", err
		}
		if res.Message != "" {
			return res.Message, nil
		}
		return form.Email + " was saved.", nil
	})
}
