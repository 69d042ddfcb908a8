package view

import (
	"context"

	"adminconsole/internal/dialog"
	"adminconsole/internal/models"
)

type ProductAPI interface {
	List(ctx context.Context, token string) ([]models.Product, error)
	Create(ctx context.Context, token string, product models.Product) (models.Product, error)
	Update(ctx context.Context, token string, id int64, product models.Product) (*models.Product, error)
	Remove(ctx context.Context, token string, id int64) error
}

type ProductsPage struct {
	crud[models.Product, dialog.ProductForm]
	products ProductAPI
}

func NewProductsPage(products ProductAPI, env Env) *ProductsPage {
	p := &ProductsPage{products: products}
	p.crud = crud[models.Product, dialog.ProductForm]{
		env:   env,
		label: "product",
		list: NewCollection(
			func(pr models.Product) int64 { return pr.ID },
			func(pr models.Product) []string { return []string{pr.Name, pr.Category} },
		),
		fetch: func(ctx context.Context) ([]models.Product, error) {
			return products.List(ctx, env.Token)
		},
		remove: func(ctx context.Context, id int64) error {
			return products.Remove(ctx, env.Token, id)
		},
		toForm: dialog.NewProductForm,
	}
	return p
}

// OpenView shows a product read-only.
func (p *ProductsPage) OpenView(id int64) (*dialog.Dialog[dialog.ProductForm], bool) {
	return p.openExisting(id, dialog.ModeView)
}

// Save replaces the open dialog's form with form and submits it.
func (p *ProductsPage) Save(ctx context.Context, form dialog.ProductForm) error {
	if p.dialog == nil {
		return dialog.ErrClosed
	}
	p.dialog.Form = form
	return p.Submit(ctx)
}

// Submit saves the form held by the open dialog: an update of the selected
// product in edit mode, a create otherwise.
func (p *ProductsPage) Submit(ctx context.Context) error {
	if p.dialog == nil {
		return dialog.ErrClosed
	}

	var id int64
	if p.dialog.Mode == dialog.ModeEdit && p.selected != nil {
		id = p.selected.ID
	}

	return p.submit(ctx, id, func(ctx context.Context, form dialog.ProductForm) (string, error) {
		if id != 0 {
			if _, err := p.products.Update(ctx, p.env.Token, id, form.Product()); err != nil {
				return "", err
			}
			return form.Name + " was updated.", nil
		}
		created, err := p.products.Create(ctx, p.env.Token, form.Product())
		if err != nil {
			return "", err
		}
		name := created.Name
		if name == "" {
			name = form.Name
		}
		return name + " was added to the catalogue.", nil
	})
}
