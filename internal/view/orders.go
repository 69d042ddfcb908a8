package view

import (
	"context"
	"errors"
	"fmt"

	"adminconsole/internal/dialog"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
)

type OrderAPI interface {
	List(ctx context.Context, token string) ([]models.Order, error)
	GetByID(ctx context.Context, token string, id int64) (models.Order, error)
	AdminUpdateStatus(ctx context.Context, token string, id int64, status models.OrderStatus, payment models.PaymentStatus) error
}

// OrdersPage lists orders and edits their status from a detail dialog.
// Orders are never created or deleted from the console.
type OrdersPage struct {
	env      Env
	orders   OrderAPI
	list     *Collection[models.Order]
	search   string
	dialog   *dialog.Dialog[dialog.OrderStatusForm]
	selected *models.Order
}

func NewOrdersPage(orders OrderAPI, env Env) *OrdersPage {
	return &OrdersPage{
		env:    env,
		orders: orders,
		list: NewCollection(
			func(o models.Order) int64 { return o.ID },
			func(o models.Order) []string { return []string{o.CustomerName, string(o.Status)} },
		),
	}
}

func (p *OrdersPage) Mount(ctx context.Context) error {
	items, err := p.orders.List(ctx, p.env.Token)
	if err != nil {
		p.env.notify(notify.Failure("Could not load orders", err))
		return err
	}
	p.list.Set(items)
	return nil
}

func (p *OrdersPage) SetSearch(query string) {
	p.search = query
}

func (p *OrdersPage) Visible() []models.Order {
	return p.list.Filter(p.search)
}

func (p *OrdersPage) Items() []models.Order {
	return p.list.Items()
}

func (p *OrdersPage) Dialog() *dialog.Dialog[dialog.OrderStatusForm] {
	return p.dialog
}

func (p *OrdersPage) Selected() *models.Order {
	return p.selected
}

// OpenDetail fetches the full order, line items included, and opens the
// status dialog on it.
func (p *OrdersPage) OpenDetail(ctx context.Context, id int64) error {
	order, err := p.orders.GetByID(ctx, p.env.Token, id)
	if err != nil {
		p.env.notify(notify.Failure(fmt.Sprintf("Could not load order #%d", id), err))
		return err
	}
	p.selected = &order
	p.dialog = dialog.Open(dialog.ModeEdit, dialog.NewOrderStatusForm(order))
	return nil
}

// UpdateStatus replaces the status form of the open dialog and submits it.
func (p *OrdersPage) UpdateStatus(ctx context.Context, form dialog.OrderStatusForm) error {
	if p.dialog == nil || p.selected == nil {
		return dialog.ErrClosed
	}
	p.dialog.Form = form
	return p.SubmitStatus(ctx)
}

// SubmitStatus saves the dialog's status form for the selected order and
// reloads the list.
func (p *OrdersPage) SubmitStatus(ctx context.Context) error {
	if p.dialog == nil || p.selected == nil {
		return dialog.ErrClosed
	}
	id := p.selected.ID

	err := p.dialog.Submit(ctx, func(ctx context.Context, form dialog.OrderStatusForm) error {
		return p.orders.AdminUpdateStatus(ctx, p.env.Token, id, form.OrderStatus, form.PaymentStatus)
	})
	if err != nil {
		if !errors.Is(err, dialog.ErrInvalid) {
			p.env.record(ctx, "update-status", "order", id, err)
		}
		p.env.notify(notify.Failure("Could not update order", err))
		return err
	}

	p.env.record(ctx, "update-status", "order", id, nil)
	p.env.notify(notify.Success("Order updated", fmt.Sprintf("Order #%d is now %s.", id, p.dialog.Form.OrderStatus)))
	_ = p.Mount(ctx)
	return nil
}

func (p *OrdersPage) View() ListView[models.Order, dialog.OrderStatusForm] {
	return ListView[models.Order, dialog.OrderStatusForm]{
		Items:    p.Visible(),
		Total:    p.list.Len(),
		Search:   p.search,
		Dialog:   p.dialog,
		Selected: p.selected,
	}
}
