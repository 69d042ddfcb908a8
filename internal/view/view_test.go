package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/dialog"
	"adminconsole/internal/models"
)

func TestCollectionFilter(t *testing.T) {
	c := NewCollection(
		func(p models.Product) int64 { return p.ID },
		func(p models.Product) []string { return []string{p.Name, p.Category} },
	)
	c.Set([]models.Product{
		{ID: 1, Name: "Nike Air", Category: "Shoes"},
		{ID: 2, Name: "Adidas Run", Category: "Shoes"},
		{ID: 3, Name: "Cap", Category: "NIKE accessories"},
	})

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "blank", query: "  ", want: []int64{1, 2, 3}},
		{name: "case insensitive name and category", query: "nike", want: []int64{1, 3}},
		{name: "category", query: "shoes", want: []int64{1, 2}},
		{name: "no match", query: "puma", want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []int64{}
			for _, p := range c.Filter(tt.query) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCollectionRemoveRestore(t *testing.T) {
	c := NewCollection(func(v int64) int64 { return v }, func(int64) []string { return nil })
	c.Set([]int64{1, 2, 3})

	prev := c.Remove(2)
	assert.Equal(t, []int64{1, 3}, c.Items())

	c.Restore(prev)
	assert.Equal(t, []int64{1, 2, 3}, c.Items())
}

func TestUsersDeleteRollsBackOnFailure(t *testing.T) {
	users := &fakeUsers{
		items:     []models.User{{ID: 4, FullName: "Ann"}, {ID: 5, FullName: "Bob"}, {ID: 6, FullName: "Cid"}},
		removeErr: errBackend,
	}
	env, notes, rec := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))

	err := page.Delete(context.Background(), 5)
	require.ErrorIs(t, err, errBackend)

	assert.Equal(t, users.items, page.Items())
	items := notes.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.VariantDestructive, items[0].Variant)
	assert.Equal(t, errBackend.Error(), items[0].Description)

	require.Len(t, rec.events, 1)
	assert.Equal(t, models.ActivityFailed, rec.events[0].Outcome)
	assert.Equal(t, "5", rec.events[0].ResourceID)
}

func TestUsersDeleteSucceeds(t *testing.T) {
	users := &fakeUsers{items: []models.User{{ID: 4}, {ID: 5}}}
	env, notes, _ := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))

	require.NoError(t, page.Delete(context.Background(), 5))
	assert.Equal(t, []models.User{{ID: 4}}, page.Items())
	assert.Equal(t, 1, users.listCalls)
	require.Len(t, notes.Items(), 1)
	assert.Equal(t, models.VariantDefault, notes.Items()[0].Variant)
}

func TestUsersSearch(t *testing.T) {
	users := &fakeUsers{items: []models.User{
		{ID: 1, FullName: "Alice", Email: "alice@shop.vn"},
		{ID: 2, FullName: "Bob", Email: "bob@shop.vn"},
	}}
	env, _, _ := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))

	page.SetSearch("BOB@")
	view := page.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ID)
	assert.Equal(t, 2, view.Total)
}

func TestUsersCreateReloads(t *testing.T) {
	users := &fakeUsers{items: []models.User{{ID: 1, FullName: "Alice"}}}
	env, notes, rec := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))

	d := page.OpenCreate()
	assert.Equal(t, models.UserRoleUser, d.Form.Role)

	err := page.Save(context.Background(), dialog.UserForm{FullName: "Dan", Email: "dan@shop.vn", Role: models.UserRoleUser, Status: models.UserStatusActive})
	require.NoError(t, err)

	assert.Equal(t, 2, users.listCalls)
	assert.Len(t, page.Items(), 2)
	assert.False(t, page.Dialog().Open)
	require.Len(t, users.created, 1)
	assert.Equal(t, "dan@shop.vn", users.created[0].Email)
	assert.Equal(t, models.VariantDefault, notes.Items()[0].Variant)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "create", rec.events[0].Action)
}

func TestUsersUpdateKeepsListOnFailure(t *testing.T) {
	users := &fakeUsers{items: []models.User{{ID: 7, FullName: "Eve", Email: "eve@shop.vn"}}, saveErr: errBackend}
	env, notes, _ := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))

	_, ok := page.OpenEdit(7)
	require.True(t, ok)

	err := page.Save(context.Background(), dialog.UserForm{FullName: "Eve 2", Email: "eve@shop.vn"})
	require.ErrorIs(t, err, errBackend)

	assert.Equal(t, 1, users.listCalls)
	assert.Equal(t, "Eve", page.Items()[0].FullName)
	assert.False(t, page.Dialog().Open, "dialog closes after a failing save")
	assert.Equal(t, models.VariantDestructive, notes.Items()[0].Variant)
}

func TestUsersUpdateUsesBackendMessage(t *testing.T) {
	users := &fakeUsers{items: []models.User{{ID: 7, FullName: "Eve", Email: "eve@shop.vn"}}, message: "Updated successfully"}
	env, notes, _ := testEnv()
	page := NewUsersPage(users, env)
	require.NoError(t, page.Mount(context.Background()))
	_, ok := page.OpenEdit(7)
	require.True(t, ok)

	require.NoError(t, page.Save(context.Background(), dialog.UserForm{FullName: "Eve", Email: "eve@shop.vn"}))
	assert.Contains(t, users.updated, int64(7))
	assert.Equal(t, "Updated successfully", notes.Items()[0].Description)
}

func TestUsersSaveInvalidFormKeepsDialogOpen(t *testing.T) {
	users := &fakeUsers{}
	env, notes, rec := testEnv()
	page := NewUsersPage(users, env)
	page.OpenCreate()

	err := page.Save(context.Background(), dialog.UserForm{Email: "x@y.z"})
	require.ErrorIs(t, err, dialog.ErrInvalid)
	assert.True(t, page.Dialog().Open)
	assert.Empty(t, users.created)
	assert.Empty(t, rec.events)
	assert.Len(t, notes.Items(), 1)
}

func TestUsersOpenEditUnknown(t *testing.T) {
	env, notes, _ := testEnv()
	page := NewUsersPage(&fakeUsers{}, env)

	_, ok := page.OpenEdit(42)
	assert.False(t, ok)
	assert.Nil(t, page.Dialog())
	assert.Len(t, notes.Items(), 1)
}

func TestProductsMountFailure(t *testing.T) {
	products := &fakeProducts{listErr: errBackend}
	env, notes, _ := testEnv()
	page := NewProductsPage(products, env)

	require.Error(t, page.Mount(context.Background()))
	assert.Empty(t, page.View().Items)
	assert.NotNil(t, page.View().Items)
	assert.Equal(t, 1, products.listCalls)
	assert.Equal(t, models.VariantDestructive, notes.Items()[0].Variant)
}

func TestProductsSearchNike(t *testing.T) {
	products := &fakeProducts{items: []models.Product{
		{ID: 1, Name: "Nike Pegasus", Category: "Running"},
		{ID: 2, Name: "Leather belt", Category: "Accessories"},
	}}
	env, _, _ := testEnv()
	page := NewProductsPage(products, env)
	require.NoError(t, page.Mount(context.Background()))

	page.SetSearch("nike")
	visible := page.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Nike Pegasus", visible[0].Name)
}

func TestProductsDeleteRollback(t *testing.T) {
	products := &fakeProducts{
		items:     []models.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		removeErr: errBackend,
	}
	env, notes, _ := testEnv()
	page := NewProductsPage(products, env)
	require.NoError(t, page.Mount(context.Background()))

	require.Error(t, page.Delete(context.Background(), 1))
	assert.Len(t, page.Items(), 2)
	assert.Equal(t, models.VariantDestructive, notes.Items()[0].Variant)
}

func TestProductsViewModeIsReadOnly(t *testing.T) {
	products := &fakeProducts{items: []models.Product{{ID: 3, Name: "Hat", Status: models.ProductStatusInactive}}}
	env, _, _ := testEnv()
	page := NewProductsPage(products, env)
	require.NoError(t, page.Mount(context.Background()))

	d, ok := page.OpenView(3)
	require.True(t, ok)
	assert.Equal(t, dialog.ModeView, d.Mode)
	assert.Equal(t, models.ProductStatusInactive, d.Form.Status)

	err := page.Save(context.Background(), d.Form)
	require.ErrorIs(t, err, dialog.ErrReadOnly)
	assert.Empty(t, products.updated)
}

func TestProductsUpdateNoContentReloads(t *testing.T) {
	products := &fakeProducts{items: []models.Product{{ID: 3, Name: "Hat"}}}
	env, notes, _ := testEnv()
	page := NewProductsPage(products, env)
	require.NoError(t, page.Mount(context.Background()))
	_, ok := page.OpenEdit(3)
	require.True(t, ok)

	require.NoError(t, page.Save(context.Background(), dialog.ProductForm{Name: "Hat v2", Status: models.ProductStatusActive}))
	assert.Equal(t, "Hat v2", products.updated[3].Name)
	assert.Equal(t, 2, products.listCalls)
	assert.Equal(t, "Product updated", notes.Items()[0].Title)
}

func TestProductsSubmitStartsFromSelectedProduct(t *testing.T) {
	products := &fakeProducts{items: []models.Product{
		{ID: 7, Name: "Nike Air", Category: "shoes", Price: 100, Stock: 3, Status: models.ProductStatusActive},
	}}
	env, _, _ := testEnv()
	page := NewProductsPage(products, env)
	require.NoError(t, page.Mount(context.Background()))

	d, ok := page.OpenEdit(7)
	require.True(t, ok)
	d.Form.Name = "Nike Air Max"

	require.NoError(t, page.Submit(context.Background()))
	assert.Equal(t, models.Product{
		Name:     "Nike Air Max",
		Category: "shoes",
		Price:    100,
		Stock:    3,
		Status:   models.ProductStatusActive,
	}, products.updated[7])
}

func TestOrdersStatusChangeReloads(t *testing.T) {
	orders := &fakeOrders{items: []models.Order{
		{ID: 10, CustomerName: "Ann", Status: models.OrderStatusPending, TotalAmount: 100},
	}}
	env, notes, rec := testEnv()
	page := NewOrdersPage(orders, env)
	require.NoError(t, page.Mount(context.Background()))

	require.NoError(t, page.OpenDetail(context.Background(), 10))
	require.Len(t, page.Selected().Items, 1)
	assert.Equal(t, models.OrderStatusPending, page.Dialog().Form.OrderStatus)

	err := page.UpdateStatus(context.Background(), dialog.OrderStatusForm{OrderStatus: models.OrderStatusShipped, PaymentStatus: models.PaymentStatusPaid})
	require.NoError(t, err)

	assert.Equal(t, 2, orders.listCalls)
	assert.Equal(t, models.OrderStatusShipped, page.Items()[0].Status)
	assert.Equal(t, models.PaymentStatusPaid, orders.payment)
	assert.Equal(t, "Order updated", notes.Items()[0].Title)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "10", rec.events[0].ResourceID)
}

func TestOrdersStatusChangeFailure(t *testing.T) {
	orders := &fakeOrders{items: []models.Order{{ID: 10, Status: models.OrderStatusPending}}, updateErr: errBackend}
	env, notes, _ := testEnv()
	page := NewOrdersPage(orders, env)
	require.NoError(t, page.Mount(context.Background()))
	require.NoError(t, page.OpenDetail(context.Background(), 10))

	err := page.UpdateStatus(context.Background(), dialog.OrderStatusForm{OrderStatus: models.OrderStatusCancelled})
	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, 1, orders.listCalls)
	assert.False(t, page.Dialog().Open)
	assert.Equal(t, models.VariantDestructive, notes.Items()[0].Variant)
}

func TestOrdersSearchByStatus(t *testing.T) {
	orders := &fakeOrders{items: []models.Order{
		{ID: 1, CustomerName: "Ann", Status: models.OrderStatusPending},
		{ID: 2, CustomerName: "Bob", Status: models.OrderStatusShipped},
	}}
	env, _, _ := testEnv()
	page := NewOrdersPage(orders, env)
	require.NoError(t, page.Mount(context.Background()))

	page.SetSearch("shipped")
	require.Len(t, page.Visible(), 1)
	assert.Equal(t, int64(2), page.Visible()[0].ID)
}

type fakeSummary struct {
	summary models.Summary
	err     error
}

func (f fakeSummary) GetSummary(ctx context.Context, token string) (models.Summary, error) {
	return f.summary, f.err
}

type fakeActivity struct {
	events []models.ActivityEvent
	err    error
}

func (f fakeActivity) ListRecent(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	return f.events, f.err
}

func TestOverview(t *testing.T) {
	env, notes, _ := testEnv()
	page := NewOverviewPage(
		fakeSummary{summary: models.Summary{TotalUsers: 3, TotalProducts: 4, TotalOrders: 5, TotalRevenue: 1200.5}},
		fakeActivity{err: errBackend},
		0,
		env,
	)

	require.NoError(t, page.Mount(context.Background()))
	view := page.View()
	require.Len(t, view.Cards, 4)
	assert.Equal(t, 3.0, view.Cards[0].Value)
	assert.Equal(t, 1200.5, view.Cards[3].Value)
	assert.NotNil(t, view.MonthlyRevenue)
	assert.Empty(t, view.Activity)
	assert.Len(t, notes.Items(), 1)
}

func TestOverviewSummaryFailure(t *testing.T) {
	env, notes, _ := testEnv()
	page := NewOverviewPage(fakeSummary{err: errBackend}, nil, 5, env)

	require.ErrorIs(t, page.Mount(context.Background()), errBackend)
	assert.Equal(t, models.VariantDestructive, notes.Items()[0].Variant)
	assert.Zero(t, page.View().Cards[0].Value)
}
