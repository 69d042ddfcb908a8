package view

import (
	"context"
	"errors"
	"sync"

	"adminconsole/internal/api"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
)

var errBackend = errors.New("backend exploded")

type fakeUsers struct {
	items     []models.User
	listCalls int
	removeErr error
	saveErr   error
	created   []api.UserInput
	updated   map[int64]api.UserInput
	message   string
}

func (f *fakeUsers) List(ctx context.Context, token string) ([]models.User, error) {
	f.listCalls++
	return append([]models.User{}, f.items...), nil
}

func (f *fakeUsers) Create(ctx context.Context, token string, in api.UserInput) (api.UserResult, error) {
	if f.saveErr != nil {
		return api.UserResult{}, f.saveErr
	}
	f.created = append(f.created, in)
	u := models.User{ID: int64(len(f.items) + 100), FullName: in.FullName, Email: in.Email}
	f.items = append(f.items, u)
	return api.UserResult{User: &u}, nil
}

func (f *fakeUsers) Update(ctx context.Context, token string, id int64, in api.UserInput) (api.UserResult, error) {
	if f.saveErr != nil {
		return api.UserResult{}, f.saveErr
	}
	if f.updated == nil {
		f.updated = map[int64]api.UserInput{}
	}
	f.updated[id] = in
	return api.UserResult{Message: f.message}, nil
}

func (f *fakeUsers) Remove(ctx context.Context, token string, id int64) error {
	return f.removeErr
}

type fakeProducts struct {
	items     []models.Product
	listErr   error
	removeErr error
	listCalls int
	updated   map[int64]models.Product
}

func (f *fakeProducts) List(ctx context.Context, token string) ([]models.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Product{}, f.items...), nil
}

func (f *fakeProducts) Create(ctx context.Context, token string, p models.Product) (models.Product, error) {
	p.ID = 999
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeProducts) Update(ctx context.Context, token string, id int64, p models.Product) (*models.Product, error) {
	if f.updated == nil {
		f.updated = map[int64]models.Product{}
	}
	f.updated[id] = p
	return nil, nil
}

func (f *fakeProducts) Remove(ctx context.Context, token string, id int64) error {
	return f.removeErr
}

type fakeOrders struct {
	items     []models.Order
	listCalls int
	updateErr error
	status    models.OrderStatus
	payment   models.PaymentStatus
}

func (f *fakeOrders) List(ctx context.Context, token string) ([]models.Order, error) {
	f.listCalls++
	return append([]models.Order{}, f.items...), nil
}

func (f *fakeOrders) GetByID(ctx context.Context, token string, id int64) (models.Order, error) {
	for _, o := range f.items {
		if o.ID == id {
			o.Items = []models.OrderItem{{ProductID: 1, Name: "Shoe", Quantity: 1, UnitPrice: o.TotalAmount}}
			return o, nil
		}
	}
	return models.Order{}, errBackend
}

func (f *fakeOrders) AdminUpdateStatus(ctx context.Context, token string, id int64, status models.OrderStatus, payment models.PaymentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.status, f.payment = status, payment
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
		}
	}
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []models.ActivityEvent
}

func (r *recorder) Record(ctx context.Context, e models.ActivityEvent) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func testEnv() (Env, *notify.Collector, *recorder) {
	n := notify.NewCollector()
	r := &recorder{}
	return Env{Token: "t1", Admin: "a@b.com", Notifier: n, Recorder: r}, n, r
}
