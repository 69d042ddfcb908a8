package view

import (
	"context"

	"adminconsole/internal/models"
	"adminconsole/internal/notify"
)

type SummaryAPI interface {
	GetSummary(ctx context.Context, token string) (models.Summary, error)
}

// ActivityLister reads back recorded admin actions, newest first.
type ActivityLister interface {
	ListRecent(ctx context.Context, limit int) ([]models.ActivityEvent, error)
}

type StatCard struct {
	Key   string  `json:"key"`
	Title string  `json:"title"`
	Value float64 `json:"value"`
}

type OverviewView struct {
	Cards          []StatCard              `json:"cards"`
	MonthlyRevenue []models.MonthlyRevenue `json:"monthlyRevenue"`
	MonthlyOrders  []models.MonthlyOrders  `json:"monthlyOrders"`
	RecentOrders   []models.PaidOrder      `json:"recentOrders"`
	Activity       []models.ActivityEvent  `json:"activity"`
}

type OverviewPage struct {
	env      Env
	summary  SummaryAPI
	activity ActivityLister
	limit    int

	data   models.Summary
	recent []models.ActivityEvent
}

// NewOverviewPage builds the dashboard page; activity may be nil when no
// activity store is configured.
func NewOverviewPage(summary SummaryAPI, activity ActivityLister, limit int, env Env) *OverviewPage {
	if limit <= 0 {
		limit = 10
	}
	return &OverviewPage{env: env, summary: summary, activity: activity, limit: limit}
}

func (p *OverviewPage) Mount(ctx context.Context) error {
	data, err := p.summary.GetSummary(ctx, p.env.Token)
	if err != nil {
		p.env.notify(notify.Failure("Could not load dashboard", err))
		return err
	}
	p.data = data

	if p.activity != nil {
		recent, err := p.activity.ListRecent(ctx, p.limit)
		if err != nil {
			// The summary is still worth showing.
			p.env.notify(notify.Failure("Could not load recent activity", err))
			return nil
		}
		p.recent = recent
	}
	return nil
}

func (p *OverviewPage) View() OverviewView {
	return OverviewView{
		Cards: []StatCard{
			{Key: "users", Title: "Total users", Value: float64(p.data.TotalUsers)},
			{Key: "products", Title: "Total products", Value: float64(p.data.TotalProducts)},
			{Key: "orders", Title: "Total orders", Value: float64(p.data.TotalOrders)},
			{Key: "revenue", Title: "Revenue", Value: p.data.TotalRevenue},
		},
		MonthlyRevenue: nonNil(p.data.MonthlyRevenue),
		MonthlyOrders:  nonNil(p.data.MonthlyOrders),
		RecentOrders:   nonNil(p.data.Orders),
		Activity:       nonNil(p.recent),
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
