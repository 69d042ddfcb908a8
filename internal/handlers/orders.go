package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/view"
)

const ordersPage = "orders"

func (h HandlerSet) ordersPage(c *gin.Context) (*view.OrdersPage, func(status int)) {
	env, notes := h.pageEnv(c)
	page := view.NewOrdersPage(h.apis.Orders, env)
	page.SetSearch(c.Query("q"))
	_ = page.Mount(c.Request.Context())
	return page, func(status int) {
		h.render(c, status, ordersPage, page.View(), notes)
	}
}

func (h HandlerSet) ListOrders(c *gin.Context) {
	_, render := h.ordersPage(c)
	render(http.StatusOK)
}

func (h HandlerSet) ShowOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.ordersPage(c)
	render(statusFor(page.OpenDetail(c.Request.Context(), id)))
}

func (h HandlerSet) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.ordersPage(c)
	if err := page.OpenDetail(c.Request.Context(), id); err != nil {
		render(statusFor(err))
		return
	}
	if !bindForm(c, &page.Dialog().Form) {
		return
	}
	render(statusFor(page.SubmitStatus(c.Request.Context())))
}
