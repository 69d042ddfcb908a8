package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/view"
)

const usersPage = "users"

func (h HandlerSet) usersPage(c *gin.Context) (*view.UsersPage, func(status int)) {
	env, notes := h.pageEnv(c)
	page := view.NewUsersPage(h.apis.Users, env)
	page.SetSearch(c.Query("q"))
	_ = page.Mount(c.Request.Context())
	return page, func(status int) {
		h.render(c, status, usersPage, page.View(), notes)
	}
}

func (h HandlerSet) ListUsers(c *gin.Context) {
	_, render := h.usersPage(c)
	render(http.StatusOK)
}

func (h HandlerSet) NewUser(c *gin.Context) {
	page, render := h.usersPage(c)
	page.OpenCreate()
	render(http.StatusOK)
}

func (h HandlerSet) EditUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.usersPage(c)
	if _, found := page.OpenEdit(id); !found {
		render(http.StatusNotFound)
		return
	}
	render(http.StatusOK)
}

func (h HandlerSet) CreateUser(c *gin.Context) {
	page, render := h.usersPage(c)
	d := page.OpenCreate()
	if !bindForm(c, &d.Form) {
		return
	}
	render(statusFor(page.Submit(c.Request.Context())))
}

func (h HandlerSet) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.usersPage(c)
	d, found := page.OpenEdit(id)
	if !found {
		render(http.StatusNotFound)
		return
	}
	if !bindForm(c, &d.Form) {
		return
	}
	render(statusFor(page.Submit(c.Request.Context())))
}

func (h HandlerSet) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	page, render := h.usersPage(c)
	render(statusFor(page.Delete(c.Request.Context(), id)))
}
