package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"adminconsole/internal/api"
	"adminconsole/internal/backend"
	"adminconsole/internal/config"
	"adminconsole/internal/dialog"
	"adminconsole/internal/middleware"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
	"adminconsole/internal/service"
	"adminconsole/internal/view"
)

// HealthCheck pings one dependency.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// Deps are the collaborators of the console handlers. Uploads, Recorder and
// Activity are optional.
type Deps struct {
	Log      zerolog.Logger
	Config   *config.AppConfig
	APIs     api.Set
	Auth     *service.AuthService
	Uploads  *service.UploadService
	Recorder view.Recorder
	Activity view.ActivityLister
	Checks   []HealthCheck
}

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	apis     api.Set
	auth     *service.AuthService
	uploads  *service.UploadService
	recorder view.Recorder
	activity view.ActivityLister
	checks   []HealthCheck
}

func NewHandlerSet(deps Deps) HandlerSet {
	return HandlerSet{
		log:      deps.Log,
		cfg:      deps.Config,
		apis:     deps.APIs,
		auth:     deps.Auth,
		uploads:  deps.Uploads,
		recorder: deps.Recorder,
		activity: deps.Activity,
		checks:   deps.Checks,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	sameOrigin := middleware.SameOrigin(h.cfg.AllowCORSOrigins)

	router.GET(middleware.LoginPath, h.LoginPage)
	router.POST(middleware.LoginPath, sameOrigin, h.Login)
	router.POST("/logout", sameOrigin, h.Logout)

	console := router.Group("/")
	console.Use(
		middleware.Gate(h.auth, h.cfg.Session, h.log),
		sameOrigin,
	)

	console.GET("/", h.Overview)
	console.GET("/session", h.Session)
	console.GET("/activity", h.Activity)

	users := console.Group("/users")
	users.GET("", h.ListUsers)
	users.GET("/new", h.NewUser)
	users.GET("/:id/edit", h.EditUser)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)

	products := console.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/new", h.NewProduct)
	products.GET("/:id", h.ShowProduct)
	products.GET("/:id/edit", h.EditProduct)
	products.POST("", h.CreateProduct)
	products.POST("/images", h.UploadProductImage)
	products.PUT("/:id", h.UpdateProduct)
	products.DELETE("/:id", h.DeleteProduct)

	orders := console.Group("/orders")
	orders.GET("", h.ListOrders)
	orders.GET("/:id", h.ShowOrder)
	orders.PUT("/:id/status", h.UpdateOrderStatus)
}

type pageResponse struct {
	Page          string                `json:"page"`
	Admin         string                `json:"admin"`
	View          any                   `json:"view"`
	Notifications []models.Notification `json:"notifications"`
}

// pageEnv builds the per-request environment of a page controller. Pending
// flash notifications from the session are delivered first.
func (h HandlerSet) pageEnv(c *gin.Context) (view.Env, *notify.Collector) {
	sess, _ := middleware.CurrentSession(c)
	collector := notify.NewCollector(h.auth.TakeFlash(c.Request.Context(), sess)...)
	return view.Env{
		Token:    sess.Token,
		Admin:    sess.AdminName,
		Notifier: collector,
		Recorder: h.recorder,
	}, collector
}

func (h HandlerSet) render(c *gin.Context, status int, page string, state any, notes *notify.Collector) {
	sess, _ := middleware.CurrentSession(c)
	c.JSON(status, pageResponse{
		Page:          page,
		Admin:         sess.AdminName,
		View:          state,
		Notifications: notes.Items(),
	})
}

// statusFor maps a controller error to the status of the rendered view.
func statusFor(err error) int {
	var backendErr *backend.Error
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dialog.ErrInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dialog.ErrReadOnly), errors.Is(err, dialog.ErrClosed):
		return http.StatusConflict
	case errors.As(err, &backendErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return id, true
}

// bindForm fills form from the body. Missing required fields are not an error
// here; the dialog reports them on submit.
func bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBind(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "detail": err.Error()})
		return false
	}
	return true
}
