// Package console serves the browser console. It owns no business rules:
// every read and write goes through the REST API client.
package console

import (
	"errors"
	"net/http"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/console/views"
	"parcel_tracking/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	g "maragu.dev/gomponents"
)

const msgSessionExpired = "Your session has expired. Please log in again."

type Handler struct {
	api   *client.Client
	store sessions.Store
	log   *logger.Logger
}

func NewHandler(api *client.Client, store sessions.Store, log *logger.Logger) *Handler {
	return &Handler{api: api, store: store, log: logger.OrNop(log)}
}

// InitRoutes builds the console router.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", h.home)
	router.GET("/login", h.loginPage)
	router.POST("/login", h.login)
	router.GET("/admin/login", h.adminLoginPage)
	router.POST("/admin/login", h.adminLogin)
	router.GET("/signup", h.signupPage)
	router.POST("/signup", h.signup)
	router.GET("/forgot-password", h.forgotPasswordPage)
	router.POST("/forgot-password", h.forgotPassword)
	router.POST("/logout", h.logout)

	user := router.Group("/dashboard", h.requireUser)
	{
		user.GET("", h.userDashboard)
		user.POST("/feedback", h.submitFeedback)
		user.POST("/support", h.submitSupport)
	}

	admin := router.Group("/admin", h.requireAdmin)
	{
		admin.GET("", h.adminDashboard)
		admin.POST("/test-email", h.sendTestEmail)

		admin.POST("/parcels", h.createParcel)
		admin.GET("/parcels/:id/edit", h.editParcelPage)
		admin.POST("/parcels/:id", h.updateParcel)
		admin.POST("/parcels/:id/status", h.updateParcelStatus)
		admin.POST("/parcels/:id/delete", h.deleteParcel)

		admin.GET("/users/new", h.newUserPage)
		admin.POST("/users", h.createUser)
		admin.GET("/users/:id/edit", h.editUserPage)
		admin.POST("/users/:id", h.updateUser)
		admin.POST("/users/:id/delete", h.deleteUser)

		admin.POST("/feedback/:id/delete", h.deleteFeedback)
		admin.POST("/support/:id/status", h.updateSupportStatus)
	}

	return router
}

// render writes a full page. Flashes are consumed here, so they show exactly once.
func (h *Handler) render(c *gin.Context, status int, page func(views.Frame) g.Node, title string) {
	frame := views.Frame{
		Title:   title,
		Viewer:  h.viewer(c),
		Flashes: h.takeFlashes(c),
	}
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page(frame).Render(c.Writer); err != nil {
		h.log.Errorw("console_render_failed", "title", title, "err", err)
	}
}

func (h *Handler) redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}

// fail reports an API error as an alert and redirects. A 401 means the stored
// token is no longer accepted: the profile is dropped and the user sent to login.
func (h *Handler) fail(c *gin.Context, err error, fallback, logKey, to string) {
	if errors.Is(err, client.ErrUnauthorized) {
		h.log.Infow("console_session_rejected", "path", c.Request.URL.Path, "err", err)
		h.clearProfile(c)
		h.flash(c, views.FlashError, msgSessionExpired)
		h.redirect(c, "/login")
		return
	}
	h.log.Errorw(logKey, "err", err)
	h.flash(c, views.FlashError, userMessage(err, fallback))
	h.redirect(c, to)
}

// userMessage prefers the API's own wording for client errors.
func userMessage(err error, fallback string) string {
	if code := client.StatusCode(err); code >= 400 && code < 500 {
		return client.Message(err)
	}
	return fallback
}
