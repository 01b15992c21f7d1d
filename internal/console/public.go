package console

import (
	"net/http"
	"strings"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/console/views"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

const (
	msgLoginFailed   = "Login failed. Please check your connection and try again."
	msgNotAdmin      = "You are not admin"
	msgSignupFailed  = "Registration failed."
	msgTrackNotFound = "Parcel not found with this tracking ID"
)

type credentials struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) home(c *gin.Context) {
	t := views.Tracking{TrackingID: strings.TrimSpace(c.Query("trackingId"))}
	if t.TrackingID != "" {
		ctx := c.Request.Context()
		p, err := h.api.TrackParcel(ctx, t.TrackingID)
		switch {
		case client.StatusCode(err) == http.StatusNotFound:
			h.flash(c, views.FlashError, msgTrackNotFound)
		case err != nil:
			h.log.Errorw("console_track_failed", "tracking_id", t.TrackingID, "err", err)
			h.flash(c, views.FlashError, "Error tracking parcel")
		default:
			t.Parcel = p
			if ev, err := h.api.ParcelEvents(ctx, t.TrackingID); err != nil {
				h.log.Infow("console_history_failed", "tracking_id", t.TrackingID, "err", err)
			} else {
				t.Events = ev.Events
			}
		}
	}
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.HomePage(f, t) }, "Track")
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.LoginPage(f, false, "") }, "Login")
}

func (h *Handler) adminLoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.LoginPage(f, true, "") }, "Admin login")
}

// login accepts any role and lands the user on the dashboard that matches it.
func (h *Handler) login(c *gin.Context) {
	p, ok := h.authenticate(c, "/login")
	if !ok {
		return
	}
	h.saveProfile(c, *p)
	if p.IsAdmin() {
		h.flash(c, views.FlashSuccess, "Welcome Admin!")
		h.redirect(c, "/admin")
		return
	}
	h.flash(c, views.FlashSuccess, "Login successful!")
	h.redirect(c, "/dashboard")
}

// adminLogin only keeps the profile when the account is an admin.
func (h *Handler) adminLogin(c *gin.Context) {
	p, ok := h.authenticate(c, "/admin/login")
	if !ok {
		return
	}
	if !p.IsAdmin() {
		h.flash(c, views.FlashError, msgNotAdmin)
		h.redirect(c, "/admin/login")
		return
	}
	h.saveProfile(c, *p)
	h.flash(c, views.FlashSuccess, "Login successful")
	h.redirect(c, "/admin")
}

func (h *Handler) authenticate(c *gin.Context, back string) (*Profile, bool) {
	var in credentials
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "E-mail and password are required")
		h.redirect(c, back)
		return nil, false
	}
	resp, err := h.api.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		msg := msgLoginFailed
		if client.StatusCode(err) != 0 {
			msg = client.Message(err)
		}
		h.log.Infow("console_login_failed", "email", in.Email, "err", err)
		h.flash(c, views.FlashError, msg)
		h.redirect(c, back)
		return nil, false
	}
	name := resp.Name
	if name == "" {
		name = strings.TrimSpace(resp.FirstName + " " + resp.LastName)
	}
	return &Profile{ID: resp.ID, Email: resp.Email, Name: name, Role: resp.Role, Token: resp.Token}, true
}

func (h *Handler) logout(c *gin.Context) {
	h.clearProfile(c)
	h.flash(c, views.FlashSuccess, "Logged out")
	h.redirect(c, "/")
}

func (h *Handler) signupPage(c *gin.Context) {
	h.render(c, http.StatusOK, views.SignupPage, "Sign up")
}

type signupForm struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required"`
	Password  string `form:"password" binding:"required"`
}

func (h *Handler) signup(c *gin.Context) {
	var in signupForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "All fields are required")
		h.redirect(c, "/signup")
		return
	}
	_, err := h.api.Register(c.Request.Context(), client.RegisterRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		h.log.Infow("console_signup_failed", "email", in.Email, "err", err)
		h.flash(c, views.FlashError, userMessage(err, msgSignupFailed))
		h.redirect(c, "/signup")
		return
	}
	h.flash(c, views.FlashSuccess, "Registration successful. Please log in.")
	h.redirect(c, "/login")
}

func (h *Handler) forgotPasswordPage(c *gin.Context) {
	h.render(c, http.StatusOK, views.ForgotPasswordPage, "Reset password")
}

func (h *Handler) forgotPassword(c *gin.Context) {
	email, password := strings.TrimSpace(c.PostForm("email")), c.PostForm("newPassword")
	if email == "" || password == "" {
		h.flash(c, views.FlashError, "E-mail and new password are required")
		h.redirect(c, "/forgot-password")
		return
	}
	if err := h.api.ForgotPassword(c.Request.Context(), email, password); err != nil {
		h.log.Infow("console_password_reset_failed", "email", email, "err", err)
		h.flash(c, views.FlashError, userMessage(err, "Password reset failed."))
		h.redirect(c, "/forgot-password")
		return
	}
	h.flash(c, views.FlashSuccess, "Password updated successfully")
	h.redirect(c, "/login")
}
