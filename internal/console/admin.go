package console

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"parcel_tracking"
	"parcel_tracking/internal/client"
	"parcel_tracking/internal/console/views"
	"parcel_tracking/internal/models"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

const adminHome = "/admin"

func (h *Handler) adminDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	api := h.authed(c)
	d := views.AdminDashboard{Query: strings.TrimSpace(c.Query("q"))}

	var err error
	if d.ParcelStats, err = api.ParcelStats(ctx); err != nil {
		h.fail(c, err, "Error loading statistics", "console_parcel_stats_failed", "/")
		return
	}
	if d.FeedbackStats, err = api.FeedbackStats(ctx); err != nil {
		h.fail(c, err, "Error loading statistics", "console_feedback_stats_failed", "/")
		return
	}
	if d.Users, err = api.ListUsers(ctx); err != nil {
		h.fail(c, err, "Error loading users", "console_users_failed", "/")
		return
	}
	if d.Query != "" {
		d.Parcels, err = api.SearchParcels(ctx, d.Query)
	} else {
		d.Parcels, err = api.ListParcels(ctx)
	}
	if err != nil {
		h.fail(c, err, "Error loading parcels", "console_parcels_failed", "/")
		return
	}
	if d.RecentFeedback, err = api.RecentFeedback(ctx); err != nil {
		h.fail(c, err, "Error loading feedback", "console_feedback_failed", "/")
		return
	}
	if d.Support, err = api.ListSupport(ctx); err != nil {
		h.fail(c, err, "Error loading support requests", "console_support_failed", "/")
		return
	}
	if d.Attention, err = api.ParcelsNeedingAttention(ctx); err != nil {
		h.fail(c, err, "Error loading parcels", "console_attention_failed", "/")
		return
	}

	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.AdminDashboardPage(f, d) }, "Admin dashboard")
}

func (h *Handler) sendTestEmail(c *gin.Context) {
	if err := h.authed(c).SendTestEmail(c.Request.Context()); err != nil {
		h.fail(c, err, "Failed to send test e-mail", "console_test_email_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "Test e-mail queued")
	h.redirect(c, adminHome)
}

// pathID parses :id; on failure it alerts and redirects to the dashboard.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flash(c, views.FlashError, "Invalid id")
		h.redirect(c, adminHome)
		return 0, false
	}
	return id, true
}

type parcelForm struct {
	SenderName            string `form:"senderName"`
	SenderEmail           string `form:"senderEmail"`
	SenderPhone           string `form:"senderPhone"`
	SenderAddress         string `form:"senderAddress"`
	RecipientName         string `form:"recipientName"`
	RecipientEmail        string `form:"recipientEmail"`
	RecipientPhone        string `form:"recipientPhone"`
	RecipientAddress      string `form:"recipientAddress"`
	Description           string `form:"description"`
	Weight                string `form:"weight"`
	Dimensions            string `form:"dimensions"`
	Category              string `form:"category"`
	Value                 string `form:"value"`
	ServiceType           string `form:"serviceType"`
	Priority              string `form:"priority"`
	EstimatedDeliveryDate string `form:"estimatedDeliveryDate"`
	PackageSize           string `form:"packageSize"`
	IsFragile             bool   `form:"isFragile"`
	RequiresSignature     bool   `form:"requiresSignature"`
	DeliveryInstructions  string `form:"deliveryInstructions"`
	Notes                 string `form:"notes"`
}

// apply copies the form onto p, leaving identity and lifecycle fields alone.
func (f parcelForm) apply(p models.Parcel) models.Parcel {
	p.SenderName, p.SenderEmail, p.SenderPhone, p.SenderAddress = f.SenderName, f.SenderEmail, f.SenderPhone, f.SenderAddress
	p.RecipientName, p.RecipientEmail, p.RecipientPhone, p.RecipientAddress = f.RecipientName, f.RecipientEmail, f.RecipientPhone, f.RecipientAddress
	p.Description, p.Weight, p.Dimensions, p.Category, p.Value = f.Description, f.Weight, f.Dimensions, f.Category, f.Value
	p.ServiceType, p.Priority = f.ServiceType, f.Priority
	p.EstimatedDeliveryDate = f.EstimatedDeliveryDate
	p.PackageSize = f.PackageSize
	p.IsFragile, p.RequiresSignature = f.IsFragile, f.RequiresSignature
	p.DeliveryInstructions, p.Notes = f.DeliveryInstructions, f.Notes
	return p
}

func (h *Handler) createParcel(c *gin.Context) {
	var in parcelForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "Invalid parcel form")
		h.redirect(c, adminHome)
		return
	}
	res, err := h.authed(c).AddParcel(c.Request.Context(), in.apply(models.Parcel{}))
	if err != nil {
		h.fail(c, err, "Error adding parcel", "console_parcel_create_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, fmt.Sprintf("Parcel added successfully! Tracking ID: %s", res.TrackingID))
	h.redirect(c, adminHome)
}

func (h *Handler) editParcelPage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.authed(c).GetParcel(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Error loading parcel", "console_parcel_get_failed", adminHome)
		return
	}
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.ParcelEditPage(f, *p) }, "Edit parcel")
}

// updateParcel re-reads the parcel so fields the form does not carry survive.
func (h *Handler) updateParcel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var in parcelForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "Invalid parcel form")
		h.redirect(c, adminHome)
		return
	}
	ctx := c.Request.Context()
	api := h.authed(c)
	cur, err := api.GetParcel(ctx, id)
	if err != nil {
		h.fail(c, err, "Error updating parcel", "console_parcel_get_failed", adminHome)
		return
	}
	if _, err := api.UpdateParcel(ctx, id, in.apply(*cur)); err != nil {
		h.fail(c, err, "Error updating parcel", "console_parcel_update_failed", fmt.Sprintf("/admin/parcels/%d/edit", id))
		return
	}
	h.flash(c, views.FlashSuccess, "Parcel updated successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) updateParcelStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	in := parcel_tracking.StatusUpdateRequest{
		Status:          c.PostForm("status"),
		CurrentLocation: strings.TrimSpace(c.PostForm("currentLocation")),
		Notes:           strings.TrimSpace(c.PostForm("notes")),
	}
	if _, err := h.authed(c).UpdateParcelStatus(c.Request.Context(), id, in); err != nil {
		h.fail(c, err, "Error updating status", "console_parcel_status_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "Parcel status updated successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) deleteParcel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.authed(c).DeleteParcel(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Error deleting parcel", "console_parcel_delete_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "Parcel deleted successfully!")
	h.redirect(c, adminHome)
}

type userForm struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required"`
	Password  string `form:"password"`
	Role      string `form:"role"`
}

func (h *Handler) newUserPage(c *gin.Context) {
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.UserFormPage(f, nil) }, "Create user")
}

func (h *Handler) createUser(c *gin.Context) {
	var in userForm
	if err := c.ShouldBind(&in); err != nil || in.Password == "" {
		h.flash(c, views.FlashError, "All fields are required")
		h.redirect(c, "/admin/users/new")
		return
	}
	_, err := h.authed(c).Register(c.Request.Context(), client.RegisterRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	})
	if err != nil {
		h.fail(c, err, "Error creating user", "console_user_create_failed", "/admin/users/new")
		return
	}
	h.flash(c, views.FlashSuccess, "User created successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) editUserPage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	u, err := h.authed(c).GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Error loading user", "console_user_get_failed", adminHome)
		return
	}
	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.UserFormPage(f, u) }, "Edit user")
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	back := fmt.Sprintf("/admin/users/%d/edit", id)
	var in userForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "Name and e-mail are required")
		h.redirect(c, back)
		return
	}
	_, err := h.authed(c).AdminUpdateUser(c.Request.Context(), id, client.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
	})
	if err != nil {
		h.fail(c, err, "Error updating user", "console_user_update_failed", back)
		return
	}
	h.flash(c, views.FlashSuccess, "User updated successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.authed(c).DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Error deleting user", "console_user_delete_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "User deleted successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) deleteFeedback(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.authed(c).DeleteFeedback(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Error deleting feedback", "console_feedback_delete_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "Feedback deleted successfully!")
	h.redirect(c, adminHome)
}

func (h *Handler) updateSupportStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	in := parcel_tracking.SupportStatusRequest{
		Status:        c.PostForm("status"),
		AdminResponse: strings.TrimSpace(c.PostForm("adminResponse")),
	}
	if _, err := h.authed(c).UpdateSupportStatus(c.Request.Context(), id, in); err != nil {
		h.fail(c, err, "Error updating support request", "console_support_status_failed", adminHome)
		return
	}
	h.flash(c, views.FlashSuccess, "Support request updated")
	h.redirect(c, adminHome)
}
