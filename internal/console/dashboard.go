package console

import (
	"net/http"
	"strings"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/console/views"
	"parcel_tracking/internal/models"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

func (h *Handler) userDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	p := h.profile(c)
	api := h.authed(c)

	parcels, err := api.ParcelsByUser(ctx, p.Email)
	if err != nil {
		h.fail(c, err, "Error loading parcels", "console_user_parcels_failed", "/")
		return
	}

	d := views.UserDashboard{Parcels: make([]views.ParcelRow, 0, len(parcels))}
	for _, parcel := range parcels {
		row := views.ParcelRow{Parcel: parcel}
		if parcel.IsDelivered() {
			el, err := h.api.CanGiveFeedback(ctx, parcel.TrackingID, p.Email)
			if err != nil {
				h.log.Infow("console_feedback_eligibility_failed", "tracking_id", parcel.TrackingID, "err", err)
			} else {
				row.Eligibility = &el
			}
		}
		d.Parcels = append(d.Parcels, row)
	}

	if d.Feedback, err = api.FeedbackByUser(ctx, p.Email); err != nil {
		h.fail(c, err, "Error loading feedback", "console_user_feedback_failed", "/")
		return
	}
	if d.Support, err = api.SupportByUser(ctx, p.Email); err != nil {
		h.fail(c, err, "Error loading support requests", "console_user_support_failed", "/")
		return
	}

	h.render(c, http.StatusOK, func(f views.Frame) g.Node { return views.UserDashboardPage(f, d) }, "Dashboard")
}

type feedbackForm struct {
	TrackingID string `form:"trackingId" binding:"required"`
	Rating     int    `form:"rating" binding:"required,min=1,max=5"`
	Remarks    string `form:"remarks"`
}

func (h *Handler) submitFeedback(c *gin.Context) {
	var in feedbackForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "Please choose a rating between 1 and 5")
		h.redirect(c, "/dashboard")
		return
	}
	p := h.profile(c)
	_, err := h.authed(c).SubmitFeedback(c.Request.Context(), client.FeedbackRequest{
		UserEmail:  p.Email,
		TrackingID: in.TrackingID,
		Rating:     in.Rating,
		Remarks:    strings.TrimSpace(in.Remarks),
	})
	if err != nil {
		h.fail(c, err, "Error submitting feedback", "console_feedback_submit_failed", "/dashboard")
		return
	}
	h.flash(c, views.FlashSuccess, "Thank you for your feedback!")
	h.redirect(c, "/dashboard")
}

type supportForm struct {
	Subject    string `form:"subject"`
	TrackingID string `form:"trackingId"`
	Phone      string `form:"phone"`
	IssueType  string `form:"issueType"`
	Priority   string `form:"priority"`
	Message    string `form:"message" binding:"required"`
}

func (h *Handler) submitSupport(c *gin.Context) {
	var in supportForm
	if err := c.ShouldBind(&in); err != nil {
		h.flash(c, views.FlashError, "Please describe your issue")
		h.redirect(c, "/dashboard")
		return
	}
	p := h.profile(c)
	_, err := h.authed(c).SubmitSupport(c.Request.Context(), models.SupportRequest{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      in.Phone,
		Subject:    in.Subject,
		Message:    in.Message,
		IssueType:  in.IssueType,
		Priority:   in.Priority,
		TrackingID: strings.TrimSpace(in.TrackingID),
	})
	if err != nil {
		h.fail(c, err, "Error sending support request", "console_support_submit_failed", "/dashboard")
		return
	}
	h.flash(c, views.FlashSuccess, "Support request sent. We will get back to you soon.")
	h.redirect(c, "/dashboard")
}
