package handlers

import (
	"net/http"
	"strings"

	"parcel_tracking"
	"parcel_tracking/internal/models"

	"github.com/gin-gonic/gin"
)

type feedbackRequest struct {
	UserEmail  string `json:"userEmail,omitempty"`
	TrackingID string `json:"trackingId"`
	Rating     int    `json:"rating"`
	Remarks    string `json:"remarks,omitempty"`
}

const errLoadFeedback = "failed to load feedback"

// @Summary      Submit feedback
// @Description  Rates a delivered parcel. userEmail defaults to the caller; only admins may submit for someone else.
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      feedbackRequest  true  "Feedback"
// @Success      200   {object}  parcel_tracking.FeedbackSubmittedResponse
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      403   {object}  parcel_tracking.ErrorResponse
// @Router       /api/feedback/submit [post]
// @Security     BearerAuth
func (h *Handler) submitFeedback(c *gin.Context) {
	var input feedbackRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if strings.TrimSpace(input.UserEmail) == "" {
		input.UserEmail = currentClaims(c).Email
	}
	if !requireSelfOrAdmin(c, input.UserEmail) {
		return
	}

	f, err := h.services.SubmitFeedback(c.Request.Context(), models.Feedback{
		UserEmail:  input.UserEmail,
		TrackingID: input.TrackingID,
		Rating:     input.Rating,
		Remarks:    input.Remarks,
	})
	if err != nil {
		h.respondServiceError(c, err, "failed to submit feedback", "feedback_submit_failed", "tracking_id", input.TrackingID)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.FeedbackSubmittedResponse{
		Message:    "Feedback submitted successfully",
		FeedbackID: f.ID,
		Status:     "success",
		Timestamp:  f.CreatedAt,
	})
}

// @Summary      Feedback eligibility
// @Tags         feedback
// @Produce      json
// @Param        trackingId  path      string  true  "Tracking ID"
// @Param        userEmail   path      string  true  "E-mail"
// @Success      200         {object}  parcel_tracking.FeedbackEligibility
// @Router       /api/feedback/can-give-feedback/{trackingId}/{userEmail} [get]
func (h *Handler) feedbackEligibility(c *gin.Context) {
	trackingID, email := c.Param("trackingId"), c.Param("userEmail")
	res, err := h.services.Eligibility(c.Request.Context(), trackingID, email)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to check feedback eligibility", "feedback_eligibility_failed", err,
			"tracking_id", trackingID)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Feedback for a parcel
// @Tags         feedback
// @Produce      json
// @Param        trackingId  path     string  true  "Tracking ID"
// @Success      200         {array}  models.Feedback
// @Router       /api/feedback/parcel/{trackingId} [get]
// @Security     BearerAuth
func (h *Handler) feedbackByParcel(c *gin.Context) {
	fs, err := h.services.FeedbackByParcel(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadFeedback, "feedback_list_by_parcel_failed", err)
		return
	}
	c.JSON(http.StatusOK, fs)
}

// @Summary      Feedback of a user
// @Tags         feedback
// @Produce      json
// @Param        userEmail  path      string  true  "E-mail"
// @Success      200        {array}   models.Feedback
// @Failure      403        {object}  parcel_tracking.ErrorResponse
// @Router       /api/feedback/user/{userEmail} [get]
// @Security     BearerAuth
func (h *Handler) feedbackByUser(c *gin.Context) {
	email := c.Param("userEmail")
	if !requireSelfOrAdmin(c, email) {
		return
	}
	fs, err := h.services.FeedbackByUser(c.Request.Context(), email)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadFeedback, "feedback_list_by_user_failed", err)
		return
	}
	c.JSON(http.StatusOK, fs)
}

// @Summary      Feedback statistics
// @Tags         feedback
// @Produce      json
// @Success      200  {object}  models.FeedbackStats
// @Router       /api/feedback/stats [get]
// @Security     BearerAuth
func (h *Handler) feedbackStats(c *gin.Context) {
	st, err := h.services.FeedbackStats(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load statistics", "feedback_stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Recent feedback
// @Tags         feedback
// @Produce      json
// @Success      200  {array}  models.Feedback
// @Router       /api/feedback/recent [get]
// @Security     BearerAuth
func (h *Handler) recentFeedback(c *gin.Context) {
	fs, err := h.services.RecentFeedback(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadFeedback, "feedback_recent_failed", err)
		return
	}
	c.JSON(http.StatusOK, fs)
}

// @Summary      Delete feedback
// @Tags         feedback
// @Produce      json
// @Param        id   path      int  true  "Feedback id"
// @Success      200  {object}  parcel_tracking.MessageResponse
// @Failure      404  {object}  parcel_tracking.ErrorResponse
// @Router       /api/feedback/delete/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteFeedback(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.DeleteFeedback(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, "failed to delete feedback", "feedback_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.MessageResponse{Message: "Feedback deleted successfully"})
}
