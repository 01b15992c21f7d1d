package handlers

import (
	"net/http"

	"parcel_tracking"
	"parcel_tracking/internal/models"

	"github.com/gin-gonic/gin"
)

const errLoadSupport = "failed to load support requests"

// @Summary      Submit a support request
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        body  body      models.SupportRequest  true  "Request"
// @Success      200   {object}  models.SupportRequest
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Router       /api/support/submit [post]
func (h *Handler) submitSupport(c *gin.Context) {
	var input models.SupportRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	r, err := h.services.SubmitSupport(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err, "failed to submit support request", "support_submit_failed", "email", input.Email)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Support requests of a user
// @Tags         support
// @Produce      json
// @Param        email  path      string  true  "E-mail"
// @Success      200    {array}   models.SupportRequest
// @Failure      403    {object}  parcel_tracking.ErrorResponse
// @Router       /api/support/user/{email} [get]
// @Security     BearerAuth
func (h *Handler) supportByUser(c *gin.Context) {
	email := c.Param("email")
	if !requireSelfOrAdmin(c, email) {
		return
	}
	rs, err := h.services.SupportByEmail(c.Request.Context(), email)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSupport, "support_list_by_user_failed", err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// @Summary      List support requests
// @Tags         support
// @Produce      json
// @Success      200  {array}  models.SupportRequest
// @Router       /api/support/admin/all [get]
// @Security     BearerAuth
func (h *Handler) listSupport(c *gin.Context) {
	rs, err := h.services.ListSupport(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadSupport, "support_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// @Summary      Update support request status
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        id    path      int                                   true  "Request id"
// @Param        body  body      parcel_tracking.SupportStatusRequest  true  "Status"
// @Success      200   {object}  models.SupportRequest
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      404   {object}  parcel_tracking.ErrorResponse
// @Router       /api/support/admin/{id}/status [put]
// @Security     BearerAuth
func (h *Handler) updateSupportStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input parcel_tracking.SupportStatusRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	r, err := h.services.UpdateSupportStatus(c.Request.Context(), id, input.Status, input.AdminResponse)
	if err != nil {
		h.respondServiceError(c, err, "failed to update support request", "support_status_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Support statistics
// @Tags         support
// @Produce      json
// @Success      200  {object}  models.SupportStats
// @Router       /api/support/admin/stats [get]
// @Security     BearerAuth
func (h *Handler) supportStats(c *gin.Context) {
	st, err := h.services.SupportStats(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load statistics", "support_stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
