package handlers

import (
	"net/http"

	"parcel_tracking"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgParcelCreated   = "Parcel registered successfully"
	msgParcelDeleted   = "Parcel deleted successfully"
	msgTestEmailQueued = "Test email queued"
	emailStatusQueued  = "queued"

	errLoadParcels = "failed to load parcels"
)

// @Summary      Register a parcel
// @Description  Generates the tracking ID, records a REGISTERED event and queues e-mails to sender and recipient.
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Param        body  body      models.Parcel  true  "Parcel"
// @Success      200   {object}  parcel_tracking.ParcelCreatedResponse
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      401   {object}  parcel_tracking.ErrorResponse
// @Failure      403   {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/add [post]
// @Security     BearerAuth
func (h *Handler) addParcel(c *gin.Context) {
	var input models.Parcel
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	p, err := h.services.CreateParcel(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err, "failed to create parcel", "parcel_create_failed")
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.ParcelCreatedResponse{
		Message:     msgParcelCreated,
		TrackingID:  p.TrackingID,
		Parcel:      *p,
		EmailStatus: emailStatusQueued,
	})
}

// @Summary      List parcels
// @Tags         parcels
// @Produce      json
// @Success      200  {array}   models.Parcel
// @Router       /api/parcels/all [get]
// @Security     BearerAuth
func (h *Handler) listParcels(c *gin.Context) {
	ps, err := h.services.ListParcels(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadParcels, "parcel_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Get a parcel by id
// @Tags         parcels
// @Produce      json
// @Param        id   path      int  true  "Parcel id"
// @Success      200  {object}  models.Parcel
// @Failure      404  {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/id/{id} [get]
// @Security     BearerAuth
func (h *Handler) getParcel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.services.GetParcel(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "failed to load parcel", "parcel_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Track a parcel
// @Tags         parcels
// @Produce      json
// @Param        trackingId  path      string  true  "Tracking ID"
// @Success      200         {object}  models.Parcel
// @Failure      404         {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/track/{trackingId} [get]
func (h *Handler) trackParcel(c *gin.Context) {
	trackingID := c.Param("trackingId")
	p, err := h.services.Track(c.Request.Context(), trackingID)
	if err != nil {
		h.respondServiceError(c, err, "failed to track parcel", "parcel_track_failed", "tracking_id", trackingID)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Update parcel details
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Parcel id"
// @Param        body  body      models.Parcel  true  "Parcel"
// @Success      200   {object}  models.Parcel
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      404   {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/update/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateParcel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.Parcel
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	p, err := h.services.UpdateParcel(c.Request.Context(), id, input)
	if err != nil {
		h.respondServiceError(c, err, "failed to update parcel", "parcel_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Change parcel status
// @Tags         parcels
// @Accept       json
// @Produce      json
// @Param        id    path      int                                  true  "Parcel id"
// @Param        body  body      parcel_tracking.StatusUpdateRequest  true  "Status"
// @Success      200   {object}  models.Parcel
// @Failure      400   {object}  parcel_tracking.ErrorResponse
// @Failure      404   {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/status/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateParcelStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input parcel_tracking.StatusUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	p, err := h.services.UpdateStatus(c.Request.Context(), id, service.StatusUpdate{
		Status:          input.Status,
		CurrentLocation: input.CurrentLocation,
		Notes:           input.Notes,
	})
	if err != nil {
		h.respondServiceError(c, err, "failed to update status", "parcel_status_update_failed", "id", id, "status", input.Status)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a parcel
// @Tags         parcels
// @Produce      json
// @Param        id   path      int  true  "Parcel id"
// @Success      200  {object}  parcel_tracking.MessageResponse
// @Failure      404  {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/delete/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteParcel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.services.DeleteParcel(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err, "failed to delete parcel", "parcel_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.MessageResponse{Message: msgParcelDeleted})
}

// @Summary      Parcels of a user
// @Description  Parcels where the e-mail is sender or recipient. Users may only list their own.
// @Tags         parcels
// @Produce      json
// @Param        email  path      string  true  "E-mail"
// @Success      200    {array}   models.Parcel
// @Failure      403    {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/user/{email} [get]
// @Security     BearerAuth
func (h *Handler) parcelsByUser(c *gin.Context) {
	email := c.Param("email")
	if !requireSelfOrAdmin(c, email) {
		return
	}
	ps, err := h.services.ListByUser(c.Request.Context(), email)
	if err != nil {
		h.respondServiceError(c, err, errLoadParcels, "parcel_list_by_user_failed", "email", email)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Parcels by status
// @Tags         parcels
// @Produce      json
// @Param        status  path      string  true  "Status"  Enums(REGISTERED,IN_TRANSIT,OUT_FOR_DELIVERY,DELIVERED,RETURNED)
// @Success      200     {array}   models.Parcel
// @Failure      400     {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/status/{status} [get]
// @Security     BearerAuth
func (h *Handler) parcelsByStatus(c *gin.Context) {
	status := c.Param("status")
	ps, err := h.services.ListByStatus(c.Request.Context(), status)
	if err != nil {
		h.respondServiceError(c, err, errLoadParcels, "parcel_list_by_status_failed", "status", status)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Parcel statistics
// @Tags         parcels
// @Produce      json
// @Success      200  {object}  models.ParcelStats
// @Router       /api/parcels/stats [get]
// @Security     BearerAuth
func (h *Handler) parcelStats(c *gin.Context) {
	st, err := h.services.ParcelStats(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load statistics", "parcel_stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Recently registered parcels
// @Tags         parcels
// @Produce      json
// @Success      200  {array}  models.Parcel
// @Router       /api/parcels/recent [get]
// @Security     BearerAuth
func (h *Handler) recentParcels(c *gin.Context) {
	ps, err := h.services.RecentParcels(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadParcels, "parcel_recent_failed", err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Search parcels
// @Tags         parcels
// @Produce      json
// @Param        q    query    string  false  "Search term"
// @Success      200  {array}  models.Parcel
// @Router       /api/parcels/search [get]
// @Security     BearerAuth
func (h *Handler) searchParcels(c *gin.Context) {
	q := c.Query("q")
	ps, err := h.services.SearchParcels(c.Request.Context(), q)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadParcels, "parcel_search_failed", err, "q", q)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Parcels needing attention
// @Description  IN_TRANSIT parcels without an update inside the stale window.
// @Tags         parcels
// @Produce      json
// @Success      200  {array}  models.Parcel
// @Router       /api/parcels/attention [get]
// @Security     BearerAuth
func (h *Handler) parcelsNeedingAttention(c *gin.Context) {
	ps, err := h.services.NeedingAttention(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadParcels, "parcel_attention_failed", err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// @Summary      Send a test e-mail
// @Tags         parcels
// @Produce      json
// @Success      200  {object}  parcel_tracking.MessageResponse
// @Failure      500  {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/test-email [post]
// @Security     BearerAuth
func (h *Handler) sendTestEmail(c *gin.Context) {
	if err := h.services.SendTestEmail(c.Request.Context()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to send test email: "+err.Error(), "test_email_failed", err)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.MessageResponse{Message: msgTestEmailQueued})
}
