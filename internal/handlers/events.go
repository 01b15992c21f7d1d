package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// queryTimeLayouts are tried in order by parseQueryTime.
var queryTimeLayouts = []string{time.RFC3339, layoutDateTime, layoutDate}

// @Summary      Parcel tracking history
// @Description  Events recorded for one parcel, oldest first: registration, status changes, detail edits and stale-parcel warnings. A date-only 'to' covers that whole day.
// @Tags         parcels
// @Produce      json
// @Param        trackingId  path      string  true   "Tracking ID"
// @Param        from        query     string  false  "Earliest event time"  example(2025-08-01)
// @Param        to          query     string  false  "Latest event time"  example(2025-08-31)
// @Param        type        query     string  false  "Event type"  Enums(REGISTERED,STATUS_CHANGE,UPDATED,ATTENTION)
// @Success      200         {object}  parcel_tracking.EventsResponse
// @Failure      400         {object}  parcel_tracking.ErrorResponse
// @Failure      500         {object}  parcel_tracking.ErrorResponse
// @Router       /api/parcels/track/{trackingId}/events [get]
func (h *Handler) parcelEvents(c *gin.Context) {
	trackingID := c.Param("trackingId")

	filter, msg := historyFilterFromQuery(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	events, err := h.services.ListHistory(c.Request.Context(), trackingID, filter)
	if err != nil {
		h.respondServiceError(c, err, "failed to load tracking history", "parcel_history_failed",
			"tracking_id", trackingID, "from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	c.JSON(http.StatusOK, parcel_tracking.EventsResponse{
		Count:  len(events),
		Events: events,
	})
}

// historyFilterFromQuery reads from, to and type. On bad input it returns the
// message for the 400 response.
func historyFilterFromQuery(c *gin.Context) (service.HistoryFilter, string) {
	f := service.HistoryFilter{Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	if raw := c.Query("from"); raw != "" {
		t, err := parseQueryTime(raw)
		if err != nil {
			return f, errFromInvalid
		}
		f.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseQueryTime(raw)
		if err != nil {
			return f, errToInvalid
		}
		if !strings.ContainsAny(raw, "T ") {
			t = endOfDay(t)
		}
		f.To = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, service.ErrInvalidTimeRange.Error()
	}
	return f, ""
}

// endOfDay returns the last nanosecond of the UTC day starting at t.
func endOfDay(t time.Time) time.Time {
	return t.Add(24*time.Hour - time.Nanosecond).UTC()
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range queryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", s)
}
