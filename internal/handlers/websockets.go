package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope types of the tracking stream.
const (
	wsTypeParcel = "parcel"
	wsTypeError  = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live parcel tracking
// @Description  WebSocket stream of {"type":"parcel","data":<parcel>} frames. Sends an error frame and closes when the parcel does not exist.
// @Tags         parcels
// @Param        trackingId   path   string  true   "Tracking ID"
// @Param        interval     query  string  false  "Push interval, e.g. 2s (max 10s)"
// @Param        interval_ms  query  int     false  "Push interval in milliseconds (max 10000)"
// @Router       /ws/track/{trackingId} [get]
func (h *Handler) wsTrack(c *gin.Context) {
	trackingID := c.Param("trackingId")
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	// Send the current parcel immediately.
	if err := h.sendParcel(c.Request.Context(), conn, trackingID); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "tracking_id", trackingID, "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendParcel(c.Request.Context(), conn, trackingID); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "tracking_id", trackingID, "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := defaultInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendParcel writes the parcel's current state. A missing parcel is reported
// with an error frame and ends the stream.
func (h *Handler) sendParcel(ctx context.Context, conn *websocket.Conn, trackingID string) error {
	p, err := h.services.Track(ctx, trackingID)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		if !errors.Is(err, service.ErrParcelNotFound) && !service.IsValidation(err) && h.log != nil {
			h.log.Errorw("ws_track_failed", "tracking_id", trackingID, "err", err)
		}
		if werr := conn.WriteJSON(parcel_tracking.WSEnvelope{Type: wsTypeError, Error: err.Error()}); werr != nil {
			return werr
		}
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		return err
	}
	return conn.WriteJSON(parcel_tracking.WSEnvelope{Type: wsTypeParcel, Data: p})
}
