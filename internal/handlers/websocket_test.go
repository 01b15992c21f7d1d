package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"parcel_tracking/internal/models"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws/track/TRK1", 1 * time.Second},
		{"interval_string_valid", "/ws/track/TRK1?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws/track/TRK1?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws/track/TRK1?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws/track/TRK1?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws/track/TRK1?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws/track/TRK1?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws/track/TRK1?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws/track/TRK1?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

type wsEnvelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func dialTrack(t *testing.T, s *service.Service, trackingID string, intervalMs string) *websocket.Conn {
	t.Helper()
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws/track/:trackingId", h.wsTrack)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/track/" + trackingID
	if intervalMs != "" {
		q := u.Query()
		q.Set("interval_ms", intervalMs)
		u.RawQuery = q.Encode()
	}

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_TrackStream_InitialAndPeriodic(t *testing.T) {
	parcels := &mockParcels{parcel: &models.Parcel{
		ID:              1,
		TrackingID:      "TRK1",
		Status:          models.StatusInTransit,
		CurrentLocation: "Hub A",
	}}
	conn := dialTrack(t, &service.Service{Parcels: parcels}, "TRK1", "20")

	// Read initial parcel
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "parcel" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var p models.Parcel
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("unmarshal parcel: %v", err)
	}
	if p.TrackingID != "TRK1" || p.Status != models.StatusInTransit || p.CurrentLocation != "Hub A" {
		t.Fatalf("unexpected parcel: %+v", p)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = wsEnvelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "parcel" {
		t.Fatalf("expected type=parcel, got %+v", env)
	}
}

func TestWebSocket_UnknownParcel_SendsErrorAndCloses(t *testing.T) {
	parcels := &mockParcels{err: service.ErrParcelNotFound}
	conn := dialTrack(t, &service.Service{Parcels: parcels}, "NOPE", "")

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read error frame: %v", err)
	}
	if env.Type != "error" || env.Error != service.ErrParcelNotFound.Error() {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	// The server closes right after the error frame.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
