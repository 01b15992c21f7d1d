package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"parcel_tracking/internal/models"
	"parcel_tracking/internal/service"
)

func TestParcelEventsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.ParcelEvent{
		{EventID: "e1", OccurredAt: now, Type: models.EventRegistered, Description: "Parcel registered"},
		{EventID: "e2", OccurredAt: now.Add(1 * time.Second), Type: models.EventStatusChange, Description: "moved"},
	}
	history := &mockHistory{resp: events}
	r := newTestRouter(&service.Service{History: history})

	// invalid 'from' → 400
	w := doRequest(r, http.MethodGet, "/api/parcels/track/TRK1/events?from=notatime", "", "")
	if w.Code != http.StatusBadRequest || errorBody(w) != errFromInvalid {
		t.Fatalf("expected 400 invalid 'from', got %d %q", w.Code, errorBody(w))
	}

	// from after to → 400
	w = doRequest(r, http.MethodGet, "/api/parcels/track/TRK1/events?from=2025-02-02&to=2025-02-01", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %d", w.Code)
	}

	// valid range and type (lowercase type should be normalized to upper in service call)
	q := "/api/parcels/track/TRK1/events?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=status_change"
	w = doRequest(r, http.MethodGet, q, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("events status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                  `json:"count"`
		Events []models.ParcelEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if history.lastTrackingID != "TRK1" || history.lastFilter.Type != models.EventStatusChange {
		t.Fatalf("unexpected call tracking=%q type=%q", history.lastTrackingID, history.lastFilter.Type)
	}
}

func TestParcelEventsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	history := &mockHistory{}
	r := newTestRouter(&service.Service{History: history})

	w := doRequest(r, http.MethodGet, "/api/parcels/track/TRK1/events?from=2025-08-01&to=2025-08-31", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	wantFrom := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.August, 31, 23, 59, 59, 999999999, time.UTC)
	if !history.lastFilter.From.Equal(wantFrom) || !history.lastFilter.To.Equal(wantTo) {
		t.Fatalf("got from=%v to=%v", history.lastFilter.From, history.lastFilter.To)
	}
}

func TestParseQueryTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-08-27T15:04:05Z", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27T17:04:05+02:00", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27 15:04:05", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27", time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), true},
		{"27/08/2025", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseQueryTime(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("parseQueryTime(%q) err=%v", tc.in, err)
		}
		if tc.ok && !got.Equal(tc.want) {
			t.Fatalf("parseQueryTime(%q)=%v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestParcelEventsHandler_RejectsBadBounds(t *testing.T) {
	history := &mockHistory{}
	r := newTestRouter(&service.Service{History: history})

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"bad to", "?to=31.08.2025", errToInvalid},
		{"reversed", "?from=2025-02-02&to=2025-02-01", service.ErrInvalidTimeRange.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/api/parcels/track/TRK1/events"+tt.query, "", "")
			if w.Code != http.StatusBadRequest || errorBody(w) != tt.want {
				t.Fatalf("got %d %q; want 400 %q", w.Code, errorBody(w), tt.want)
			}
		})
	}

	w := doRequest(r, http.MethodGet, "/api/parcels/track/TRK1/events?from=2025-02-01T10:00:00Z&to=2025-02-01", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("same-day range should be accepted, got %d %q", w.Code, errorBody(w))
	}
}
