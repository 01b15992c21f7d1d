package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parcel_tracking/internal/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrack(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/parcels/track/TRK1":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"trackingId": "TRK1", "status": "IN_TRANSIT", "currentLocation": "Hub A",
				"senderName": "Ann", "senderEmail": "ann@x.io",
				"recipientName": "Bob", "recipientEmail": "bob@x.io",
			})
		case "/api/parcels/track/TRK1/events":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"count": 1,
				"events": []map[string]any{
					{"eventId": "e1", "trackingId": "TRK1", "occurredAt": at, "type": "REGISTERED", "description": "Parcel registered"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "parcel not found"})
		}
	}))
	defer srv.Close()

	api := client.New(srv.URL, time.Second)

	var out bytes.Buffer
	require.NoError(t, runTrack(context.Background(), api, "TRK1", &out))
	assert.Contains(t, out.String(), "IN_TRANSIT")
	assert.Contains(t, out.String(), "Hub A")
	assert.Contains(t, out.String(), "Bob <bob@x.io>")
	assert.Contains(t, out.String(), "2025-03-01T09:30:00Z")
	assert.Contains(t, out.String(), "Parcel registered")

	err := runTrack(context.Background(), api, "NOPE", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parcel not found")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "parceltrack v"+version+"\n", out.String())
}
