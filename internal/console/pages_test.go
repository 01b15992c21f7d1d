package console

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ritaLogin = parcel_tracking.LoginResponse{
		ID: 7, Email: "rita@example.com", Name: "Rita Ray", Role: models.RoleUser, Token: "user-tok",
	}
	adminLogin = parcel_tracking.LoginResponse{
		Email: "admin@example.com", Name: "System Administrator", Role: models.RoleAdmin, Token: "admin-tok",
	}
)

func credentialsForm(email string) url.Values {
	return url.Values{"email": {email}, "password": {"secret"}}
}

func TestHome_TrackShowsParcelAndHistory(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodGet, "/api/parcels/track/TRK1", http.StatusOK, models.Parcel{
		ID: 1, TrackingID: "TRK1", Status: models.StatusOutForDelivery, CurrentLocation: "Depot 4",
	})
	api.on(http.MethodGet, "/api/parcels/track/TRK1/events", http.StatusOK, parcel_tracking.EventsResponse{
		Count: 1,
		Events: []models.ParcelEvent{{
			EventID: "e1", Type: models.EventRegistered, Description: "Parcel registered",
			OccurredAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		}},
	})
	b := newBrowser(t, api)

	w := b.get("/?trackingId=TRK1")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Out For Delivery")
	assert.Contains(t, body, "Depot 4")
	assert.Contains(t, body, "Parcel registered")
	assert.Contains(t, body, "2025-03-10 12:00 UTC")
}

func TestHome_TrackNotFound(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodGet, "/api/parcels/track/NOPE", http.StatusNotFound, parcel_tracking.ErrorResponse{Error: "parcel not found"})
	b := newBrowser(t, api)

	w := b.get("/?trackingId=NOPE")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), msgTrackNotFound)
	assert.NotContains(t, w.Body.String(), `id="parcel"`)
}

func TestLogin_UserLandsOnDashboard(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	api.on(http.MethodGet, "/api/parcels/user/rita@example.com", http.StatusOK, []models.Parcel{
		{ID: 1, TrackingID: "TRK1", Status: models.StatusDelivered},
		{ID: 2, TrackingID: "TRK2", Status: models.StatusInTransit},
	})
	api.on(http.MethodGet, "/api/feedback/can-give-feedback/TRK1/rita@example.com", http.StatusOK,
		parcel_tracking.FeedbackEligibility{CanGiveFeedback: true, Reason: "Eligible to give feedback"})
	api.on(http.MethodGet, "/api/feedback/user/rita@example.com", http.StatusOK, []models.Feedback{})
	api.on(http.MethodGet, "/api/support/user/rita@example.com", http.StatusOK, []models.SupportRequest{})
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/dashboard")

	w := b.get("/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Login successful!")
	assert.Contains(t, body, "Welcome, Rita Ray")
	assert.Contains(t, body, `action="/dashboard/feedback"`)
	assert.Contains(t, body, "TRK2")

	call, ok := api.last(http.MethodGet, "/api/parcels/user/rita@example.com")
	require.True(t, ok)
	assert.Equal(t, "Bearer user-tok", call.auth)

	// Eligibility is only asked for delivered parcels.
	_, asked := api.last(http.MethodGet, "/api/feedback/can-give-feedback/TRK2/rita@example.com")
	assert.False(t, asked)
}

func TestLogin_AdminGoesToAdminDashboard(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, adminLogin)
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/login", credentialsForm("admin@example.com")), "/admin")
}

func TestLogin_InvalidCredentialsShowsAPIMessage(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusUnauthorized, parcel_tracking.ErrorResponse{Error: "invalid credentials"})
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/login")
	w := b.get("/login")
	assert.Contains(t, w.Body.String(), "invalid credentials")

	// A failed login does not leave a profile behind.
	requireRedirect(t, b.get("/dashboard"), "/login")
}

func TestAdminLogin_RejectsNonAdmin(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/admin/login", credentialsForm("rita@example.com")), "/admin/login")
	w := b.get("/admin/login")
	assert.Contains(t, w.Body.String(), msgNotAdmin)

	requireRedirect(t, b.get("/dashboard"), "/login")
}

func TestLogin_OverwritesPreviousProfile(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, adminLogin)
	b := newBrowser(t, api)
	requireRedirect(t, b.post("/login", credentialsForm("admin@example.com")), "/admin")

	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/dashboard")

	requireRedirect(t, b.get("/admin"), "/admin/login")
}

func TestDashboard_RequiresLogin(t *testing.T) {
	b := newBrowser(t, newFakeAPI())
	requireRedirect(t, b.get("/dashboard"), "/login")
	requireRedirect(t, b.get("/admin"), "/admin/login")
}

func TestUnauthorizedAPIResponseEndsSession(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	api.on(http.MethodGet, "/api/parcels/user/rita@example.com", http.StatusUnauthorized,
		parcel_tracking.ErrorResponse{Error: "invalid or expired token"})
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/dashboard")
	requireRedirect(t, b.get("/dashboard"), "/login")

	w := b.get("/login")
	assert.Contains(t, w.Body.String(), msgSessionExpired)
	requireRedirect(t, b.get("/dashboard"), "/login")
}

func TestLogout_ClearsProfile(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	b := newBrowser(t, api)

	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/dashboard")
	requireRedirect(t, b.post("/logout", nil), "/")
	requireRedirect(t, b.get("/dashboard"), "/login")
}

func TestSignup_ShowsBackendError(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/register", http.StatusBadRequest, parcel_tracking.ErrorResponse{Error: "Email already exists!"})
	b := newBrowser(t, api)

	form := url.Values{"firstName": {"Rita"}, "lastName": {"Ray"}, "email": {"rita@example.com"}, "password": {"pw"}}
	requireRedirect(t, b.post("/signup", form), "/signup")
	assert.Contains(t, b.get("/signup").Body.String(), "Email already exists!")

	api.on(http.MethodPost, "/api/users/register", http.StatusOK, models.User{ID: 9, Email: "rita@example.com"})
	requireRedirect(t, b.post("/signup", form), "/login")
}

func TestUser_SubmitFeedback(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, ritaLogin)
	api.on(http.MethodPost, "/api/feedback/submit", http.StatusOK, parcel_tracking.FeedbackSubmittedResponse{FeedbackID: 3, Status: "success"})
	b := newBrowser(t, api)
	requireRedirect(t, b.post("/login", credentialsForm("rita@example.com")), "/dashboard")

	// out-of-range rating never reaches the API
	requireRedirect(t, b.post("/dashboard/feedback", url.Values{"trackingId": {"TRK1"}, "rating": {"9"}}), "/dashboard")
	_, called := api.last(http.MethodPost, "/api/feedback/submit")
	require.False(t, called)

	requireRedirect(t, b.post("/dashboard/feedback", url.Values{"trackingId": {"TRK1"}, "rating": {"5"}, "remarks": {" great "}}), "/dashboard")
	call, ok := api.last(http.MethodPost, "/api/feedback/submit")
	require.True(t, ok)
	assert.Equal(t, "Bearer user-tok", call.auth)
	assert.JSONEq(t, `{"userEmail":"rita@example.com","trackingId":"TRK1","rating":5,"remarks":"great"}`, call.body)
}

func loggedInAdmin(t *testing.T, api *fakeAPI) *browser {
	t.Helper()
	api.on(http.MethodPost, "/api/users/login", http.StatusOK, adminLogin)
	b := newBrowser(t, api)
	requireRedirect(t, b.post("/admin/login", credentialsForm("admin@example.com")), "/admin")
	return b
}

func TestAdmin_DashboardRenders(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodGet, "/api/parcels/stats", http.StatusOK, models.ParcelStats{TotalParcels: 1234, Delivered: 1000})
	api.on(http.MethodGet, "/api/feedback/stats", http.StatusOK, models.FeedbackStats{TotalFeedback: 5, AverageRating: 3.4})
	api.on(http.MethodGet, "/api/users/all", http.StatusOK, []models.User{{ID: 7, FirstName: "Rita", LastName: "Ray", Email: "rita@example.com", Role: models.RoleUser}})
	api.on(http.MethodGet, "/api/parcels/all", http.StatusOK, []models.Parcel{{ID: 1, TrackingID: "TRK1", Status: models.StatusInTransit}})
	api.on(http.MethodGet, "/api/feedback/recent", http.StatusOK, []models.Feedback{{ID: 3, TrackingID: "TRK1", Rating: 4}})
	api.on(http.MethodGet, "/api/support/admin/all", http.StatusOK, []models.SupportRequest{{ID: 2, Name: "Rita", Email: "rita@example.com", Status: models.SupportOpen}})
	api.on(http.MethodGet, "/api/parcels/attention", http.StatusOK, []models.Parcel{})
	b := loggedInAdmin(t, api)

	w := b.get("/admin")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "1,234")
	assert.Contains(t, body, "3.4 / 5")
	assert.Contains(t, body, "Rita Ray")
	assert.Contains(t, body, `action="/admin/parcels/1/status"`)
	assert.Contains(t, body, `action="/admin/feedback/3/delete"`)
	assert.Contains(t, body, `action="/admin/support/2/status"`)

	call, _ := api.last(http.MethodGet, "/api/users/all")
	assert.Equal(t, "Bearer admin-tok", call.auth)
}

func TestAdmin_CreateParcel(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPost, "/api/parcels/add", http.StatusOK, parcel_tracking.ParcelCreatedResponse{TrackingID: "TRK9"})
	b := loggedInAdmin(t, api)

	form := url.Values{
		"senderName": {"Sam"}, "senderEmail": {"sam@example.com"},
		"recipientName": {"Rita"}, "recipientEmail": {"rita@example.com"},
		"serviceType": {models.ServiceExpress}, "isFragile": {"true"},
	}
	requireRedirect(t, b.post("/admin/parcels", form), "/admin")

	call, ok := api.last(http.MethodPost, "/api/parcels/add")
	require.True(t, ok)
	var sent models.Parcel
	require.NoError(t, json.Unmarshal([]byte(call.body), &sent))
	assert.Equal(t, "Sam", sent.SenderName)
	assert.Equal(t, models.ServiceExpress, sent.ServiceType)
	assert.True(t, sent.IsFragile)
	assert.Empty(t, sent.TrackingID)

	assert.Contains(t, b.get("/admin/login").Body.String(), "Tracking ID: TRK9")
}

func TestAdmin_UpdateStatusAndErrors(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodPut, "/api/parcels/status/5", http.StatusOK, models.Parcel{ID: 5, Status: models.StatusDelivered})
	b := loggedInAdmin(t, api)

	requireRedirect(t, b.post("/admin/parcels/5/status", url.Values{"status": {"DELIVERED"}, "currentLocation": {"Door"}}), "/admin")
	call, ok := api.last(http.MethodPut, "/api/parcels/status/5")
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"DELIVERED","currentLocation":"Door"}`, call.body)

	api.on(http.MethodDelete, "/api/parcels/delete/6", http.StatusNotFound, parcel_tracking.ErrorResponse{Error: "parcel not found"})
	requireRedirect(t, b.post("/admin/parcels/6/delete", nil), "/admin")
	assert.Contains(t, b.get("/admin/login").Body.String(), "parcel not found")

	requireRedirect(t, b.post("/admin/parcels/abc/delete", nil), "/admin")
}

func TestAdmin_EditUserPrefillsForm(t *testing.T) {
	api := newFakeAPI()
	api.on(http.MethodGet, "/api/users/admin/user/7", http.StatusOK, models.User{ID: 7, FirstName: "Rita", LastName: "Ray", Email: "rita@example.com", Role: models.RoleUser})
	api.on(http.MethodPut, "/api/users/admin/user/7", http.StatusOK, models.User{ID: 7})
	b := loggedInAdmin(t, api)

	w := b.get("/admin/users/7/edit")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="rita@example.com"`)

	form := url.Values{"firstName": {"Rita"}, "lastName": {"Ray"}, "email": {"rita@example.com"}, "role": {models.RoleAdmin}}
	requireRedirect(t, b.post("/admin/users/7", form), "/admin")
	call, _ := api.last(http.MethodPut, "/api/users/admin/user/7")
	assert.JSONEq(t, `{"firstName":"Rita","lastName":"Ray","email":"rita@example.com","role":"ADMIN"}`, call.body)
}
