package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"parcel_tracking"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginResp    *parcel_tracking.LoginResponse
	loginErr     error
	claims       *service.Claims
	parseErr     error
	resetErr     error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastParseToken string
	lastResetEmail string
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}
func (m *mockAuth) Login(ctx context.Context, email, password string) (*parcel_tracking.LoginResponse, error) {
	m.lastLoginEmail = email
	return m.loginResp, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.claims, nil
}
func (m *mockAuth) ResetPassword(ctx context.Context, email, newPassword string) error {
	m.lastResetEmail = email
	return m.resetErr
}

type mockUsers struct {
	users     []models.User
	user      *models.User
	err       error
	lastID    int64
	lastIn    service.UserUpdate
	lastAdmin bool
}

func (m *mockUsers) ListUsers(ctx context.Context) ([]models.User, error) { return m.users, m.err }
func (m *mockUsers) GetUser(ctx context.Context, id int64) (*models.User, error) {
	m.lastID = id
	return m.user, m.err
}
func (m *mockUsers) UpdateUser(ctx context.Context, id int64, in service.UserUpdate, asAdmin bool) (*models.User, error) {
	m.lastID, m.lastIn, m.lastAdmin = id, in, asAdmin
	return m.user, m.err
}
func (m *mockUsers) DeleteUser(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}

type mockParcels struct {
	parcel  *models.Parcel
	parcels []models.Parcel
	stats   models.ParcelStats
	err     error

	lastCreate models.Parcel
	lastID     int64
	lastStatus service.StatusUpdate
	lastEmail  string
	lastQuery  string
	testEmails int
}

func (m *mockParcels) CreateParcel(ctx context.Context, p models.Parcel) (*models.Parcel, error) {
	m.lastCreate = p
	return m.parcel, m.err
}
func (m *mockParcels) GetParcel(ctx context.Context, id int64) (*models.Parcel, error) {
	m.lastID = id
	return m.parcel, m.err
}
func (m *mockParcels) Track(ctx context.Context, trackingID string) (*models.Parcel, error) {
	return m.parcel, m.err
}
func (m *mockParcels) ListParcels(ctx context.Context) ([]models.Parcel, error) {
	return m.parcels, m.err
}
func (m *mockParcels) ListByUser(ctx context.Context, email string) ([]models.Parcel, error) {
	m.lastEmail = email
	return m.parcels, m.err
}
func (m *mockParcels) ListByStatus(ctx context.Context, status string) ([]models.Parcel, error) {
	m.lastQuery = status
	return m.parcels, m.err
}
func (m *mockParcels) RecentParcels(ctx context.Context) ([]models.Parcel, error) {
	return m.parcels, m.err
}
func (m *mockParcels) SearchParcels(ctx context.Context, term string) ([]models.Parcel, error) {
	m.lastQuery = term
	return m.parcels, m.err
}
func (m *mockParcels) NeedingAttention(ctx context.Context) ([]models.Parcel, error) {
	return m.parcels, m.err
}
func (m *mockParcels) UpdateParcel(ctx context.Context, id int64, p models.Parcel) (*models.Parcel, error) {
	m.lastID = id
	return m.parcel, m.err
}
func (m *mockParcels) UpdateStatus(ctx context.Context, id int64, u service.StatusUpdate) (*models.Parcel, error) {
	m.lastID, m.lastStatus = id, u
	return m.parcel, m.err
}
func (m *mockParcels) DeleteParcel(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}
func (m *mockParcels) ParcelStats(ctx context.Context) (models.ParcelStats, error) {
	return m.stats, m.err
}
func (m *mockParcels) SendTestEmail(ctx context.Context) error {
	m.testEmails++
	return m.err
}

type mockHistory struct {
	resp           []models.ParcelEvent
	err            error
	lastTrackingID string
	lastFilter     service.HistoryFilter
}

func (m *mockHistory) ListHistory(ctx context.Context, trackingID string, f service.HistoryFilter) ([]models.ParcelEvent, error) {
	m.lastTrackingID = trackingID
	m.lastFilter = f
	return m.resp, m.err
}

type mockFeedback struct {
	feedback    *models.Feedback
	list        []models.Feedback
	eligibility parcel_tracking.FeedbackEligibility
	stats       models.FeedbackStats
	err         error

	lastSubmit models.Feedback
	lastEmail  string
}

func (m *mockFeedback) SubmitFeedback(ctx context.Context, f models.Feedback) (*models.Feedback, error) {
	m.lastSubmit = f
	return m.feedback, m.err
}
func (m *mockFeedback) Eligibility(ctx context.Context, trackingID, userEmail string) (parcel_tracking.FeedbackEligibility, error) {
	m.lastEmail = userEmail
	return m.eligibility, m.err
}
func (m *mockFeedback) FeedbackByParcel(ctx context.Context, trackingID string) ([]models.Feedback, error) {
	return m.list, m.err
}
func (m *mockFeedback) FeedbackByUser(ctx context.Context, email string) ([]models.Feedback, error) {
	m.lastEmail = email
	return m.list, m.err
}
func (m *mockFeedback) RecentFeedback(ctx context.Context) ([]models.Feedback, error) {
	return m.list, m.err
}
func (m *mockFeedback) FeedbackStats(ctx context.Context) (models.FeedbackStats, error) {
	return m.stats, m.err
}
func (m *mockFeedback) DeleteFeedback(ctx context.Context, id int64) error { return m.err }

type mockSupport struct {
	request *models.SupportRequest
	list    []models.SupportRequest
	stats   models.SupportStats
	err     error

	lastStatus   string
	lastResponse string
}

func (m *mockSupport) SubmitSupport(ctx context.Context, r models.SupportRequest) (*models.SupportRequest, error) {
	return m.request, m.err
}
func (m *mockSupport) ListSupport(ctx context.Context) ([]models.SupportRequest, error) {
	return m.list, m.err
}
func (m *mockSupport) SupportByEmail(ctx context.Context, email string) ([]models.SupportRequest, error) {
	return m.list, m.err
}
func (m *mockSupport) UpdateSupportStatus(ctx context.Context, id int64, status, adminResponse string) (*models.SupportRequest, error) {
	m.lastStatus, m.lastResponse = status, adminResponse
	return m.request, m.err
}
func (m *mockSupport) SupportStats(ctx context.Context) (models.SupportStats, error) {
	return m.stats, m.err
}

// ---- Shared Test Helpers ----

var (
	adminClaims = &service.Claims{Email: "admin@example.com", Role: models.RoleAdmin}
	userClaims  = &service.Claims{UserID: 7, Email: "rita@example.com", Role: models.RoleUser}
)

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doRequest serves a request with an optional JSON body and bearer token.
func doRequest(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(w *httptest.ResponseRecorder) string {
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out.Error
}
