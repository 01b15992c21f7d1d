package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + protected endpoints
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.userIdentity, func(c *gin.Context) {
		claims := currentClaims(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": claims.UserID})
	})
	r.GET("/admin", h.userIdentity, h.adminOnly, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/owner/:email", h.userIdentity, func(c *gin.Context) {
		if !requireSelfOrAdmin(c, c.Param("email")) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestUserIdentity_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name     string
		header   string
		parseErr error
		want     want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing Authorization header"},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:     "expired/invalid token",
			header:   "Bearer expired",
			parseErr: errors.New("expired"),
			want:     want{code: http.StatusUnauthorized, errMsg: "invalid or expired token"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{claims: userClaims, parseErr: tc.parseErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}
			if got := errorBody(w); got != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", got, tc.want.errMsg)
			}
		})
	}
}

func TestUserIdentity_SuccessSetsClaimsAndProceeds(t *testing.T) {
	auth := &mockAuth{claims: userClaims}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := doRequest(r, http.MethodGet, "/secure", "", "good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool  `json:"ok"`
		UserID int64 `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastParseToken != "good-token" {
		t.Fatalf("ParseToken got %q, want %q", auth.lastParseToken, "good-token")
	}
}

func TestAdminOnly(t *testing.T) {
	cases := []struct {
		name   string
		claims *service.Claims
		code   int
	}{
		{"user rejected", userClaims, http.StatusForbidden},
		{"admin allowed", adminClaims, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: &mockAuth{claims: tc.claims}})
			w := doRequest(r, http.MethodGet, "/admin", "", "tok")
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d", w.Code, tc.code)
			}
			if tc.code == http.StatusForbidden && errorBody(w) != "admin role required" {
				t.Fatalf("unexpected error %q", errorBody(w))
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	cases := []struct {
		name   string
		claims *service.Claims
		email  string
		code   int
	}{
		{"own email", userClaims, "rita@example.com", http.StatusOK},
		{"own email other case", userClaims, "RITA@example.com", http.StatusOK},
		{"someone else", userClaims, "sam@example.com", http.StatusForbidden},
		{"admin for anyone", adminClaims, "sam@example.com", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: &mockAuth{claims: tc.claims}})
			w := doRequest(r, http.MethodGet, "/owner/"+tc.email, "", "tok")
			if w.Code != tc.code {
				t.Fatalf("status: got %d, want %d", w.Code, tc.code)
			}
			if tc.code == http.StatusForbidden && errorBody(w) != "forbidden" {
				t.Fatalf("unexpected error %q", errorBody(w))
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]bool{
		"Bearer abc": true,
		"bearer abc": false,
		"Bearer ":    false,
		"Bearer  ":   false,
		"Basic abc":  false,
		"Bearerabc":  false,
	}
	for in, want := range cases {
		if _, ok := bearerToken(in); ok != want {
			t.Errorf("bearerToken(%q) ok=%v; want %v", in, ok, want)
		}
	}
}
