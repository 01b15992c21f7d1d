package console

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"parcel_tracking/internal/client"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

type cannedResponse struct {
	status int
	body   any
}

type apiCall struct {
	auth string
	body string
}

// fakeAPI answers "METHOD /path" with canned JSON and records each call.
type fakeAPI struct {
	mu     sync.Mutex
	routes map[string]cannedResponse
	calls  map[string][]apiCall
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{routes: map[string]cannedResponse{}, calls: map[string][]apiCall{}}
}

func (f *fakeAPI) on(method, path string, status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = cannedResponse{status: status, body: body}
}

func (f *fakeAPI) last(method, path string) (apiCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs := f.calls[method+" "+path]
	if len(cs) == 0 {
		return apiCall{}, false
	}
	return cs[len(cs)-1], true
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls[key] = append(f.calls[key], apiCall{auth: r.Header.Get("Authorization"), body: string(b)})
	resp, ok := f.routes[key]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"no route `+key+`"}`)
		return
	}
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

// browser keeps cookies between requests against the console router.
type browser struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, api *fakeAPI) *browser {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	h := NewHandler(client.New(srv.URL, time.Second), NewCookieStore("test-session-secret-32-bytes-long"), nil)
	return &browser{t: t, h: h.InitRoutes(), cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.h.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func requireRedirect(t *testing.T, w *httptest.ResponseRecorder, to string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, w.Code, "body: %s", w.Body.String())
	require.Equal(t, to, w.Header().Get("Location"))
}
