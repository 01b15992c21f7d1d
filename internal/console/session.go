package console

import (
	"net/http"

	"parcel_tracking/internal/client"
	"parcel_tracking/internal/console/views"
	"parcel_tracking/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "parceltrack"

	keyID    = "id"
	keyEmail = "email"
	keyName  = "name"
	keyRole  = "role"
	keyToken = "token"

	profileKey = "profile"

	// The profile has no server-side expiry; the cookie outlives any
	// reasonable visit and is replaced on the next login.
	profileMaxAge = 86400 * 365
)

// Profile is what the console remembers after a login.
type Profile struct {
	ID    int64
	Email string
	Name  string
	Role  string
	Token string
}

func (p *Profile) IsAdmin() bool { return p != nil && p.Role == models.RoleAdmin }

// NewCookieStore creates the cookie-backed session store for the console.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   profileMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(profileMaxAge)
	return store
}

func (h *Handler) session(c *gin.Context) *sessions.Session {
	// On a decode failure Get still returns a fresh session.
	s, err := h.store.Get(c.Request, sessionName)
	if err != nil {
		h.log.Debugw("console_session_reset", "err", err)
	}
	return s
}

func (h *Handler) save(c *gin.Context, s *sessions.Session) {
	if err := s.Save(c.Request, c.Writer); err != nil {
		h.log.Errorw("console_session_save_failed", "err", err)
	}
}

// profile returns the logged-in profile, or nil.
func (h *Handler) profile(c *gin.Context) *Profile {
	if v, ok := c.Get(profileKey); ok {
		if p, ok := v.(*Profile); ok {
			return p
		}
	}
	s := h.session(c)
	token, _ := s.Values[keyToken].(string)
	if token == "" {
		return nil
	}
	p := &Profile{Token: token}
	p.ID, _ = s.Values[keyID].(int64)
	p.Email, _ = s.Values[keyEmail].(string)
	p.Name, _ = s.Values[keyName].(string)
	p.Role, _ = s.Values[keyRole].(string)
	c.Set(profileKey, p)
	return p
}

// saveProfile overwrites whatever profile was stored before.
func (h *Handler) saveProfile(c *gin.Context, p Profile) {
	s := h.session(c)
	s.Values[keyID] = p.ID
	s.Values[keyEmail] = p.Email
	s.Values[keyName] = p.Name
	s.Values[keyRole] = p.Role
	s.Values[keyToken] = p.Token
	h.save(c, s)
	c.Set(profileKey, &p)
}

func (h *Handler) clearProfile(c *gin.Context) {
	s := h.session(c)
	for _, k := range []string{keyID, keyEmail, keyName, keyRole, keyToken} {
		delete(s.Values, k)
	}
	h.save(c, s)
	c.Set(profileKey, (*Profile)(nil))
}

func (h *Handler) viewer(c *gin.Context) *views.Viewer {
	p := h.profile(c)
	if p == nil {
		return nil
	}
	return &views.Viewer{Email: p.Email, Name: p.Name, Role: p.Role}
}

// authed returns a client carrying the logged-in user's token.
func (h *Handler) authed(c *gin.Context) *client.Client {
	if p := h.profile(c); p != nil {
		return h.api.WithToken(p.Token)
	}
	return h.api
}

func (h *Handler) flash(c *gin.Context, kind, msg string) {
	s := h.session(c)
	s.AddFlash(msg, kind)
	h.save(c, s)
}

func (h *Handler) takeFlashes(c *gin.Context) []views.Flash {
	s := h.session(c)
	var out []views.Flash
	for _, kind := range []string{views.FlashSuccess, views.FlashError} {
		for _, f := range s.Flashes(kind) {
			if msg, ok := f.(string); ok {
				out = append(out, views.Flash{Kind: kind, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		h.save(c, s)
	}
	return out
}

func (h *Handler) requireUser(c *gin.Context) {
	if h.profile(c) == nil {
		h.flash(c, views.FlashError, "Please log in first.")
		h.redirect(c, "/login")
		c.Abort()
		return
	}
	c.Next()
}

func (h *Handler) requireAdmin(c *gin.Context) {
	if !h.profile(c).IsAdmin() {
		h.flash(c, views.FlashError, "Admin access required.")
		h.redirect(c, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}
