package handlers

import (
	"net/http"
	"strings"

	"parcel_tracking/internal/service"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

const (
	errMissingHeader  = "missing Authorization header"
	errInvalidHeader  = "invalid Authorization header format"
	errInvalidToken   = "invalid or expired token"
	errAdminRequired  = "admin role required"
	errForbiddenOwner = "forbidden"
)

// bearerToken extracts the token of a "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return parts[1], true
}

func (h *Handler) userIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errMissingHeader,
		})
		return
	}

	token, ok := bearerToken(header)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errInvalidHeader,
		})
		return
	}

	claims, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": errInvalidToken,
		})
		return
	}

	// store in Gin context
	c.Set(claimsKey, claims)
	c.Next()
}

// adminOnly must run after userIdentity.
func (h *Handler) adminOnly(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil || !claims.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errAdminRequired})
		return
	}
	c.Next()
}

func currentClaims(c *gin.Context) *service.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.Claims)
	return claims
}

// optionalClaims parses a bearer token when one is present. Invalid tokens are ignored.
func (h *Handler) optionalClaims(c *gin.Context) *service.Claims {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil
	}
	claims, err := h.services.ParseToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// requireSelfOrAdmin answers 403 unless the caller is an admin or owns email.
// Returns false if the request was already handled (aborted).
func requireSelfOrAdmin(c *gin.Context, email string) bool {
	claims := currentClaims(c)
	if claims != nil && (claims.IsAdmin() || strings.EqualFold(claims.Email, strings.TrimSpace(email))) {
		return true
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errForbiddenOwner})
	return false
}

// requireSelfOrAdminID is requireSelfOrAdmin keyed on the user id.
func requireSelfOrAdminID(c *gin.Context, id int64) bool {
	claims := currentClaims(c)
	if claims != nil && (claims.IsAdmin() || (claims.UserID != 0 && claims.UserID == id)) {
		return true
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errForbiddenOwner})
	return false
}
