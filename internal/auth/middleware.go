package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth.claims"

// RequireUser rejects requests without a valid bearer token.
func (s *Service) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := s.fromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OptionalUser attaches claims when a valid token is present and ignores it otherwise.
func (s *Service) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := s.fromRequest(c.Request); err == nil {
			c.Set(claimsKey, claims)
		}
		c.Next()
	}
}

// CurrentClaims returns the claims set by RequireUser or OptionalUser.
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

func (s *Service) fromRequest(r *http.Request) (*Claims, error) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	return s.ParseToken(strings.TrimSpace(token))
}
