package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the session cookie set by the login endpoint.
const AuthCookieName = "auth"

// SessionToken derives the session token from the shared secret. The
// same token gates every request, so login just proves knowledge of
// the password once; hardening beyond that is out of scope for a
// single-user tracker.
func SessionToken(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ValidToken reports whether a presented token matches the session
// token derived from password. The comparison is constant-time.
func ValidToken(token, password string) bool {
	expected := SessionToken(password)
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// Auth returns a middleware that rejects requests lacking a valid
// session cookie. An empty password disables the gate entirely.
func Auth(password string) gin.HandlerFunc {
	if password == "" {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil || !ValidToken(token, password) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
