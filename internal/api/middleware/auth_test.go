package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthTestRouter(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(password), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuth_RejectsWithoutCookie(t *testing.T) {
	r := newAuthTestRouter("hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", w.Code)
	}
}

func TestAuth_RejectsWrongToken(t *testing.T) {
	r := newAuthTestRouter("hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: SessionToken("wrong-password")})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with wrong token, got %d", w.Code)
	}
}

func TestAuth_AcceptsValidToken(t *testing.T) {
	r := newAuthTestRouter("hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: SessionToken("hunter2")})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid token, got %d", w.Code)
	}
}

func TestAuth_DisabledWithoutPassword(t *testing.T) {
	r := newAuthTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected open access with empty password, got %d", w.Code)
	}
}

func TestValidToken(t *testing.T) {
	if !ValidToken(SessionToken("hunter2"), "hunter2") {
		t.Error("expected the derived token to validate")
	}
	if ValidToken(SessionToken("wrong-password"), "hunter2") {
		t.Error("expected a token for another password to fail")
	}
	if ValidToken("", "hunter2") {
		t.Error("expected an empty token to fail")
	}
}

func TestSessionToken_Deterministic(t *testing.T) {
	if SessionToken("hunter2") != SessionToken("hunter2") {
		t.Error("expected stable token for the same password")
	}
	if SessionToken("hunter2") == SessionToken("hunter3") {
		t.Error("expected different tokens for different passwords")
	}
	if len(SessionToken("hunter2")) != 64 {
		t.Errorf("expected hex sha256 length 64, got %d", len(SessionToken("hunter2")))
	}
}
