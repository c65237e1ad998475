package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newRouter(s *JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", s.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("subject"))
	})
	return r
}

func TestGenerateAndValidate(t *testing.T) {
	s := NewJWTService("secret")
	token, err := s.GenerateToken("operator", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Subject != "operator" || claims.Issuer != issuer {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := NewJWTService("other").ValidateToken(token); err == nil {
		t.Fatalf("token signed with another secret accepted")
	}
	expired, _ := s.GenerateToken("operator", -time.Minute)
	if _, err := s.ValidateToken(expired); err != nil {
		t.Fatalf("non-positive ttl should fall back to default: %v", err)
	}
}

func TestRequireAuth(t *testing.T) {
	s := NewJWTService("secret")
	router := newRouter(s)
	token, _ := s.GenerateToken("operator", time.Minute)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.status == http.StatusOK && w.Body.String() != "operator" {
				t.Fatalf("subject = %q", w.Body.String())
			}
		})
	}
}
