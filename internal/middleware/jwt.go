package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"control-system/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer        = "control-system"
	defaultSecret = "your-super-secret-jwt-key-change-in-production"
)

// Claims содержимое токена доступа к журналу
type Claims struct {
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey []byte
	tokenExp  time.Duration
}

func NewJWTService(secret string) *JWTService {
	if secret == "" {
		secret = defaultSecret
		slog.Warn("Using default JWT secret - change in production!")
	}

	return &JWTService{
		secretKey: []byte(secret),
		tokenExp:  24 * time.Hour,
	}
}

// GenerateToken выпускает токен для оператора
func (s *JWTService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.tokenExp
	}
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// RequireAuth пропускает только запросы с действующим Bearer токеном
func (s *JWTService) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authorization token required"})
			return
		}

		claims, err := s.ValidateToken(token)
		if err != nil {
			slog.Warn("Invalid token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("claims", claims)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if bearerToken != "" {
		tokenParts := strings.Split(bearerToken, " ")
		if len(tokenParts) == 2 && strings.ToLower(tokenParts[0]) == "bearer" {
			return tokenParts[1]
		}
	}
	return ""
}
