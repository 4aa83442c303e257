package middleware

import (
	"fmt"
	"strings"

	"frontdesk/errors"
	"frontdesk/response"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// StaffClaims is the payload of a desk staff token.
type StaffClaims struct {
	Name string `json:"name"`
	jwt.StandardClaims
}

// ParseStaffToken verifies an HS256 token signed with secret.
func ParseStaffToken(tokenString, secret string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", nil)
	}
	return claims, nil
}

// AuthMiddleware requires a staff bearer token. An empty secret turns the check off.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseStaffToken(tokenString, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("staffName", claims.Name)
		c.Next()
	}
}
