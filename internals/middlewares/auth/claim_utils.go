// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if token := strings.TrimSpace(c.Cookies("access_token")); token != "" {
		return token, nil
	}
	return "", errors.New("missing bearer token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	expiresAt := time.Unix(int64(exp), 0)
	if time.Now().After(expiresAt.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// extractStudentID accepts either student_id or the generic sub claim.
func extractStudentID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"student_id", "sub"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return uuid.Nil, err
			}
			return id, nil
		}
	}
	return uuid.Nil, errors.New("student id claim not found")
}

// StudentIDFromLocals is used by controllers after AuthMiddleware ran.
func StudentIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("student_id").(string)
	if raw == "" {
		return uuid.Nil, errors.New("unauthenticated")
	}
	return uuid.Parse(raw)
}
