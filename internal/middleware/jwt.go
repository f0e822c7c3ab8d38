package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/utils"
)

// JWTProtected returns a middleware that validates JWT bearer tokens and binds
// the caller identity to the request.
func JWTProtected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			authorization = c.Query("token")
		}
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		tokenString := authorization
		if strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			tokenString = strings.TrimSpace(authorization[len(bearer):])
		}
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		identity, err := identityFromClaims(claims)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		c.Locals("identity", identity)

		return c.Next()
	}
}

// IdentityFromCtx returns the authenticated identity bound by JWTProtected.
func IdentityFromCtx(c *fiber.Ctx) (models.Identity, bool) {
	identity, ok := c.Locals("identity").(models.Identity)
	return identity, ok
}

func identityFromClaims(claims jwt.MapClaims) (models.Identity, error) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub < 1 {
		return models.Identity{}, fmt.Errorf("invalid subject")
	}

	role := models.Role(stringClaim(claims, "role"))
	if !role.Valid() {
		return models.Identity{}, fmt.Errorf("invalid role")
	}

	campus := models.Campus(stringClaim(claims, "campus"))
	if !campus.Valid() {
		return models.Identity{}, fmt.Errorf("invalid campus")
	}

	return models.Identity{
		ID:     uint(sub),
		Name:   stringClaim(claims, "name"),
		Role:   role,
		Campus: campus,
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}
