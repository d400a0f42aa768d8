package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocClaims  = "jwt_claims"
	LocUserID  = "user_id"
	LocRoles   = "user_roles"
	rolesClaim = "roles"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT verifies an HS256 bearer token and stores its subject and roles in Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)

	return func(c *fiber.Ctx) error {
		if secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		c.Locals(LocClaims, claims)
		c.Locals(LocRoles, rolesFromClaims(claims))
		switch {
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		}
		return c.Next()
	}
}

// OnlyRoles lets the request through when the token carries any of roles.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		held, _ := c.Locals(LocRoles).([]string)
		for _, h := range held {
			for _, r := range roles {
				if strings.EqualFold(h, r) {
					return c.Next()
				}
			}
		}
		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden"
		}
		return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
	}
}

func rolesFromClaims(claims jwt.MapClaims) []string {
	switch v := claims[rolesClaim].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return v
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}

func strClaim(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
