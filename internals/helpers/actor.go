package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken reads the actor id set by the auth middleware.
// 401 when not logged in, 400 when the claim is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "user is not logged in")
	}

	switch t := v.(type) {
	case int64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "user is not logged in")
		}
		return t, nil
	case float64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "user is not logged in")
		}
		return int64(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "user is not logged in")
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "invalid user id in token")
		}
		return id, nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid user id in token")
	}
}

// GetUserNameFromToken reads the display name set by the auth middleware.
// Falls back to "unknown" so audit rows never end up blank.
func GetUserNameFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("user_name").(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return "unknown"
}
