package middleware

import (
	"context"
	"net/http"

	"request-approvals/internal/entities"
	api "request-approvals/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderUserID carries the id of the acting user.
const HeaderUserID = "X-User-ID"

const actorKey = "actor"

// Authenticator resolves a user id to a directory user.
type Authenticator interface {
	Authenticate(ctx context.Context, userID string) (entities.User, error)
}

// Identity resolves the acting user from the X-User-ID header and stores it
// for handlers. Unknown or missing ids are answered with 401.
func Identity(log *zap.SugaredLogger, auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderUserID)
		if id == "" {
			return unauthenticated(c, "missing "+HeaderUserID+" header")
		}
		user, err := auth.Authenticate(c.Context(), id)
		if err != nil {
			log.Warnw("identity rejected", "user_id", id, "error", err)
			return unauthenticated(c, "unknown user")
		}
		c.Locals(actorKey, user)
		return c.Next()
	}
}

// Actor returns the user resolved by Identity.
func Actor(c *fiber.Ctx) (entities.User, bool) {
	u, ok := c.Locals(actorKey).(entities.User)
	return u, ok
}

func unauthenticated(c *fiber.Ctx, msg string) error {
	var body api.ErrorResponse
	body.Error.Code = api.UNAUTHENTICATED
	body.Error.Message = msg
	return c.Status(http.StatusUnauthorized).JSON(body)
}
