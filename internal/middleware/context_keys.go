package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const actorIDKey = contextKey("actorID")

// DefaultActorID is recorded when a caller does not identify itself.
const DefaultActorID = "system"

// ActorMiddleware extracts the acting user's id from the X-Actor-ID header
// and stores it in the request context for audit attribution.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader("X-Actor-ID")
		if actorID == "" {
			actorID = DefaultActorID
		}
		ctx := context.WithValue(c.Request.Context(), actorIDKey, actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActorIDFromCtx retrieves the acting user's id from the context.
func GetActorIDFromCtx(ctx context.Context) string {
	if actorID, ok := ctx.Value(actorIDKey).(string); ok && actorID != "" {
		return actorID
	}
	return DefaultActorID
}
