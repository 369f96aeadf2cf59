package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the advisory caller identity. The value is
// trusted as-is; nothing checks that the id refers to an existing user.
const ActorHeader = "X-User-Id"

const actorKey = "actorUserID"

// Actor resolves the optional integer X-User-Id header. A missing or
// non-integer header leaves the request anonymous.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(ActorHeader); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				uid := uint(id)
				c.Set(actorKey, &uid)
			}
		}
		c.Next()
	}
}

// ActorUserID returns the caller identity, or nil for anonymous requests.
func ActorUserID(c *gin.Context) *uint {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	return v.(*uint)
}
