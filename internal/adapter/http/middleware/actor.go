package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"oficina_xpto/internal/domain/entities"
)

const (
	actorContextKey = "actor"

	HeaderUserID      = "X-User-ID"
	HeaderPermissions = "X-User-Permissions"
	HeaderTenantID    = "X-Tenant-ID"
)

// Actor builds the caller's capability object from the identity headers
// stamped by the API gateway and stores it in the request context. An absent
// or empty permission header yields an actor that can do nothing; the use
// cases decide what that means per operation.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))

		var perms []string
		for _, p := range strings.Split(c.GetHeader(HeaderPermissions), ",") {
			if p = strings.TrimSpace(p); p != "" {
				perms = append(perms, p)
			}
		}

		c.Set(actorContextKey, entities.NewActor(id, perms...))
		c.Next()
	}
}

// ActorFrom returns the capability object stored by Actor. Handlers behind
// the middleware can rely on it being present; anything else gets the
// zero actor, which holds no permissions.
func ActorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}

// TenantFrom returns the tenant identified by the request, if any.
func TenantFrom(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(HeaderTenantID))
}
