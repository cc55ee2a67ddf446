package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/valentinobarber/site-api/internal/audit"
)

func auditEvent(c *gin.Context, action, entity string, entityID *uint) audit.Event {
	return audit.Event{
		Actor:    adminActor(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
}
