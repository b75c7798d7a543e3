package audit

import (
	"strconv"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultListLimit = 200

// GET /api/admin/audit-logs?entity_type=hotel&entity_id=1&limit=50
func ListAuditLogsHandler(rec *Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := Filter{
			EntityType: c.Query("entity_type"),
			Limit:      defaultListLimit,
		}

		if s := c.Query("entity_id"); s != "" {
			id, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return apperr.Validation("entity_id must be a positive integer.")
			}
			f.EntityID = uint(id)
		}
		if s := c.Query("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return apperr.Validation("limit must be a positive integer.")
			}
			f.Limit = n
		}

		logs, err := rec.List(c.UserContext(), f)
		if err != nil {
			return apperr.Internal("Failed to retrieve audit logs.", err)
		}
		if logs == nil {
			logs = []models.AuditLog{}
		}
		return c.JSON(logs)
	}
}
