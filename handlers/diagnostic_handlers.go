package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hindicartoon/backend/config"
	"hindicartoon/backend/utils"
)

// DatastoreDiagnostic godoc
// @Summary Datastore diagnostic
// @Description Reports whether the optional Supabase datastore is configured and reachable. The video pipeline never depends on it.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *ApplicationHandler) DatastoreDiagnostic(c *fiber.Ctx) error {
	report := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"connection_status": "not connected",
		"buckets":           []string{},
	}

	if config.GetSupabaseURL() != "" {
		report["database_url"] = "configured"
	}

	if h.DB == nil {
		return utils.RespondWithJSON(c, fiber.StatusOK, report)
	}

	buckets, err := h.DB.Storage.ListBuckets()
	if err != nil {
		h.Logger.Errorf("Datastore diagnostic could not list buckets: %v", err)
		report["database"] = fmt.Sprintf("available but error: %v", err)
		return utils.RespondWithJSON(c, fiber.StatusOK, report)
	}

	names := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		if len(names) == 10 {
			break
		}
		names = append(names, bucket.Name)
	}

	report["database"] = "connected and working"
	report["connection_status"] = "connected"
	report["buckets"] = names
	return utils.RespondWithJSON(c, fiber.StatusOK, report)
}
