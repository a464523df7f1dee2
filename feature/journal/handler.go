package journal

import (
	"bucket-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the journal over HTTP.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/journal", h.HandleRecent)
}

// HandleRecent lists recent transfers.
// @Summary Recent Transfers
// @Description Lists journaled uploads, downloads and deletes, newest first.
// @Tags journal
// @Produce json
// @Param bucket query string false "Only this bucket"
// @Param limit query int false "Maximum records (default 50, max 500)"
// @Success 200 {object} map[string]interface{} "Transfer records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /journal [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	records, err := h.repo.Recent(c.Context(), c.Query("bucket"), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Journal query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"records": records, "count": len(records)})
}
