package controller

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ptiadmin_backend/internals/features/inspections/dashboard/service"
	helper "ptiadmin_backend/internals/helpers"
)

type StatsGetter interface {
	Get(ctx context.Context, force bool) (service.Stats, error)
}

type StatsController struct {
	Svc StatsGetter
}

func NewStatsController(svc StatsGetter) *StatsController {
	return &StatsController{Svc: svc}
}

// GET /dashboard/stats?force=1
func (ctl *StatsController) Get(c *fiber.Ctx) error {
	force, _ := strconv.ParseBool(c.Query("force", "false"))
	st, err := ctl.Svc.Get(c.UserContext(), force)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Set(fiber.HeaderCacheControl, "private, max-age=30")
	return helper.JsonOK(c, "Estadísticas", st)
}
