package controller

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/orders/dto"
	"ptiadmin_backend/internals/features/inspections/orders/model"
	"ptiadmin_backend/internals/features/inspections/orders/repository"
	"ptiadmin_backend/internals/features/inspections/report"
	subModel "ptiadmin_backend/internals/features/inspections/submissions/model"
	subService "ptiadmin_backend/internals/features/inspections/submissions/service"
	helper "ptiadmin_backend/internals/helpers"
)

type VisitStore interface {
	List(ctx context.Context, f repository.VisitFilter) ([]model.SiteVisitModel, error)
	Get(ctx context.Context, id uuid.UUID) (*model.SiteVisitModel, error)
}

type SubmissionLister interface {
	BySiteVisit(ctx context.Context, visitID uuid.UUID) ([]subModel.SubmissionModel, error)
}

type SiteVisitController struct {
	Visits      VisitStore
	Submissions SubmissionLister
	Validator   *validator.Validate
	Log         *zap.Logger
}

func NewSiteVisitController(visits VisitStore, subs SubmissionLister, log *zap.Logger) *SiteVisitController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SiteVisitController{Visits: visits, Submissions: subs, Validator: validator.New(), Log: log.Named("orders")}
}

func (ctl *SiteVisitController) query(c *fiber.Ctx) ([]model.SiteVisitModel, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	q.Q = strings.TrimSpace(q.Q)
	if err := ctl.Validator.Struct(q); err != nil {
		return nil, err
	}

	rows, err := ctl.Visits.List(c.UserContext(), repository.VisitFilter{Status: model.VisitStatus(q.Status)})
	if err != nil {
		return nil, err
	}
	return filterVisits(rows, q.Q), nil
}

func filterVisits(rows []model.SiteVisitModel, q string) []model.SiteVisitModel {
	needle := helper.FoldText(q)
	if needle == "" {
		return rows
	}
	out := rows[:0:0]
	for _, v := range rows {
		hay := helper.FoldText(strings.Join([]string{v.OrderNumber, v.SiteID, v.SiteName, v.InspectorName, v.InspectorUsername}, " "))
		if strings.Contains(hay, needle) {
			out = append(out, v)
		}
	}
	return out
}

func (ctl *SiteVisitController) fail(c *fiber.Ctx, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return helper.JsonValidationError(c, err)
	}
	return helper.FromFiberError(c, err)
}

// GET /orders?status=&q=
func (ctl *SiteVisitController) List(c *fiber.Ctx) error {
	rows, err := ctl.query(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	total := len(rows)
	start := min(p.Offset, total)
	end := min(start+p.Limit, total)
	page := dto.ToVisitResponseList(rows[start:end])
	return helper.JsonList(c, "Órdenes", page, helper.BuildPaginationFromPage(int64(total), p.Page, p.PerPage, len(page)))
}

// GET /orders/geojson?status=&q=
func (ctl *SiteVisitController) GeoJSON(c *fiber.Ctx) error {
	rows, err := ctl.query(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	body, err := dto.ToFeatureCollection(rows).MarshalJSON()
	if err != nil {
		ctl.Log.Error("geojson encode", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el GeoJSON")
	}
	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Status(fiber.StatusOK).Send(body)
}

// GET /orders/:id
func (ctl *SiteVisitController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de orden inválido")
	}
	visit, err := ctl.Visits.Get(c.UserContext(), id)
	if err != nil {
		return ctl.fail(c, err)
	}
	subs, err := ctl.Submissions.BySiteVisit(c.UserContext(), id)
	if err != nil {
		return ctl.fail(c, err)
	}

	linked := make([]dto.LinkedSubmission, 0, len(subs))
	for i := range subs {
		linked = append(linked, ctl.linked(visit, &subs[i]))
	}
	return helper.JsonOK(c, "Detalle de la orden", dto.VisitDetail{
		Visit:       dto.ToVisitResponse(*visit),
		Submissions: linked,
	})
}

func (ctl *SiteVisitController) linked(visit *model.SiteVisitModel, s *subModel.SubmissionModel) dto.LinkedSubmission {
	p, err := subService.DecodePayload(s.Payload)
	if err != nil {
		ctl.Log.Warn("undecodable payload", zap.String("submission_id", s.ID.String()), zap.Error(err))
	}
	r := report.Resolve(p)
	code := report.FormCode(r, s.FormCode)
	meta := formschema.MetaFor(code)
	pt, ok := report.ExtractMeta(r).Point()
	return dto.LinkedSubmission{
		ID:                s.ID,
		FormCode:          code,
		FormType:          meta.Type,
		FormLabel:         meta.Label,
		CreatedAt:         s.CreatedAt,
		DistanceFromStart: dto.DistanceFromStart(*visit, pt, ok),
	}
}
