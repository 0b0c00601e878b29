package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ptiadmin_backend/internals/features/inspections/submissions/dto"
	helper "ptiadmin_backend/internals/helpers"
)

type Service interface {
	FormTypes() []dto.FormTypeItem
	List(ctx context.Context, q dto.ListQuery) ([]dto.SubmissionListItem, error)
	Detail(ctx context.Context, id uuid.UUID) (dto.SubmissionDetail, error)
	Report(ctx context.Context, id uuid.UUID) (dto.SubmissionReport, error)
	PDF(ctx context.Context, id uuid.UUID, w io.Writer) (string, error)
}

type SubmissionController struct {
	Svc       Service
	Validator *validator.Validate
}

func NewSubmissionController(svc Service) *SubmissionController {
	return &SubmissionController{Svc: svc, Validator: validator.New()}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID de envío inválido")
	}
	return id, nil
}

// GET /form-types
func (ctl *SubmissionController) FormTypes(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Tipos de formulario", ctl.Svc.FormTypes())
}

// GET /submissions?form_code=&form_type=&q=&page=&per_page=
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parámetros de consulta inválidos")
	}
	q.FormCode = strings.TrimSpace(q.FormCode)
	q.FormType = strings.ToLower(strings.TrimSpace(q.FormType))
	q.Q = strings.TrimSpace(q.Q)
	if err := ctl.Validator.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rows, err := ctl.Svc.List(c.UserContext(), q)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	total := len(rows)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	page := rows[start:end]

	return helper.JsonList(c, "Envíos", page, helper.BuildPaginationFromPage(int64(total), p.Page, p.PerPage, len(page)))
}

// GET /submissions/:id
func (ctl *SubmissionController) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Detail(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detalle del envío", out)
}

// GET /submissions/:id/report
func (ctl *SubmissionController) Report(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.Report(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Reporte del envío", out)
}

// GET /submissions/:id/pdf
func (ctl *SubmissionController) PDF(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var buf bytes.Buffer
	name, err := ctl.Svc.PDF(c.UserContext(), id, &buf)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
