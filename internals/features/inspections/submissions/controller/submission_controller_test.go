package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/submissions/dto"
)

type fakeService struct {
	rows    []dto.SubmissionListItem
	lastQ   dto.ListQuery
	pdfBody string
}

func (f *fakeService) FormTypes() []dto.FormTypeItem {
	return dto.ToFormTypeItems(formschema.AllMeta())
}

func (f *fakeService) List(_ context.Context, q dto.ListQuery) ([]dto.SubmissionListItem, error) {
	f.lastQ = q
	return f.rows, nil
}

func (f *fakeService) Detail(_ context.Context, id uuid.UUID) (dto.SubmissionDetail, error) {
	if id == knownID {
		return dto.SubmissionDetail{Submission: dto.SubmissionHeader{ID: id}, FormType: formschema.Safety}, nil
	}
	return dto.SubmissionDetail{}, fmt.Errorf("get submission %s: %w", id, gorm.ErrRecordNotFound)
}

func (f *fakeService) Report(_ context.Context, id uuid.UUID) (dto.SubmissionReport, error) {
	return dto.SubmissionReport{ID: id}, nil
}

func (f *fakeService) PDF(_ context.Context, _ uuid.UUID, w io.Writer) (string, error) {
	_, err := io.WriteString(w, f.pdfBody)
	return "reporte-safety.pdf", err
}

var knownID = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

func newApp(svc Service) *fiber.App {
	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	h := NewSubmissionController(svc)
	app.Get("/form-types", h.FormTypes)
	app.Get("/submissions", h.List)
	app.Get("/submissions/:id", h.Detail)
	app.Get("/submissions/:id/report", h.Report)
	app.Get("/submissions/:id/pdf", h.PDF)
	return app
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	ErrorCode  string          `json:"error_code"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		HasNext    bool  `json:"has_next"`
		Count      int   `json:"count"`
	} `json:"pagination"`
}

func do(t *testing.T, app *fiber.App, url string) (int, envelope) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestFormTypes(t *testing.T) {
	code, env := do(t, newApp(&fakeService{}), "/form-types")
	assert.Equal(t, 200, code)
	var items []dto.FormTypeItem
	require.NoError(t, sonic.Unmarshal(env.Data, &items))
	assert.Len(t, items, 6)
}

func TestListPaginates(t *testing.T) {
	svc := &fakeService{}
	for i := 0; i < 25; i++ {
		svc.rows = append(svc.rows, dto.SubmissionListItem{ID: uuid.New(), FormCode: "safety-climb"})
	}
	code, env := do(t, newApp(svc), "/submissions?page=2&per_page=10&q=%20Cerro%20&form_type=SAFETY")
	require.Equal(t, 200, code)
	assert.True(t, env.Success)
	assert.Equal(t, int64(25), env.Pagination.Total)
	assert.Equal(t, 3, env.Pagination.TotalPages)
	assert.Equal(t, 10, env.Pagination.Count)
	assert.True(t, env.Pagination.HasNext)
	assert.Equal(t, "Cerro", svc.lastQ.Q)
	assert.Equal(t, "safety", svc.lastQ.FormType)

	_, env = do(t, newApp(svc), "/submissions?page=9&per_page=10")
	assert.Equal(t, 0, env.Pagination.Count)
}

func TestListRejectsUnknownFormType(t *testing.T) {
	code, env := do(t, newApp(&fakeService{}), "/submissions?form_type=boat")
	assert.Equal(t, 422, code)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestDetail(t *testing.T) {
	app := newApp(&fakeService{})

	code, env := do(t, app, "/submissions/"+knownID.String())
	assert.Equal(t, 200, code)
	var d dto.SubmissionDetail
	require.NoError(t, sonic.Unmarshal(env.Data, &d))
	assert.Equal(t, formschema.Safety, d.FormType)

	code, env = do(t, app, "/submissions/"+uuid.NewString())
	assert.Equal(t, 404, code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	code, env = do(t, app, "/submissions/not-a-uuid")
	assert.Equal(t, 400, code)
	assert.False(t, env.Success)
}

func TestPDFDownload(t *testing.T) {
	app := newApp(&fakeService{pdfBody: "%PDF-1.3"})
	resp, err := app.Test(httptest.NewRequest("GET", "/submissions/"+knownID.String()+"/pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="reporte-safety.pdf"`)
	assert.Equal(t, "%PDF-1.3", string(body))
}
