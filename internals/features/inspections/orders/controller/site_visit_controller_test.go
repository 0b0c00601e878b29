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
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/orders/dto"
	"ptiadmin_backend/internals/features/inspections/orders/model"
	"ptiadmin_backend/internals/features/inspections/orders/repository"
	subModel "ptiadmin_backend/internals/features/inspections/submissions/model"
)

type fakeVisits struct {
	rows   []model.SiteVisitModel
	filter repository.VisitFilter
}

func (f *fakeVisits) List(_ context.Context, fl repository.VisitFilter) ([]model.SiteVisitModel, error) {
	f.filter = fl
	return f.rows, nil
}

func (f *fakeVisits) Get(_ context.Context, id uuid.UUID) (*model.SiteVisitModel, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, fmt.Errorf("get site visit %s: %w", id, gorm.ErrRecordNotFound)
}

type fakeSubs map[uuid.UUID][]subModel.SubmissionModel

func (f fakeSubs) BySiteVisit(_ context.Context, id uuid.UUID) ([]subModel.SubmissionModel, error) {
	return f[id], nil
}

func fptr(v float64) *float64 { return &v }

var (
	visitA = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	visitB = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
)

func newApp() (*fiber.App, *fakeVisits) {
	visits := &fakeVisits{rows: []model.SiteVisitModel{
		{ID: visitA, OrderNumber: "OT-100", SiteName: "Cerro Peñón", InspectorName: "Ana", Status: model.VisitOpen,
			StartLat: fptr(14.6), StartLng: fptr(-90.5)},
		{ID: visitB, OrderNumber: "OT-101", SiteName: "Volcán", InspectorName: "Luis", Status: model.VisitClosed},
	}}
	subs := fakeSubs{visitA: {
		{ID: uuid.New(), FormCode: "safety-climb", Payload: datatypes.JSON(`{}`)},
		{ID: uuid.New(), FormCode: "", Payload: datatypes.JSON(`{"form_code":"executed-work"}`)},
	}}

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	h := NewSiteVisitController(visits, subs, zap.NewNop())
	app.Get("/orders", h.List)
	app.Get("/orders/geojson", h.GeoJSON)
	app.Get("/orders/:id", h.Detail)
	return app, visits
}

func get(t *testing.T, app *fiber.App, url string) (int, map[string]json.RawMessage, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", url, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env map[string]json.RawMessage
	require.NoError(t, sonic.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env, body
}

func TestListFiltersByTextAndStatus(t *testing.T) {
	app, visits := newApp()

	code, env, _ := get(t, app, "/orders?q=penon&status=OPEN")
	require.Equal(t, 200, code)
	assert.Equal(t, model.VisitOpen, visits.filter.Status)
	var rows []dto.VisitResponse
	require.NoError(t, sonic.Unmarshal(env["data"], &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "OT-100", rows[0].OrderNumber)

	code, env, _ = get(t, app, "/orders?status=lost")
	assert.Equal(t, 422, code)
	assert.Contains(t, string(env["errors"]), "status")
}

func TestGeoJSON(t *testing.T) {
	app, _ := newApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/orders/geojson", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))
	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(body, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 1)
}

func TestDetail(t *testing.T) {
	app, _ := newApp()

	code, env, _ := get(t, app, "/orders/"+visitA.String())
	require.Equal(t, 200, code)
	var d dto.VisitDetail
	require.NoError(t, sonic.Unmarshal(env["data"], &d))
	assert.Equal(t, "OT-100", d.Visit.OrderNumber)
	require.Len(t, d.Submissions, 2)
	assert.Equal(t, formschema.Safety, d.Submissions[0].FormType)
	assert.Equal(t, formschema.Executed, d.Submissions[1].FormType)
	assert.Equal(t, "executed-work", d.Submissions[1].FormCode)

	code, _, _ = get(t, app, "/orders/"+uuid.NewString())
	assert.Equal(t, 404, code)

	code, _, _ = get(t, app, "/orders/nope")
	assert.Equal(t, 400, code)
}
