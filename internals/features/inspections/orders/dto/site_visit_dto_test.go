package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptiadmin_backend/internals/features/inspections/orders/model"
)

func f64(v float64) *float64 { return &v }

func TestToVisitResponse(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)
	v := model.SiteVisitModel{
		ID:        uuid.New(),
		Status:    model.VisitClosed,
		StartedAt: &start,
		ClosedAt:  &end,
		StartLat:  f64(14.6000),
		StartLng:  f64(-90.5000),
		EndLat:    f64(14.6010),
		EndLng:    f64(-90.5000),
	}
	out := ToVisitResponse(v)
	require.NotNil(t, out.DurationMinutes)
	assert.Equal(t, 95, *out.DurationMinutes)
	require.NotNil(t, out.DistanceMeters)
	// 0.001° of latitude is about 111 m
	assert.InDelta(t, 111, *out.DistanceMeters, 2)

	open := ToVisitResponse(model.SiteVisitModel{Status: model.VisitOpen, StartedAt: &start, StartLat: f64(1), StartLng: f64(2)})
	assert.Nil(t, open.DurationMinutes)
	assert.Nil(t, open.DistanceMeters)
}

func TestToFeatureCollection(t *testing.T) {
	started := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := []model.SiteVisitModel{
		{ID: uuid.New(), OrderNumber: "OT-1", SiteName: "Cerro", Status: model.VisitOpen, StartedAt: &started,
			StartLat: f64(14.6), StartLng: f64(-90.5)},
		{ID: uuid.New(), OrderNumber: "OT-2", Status: model.VisitClosed,
			StartLat: f64(15), StartLng: f64(-91), EndLat: f64(15.1), EndLng: f64(-91.1)},
		{ID: uuid.New(), OrderNumber: "OT-3", Status: model.VisitOpen}, // no location
	}

	fc := ToFeatureCollection(rows)
	require.Len(t, fc.Features, 3)

	first := fc.Features[0]
	assert.Equal(t, orb.Point{-90.5, 14.6}, first.Geometry)
	assert.Equal(t, "OT-1", first.Properties["order_number"])
	assert.Equal(t, "start", first.Properties["kind"])
	assert.Equal(t, "2025-03-01T08:00:00Z", first.Properties["started_at"])

	track := fc.Features[2]
	assert.Equal(t, "track", track.Properties["kind"])
	assert.Equal(t, orb.LineString{{-91, 15}, {-91.1, 15.1}}, track.Geometry)

	body, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"FeatureCollection"`)
}

func TestEmptyFeatureCollection(t *testing.T) {
	body, err := ToFeatureCollection(nil).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(body))
}

func TestDistanceFromStart(t *testing.T) {
	v := model.SiteVisitModel{StartLat: f64(14.6), StartLng: f64(-90.5)}

	d := DistanceFromStart(v, orb.Point{-90.5, 14.601}, true)
	require.NotNil(t, d)
	assert.InDelta(t, 111, *d, 1)

	assert.Nil(t, DistanceFromStart(v, orb.Point{}, false))
	assert.Nil(t, DistanceFromStart(model.SiteVisitModel{}, orb.Point{-90.5, 14.6}, true))
}
