package dto

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"ptiadmin_backend/internals/features/inspections/orders/model"
)

// ToFeatureCollection maps every visit with a start location to a Point
// feature. Closed visits that also recorded an end location get a
// LineString from start to end.
func ToFeatureCollection(rows []model.SiteVisitModel) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, v := range rows {
		start, ok := v.StartPoint()
		if !ok {
			continue
		}
		props := geojson.Properties{
			"id":           v.ID.String(),
			"order_number": v.OrderNumber,
			"site_id":      v.SiteID,
			"site_name":    v.SiteName,
			"inspector":    v.InspectorName,
			"status":       string(v.Status),
			"kind":         "start",
		}
		if v.StartedAt != nil {
			props["started_at"] = v.StartedAt.UTC().Format(time.RFC3339)
		}

		f := geojson.NewFeature(start)
		f.ID = v.ID.String()
		f.Properties = props
		fc.Append(f)

		if end, ok := v.EndPoint(); ok && v.Status == model.VisitClosed {
			track := geojson.NewFeature(orb.LineString{start, end})
			track.Properties = geojson.Properties{
				"id":     v.ID.String(),
				"status": string(v.Status),
				"kind":   "track",
			}
			fc.Append(track)
		}
	}
	return fc
}
