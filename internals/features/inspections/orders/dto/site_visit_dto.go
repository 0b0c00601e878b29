package dto

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/orders/model"
)

/* ===================== REQUESTS ===================== */

type ListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=open closed"`
	Q      string `query:"q"      validate:"omitempty,max=120"`
}

/* ===================== RESPONSES ===================== */

type VisitResponse struct {
	model.SiteVisitModel
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
}

type LinkedSubmission struct {
	ID        uuid.UUID           `json:"id"`
	FormCode  string              `json:"form_code"`
	FormType  formschema.FormType `json:"form_type"`
	FormLabel string              `json:"form_label"`
	CreatedAt time.Time           `json:"created_at"`
	// Meters between the visit's start point and the GPS fix captured
	// when the form was opened.
	DistanceFromStart *float64 `json:"distance_from_start,omitempty"`
}

type VisitDetail struct {
	Visit       VisitResponse      `json:"visit"`
	Submissions []LinkedSubmission `json:"submissions"`
}

func ToVisitResponse(v model.SiteVisitModel) VisitResponse {
	out := VisitResponse{SiteVisitModel: v}
	if v.StartedAt != nil && v.ClosedAt != nil && v.ClosedAt.After(*v.StartedAt) {
		m := int(v.ClosedAt.Sub(*v.StartedAt).Minutes())
		out.DurationMinutes = &m
	}
	start, okStart := v.StartPoint()
	end, okEnd := v.EndPoint()
	if okStart && okEnd {
		d := math.Round(geo.Distance(start, end))
		out.DistanceMeters = &d
	}
	return out
}

func ToVisitResponseList(rows []model.SiteVisitModel) []VisitResponse {
	out := make([]VisitResponse, len(rows))
	for i := range rows {
		out[i] = ToVisitResponse(rows[i])
	}
	return out
}

// DistanceFromStart is nil unless both the visit start and p are known.
func DistanceFromStart(v model.SiteVisitModel, p orb.Point, ok bool) *float64 {
	start, okStart := v.StartPoint()
	if !ok || !okStart {
		return nil
	}
	d := math.Round(geo.Distance(start, p))
	return &d
}
