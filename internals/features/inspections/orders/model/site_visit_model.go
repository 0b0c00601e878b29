package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type VisitStatus string

const (
	VisitOpen   VisitStatus = "open"
	VisitClosed VisitStatus = "closed"
)

// SiteVisitModel is a work order: one technician's visit to a site.
type SiteVisitModel struct {
	ID                uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	OrderNumber       string      `gorm:"type:text;column:order_number;index"                     json:"order_number"`
	SiteID            string      `gorm:"type:text;column:site_id"                                json:"site_id"`
	SiteName          string      `gorm:"type:text;column:site_name"                              json:"site_name"`
	InspectorName     string      `gorm:"type:text;column:inspector_name"                         json:"inspector_name"`
	InspectorUsername string      `gorm:"type:text;column:inspector_username"                     json:"inspector_username"`
	InspectorRole     string      `gorm:"type:text;column:inspector_role"                         json:"inspector_role"`
	Status            VisitStatus `gorm:"type:text;column:status;default:open"                    json:"status"`

	StartedAt *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	ClosedAt  *time.Time `gorm:"column:closed_at"  json:"closed_at,omitempty"`

	StartLat *float64 `gorm:"type:double precision;column:start_lat" json:"start_lat,omitempty"`
	StartLng *float64 `gorm:"type:double precision;column:start_lng" json:"start_lng,omitempty"`
	EndLat   *float64 `gorm:"type:double precision;column:end_lat"   json:"end_lat,omitempty"`
	EndLng   *float64 `gorm:"type:double precision;column:end_lng"   json:"end_lng,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteVisitModel) TableName() string { return "site_visits" }

func point(lat, lng *float64) (orb.Point, bool) {
	if lat == nil || lng == nil {
		return orb.Point{}, false
	}
	return orb.Point{*lng, *lat}, true
}

func (v SiteVisitModel) StartPoint() (orb.Point, bool) { return point(v.StartLat, v.StartLng) }
func (v SiteVisitModel) EndPoint() (orb.Point, bool)   { return point(v.EndLat, v.EndLng) }
