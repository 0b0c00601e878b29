package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ptiadmin_backend/internals/features/inspections/report"
)

// SubmissionModel is one form snapshot sent by the field app.
type SubmissionModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	OrgCode     string         `gorm:"type:text;column:org_code"                               json:"org_code"`
	DeviceID    string         `gorm:"type:text;column:device_id"                              json:"device_id"`
	FormCode    string         `gorm:"type:text;column:form_code;index"                        json:"form_code"`
	FormVersion *string        `gorm:"type:text;column:form_version"                           json:"form_version,omitempty"`
	AppVersion  *string        `gorm:"type:text;column:app_version"                            json:"app_version,omitempty"`
	Payload     datatypes.JSON `gorm:"type:jsonb;column:payload"                               json:"payload"`

	SiteVisitID *uuid.UUID `gorm:"type:uuid;column:site_visit_id;index" json:"site_visit_id,omitempty"`

	LastSavedAt *time.Time `gorm:"column:last_saved_at"                 json:"last_saved_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"     json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"     json:"updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }

// SubmissionAssetModel is a photo uploaded for a submission.
type SubmissionAssetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;column:submission_id;index"           json:"submission_id"`
	AssetKey     string    `gorm:"type:text;column:asset_key"                              json:"asset_key"`
	AssetType    string    `gorm:"type:text;column:asset_type"                             json:"asset_type"`
	Bucket       string    `gorm:"type:text;column:bucket"                                 json:"bucket"`
	PublicURL    *string   `gorm:"type:text;column:public_url"                             json:"public_url,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"                        json:"created_at"`
}

func (SubmissionAssetModel) TableName() string { return "submission_assets" }

func (a SubmissionAssetModel) ToAsset() report.Asset {
	out := report.Asset{
		ID:           a.ID.String(),
		SubmissionID: a.SubmissionID.String(),
		AssetType:    a.AssetType,
		CreatedAt:    a.CreatedAt,
	}
	if a.PublicURL != nil {
		out.PublicURL = *a.PublicURL
	}
	return out
}

func ToAssets(rows []SubmissionAssetModel) []report.Asset {
	out := make([]report.Asset, len(rows))
	for i := range rows {
		out[i] = rows[i].ToAsset()
	}
	return out
}
