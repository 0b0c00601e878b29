package dto

import (
	"time"

	"github.com/google/uuid"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
)

/* ===================== REQUESTS ===================== */

type ListQuery struct {
	FormCode string `query:"form_code" validate:"omitempty,max=80"`
	FormType string `query:"form_type" validate:"omitempty,oneof=generic maintenance inspection grounding safety equipment executed"`
	Q        string `query:"q"         validate:"omitempty,max=120"`
}

/* ===================== RESPONSES ===================== */

type SubmissionListItem struct {
	ID          uuid.UUID           `json:"id"`
	FormCode    string              `json:"form_code"`
	FormType    formschema.FormType `json:"form_type"`
	FormLabel   string              `json:"form_label"`
	DeviceID    string              `json:"device_id"`
	Site        report.SiteInfo     `json:"site"`
	SubmittedBy *report.Submitter   `json:"submitted_by,omitempty"`
	SiteVisitID *uuid.UUID          `json:"site_visit_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type SubmissionHeader struct {
	ID          uuid.UUID  `json:"id"`
	OrgCode     string     `json:"org_code"`
	DeviceID    string     `json:"device_id"`
	FormCode    string     `json:"form_code"`
	FormVersion *string    `json:"form_version,omitempty"`
	AppVersion  *string    `json:"app_version,omitempty"`
	SiteVisitID *uuid.UUID `json:"site_visit_id,omitempty"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SubmissionDetail struct {
	Submission  SubmissionHeader    `json:"submission"`
	FormType    formschema.FormType `json:"form_type"`
	FormLabel   string              `json:"form_label"`
	Site        report.SiteInfo     `json:"site"`
	Meta        report.MetaInfo     `json:"meta"`
	SubmittedBy *report.Submitter   `json:"submitted_by"`
	Sections    report.SectionMap   `json:"sections"`
	Photos      []report.AssetGroup `json:"photos"`
	Summary     report.Summary      `json:"summary"`
}

type SubmissionReport struct {
	ID        uuid.UUID              `json:"id"`
	FormType  formschema.FormType    `json:"form_type"`
	FormLabel string                 `json:"form_label"`
	Site      report.SiteInfo        `json:"site"`
	Sections  []report.ReportSection `json:"sections"`
	Summary   report.Summary         `json:"summary"`
}

type FormTypeItem struct {
	Type       formschema.FormType `json:"type"`
	Code       string              `json:"code"`
	Label      string              `json:"label"`
	ShortLabel string              `json:"short_label"`
}

func ToFormTypeItems(metas []formschema.Meta) []FormTypeItem {
	out := make([]FormTypeItem, len(metas))
	for i, m := range metas {
		out[i] = FormTypeItem{Type: m.Type, Code: m.Code, Label: m.Label, ShortLabel: m.ShortLabel}
	}
	return out
}
