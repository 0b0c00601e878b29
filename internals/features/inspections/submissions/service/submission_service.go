package service

import (
	"context"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
	"ptiadmin_backend/internals/features/inspections/report/pdf"
	"ptiadmin_backend/internals/features/inspections/submissions/dto"
	"ptiadmin_backend/internals/features/inspections/submissions/model"
	"ptiadmin_backend/internals/features/inspections/submissions/repository"
	helper "ptiadmin_backend/internals/helpers"
)

// Store is the slice of the repository the service reads from.
type Store interface {
	List(ctx context.Context, f repository.ListFilter) ([]model.SubmissionModel, error)
	WithAssets(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, []model.SubmissionAssetModel, error)
}

type PDFRenderer interface {
	Render(ctx context.Context, w io.Writer, doc pdf.Document) error
}

type SubmissionService struct {
	store    Store
	norm     *report.Normalizer
	renderer PDFRenderer
	log      *zap.Logger
}

func NewSubmissionService(store Store, norm *report.Normalizer, renderer PDFRenderer, log *zap.Logger) *SubmissionService {
	if norm == nil {
		norm = report.NewNormalizer(nil, nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmissionService{store: store, norm: norm, renderer: renderer, log: log.Named("submissions")}
}

func (s *SubmissionService) FormTypes() []dto.FormTypeItem {
	return dto.ToFormTypeItems(formschema.AllMeta())
}

// DecodePayload reads the jsonb column. A broken payload normalizes as
// an empty one.
func DecodePayload(raw datatypes.JSON) (map[string]any, error) {
	out := map[string]any{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return map[string]any{}, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func (s *SubmissionService) payload(row *model.SubmissionModel) map[string]any {
	p, err := DecodePayload(row.Payload)
	if err != nil {
		s.log.Warn("undecodable payload", zap.String("submission_id", row.ID.String()), zap.Error(err))
	}
	return p
}

/* ===============================
   List
=================================*/

func (s *SubmissionService) List(ctx context.Context, q dto.ListQuery) ([]dto.SubmissionListItem, error) {
	rows, err := s.store.List(ctx, repository.ListFilter{
		FormCode: strings.TrimSpace(q.FormCode),
		Limit:    repository.DefaultListLimit,
	})
	if err != nil {
		return nil, err
	}

	var wantType *formschema.FormType
	if q.FormType != "" {
		var t formschema.FormType
		_ = t.UnmarshalText([]byte(q.FormType))
		wantType = &t
	}
	needle := helper.FoldText(q.Q)

	out := make([]dto.SubmissionListItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		r := report.Resolve(s.payload(row))
		code := report.FormCode(r, row.FormCode)
		meta := formschema.MetaFor(code)
		if wantType != nil && meta.Type != *wantType {
			continue
		}

		site := report.ExtractSiteInfo(r)
		by := report.ExtractSubmittedBy(r)
		if needle != "" && !strings.Contains(report.SearchText(row.ID.String(), code, row.DeviceID, site, by), needle) {
			continue
		}

		out = append(out, dto.SubmissionListItem{
			ID:          row.ID,
			FormCode:    code,
			FormType:    meta.Type,
			FormLabel:   meta.Label,
			DeviceID:    row.DeviceID,
			Site:        site,
			SubmittedBy: by,
			SiteVisitID: row.SiteVisitID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return out, nil
}

/* ===============================
   Detail / report / pdf
=================================*/

func (s *SubmissionService) load(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, report.Report, error) {
	row, assets, err := s.store.WithAssets(ctx, id)
	if err != nil {
		return nil, report.Report{}, err
	}
	return row, s.norm.Normalize(s.payload(row), row.FormCode, model.ToAssets(assets)), nil
}

func header(row *model.SubmissionModel) dto.SubmissionHeader {
	return dto.SubmissionHeader{
		ID:          row.ID,
		OrgCode:     row.OrgCode,
		DeviceID:    row.DeviceID,
		FormCode:    row.FormCode,
		FormVersion: row.FormVersion,
		AppVersion:  row.AppVersion,
		SiteVisitID: row.SiteVisitID,
		LastSavedAt: row.LastSavedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (s *SubmissionService) Detail(ctx context.Context, id uuid.UUID) (dto.SubmissionDetail, error) {
	row, rep, err := s.load(ctx, id)
	if err != nil {
		return dto.SubmissionDetail{}, err
	}
	return dto.SubmissionDetail{
		Submission:  header(row),
		FormType:    rep.FormType,
		FormLabel:   rep.FormLabel,
		Site:        rep.Site,
		Meta:        rep.Meta,
		SubmittedBy: rep.SubmittedBy,
		Sections:    rep.Sections,
		Photos:      rep.Photos,
		Summary:     rep.Summary,
	}, nil
}

func (s *SubmissionService) Report(ctx context.Context, id uuid.UUID) (dto.SubmissionReport, error) {
	row, rep, err := s.load(ctx, id)
	if err != nil {
		return dto.SubmissionReport{}, err
	}
	return dto.SubmissionReport{
		ID:        row.ID,
		FormType:  rep.FormType,
		FormLabel: rep.FormLabel,
		Site:      rep.Site,
		Sections:  rep.Joined,
		Summary:   rep.Summary,
	}, nil
}

// PDF renders the submission to w. The returned name is a download
// filename built from the site and form.
func (s *SubmissionService) PDF(ctx context.Context, id uuid.UUID, w io.Writer) (string, error) {
	row, rep, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	doc := pdf.Document{SubmissionID: row.ID.String(), CreatedAt: row.CreatedAt, Report: rep}
	if err := s.renderer.Render(ctx, w, doc); err != nil {
		return "", err
	}
	return FileName(rep, row.ID), nil
}

func FileName(rep report.Report, id uuid.UUID) string {
	site := rep.Site.IDSitio
	if site == "" || site == report.Placeholder {
		site = rep.Site.NombreSitio
	}
	if site == report.Placeholder {
		site = ""
	}
	parts := []string{"reporte", rep.FormType.String()}
	if site != "" {
		parts = append(parts, site)
	}
	parts = append(parts, id.String()[:8])
	return helper.Slugify(strings.Join(parts, "-"), 120) + ".pdf"
}
