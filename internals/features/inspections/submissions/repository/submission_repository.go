package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ptiadmin_backend/internals/features/inspections/submissions/model"
)

const DefaultListLimit = 200

// ActivityColumn orders lists and bounds the dashboard activity window.
// Re-saved submissions count as recent activity.
const ActivityColumn = "updated_at"

type ListFilter struct {
	FormCode string
	Limit    int
}

// FormCodeCount is one row of the per-form breakdown.
type FormCodeCount struct {
	FormCode string `gorm:"column:form_code" json:"form_code"`
	Total    int64  `gorm:"column:total"     json:"total"`
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func newestFirst(col string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: true}
}

/* ====================== SUBMISSIONS ====================== */

func (r *SubmissionRepository) List(ctx context.Context, f ListFilter) ([]model.SubmissionModel, error) {
	limit := f.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	q := r.db.WithContext(ctx).Model(&model.SubmissionModel{})
	if f.FormCode != "" {
		q = q.Where("form_code = ?", f.FormCode)
	}

	var rows []model.SubmissionModel
	if err := q.Order(newestFirst(ActivityColumn)).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return rows, nil
}

func (r *SubmissionRepository) Get(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, error) {
	var row model.SubmissionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return &row, nil
}

func (r *SubmissionRepository) Assets(ctx context.Context, submissionID uuid.UUID) ([]model.SubmissionAssetModel, error) {
	var rows []model.SubmissionAssetModel
	if err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}}).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assets of %s: %w", submissionID, err)
	}
	return rows, nil
}

// WithAssets loads a submission and its assets in one read-only transaction.
func (r *SubmissionRepository) WithAssets(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, []model.SubmissionAssetModel, error) {
	var (
		sub    *model.SubmissionModel
		assets []model.SubmissionAssetModel
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inTx := &SubmissionRepository{db: tx}
		var err error
		if sub, err = inTx.Get(ctx, id); err != nil {
			return err
		}
		assets, err = inTx.Assets(ctx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return sub, assets, nil
}

func (r *SubmissionRepository) BySiteVisit(ctx context.Context, visitID uuid.UUID) ([]model.SubmissionModel, error) {
	var rows []model.SubmissionModel
	if err := r.db.WithContext(ctx).
		Where("site_visit_id = ?", visitID).
		Order(newestFirst("created_at")).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("submissions of visit %s: %w", visitID, err)
	}
	return rows, nil
}

/* ====================== STATS ====================== */

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.SubmissionModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

// CountSince counts submissions active (saved) since the given time.
func (r *SubmissionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Where(ActivityColumn+" >= ?", since).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count submissions since %s: %w", since.Format(time.RFC3339), err)
	}
	return n, nil
}

func (r *SubmissionRepository) CountByFormCode(ctx context.Context) ([]FormCodeCount, error) {
	var rows []FormCodeCount
	if err := r.db.WithContext(ctx).Model(&model.SubmissionModel{}).
		Select("COALESCE(form_code, '') AS form_code, COUNT(*) AS total").
		Group("form_code").
		Order(newestFirst("total")).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count by form code: %w", err)
	}
	return rows, nil
}

func (r *SubmissionRepository) Recent(ctx context.Context, n int) ([]model.SubmissionModel, error) {
	var rows []model.SubmissionModel
	if err := r.db.WithContext(ctx).
		Order(newestFirst(ActivityColumn)).
		Limit(n).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("recent submissions: %w", err)
	}
	return rows, nil
}
