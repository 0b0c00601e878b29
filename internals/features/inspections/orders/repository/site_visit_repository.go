package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ptiadmin_backend/internals/features/inspections/orders/model"
)

const MaxVisits = 200

type VisitFilter struct {
	Status model.VisitStatus
	Limit  int
}

type SiteVisitRepository struct {
	db *gorm.DB
}

func NewSiteVisitRepository(db *gorm.DB) *SiteVisitRepository {
	return &SiteVisitRepository{db: db}
}

func (r *SiteVisitRepository) List(ctx context.Context, f VisitFilter) ([]model.SiteVisitModel, error) {
	limit := f.Limit
	if limit <= 0 || limit > MaxVisits {
		limit = MaxVisits
	}
	q := r.db.WithContext(ctx).Model(&model.SiteVisitModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var rows []model.SiteVisitModel
	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list site visits: %w", err)
	}
	return rows, nil
}

func (r *SiteVisitRepository) Get(ctx context.Context, id uuid.UUID) (*model.SiteVisitModel, error) {
	var row model.SiteVisitModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, fmt.Errorf("get site visit %s: %w", id, err)
	}
	return &row, nil
}
