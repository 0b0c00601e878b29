package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ptiadmin_backend/internals/features/inspections/formschema"
	"ptiadmin_backend/internals/features/inspections/report"
	subModel "ptiadmin_backend/internals/features/inspections/submissions/model"
	subRepo "ptiadmin_backend/internals/features/inspections/submissions/repository"
	subService "ptiadmin_backend/internals/features/inspections/submissions/service"
)

const (
	recentCount    = 5
	computeTimeout = 10 * time.Second
)

// Source is what the stats are computed from.
type Source interface {
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByFormCode(ctx context.Context) ([]subRepo.FormCodeCount, error)
	Recent(ctx context.Context, n int) ([]subModel.SubmissionModel, error)
}

type FormCodeStat struct {
	FormCode  string              `json:"form_code"`
	FormType  formschema.FormType `json:"form_type"`
	FormLabel string              `json:"form_label"`
	Total     int64               `json:"total"`
}

type TypeStat struct {
	FormType   formschema.FormType `json:"form_type"`
	ShortLabel string              `json:"short_label"`
	Total      int64               `json:"total"`
}

type RecentItem struct {
	ID        uuid.UUID           `json:"id"`
	FormCode  string              `json:"form_code"`
	FormType  formschema.FormType `json:"form_type"`
	FormLabel string              `json:"form_label"`
	SiteName  string              `json:"site_name"`
	SiteID    string              `json:"site_id"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type Stats struct {
	Total       int64          `json:"total"`
	Last7Days   int64          `json:"last_7_days"`
	ByFormCode  []FormCodeStat `json:"by_form_code"`
	ByFormType  []TypeStat     `json:"by_form_type"`
	Recent      []RecentItem   `json:"recent"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// StatsService caches the dashboard numbers. Concurrent misses share a
// single computation.
type StatsService struct {
	src Source
	ttl time.Duration
	now func() time.Time
	log *zap.Logger

	sf     singleflight.Group
	mu     sync.RWMutex
	cached *Stats
}

func NewStatsService(src Source, ttl time.Duration, log *zap.Logger) *StatsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsService{src: src, ttl: ttl, now: time.Now, log: log.Named("stats")}
}

// Get serves the cached stats while fresh; force recomputes.
func (s *StatsService) Get(ctx context.Context, force bool) (Stats, error) {
	if !force {
		s.mu.RLock()
		c := s.cached
		s.mu.RUnlock()
		if c != nil && (s.ttl <= 0 || s.now().Sub(c.GeneratedAt) < s.ttl) {
			return *c, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh recomputes and stores the stats.
func (s *StatsService) Refresh(ctx context.Context) (Stats, error) {
	ch := s.sf.DoChan("stats", func() (any, error) {
		// detached so one caller going away does not fail the others
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), computeTimeout)
		defer cancel()
		st, err := s.compute(cctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = &st
		s.mu.Unlock()
		return st, nil
	})

	select {
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Stats{}, res.Err
		}
		return res.Val.(Stats), nil
	}
}

func (s *StatsService) compute(ctx context.Context) (Stats, error) {
	now := s.now()
	total, err := s.src.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	week, err := s.src.CountSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		return Stats{}, err
	}
	byCode, err := s.src.CountByFormCode(ctx)
	if err != nil {
		return Stats{}, err
	}
	recent, err := s.src.Recent(ctx, recentCount)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Total:       total,
		Last7Days:   week,
		ByFormCode:  make([]FormCodeStat, 0, len(byCode)),
		Recent:      make([]RecentItem, 0, len(recent)),
		GeneratedAt: now,
	}

	perType := map[formschema.FormType]int64{}
	for _, row := range byCode {
		meta := formschema.MetaFor(row.FormCode)
		st.ByFormCode = append(st.ByFormCode, FormCodeStat{
			FormCode:  row.FormCode,
			FormType:  meta.Type,
			FormLabel: meta.Label,
			Total:     row.Total,
		})
		perType[meta.Type] += row.Total
	}
	st.ByFormType = typeStats(perType)

	for i := range recent {
		st.Recent = append(st.Recent, s.recentItem(&recent[i]))
	}
	return st, nil
}

func typeStats(perType map[formschema.FormType]int64) []TypeStat {
	out := make([]TypeStat, 0, len(perType))
	for t, n := range perType {
		out = append(out, TypeStat{FormType: t, ShortLabel: shortLabel(t), Total: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].FormType < out[j].FormType
	})
	return out
}

func shortLabel(t formschema.FormType) string {
	for _, m := range formschema.AllMeta() {
		if m.Type == t {
			return m.ShortLabel
		}
	}
	return "Otro"
}

func (s *StatsService) recentItem(row *subModel.SubmissionModel) RecentItem {
	p, err := subService.DecodePayload(row.Payload)
	if err != nil {
		s.log.Warn("undecodable payload", zap.String("submission_id", row.ID.String()), zap.Error(err))
	}
	r := report.Resolve(p)
	code := report.FormCode(r, row.FormCode)
	meta := formschema.MetaFor(code)
	site := report.ExtractSiteInfo(r)
	return RecentItem{
		ID:        row.ID,
		FormCode:  code,
		FormType:  meta.Type,
		FormLabel: meta.Label,
		SiteName:  site.NombreSitio,
		SiteID:    site.IDSitio,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
