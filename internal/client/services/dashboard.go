package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophdash/internal/client/client"
	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/client/pipeline"
	"github.com/dmitrijs2005/gophdash/internal/client/repositories/settings"
	"github.com/dmitrijs2005/gophdash/internal/logging"
)

// FiltersKey is the settings slot holding the dashboard's TableFilters.
const FiltersKey = "dashboard-filters"

// DashboardService holds the comments dashboard state: the fetched comments
// and the persisted table filters.
//
// Contract:
//   - Load: restore persisted filters, then fetch comments once.
//   - Refresh: fetch comments again, keeping filters.
//   - Set*/ToggleSort/ResetFilters: change filters and write them through.
//     Search and page size changes go back to page 1.
//   - View: run the filter/sort/paginate pipeline over the current state.
//
// Not safe for concurrent use; the REPL drives it from one goroutine.
type DashboardService interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetSearch(ctx context.Context, search string) error
	SetPageSize(ctx context.Context, size int) error
	SetPage(ctx context.Context, page int) error
	ToggleSort(ctx context.Context, field models.SortField) error
	ResetFilters(ctx context.Context) error
	View() pipeline.Result
	Filters() models.TableFilters
	Loading() bool
	HasData() bool
}

type dashboardService struct {
	client   client.Client
	slot     *Slot[models.TableFilters]
	log      logging.Logger
	comments []models.Comment
	filters  models.TableFilters
	loading  bool
}

// NewFiltersSlot binds the dashboard filters to their settings slot.
func NewFiltersSlot(repo settings.Repository, log logging.Logger) *Slot[models.TableFilters] {
	return NewSlot(repo, FiltersKey, models.DefaultTableFilters(), models.TableFilters.Validate, log)
}

func NewDashboardService(c client.Client, slot *Slot[models.TableFilters], log logging.Logger) DashboardService {
	return &dashboardService{
		client:  c,
		slot:    slot,
		log:     log.With("view", "dashboard"),
		filters: slot.Default(),
		loading: true,
	}
}

func (s *dashboardService) Load(ctx context.Context) error {
	s.filters = s.slot.Load(ctx)
	s.log.Debug(ctx, "filters restored",
		"search", s.filters.Search,
		"page", s.filters.Page,
		"page_size", s.filters.PageSize,
		"sort", s.filters.Sort.String())
	return s.Refresh(ctx)
}

func (s *dashboardService) Refresh(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	comments, err := s.client.GetComments(ctx)
	if err != nil {
		s.comments = nil
		return err
	}
	s.comments = comments
	s.log.Info(ctx, "comments loaded", "count", len(comments))
	return nil
}

func (s *dashboardService) update(ctx context.Context, u models.FilterUpdate) error {
	s.filters = s.filters.Apply(u)
	if err := s.slot.Store(ctx, s.filters); err != nil {
		s.log.Error(ctx, "failed to persist filters", "error", err)
		return fmt.Errorf("persist filters: %w", err)
	}
	return nil
}

func (s *dashboardService) SetSearch(ctx context.Context, search string) error {
	return s.update(ctx, models.FilterUpdate{Search: &search})
}

func (s *dashboardService) SetPageSize(ctx context.Context, size int) error {
	if !models.IsPageSizeOption(size) {
		return fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, size, models.PageSizeOptions)
	}
	return s.update(ctx, models.FilterUpdate{PageSize: &size})
}

// SetPage does not clamp to the page count; a page past the end simply
// renders empty.
func (s *dashboardService) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	return s.update(ctx, models.FilterUpdate{Page: &page})
}

func (s *dashboardService) ToggleSort(ctx context.Context, field models.SortField) error {
	if !field.Valid() {
		return fmt.Errorf("%w: unknown field %q", models.ErrInvalidSort, field)
	}
	sort := pipeline.CycleSort(s.filters.Sort, field)
	return s.update(ctx, models.FilterUpdate{Sort: &sort})
}

func (s *dashboardService) ResetFilters(ctx context.Context) error {
	def, err := s.slot.Reset(ctx)
	s.filters = def
	if err != nil {
		s.log.Error(ctx, "failed to reset filters", "error", err)
		return fmt.Errorf("reset filters: %w", err)
	}
	return nil
}

func (s *dashboardService) View() pipeline.Result {
	return pipeline.Apply(s.comments, s.filters)
}

func (s *dashboardService) Filters() models.TableFilters {
	return s.filters
}

func (s *dashboardService) Loading() bool {
	return s.loading
}

func (s *dashboardService) HasData() bool {
	return len(s.comments) > 0
}
