package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/client/services"
	"github.com/dmitrijs2005/gophdash/internal/client/view"
)

const (
	msgLoadCommentsFailed = "Failed to load comments"
	msgLoadProfileFailed  = "Failed to load user profile"
	msgLastPage           = "Already on the last page"
	msgFirstPage          = "Already on the first page"
)

// Dashboard switches to the comments view, fetching comments on first show.
func (a *App) Dashboard(ctx context.Context) error {
	a.screen = view.ScreenDashboard
	var err error
	if !a.dashboardLoaded {
		a.dashboardLoaded = true
		a.renderer.Loading("comments")
		err = a.dashboard.Load(ctx)
		a.notifyFetch(ctx, err, msgLoadCommentsFailed)
	}
	a.renderDashboard()
	return err
}

// Profile switches to the user view, fetching users on first show.
func (a *App) Profile(ctx context.Context) error {
	a.screen = view.ScreenProfile
	var err error
	if !a.profileLoaded {
		a.profileLoaded = true
		a.renderer.Loading("profile")
		err = a.profile.Load(ctx)
		a.notifyFetch(ctx, err, msgLoadProfileFailed)
	}
	a.renderProfile()
	return err
}

// Reload fetches the current view's resource again.
func (a *App) Reload(ctx context.Context) error {
	if a.screen == view.ScreenProfile {
		a.profileLoaded = true
		a.renderer.Loading("profile")
		err := a.profile.Load(ctx)
		a.notifyFetch(ctx, err, msgLoadProfileFailed)
		a.renderProfile()
		return err
	}

	var err error
	a.renderer.Loading("comments")
	if a.dashboardLoaded {
		err = a.dashboard.Refresh(ctx)
	} else {
		a.dashboardLoaded = true
		err = a.dashboard.Load(ctx)
	}
	a.notifyFetch(ctx, err, msgLoadCommentsFailed)
	a.renderDashboard()
	return err
}

func (a *App) List(ctx context.Context) error {
	return a.Dashboard(ctx)
}

func (a *App) Search(ctx context.Context, text string) error {
	return a.change(ctx, func(ctx context.Context) error {
		return a.dashboard.SetSearch(ctx, text)
	})
}

func (a *App) PageSize(ctx context.Context, arg string) error {
	size, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Page size must be a number")
		return err
	}
	return a.change(ctx, func(ctx context.Context) error {
		return a.dashboard.SetPageSize(ctx, size)
	})
}

func (a *App) Sort(ctx context.Context, arg string) error {
	field, err := models.ParseSortField(arg)
	if err != nil {
		printlnFn(fmt.Sprintf("Unknown sort column %q, use postId, name or email", arg))
		return err
	}
	return a.change(ctx, func(ctx context.Context) error {
		return a.dashboard.ToggleSort(ctx, field)
	})
}

// Page jumps to page n, which must lie within the current page count.
func (a *App) Page(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Page must be a number")
		return err
	}
	last := a.lastPage()
	if n < 1 || n > last {
		printlnFn(fmt.Sprintf("Page must be between 1 and %d", last))
		return fmt.Errorf("%w: %d", services.ErrInvalidPage, n)
	}
	return a.setPage(ctx, n)
}

func (a *App) Next(ctx context.Context) error {
	page := a.dashboard.Filters().Page
	if page >= a.lastPage() {
		printlnFn(msgLastPage)
		return nil
	}
	return a.setPage(ctx, page+1)
}

// Prev steps back one page. From a page past the end it lands on the last
// page instead.
func (a *App) Prev(ctx context.Context) error {
	page := a.dashboard.Filters().Page
	if page <= 1 {
		printlnFn(msgFirstPage)
		return nil
	}
	return a.setPage(ctx, min(page-1, a.lastPage()))
}

func (a *App) First(ctx context.Context) error {
	if a.dashboard.Filters().Page == 1 {
		printlnFn(msgFirstPage)
		return nil
	}
	return a.setPage(ctx, 1)
}

func (a *App) Last(ctx context.Context) error {
	last := a.lastPage()
	if a.dashboard.Filters().Page == last {
		printlnFn(msgLastPage)
		return nil
	}
	return a.setPage(ctx, last)
}

func (a *App) Reset(ctx context.Context) error {
	return a.change(ctx, a.dashboard.ResetFilters)
}

func (a *App) setPage(ctx context.Context, n int) error {
	return a.change(ctx, func(ctx context.Context) error {
		return a.dashboard.SetPage(ctx, n)
	})
}

// change applies a filter mutation and re-renders the dashboard. Rejected
// input is reported and leaves the view alone; a failed write to the
// settings store has already been logged and the view is still updated.
func (a *App) change(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	switch {
	case errors.Is(err, services.ErrInvalidPageSize):
		printlnFn(fmt.Sprintf("Page size must be one of %v", models.PageSizeOptions))
		return err
	case errors.Is(err, services.ErrInvalidPage):
		printlnFn("Page must be at least 1")
		return err
	}
	a.screen = view.ScreenDashboard
	a.renderDashboard()
	return err
}

// lastPage is the highest page the pagination controls may reach. An empty
// result still has page 1.
func (a *App) lastPage() int {
	return max(a.dashboard.View().TotalPages, 1)
}

func (a *App) notifyFetch(ctx context.Context, err error, msg string) {
	if err == nil || ctx.Err() != nil {
		return
	}
	a.renderer.Notify("Error", msg)
}

func (a *App) renderDashboard() {
	a.renderer.Header(view.DashboardTitle, view.ScreenDashboard)
	a.renderer.Dashboard(a.dashboard.View(), a.dashboard.Filters())
}

func (a *App) renderProfile() {
	a.renderer.Header(view.ProfileTitle, view.ScreenProfile)
	a.renderer.Profile(a.profile.User())
}
