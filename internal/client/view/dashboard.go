package view

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/client/pipeline"
)

const (
	DashboardTitle = "Comments Dashboard"

	MsgNoMatches  = "No comments found matching your search."
	MsgNoComments = "No comments available."

	columnGap    = 3
	minBodyWidth = 20
)

// SortIndicator is the arrow shown next to a sortable column header.
func SortIndicator(sort models.SortConfig, field models.SortField) string {
	active, direction, ok := sort.Get()
	if !ok || active != field {
		return "↕"
	}
	if direction == models.SortAsc {
		return "↑"
	}
	return "↓"
}

// Dashboard prints the controls line, the comments table and, when anything
// matches, the pagination footer.
func (r *Renderer) Dashboard(res pipeline.Result, filters models.TableFilters) {
	r.controls(filters)
	r.table(res, filters)
	if res.Total > 0 {
		r.pagination(res)
	}
}

func (r *Renderer) controls(f models.TableFilters) {
	search := "(none)"
	if f.Search != "" {
		search = strconv.Quote(f.Search)
	}
	options := make([]string, len(models.PageSizeOptions))
	for i, o := range models.PageSizeOptions {
		if o == f.PageSize {
			options[i] = "[" + strconv.Itoa(o) + "]"
		} else {
			options[i] = strconv.Itoa(o)
		}
	}
	r.printf("Search: %s    Show: %s entries    Sort: %s\n\n", search, strings.Join(options, " "), f.Sort)
}

func (r *Renderer) table(res pipeline.Result, f models.TableFilters) {
	headers := []string{
		"Post ID " + SortIndicator(f.Sort, models.SortFieldPostID),
		"Name " + SortIndicator(f.Sort, models.SortFieldName),
		"Email " + SortIndicator(f.Sort, models.SortFieldEmail),
		"Comment",
	}

	rows := make([][]string, len(res.Items))
	for i, c := range res.Items {
		rows[i] = []string{"#" + strconv.Itoa(c.PostID), oneLine(c.Name), c.Email, oneLine(c.Body)}
	}

	bodyWidth := r.bodyWidth(headers, rows)
	for _, row := range rows {
		row[3] = truncate(row[3], bodyWidth)
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, columnGap, ' ', 0)

	// Colour codes are kept out of the tabwriter so they do not skew widths.
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	separators := make([]string, len(headers))
	for i, h := range headers {
		separators[i] = strings.Repeat("-", utf8.RuneCountInString(h))
	}
	fmt.Fprintln(tw, strings.Join(separators, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	if len(rows) == 0 {
		msg := MsgNoComments
		if f.Search != "" {
			msg = MsgNoMatches
		}
		r.println()
		r.println(r.colorize(colorDim, msg))
	}
	r.println()
}

// bodyWidth leaves the comment column whatever the other columns do not use.
func (r *Renderer) bodyWidth(headers []string, rows [][]string) int {
	used := 0
	for col := 0; col < len(headers)-1; col++ {
		w := utf8.RuneCountInString(headers[col])
		for _, row := range rows {
			w = max(w, utf8.RuneCountInString(row[col]))
		}
		used += w + columnGap
	}
	return max(minBodyWidth, r.width-used)
}

func (r *Renderer) pagination(res pipeline.Result) {
	from, to := res.Range()
	if from == 0 {
		r.printf("Showing 0 of %d entries", res.Total)
	} else {
		r.printf("Showing %d to %d of %d entries", from, to, res.Total)
	}
	r.printf("    Page %d of %d\n", res.Page, res.TotalPages)

	var hints []string
	if res.Page > 1 {
		hints = append(hints, "prev")
	}
	if res.Page < res.TotalPages {
		hints = append(hints, "next")
	}
	if len(hints) > 0 {
		r.println(r.colorize(colorDim, "("+strings.Join(hints, " | ")+" | page <n>)"))
	}
}
