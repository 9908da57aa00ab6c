// Package view renders the dashboard and profile screens as plain text.
//
// Colour is only emitted when writing to a terminal and colour is not
// disabled; the table width follows the terminal, or 100 columns otherwise.
package view

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Screen identifies a top-level view for the navigation bar.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenProfile
)

const DefaultWidth = 100

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
)

type Renderer struct {
	w     io.Writer
	color bool
	width int
}

// NewRenderer inspects w: only an *os.File attached to a terminal gets
// colour and a measured width.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	r := &Renderer{w: w, width: DefaultWidth}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.color = !noColor
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			r.width = width
		}
	}
	return r
}

func (r *Renderer) colorize(color, text string) string {
	if !r.color {
		return text
	}
	return color + text + colorReset
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

func (r *Renderer) printf(format string, a ...any) {
	fmt.Fprintf(r.w, format, a...)
}

// Header prints the title line and the navigation bar.
func (r *Renderer) Header(title string, active Screen) {
	nav := []struct {
		screen Screen
		label  string
	}{
		{ScreenDashboard, "Comments Dashboard"},
		{ScreenProfile, "User Profile"},
	}

	items := make([]string, 0, len(nav))
	for _, n := range nav {
		if n.screen == active {
			items = append(items, r.colorize(colorBold, "["+n.label+"]"))
		} else {
			items = append(items, " "+n.label+" ")
		}
	}

	r.println(strings.Repeat("=", min(r.width, 80)))
	r.println(r.colorize(colorBold, title) + "    " + strings.Join(items, " "))
	if active == ScreenProfile {
		r.println(r.colorize(colorDim, "(type 'dashboard' to go back)"))
	}
	r.println(strings.Repeat("=", min(r.width, 80)))
}

func (r *Renderer) Loading(what string) {
	r.println(r.colorize(colorDim, "Loading "+what+"..."))
}

// Notify is the transient error notification.
func (r *Renderer) Notify(title, description string) {
	r.println(r.colorize(colorRed, title+": "+description))
}

func (r *Renderer) Message(format string, a ...any) {
	r.printf(format+"\n", a...)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// oneLine collapses whitespace runs, including newlines, to single spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
